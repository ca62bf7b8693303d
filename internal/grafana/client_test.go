package grafana

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.URL, "test-token", WithMaxRetries(0))
	return client, server
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://grafana.example.com/", "token")
	if client.BaseURL() != "http://grafana.example.com" {
		t.Errorf("BaseURL() = %q, want trailing slash removed", client.BaseURL())
	}
}

func TestClient_SendsAuthHeaders(t *testing.T) {
	var gotAuth, gotAccept string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"database": "ok", "version": "10.0.0"}`))
	})

	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("Health() error: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want 'Bearer test-token'", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want 'application/json'", gotAccept)
	}
}

func TestClient_APIErrorOnHTTPFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "invalid API key"}`))
	})

	err := client.Health(context.Background())
	if err == nil {
		t.Fatal("Expected error for 401 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
	if apiErr.Endpoint != "/api/health" {
		t.Errorf("Endpoint = %q, want '/api/health'", apiErr.Endpoint)
	}
	if !strings.Contains(apiErr.Body, "invalid API key") {
		t.Errorf("Body should carry the response, got %q", apiErr.Body)
	}
}

func TestClient_NoRetryOnHTTPError(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	// Retries enabled, but a server answer must not be retried
	client := NewClient(server.URL, "token", WithMaxRetries(3))
	err := client.Health(context.Background())
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
	if requests != 1 {
		t.Errorf("Expected exactly 1 request, got %d", requests)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := client.Health(ctx); err == nil {
		t.Fatal("Expected error for cancelled context")
	}
}

func TestClient_DecodesResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "uid": "abc", "name": "Prometheus", "type": "prometheus", "isDefault": true}]`))
	})

	datasources, err := client.ListDatasources(context.Background())
	if err != nil {
		t.Fatalf("ListDatasources() error: %v", err)
	}
	if len(datasources) != 1 {
		t.Fatalf("Expected 1 datasource, got %d", len(datasources))
	}
	ds := datasources[0]
	if ds.UID != "abc" || ds.Name != "Prometheus" || !ds.IsDefault {
		t.Errorf("Unexpected datasource: %+v", ds)
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.ListDatasources(context.Background())
	if err == nil {
		t.Fatal("Expected error for malformed response")
	}
	if !strings.Contains(err.Error(), "failed to decode") {
		t.Errorf("Error = %v, want decode failure", err)
	}
}
