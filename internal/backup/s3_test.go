package backup

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// fakePutter records PutObject calls
type fakePutter struct {
	calls []s3.PutObjectInput
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls = append(f.calls, *params)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestNewUploader_RequiresBucket(t *testing.T) {
	_, err := NewUploader(context.Background(), Options{})
	if err == nil {
		t.Fatal("Expected error for missing bucket")
	}
	if !strings.Contains(err.Error(), "bucket is required") {
		t.Errorf("Error = %v, want bucket requirement", err)
	}
}

func TestPutDashboard(t *testing.T) {
	putter := &fakePutter{}
	uploader := &Uploader{
		client: putter,
		opts:   Options{Bucket: "grafana-backups", Prefix: "dashboards"},
	}

	document := []byte(`{"uid": "abc", "title": "API Overview"}`)
	if err := uploader.PutDashboard(context.Background(), "abc", document); err != nil {
		t.Fatalf("PutDashboard() error: %v", err)
	}

	if len(putter.calls) != 1 {
		t.Fatalf("Expected 1 PutObject call, got %d", len(putter.calls))
	}

	call := putter.calls[0]
	if *call.Bucket != "grafana-backups" {
		t.Errorf("Bucket = %q, want 'grafana-backups'", *call.Bucket)
	}
	if *call.Key != "dashboards/abc.json" {
		t.Errorf("Key = %q, want 'dashboards/abc.json'", *call.Key)
	}
	if *call.ContentType != "application/json" {
		t.Errorf("ContentType = %q, want 'application/json'", *call.ContentType)
	}

	body, err := io.ReadAll(call.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	if string(body) != string(document) {
		t.Errorf("Body = %q, want the dashboard document", body)
	}
}

func TestPutDashboard_NoPrefix(t *testing.T) {
	putter := &fakePutter{}
	uploader := &Uploader{
		client: putter,
		opts:   Options{Bucket: "grafana-backups"},
	}

	if err := uploader.PutDashboard(context.Background(), "abc", []byte(`{}`)); err != nil {
		t.Fatalf("PutDashboard() error: %v", err)
	}
	if key := *putter.calls[0].Key; key != "abc.json" {
		t.Errorf("Key = %q, want 'abc.json' without prefix", key)
	}
}

func TestPutDashboard_UploadError(t *testing.T) {
	putter := &fakePutter{err: fmt.Errorf("access denied")}
	uploader := &Uploader{
		client: putter,
		opts:   Options{Bucket: "grafana-backups", Prefix: "dashboards"},
	}

	err := uploader.PutDashboard(context.Background(), "abc", []byte(`{}`))
	if err == nil {
		t.Fatal("Expected error when upload fails")
	}
	if !strings.Contains(err.Error(), "abc") {
		t.Errorf("Error should name the dashboard, got: %v", err)
	}
}
