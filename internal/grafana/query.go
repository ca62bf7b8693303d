package grafana

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/prometheus/common/model"
)

// RangeQuery is a PromQL range query against a Prometheus datasource
type RangeQuery struct {
	// DatasourceID is the numeric datasource id used by the proxy endpoint
	DatasourceID int64

	// Expr is the PromQL expression
	Expr string

	// Range is the absolute query window
	Range TimeRange

	// StepSeconds is the resolution step (default 15)
	StepSeconds int
}

// PrometheusResult is a decoded Prometheus query_range response
type PrometheusResult struct {
	ResultType model.ValueType
	Matrix     model.Matrix
	Vector     model.Vector

	// Raw is the unmodified response body, kept for --output json
	Raw json.RawMessage
}

// prometheusEnvelope is the native Prometheus API response shape
type prometheusEnvelope struct {
	Status    string `json:"status"`
	ErrorType string `json:"errorType"`
	Error     string `json:"error"`
	Data      struct {
		ResultType model.ValueType `json:"resultType"`
		Result     json.RawMessage `json:"result"`
	} `json:"data"`
}

// QueryRange runs a range query through the Grafana datasource proxy,
// hitting the Prometheus /api/v1/query_range endpoint directly. The proxy
// path is more reliable than /api/ds/query for historical windows.
func (c *Client) QueryRange(ctx context.Context, q RangeQuery) (*PrometheusResult, error) {
	if q.Expr == "" {
		return nil, fmt.Errorf("empty query expression")
	}

	step := q.StepSeconds
	if step <= 0 {
		step = 15
	}

	params := url.Values{}
	params.Set("query", q.Expr)
	params.Set("start", fmt.Sprintf("%d", q.Range.Start.Unix()))
	params.Set("end", fmt.Sprintf("%d", q.Range.End.Unix()))
	params.Set("step", fmt.Sprintf("%d", step))

	endpoint := fmt.Sprintf("/api/datasources/proxy/%d/api/v1/query_range?%s", q.DatasourceID, params.Encode())

	var raw json.RawMessage
	if err := c.get(ctx, endpoint, &raw); err != nil {
		return nil, err
	}

	return decodePrometheusResult(raw)
}

func decodePrometheusResult(raw json.RawMessage) (*PrometheusResult, error) {
	var envelope prometheusEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode prometheus response: %w", err)
	}

	if envelope.Status != "success" {
		return nil, fmt.Errorf("prometheus query failed: %s: %s", envelope.ErrorType, envelope.Error)
	}

	result := &PrometheusResult{
		ResultType: envelope.Data.ResultType,
		Raw:        raw,
	}

	switch envelope.Data.ResultType {
	case model.ValMatrix:
		if err := json.Unmarshal(envelope.Data.Result, &result.Matrix); err != nil {
			return nil, fmt.Errorf("failed to decode matrix result: %w", err)
		}
	case model.ValVector:
		if err := json.Unmarshal(envelope.Data.Result, &result.Vector); err != nil {
			return nil, fmt.Errorf("failed to decode vector result: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported result type %q", envelope.Data.ResultType)
	}

	return result, nil
}

// DSQuery is a query routed through Grafana's /api/ds/query endpoint
type DSQuery struct {
	// DatasourceUID identifies the datasource
	DatasourceUID string

	// DatasourceID is also sent; Grafana 7.5 requires it
	DatasourceID int64

	// Expr is the PromQL expression
	Expr string

	// Range is the absolute query window
	Range TimeRange

	// Interval is the query interval; auto when empty
	Interval string

	// LegendFormat is the series legend template
	LegendFormat string
}

type dsQueryPayload struct {
	Queries []dsQueryRef `json:"queries"`
	From    string       `json:"from"`
	To      string       `json:"to"`
}

type dsQueryRef struct {
	RefID        string       `json:"refId"`
	Datasource   dsDatasource `json:"datasource"`
	DatasourceID int64        `json:"datasourceId,omitempty"`
	Expr         string       `json:"expr"`
	Interval     string       `json:"interval"`
	LegendFormat string       `json:"legendFormat"`
	Range        bool         `json:"range"`
}

type dsDatasource struct {
	UID  string `json:"uid"`
	Type string `json:"type"`
	ID   int64  `json:"id,omitempty"`
}

// DSQueryResult is a decoded /api/ds/query response for a single refId.
// Grafana v8+ answers with frames; v7.5 answers with series.
type DSQueryResult struct {
	Frames []Frame  `json:"frames"`
	Series []Series `json:"series"`

	// Raw is the unmodified response body, kept for --output json
	Raw json.RawMessage `json:"-"`
}

// Frame is a Grafana data frame (v8+)
type Frame struct {
	Schema struct {
		Name string `json:"name"`
	} `json:"schema"`
	Data struct {
		// Values holds one column per field; for Prometheus frames the
		// first column is timestamps (ms) and the second is values
		Values [][]*float64 `json:"values"`
	} `json:"data"`
}

// Series is a legacy time series (v7.5)
type Series struct {
	Name string `json:"name"`
	// Points are [value, timestamp-ms] pairs; value may be null
	Points [][]*float64 `json:"points"`
}

// QueryDS runs a range query through /api/ds/query
func (c *Client) QueryDS(ctx context.Context, q DSQuery) (*DSQueryResult, error) {
	if q.Expr == "" {
		return nil, fmt.Errorf("empty query expression")
	}

	payload := dsQueryPayload{
		Queries: []dsQueryRef{{
			RefID: "A",
			Datasource: dsDatasource{
				UID:  q.DatasourceUID,
				Type: "prometheus",
				ID:   q.DatasourceID,
			},
			DatasourceID: q.DatasourceID,
			Expr:         q.Expr,
			Interval:     q.Interval,
			LegendFormat: q.LegendFormat,
			Range:        true,
		}},
		From: fmt.Sprintf("%d", q.Range.Start.UnixMilli()),
		To:   fmt.Sprintf("%d", q.Range.End.UnixMilli()),
	}

	var raw json.RawMessage
	if err := c.post(ctx, "/api/ds/query", payload, &raw); err != nil {
		return nil, err
	}

	var response struct {
		Results map[string]DSQueryResult `json:"results"`
	}
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("failed to decode ds query response: %w", err)
	}

	result, ok := response.Results["A"]
	if !ok {
		return nil, fmt.Errorf("ds query response has no result for refId A")
	}
	result.Raw = raw

	return &result, nil
}
