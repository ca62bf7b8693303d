package format

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/common/model"

	"github.com/grafctl/grafctl/internal/grafana"
)

const (
	// maxSeries caps how many series a table shows before summarizing
	maxSeries = 20
	// maxPoints caps how many trailing points each series shows
	maxPoints = 10
)

// PrometheusResult renders a native Prometheus query result
func PrometheusResult(w io.Writer, result *grafana.PrometheusResult, output Output) error {
	if result == nil {
		fmt.Fprintln(w, "No data")
		return nil
	}

	if output == OutputJSON {
		_, err := w.Write(append(result.Raw, '\n'))
		return err
	}

	switch result.ResultType {
	case model.ValMatrix:
		return renderMatrix(w, result.Matrix, output)
	case model.ValVector:
		return renderVector(w, result.Vector, output)
	default:
		return fmt.Errorf("unsupported result type %q", result.ResultType)
	}
}

func renderMatrix(w io.Writer, matrix model.Matrix, output Output) error {
	if len(matrix) == 0 {
		fmt.Fprintln(w, "No data points")
		return nil
	}

	if output == OutputSimple {
		for i, series := range matrix {
			if i == maxSeries {
				fmt.Fprintf(w, "... and %d more series\n", len(matrix)-maxSeries)
				break
			}
			if len(series.Values) == 0 {
				continue
			}
			latest := series.Values[len(series.Values)-1]
			fmt.Fprintf(w, "%s: %v\n", seriesLabel(series.Metric), latest.Value)
		}
		return nil
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Time", "Metric", "Value"})

	for i, series := range matrix {
		if i == maxSeries {
			t.AppendFooter(table.Row{"...", fmt.Sprintf("%d more series", len(matrix)-maxSeries), "..."})
			break
		}

		label := seriesLabel(series.Metric)
		values := series.Values
		if len(values) > maxPoints {
			values = values[len(values)-maxPoints:]
		}

		for _, point := range values {
			ts := time.Unix(int64(point.Timestamp)/1000, 0).Format("15:04:05")
			t.AppendRow(table.Row{ts, truncate(label, 40), point.Value})
		}
	}

	t.Render()
	return nil
}

func renderVector(w io.Writer, vector model.Vector, output Output) error {
	if len(vector) == 0 {
		fmt.Fprintln(w, "No data points")
		return nil
	}

	if output == OutputSimple {
		for i, sample := range vector {
			if i == maxSeries {
				fmt.Fprintf(w, "... and %d more series\n", len(vector)-maxSeries)
				break
			}
			fmt.Fprintf(w, "%s: %v\n", seriesLabel(sample.Metric), sample.Value)
		}
		return nil
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Time", "Metric", "Value"})

	for i, sample := range vector {
		if i == maxSeries {
			t.AppendFooter(table.Row{"...", fmt.Sprintf("%d more series", len(vector)-maxSeries), "..."})
			break
		}
		ts := time.Unix(int64(sample.Timestamp)/1000, 0).Format("15:04:05")
		t.AppendRow(table.Row{ts, truncate(seriesLabel(sample.Metric), 40), sample.Value})
	}

	t.Render()
	return nil
}

// seriesLabel picks a readable name for a series: job/instance when both are
// set, instance or job alone otherwise, and the full label set as fallback
func seriesLabel(metric model.Metric) string {
	instance := string(metric[model.LabelName("instance")])
	job := string(metric[model.LabelName("job")])

	switch {
	case job != "" && instance != "":
		return job + "/" + instance
	case instance != "":
		return instance
	case job != "":
		return job
	default:
		return metric.String()
	}
}
