package format

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/grafctl/grafctl/internal/grafana"
)

// DSQueryResult renders an /api/ds/query response, handling both the
// frames shape (Grafana v8+) and the series shape (v7.5)
func DSQueryResult(w io.Writer, result *grafana.DSQueryResult, output Output) error {
	if result == nil {
		fmt.Fprintln(w, "No data")
		return nil
	}

	if output == OutputJSON {
		_, err := w.Write(append(result.Raw, '\n'))
		return err
	}

	switch {
	case len(result.Frames) > 0:
		return renderFrames(w, result.Frames, output)
	case len(result.Series) > 0:
		return renderSeries(w, result.Series, output)
	default:
		fmt.Fprintln(w, "No data points")
		return nil
	}
}

func renderFrames(w io.Writer, frames []grafana.Frame, output Output) error {
	if output == OutputSimple {
		for _, frame := range frames {
			times, values, ok := frameColumns(frame)
			if !ok || len(values) == 0 {
				continue
			}
			_ = times
			if latest := values[len(values)-1]; latest != nil {
				fmt.Fprintf(w, "%s: %v\n", frameName(frame), *latest)
			}
		}
		return nil
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Time", "Series", "Value"})

	for _, frame := range frames {
		times, values, ok := frameColumns(frame)
		if !ok {
			continue
		}

		start := 0
		if len(times) > maxPoints {
			start = len(times) - maxPoints
		}

		for i := start; i < len(times) && i < len(values); i++ {
			if times[i] == nil {
				continue
			}
			ts := time.UnixMilli(int64(*times[i])).Format("2006-01-02 15:04:05")
			value := "null"
			if values[i] != nil {
				value = fmt.Sprintf("%.2f", *values[i])
			}
			t.AppendRow(table.Row{ts, truncate(frameName(frame), 40), value})
		}
	}

	t.Render()
	return nil
}

func renderSeries(w io.Writer, series []grafana.Series, output Output) error {
	if output == OutputSimple {
		for i, s := range series {
			if i == maxSeries {
				fmt.Fprintf(w, "... and %d more series\n", len(series)-maxSeries)
				break
			}
			if len(s.Points) == 0 {
				continue
			}
			latest := s.Points[len(s.Points)-1]
			if len(latest) > 0 && latest[0] != nil {
				fmt.Fprintf(w, "%s: %v\n", s.Name, *latest[0])
			}
		}
		return nil
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Time", "Series", "Value"})

	for i, s := range series {
		if i == maxSeries {
			t.AppendFooter(table.Row{"...", fmt.Sprintf("%d more series", len(series)-maxSeries), "..."})
			break
		}

		points := s.Points
		if len(points) > maxPoints {
			points = points[len(points)-maxPoints:]
		}

		// Points are [value, timestamp-ms] pairs
		for _, point := range points {
			if len(point) < 2 || point[1] == nil {
				continue
			}
			ts := time.UnixMilli(int64(*point[1])).Format("2006-01-02 15:04:05")
			value := "null"
			if point[0] != nil {
				value = fmt.Sprintf("%.2f", *point[0])
			}
			t.AppendRow(table.Row{ts, truncate(s.Name, 40), value})
		}
	}

	t.Render()
	return nil
}

func frameName(frame grafana.Frame) string {
	if frame.Schema.Name != "" {
		return frame.Schema.Name
	}
	return "Series"
}

// frameColumns extracts the timestamp and value columns of a Prometheus frame
func frameColumns(frame grafana.Frame) (times, values []*float64, ok bool) {
	if len(frame.Data.Values) < 2 {
		return nil, nil, false
	}
	return frame.Data.Values[0], frame.Data.Values[1], true
}
