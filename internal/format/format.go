package format

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Output selects how query and listing results are rendered
type Output string

const (
	// OutputTable renders a rounded table
	OutputTable Output = "table"
	// OutputSimple renders one line per series with the latest value
	OutputSimple Output = "simple"
	// OutputJSON dumps the raw API response
	OutputJSON Output = "json"
)

// ParseOutput validates an --output flag value
func ParseOutput(s string) (Output, error) {
	switch Output(s) {
	case OutputTable, OutputSimple, OutputJSON:
		return Output(s), nil
	default:
		return "", fmt.Errorf("invalid output format %q: expected table, simple, or json", s)
	}
}

// newTable creates a table writer with the house style
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

// truncate shortens a string to max runes with an ellipsis
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
