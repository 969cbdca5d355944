// Package reporting renders comparison results in the supported output formats.
package reporting

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spboyer/benchdiff/internal/compare"
	"github.com/spboyer/benchdiff/internal/models"
)

// Format names an output format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatTable    Format = "table"
	FormatJUnit    Format = "junit"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists every supported format.
var Formats = []Format{FormatCSV, FormatJSON, FormatTable, FormatJUnit, FormatMarkdown, FormatHTML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q: must be one of %v", s, Formats)
}

// Extension returns the file extension conventionally used for f.
func (f Format) Extension() string {
	switch f {
	case FormatJUnit:
		return ".xml"
	case FormatMarkdown:
		return ".md"
	case FormatTable:
		return ".txt"
	default:
		return "." + string(f)
	}
}

// Writer receives comparison rows in order and renders them.
type Writer interface {
	compare.Sink

	// Finish flushes the report. Formats that need the whole result set
	// render everything here.
	Finish(tally *compare.Tally) error
}

// Options tune the rendered output.
type Options struct {
	// Title names the report in formats that have a heading or suite name.
	Title string

	// Color enables ANSI colours in the table format.
	Color bool
}

// NewWriter returns a Writer rendering format f to w.
func NewWriter(f Format, w io.Writer, opts Options) (Writer, error) {
	if opts.Title == "" {
		opts.Title = "benchdiff"
	}
	switch f {
	case FormatCSV:
		return NewCSVWriter(w)
	case FormatJSON:
		return &jsonWriter{w: w}, nil
	case FormatTable:
		return &tableWriter{w: w, color: opts.Color}, nil
	case FormatJUnit:
		return &junitWriter{w: w, name: opts.Title}, nil
	case FormatMarkdown:
		return &markdownWriter{w: w, title: opts.Title}, nil
	case FormatHTML:
		return &markdownWriter{w: w, title: opts.Title, html: true}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

// Collector buffers rows for formats that render the full set at the end.
type Collector struct {
	Rows []*models.Comparison
}

func (c *Collector) Write(cmp *models.Comparison) error {
	c.Rows = append(c.Rows, cmp)
	return nil
}

// formatFloat renders v the way spreadsheet tools expect, with inf/nan
// spelled out.
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatPercent renders a signed percentage with two decimals.
func formatPercent(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf%"
	case math.IsInf(v, -1):
		return "-inf%"
	case math.IsNaN(v):
		return "n/a"
	}
	return fmt.Sprintf("%+.2f%%", v)
}
