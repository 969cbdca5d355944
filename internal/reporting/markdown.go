package reporting

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/spboyer/benchdiff/internal/compare"
	"github.com/spboyer/benchdiff/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type markdownWriter struct {
	w     io.Writer
	title string
	html  bool
	Collector
}

func (m *markdownWriter) Finish(tally *compare.Tally) error {
	md := RenderMarkdown(m.title, m.Rows, tally)
	if !m.html {
		_, err := io.WriteString(m.w, md)
		return err
	}

	body, err := RenderHTML(md)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(m.w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		html.EscapeString(m.title), body)
	return err
}

// RenderMarkdown builds a GitHub-flavoured Markdown report: a tally line,
// the regressions and improvements called out, then every row.
func RenderMarkdown(title string, rows []*models.Comparison, tally *compare.Tally) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	if tally != nil {
		fmt.Fprintf(&b, "%s\n\n", FormatTally(tally))
	}

	var bad, good []*models.Comparison
	for _, r := range rows {
		if !r.Label.IsChange() {
			continue
		}
		if r.Label == models.LabelBad {
			bad = append(bad, r)
		} else {
			good = append(good, r)
		}
	}

	if len(bad) > 0 {
		b.WriteString("## Regressions\n\n")
		writeMarkdownTable(&b, bad)
	}
	if len(good) > 0 {
		b.WriteString("## Improvements\n\n")
		writeMarkdownTable(&b, good)
	}

	b.WriteString("## All results\n\n")
	if len(rows) == 0 {
		b.WriteString("No tests were present in both runs.\n")
		return b.String()
	}
	writeMarkdownTable(&b, rows)
	return b.String()
}

func writeMarkdownTable(b *strings.Builder, rows []*models.Comparison) {
	b.WriteString("| Test | Unit | Summary | Diff | Baseline | Actual | Significant |\n")
	b.WriteString("|---|---|---|---:|---:|---:|---|\n")
	for _, r := range rows {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s ± %s | %s ± %s | %s |\n",
			escapeCell(r.DisplayName),
			escapeCell(r.Unit),
			r.Label,
			formatPercent(r.DiffPercent),
			formatFloat(r.Baseline.Mean), formatFloat(r.Baseline.StdDev),
			formatFloat(r.Actual.Mean), formatFloat(r.Actual.StdDev),
			yesNo(r.Significant),
		)
	}
	b.WriteString("\n")
}

// RenderHTML converts Markdown produced by RenderMarkdown into an HTML fragment.
func RenderHTML(md string) (string, error) {
	var buf bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := converter.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
