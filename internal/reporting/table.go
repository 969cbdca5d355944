package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/benchdiff/internal/compare"
	"github.com/spboyer/benchdiff/internal/models"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiDim    = "\033[2m"

	maxNameWidth = 48
)

var tableColumns = []string{"Test", "Unit", "Summary", "Diff", "Baseline", "Actual", "n"}

type tableWriter struct {
	w     io.Writer
	color bool
	rows  []*models.Comparison
}

func (t *tableWriter) Write(c *models.Comparison) error {
	t.rows = append(t.rows, c)
	return nil
}

func (t *tableWriter) Finish(tally *compare.Tally) error {
	cells := make([][]string, 0, len(t.rows))
	for _, c := range t.rows {
		cells = append(cells, []string{
			truncate(c.DisplayName, maxNameWidth),
			c.Unit,
			string(c.Label),
			formatPercent(c.DiffPercent),
			fmt.Sprintf("%.4g ± %.3g", c.Baseline.Mean, c.Baseline.StdDev),
			fmt.Sprintf("%.4g ± %.3g", c.Actual.Mean, c.Actual.StdDev),
			fmt.Sprintf("%d/%d", c.Baseline.Count, c.Actual.Count),
		})
	}

	widths := make([]int, len(tableColumns))
	for i, h := range tableColumns {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	writeTableRow(&b, tableColumns, widths, nil)
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	b.WriteString(strings.Repeat("-", total) + "\n")

	for i, row := range cells {
		label := t.rows[i].Label
		writeTableRow(&b, row, widths, func(col int, s string) string {
			if col != 2 || !t.color {
				return s
			}
			return labelColor(label) + s + ansiReset
		})
	}

	if tally != nil {
		b.WriteString("\n" + FormatTally(tally) + "\n")
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}

func writeTableRow(b *strings.Builder, cells []string, widths []int, decorate func(int, string) string) {
	for i, cell := range cells {
		padded := padRight(cell, widths[i])
		if decorate != nil {
			padded = decorate(i, padded)
		}
		b.WriteString(padded)
		if i < len(cells)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
}

func labelColor(l models.Label) string {
	switch l {
	case models.LabelGood:
		return ansiGreen
	case models.LabelBad:
		return ansiRed
	case models.LabelFlaky, models.LabelProbSame:
		return ansiYellow
	default:
		return ansiDim
	}
}

// truncate shortens s to maxLen display columns, ending with "…".
func truncate(s string, maxLen int) string {
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	return runewidth.Truncate(s, maxLen, "…")
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
