package reporting

import (
	"fmt"
	"strings"

	"github.com/spboyer/benchdiff/internal/compare"
	"github.com/spboyer/benchdiff/internal/models"
)

// InterpretLabel returns a plain-language explanation of a comparison label.
func InterpretLabel(l models.Label) string {
	switch l {
	case models.LabelGood:
		return "Significant improvement"
	case models.LabelBad:
		return "Significant regression"
	case models.LabelProbSame:
		return "Significant but below 1%, probably the same"
	case models.LabelSame:
		return "No detectable change"
	case models.LabelFlaky:
		return "Changed, but not distinguishable from noise"
	case models.LabelNA:
		return "Both runs have zero variance; not testable"
	default:
		return "Unknown"
	}
}

// FormatTally summarises a comparison pass on one line, e.g.
// "12 compared: 2 GOOD, 1 BAD, 9 SAME (1 skipped)".
func FormatTally(t *compare.Tally) string {
	var parts []string
	for _, l := range models.Labels {
		if n := t.Labels[l]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, l))
		}
	}

	s := fmt.Sprintf("%d compared", t.Compared())
	if len(parts) > 0 {
		s += ": " + strings.Join(parts, ", ")
	}
	if t.Skipped > 0 {
		s += fmt.Sprintf(" (%d skipped)", t.Skipped)
	}
	return s
}
