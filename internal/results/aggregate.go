package results

import (
	"fmt"
	"log/slog"

	"github.com/spboyer/benchdiff/internal/models"
)

// IDMode selects how test IDs are built from result entries.
type IDMode string

const (
	// IDModePageID keys tests by benchmark/page/page_id and records the page
	// URL so display names can be disambiguated.
	IDModePageID IDMode = "page-id"
	// IDModeName keys tests by benchmark/page only.
	IDModeName IDMode = "name"
)

// ParseIDMode validates an ID mode name. An empty name selects IDModePageID.
func ParseIDMode(s string) (IDMode, error) {
	switch IDMode(s) {
	case "", IDModePageID:
		return IDModePageID, nil
	case IDModeName:
		return IDModeName, nil
	default:
		return "", fmt.Errorf("unsupported id mode %q: must be %s or %s", s, IDModePageID, IDModeName)
	}
}

// Aggregator folds result documents into a RunSet. The first entry seen for
// a test fixes its unit and URL; later entries only add samples.
type Aggregator struct {
	mode   IDMode
	logger *slog.Logger
	set    models.RunSet
}

// NewAggregator returns an empty Aggregator. logger may be nil.
func NewAggregator(mode IDMode, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		mode:   mode,
		logger: logger,
		set:    make(models.RunSet),
	}
}

// Add folds every entry of doc into the run set.
func (a *Aggregator) Add(doc *Document) {
	for i, raw := range doc.PerPageValues {
		v, err := DecodePageValue(raw)
		if err != nil {
			a.logger.Warn("skipping malformed page value", "benchmark", doc.BenchmarkName, "index", i, "error", err)
			continue
		}

		id := a.testID(doc.BenchmarkName, v)
		rec, ok := a.set[id]
		if !ok {
			rec = &models.TestRecord{
				ID:        id,
				Benchmark: doc.BenchmarkName,
				Page:      v.Name,
				Unit:      v.Units,
				Values:    []float64{},
			}
			if a.mode == IDModePageID && v.PageID != "" {
				rec.PageID = v.PageID
				if page, ok := doc.Pages[v.PageID]; ok {
					rec.URL = page.URL
				}
			}
			a.set[id] = rec
		}

		rec.Values = append(rec.Values, v.Samples()...)
	}
}

// RunSet returns the aggregated records.
func (a *Aggregator) RunSet() models.RunSet {
	return a.set
}

func (a *Aggregator) testID(benchmark string, v *PageValue) string {
	id := benchmark + "/" + v.Name
	if a.mode == IDModePageID && v.PageID != "" {
		id += "/" + v.PageID
	}
	return id
}

// Aggregate folds docs into a single RunSet.
func Aggregate(mode IDMode, logger *slog.Logger, docs ...*Document) models.RunSet {
	agg := NewAggregator(mode, logger)
	for _, d := range docs {
		agg.Add(d)
	}
	return agg.RunSet()
}
