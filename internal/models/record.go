package models

import (
	"slices"
	"strings"
)

// TestRecord holds every sample collected for one test within a single run.
type TestRecord struct {
	ID        string    `json:"id"`
	Benchmark string    `json:"benchmark"`
	Page      string    `json:"page"`
	PageID    string    `json:"page_id,omitempty"`
	URL       string    `json:"url,omitempty"`
	Unit      string    `json:"unit"`
	Values    []float64 `json:"values"`
}

// DisplayName returns "benchmark.page", disambiguated with the last URL
// path segment when the record carries a URL.
func (r *TestRecord) DisplayName() string {
	name := r.Benchmark + "." + r.Page
	if r.URL != "" {
		parts := strings.Split(r.URL, "/")
		name += ":" + parts[len(parts)-1]
	}
	return name
}

// RunSet maps a test ID to its record for one benchmark run.
type RunSet map[string]*TestRecord

// SharedIDs returns the IDs present in both runs, sorted ascending.
func SharedIDs(baseline, actual RunSet) []string {
	ids := make([]string, 0, len(baseline))
	for id := range baseline {
		if _, ok := actual[id]; ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}
