package reporting

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/spboyer/benchdiff/internal/compare"
	"github.com/spboyer/benchdiff/internal/models"
)

// CSVHeader is the column layout of the CSV report.
var CSVHeader = []string{
	"test name", "page name", "units", "summary", "diff(%)",
	"mean(baseline)", "mean(actual)", "stdev(baseline)", "stdev(actual)",
	"statistically significant", "count(baseline)", "count(actual)",
	"min(baseline)", "max(baseline)", "min(actual)", "max(actual)",
}

// CSVWriter streams one CSV row per comparison, flushing after each row so
// rows already written survive a later fatal error.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter writes the header row and returns the writer.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("csv: writing header: %w", err)
	}
	cw.Flush()
	return &CSVWriter{w: cw}, cw.Error()
}

func (c *CSVWriter) Write(cmp *models.Comparison) error {
	if err := c.w.Write(csvRecord(cmp)); err != nil {
		return fmt.Errorf("csv: writing %s: %w", cmp.TestID, err)
	}
	c.w.Flush()
	return c.w.Error()
}

func (c *CSVWriter) Finish(*compare.Tally) error {
	c.w.Flush()
	return c.w.Error()
}

func csvRecord(cmp *models.Comparison) []string {
	return []string{
		cmp.Benchmark,
		cmp.Page,
		cmp.Unit,
		string(cmp.Label),
		formatFloat(cmp.DiffPercent),
		formatFloat(cmp.Baseline.Mean),
		formatFloat(cmp.Actual.Mean),
		formatFloat(cmp.Baseline.StdDev),
		formatFloat(cmp.Actual.StdDev),
		titleBool(cmp.Significant),
		strconv.Itoa(cmp.Baseline.Count),
		strconv.Itoa(cmp.Actual.Count),
		formatFloat(cmp.Baseline.Min),
		formatFloat(cmp.Baseline.Max),
		formatFloat(cmp.Actual.Min),
		formatFloat(cmp.Actual.Max),
	}
}

// titleBool keeps the capitalised booleans existing report consumers parse.
func titleBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// ReadCSV parses a report written by CSVWriter back into comparisons, so a
// stored report can be rendered again in another format.
func ReadCSV(r io.Reader) ([]*models.Comparison, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("csv: report is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: reading header: %w", err)
	}
	if !slices.Equal(header, CSVHeader) {
		return nil, fmt.Errorf("csv: unexpected header %q", header)
	}

	var rows []*models.Comparison
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		cmp, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: %w", line, err)
		}
		rows = append(rows, cmp)
	}
}

// parseRecord is the inverse of csvRecord.
func parseRecord(record []string) (*models.Comparison, error) {
	label := models.Label(record[3])
	if !slices.Contains(models.Labels, label) {
		return nil, fmt.Errorf("unknown summary %q", record[3])
	}
	significant, err := strconv.ParseBool(record[9])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", CSVHeader[9], err)
	}

	p := fieldParser{record: record}
	cmp := &models.Comparison{
		TestID:      record[0] + "/" + record[1],
		Benchmark:   record[0],
		Page:        record[1],
		DisplayName: record[0] + "." + record[1],
		Unit:        record[2],
		Label:       label,
		Significant: significant,
		DiffPercent: p.float(4),
		Baseline: models.SeriesSummary{
			Mean:   p.float(5),
			StdDev: p.float(7),
			Count:  p.int(10),
			Min:    p.float(12),
			Max:    p.float(13),
		},
		Actual: models.SeriesSummary{
			Mean:   p.float(6),
			StdDev: p.float(8),
			Count:  p.int(11),
			Min:    p.float(14),
			Max:    p.float(15),
		},
	}
	if p.err != nil {
		return nil, p.err
	}
	return cmp, nil
}

// fieldParser keeps the first conversion error of a record.
type fieldParser struct {
	record []string
	err    error
}

func (p *fieldParser) float(i int) float64 {
	v, err := strconv.ParseFloat(p.record[i], 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %w", CSVHeader[i], err)
	}
	return v
}

func (p *fieldParser) int(i int) int {
	v, err := strconv.Atoi(p.record[i])
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %w", CSVHeader[i], err)
	}
	return v
}

// TallyRows counts the labels of rows read back from a report. Skipped
// tests are not recorded in a report, so the tally has none.
func TallyRows(rows []*models.Comparison) *compare.Tally {
	tally := &compare.Tally{Labels: make(map[models.Label]int)}
	for _, r := range rows {
		tally.Labels[r.Label]++
	}
	return tally
}
