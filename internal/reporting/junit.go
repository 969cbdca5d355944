package reporting

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/spboyer/benchdiff/internal/compare"
	"github.com/spboyer/benchdiff/internal/models"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one benchmark.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Skipped    int             `xml:"skipped,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one compared test.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
	SystemOut string        `xml:"system-out,omitempty"`
}

// JUnitFailure represents a regression.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitSkipped marks a comparison whose data was inconclusive.
type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ConvertToJUnit groups comparisons into one suite per benchmark, preserving
// row order. BAD rows become failures; FLAKY and N/A rows are skipped.
func ConvertToJUnit(name string, rows []*models.Comparison) *JUnitTestSuites {
	out := &JUnitTestSuites{}
	index := make(map[string]int)

	for _, c := range rows {
		i, ok := index[c.Benchmark]
		if !ok {
			i = len(out.TestSuites)
			index[c.Benchmark] = i
			out.TestSuites = append(out.TestSuites, JUnitTestSuite{
				Name:       c.Benchmark,
				Properties: []JUnitProperty{{Name: "report", Value: name}},
			})
		}
		suite := &out.TestSuites[i]

		tc := convertComparison(c)
		suite.Tests++
		switch {
		case tc.Failure != nil:
			suite.Failures++
		case tc.Skipped != nil:
			suite.Skipped++
		}
		suite.TestCases = append(suite.TestCases, tc)
	}

	for _, s := range out.TestSuites {
		out.Tests += s.Tests
		out.Failures += s.Failures
	}
	return out
}

func convertComparison(c *models.Comparison) JUnitTestCase {
	tc := JUnitTestCase{
		Name:      c.DisplayName,
		Classname: c.Benchmark,
		SystemOut: fmt.Sprintf("%s %s (%s): baseline %s ± %s, actual %s ± %s",
			c.Label, formatPercent(c.DiffPercent), c.Unit,
			formatFloat(c.Baseline.Mean), formatFloat(c.Baseline.StdDev),
			formatFloat(c.Actual.Mean), formatFloat(c.Actual.StdDev)),
	}

	switch c.Label {
	case models.LabelBad:
		tc.Failure = &JUnitFailure{
			Message: fmt.Sprintf("%s regressed by %s", c.DisplayName, formatPercent(-c.DiffPercent)),
			Type:    "Regression",
			Body:    InterpretLabel(c.Label),
		}
	case models.LabelFlaky, models.LabelNA:
		tc.Skipped = &JUnitSkipped{Message: InterpretLabel(c.Label)}
	}
	return tc
}

type junitWriter struct {
	w    io.Writer
	name string
	Collector
}

func (j *junitWriter) Finish(*compare.Tally) error {
	return WriteJUnitXML(j.w, ConvertToJUnit(j.name, j.Rows))
}

// WriteJUnitXML writes suites as an indented XML document.
func WriteJUnitXML(w io.Writer, suites *JUnitTestSuites) error {
	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}

	output := append([]byte(xml.Header), data...)
	output = append(output, '\n')
	_, err = w.Write(output)
	return err
}
