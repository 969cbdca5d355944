package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		record TestRecord
		want   string
	}{
		{"no url", TestRecord{Benchmark: "load", Page: "home"}, "load.home"},
		{"url", TestRecord{Benchmark: "load", Page: "home", URL: "http://example.test/a/index.html"}, "load.home:index.html"},
		{"trailing slash", TestRecord{Benchmark: "load", Page: "home", URL: "http://example.test/a/"}, "load.home:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.DisplayName())
		})
	}
}

func TestSharedIDs(t *testing.T) {
	baseline := RunSet{"c": {}, "a": {}, "only-baseline": {}}
	actual := RunSet{"a": {}, "c": {}, "only-actual": {}}

	assert.Equal(t, []string{"a", "c"}, SharedIDs(baseline, actual))
	assert.Empty(t, SharedIDs(baseline, RunSet{}))
}

func TestLabelIsChange(t *testing.T) {
	for _, l := range Labels {
		want := l == LabelGood || l == LabelBad
		assert.Equal(t, want, l.IsChange(), l)
	}
}
