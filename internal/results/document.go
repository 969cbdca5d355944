// Package results reads benchmark result files and aggregates their samples
// into per-test records.
package results

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// ErrBadSample is returned for a value or values element that is not a
// finite number.
var ErrBadSample = errors.New("sample is not a finite number")

var (
	floatType      = reflect.TypeOf(float64(0))
	floatSliceType = reflect.TypeOf([]float64(nil))
)

// Value types found in per_page_values entries.
const (
	TypeScalar     = "scalar"
	TypeScalarList = "list_of_scalar_values"
)

// Document is one benchmark result file.
type Document struct {
	BenchmarkName string              `json:"benchmark_name"`
	Pages         map[string]PageInfo `json:"pages,omitempty"`

	// PerPageValues is kept loose; entries are decoded one at a time with
	// DecodePageValue since their shape depends on Type.
	PerPageValues []map[string]any `json:"per_page_values"`
}

// PageInfo describes a page referenced by page_id.
type PageInfo struct {
	URL string `json:"url"`
}

// PageValue is one measurement entry of a result file.
type PageValue struct {
	Name   string    `mapstructure:"name"`
	PageID string    `mapstructure:"page_id"`
	Units  string    `mapstructure:"units"`
	Type   string    `mapstructure:"type"`
	Value  *float64  `mapstructure:"value"`
	Values []float64 `mapstructure:"values"`
}

// Samples returns the measurements carried by the entry. Unknown types and
// null values yield nothing.
func (v *PageValue) Samples() []float64 {
	switch v.Type {
	case TypeScalar:
		if v.Value != nil {
			return []float64{*v.Value}
		}
	case TypeScalarList:
		return v.Values
	}
	return nil
}

// DecodePageValue converts a raw per_page_values entry into a PageValue.
// Numeric page IDs are rendered as strings. Samples are decoded strictly:
// null, string or boolean samples fail with ErrBadSample.
func DecodePageValue(raw map[string]any) (*PageValue, error) {
	var v PageValue

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(strictSamples),
		WeaklyTypedInput: true,
		Result:           &v,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding page value: %w", err)
	}
	return &v, nil
}

// strictSamples keeps weak typing away from sample fields. Weak typing is
// only wanted for page_id.
func strictSamples(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to {
	case floatType:
		if err := checkSample(data); err != nil {
			return nil, err
		}
	case floatSliceType:
		if data == nil {
			return data, nil
		}
		rv := reflect.ValueOf(data)
		if rv.Kind() != reflect.Slice {
			return nil, fmt.Errorf("values: %w: got %T", ErrBadSample, data)
		}
		// nil elements never reach the floatType case, so check them here.
		for i := range rv.Len() {
			if err := checkSample(rv.Index(i).Interface()); err != nil {
				return nil, fmt.Errorf("values[%d]: %w", i, err)
			}
		}
	}
	return data, nil
}

func checkSample(data any) error {
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: got %v", ErrBadSample, f)
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return nil
	case reflect.Invalid:
		return fmt.Errorf("%w: got null", ErrBadSample)
	default:
		return fmt.Errorf("%w: got %T %v", ErrBadSample, data, data)
	}
}
