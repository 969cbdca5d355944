// Package validation checks benchmark result files against the embedded
// JSON schema.
package validation

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spboyer/benchdiff/internal/discovery"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed results.schema.json
var resultsSchemaJSON []byte

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

// resultsSchema is the compiled schema for result files.
var resultsSchema = mustCompileSchema(resultsSchemaJSON, "results.schema.json")

func mustCompileSchema(raw []byte, name string) *jsonschema.Schema {
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// ValidateResultFile validates the result file at path, gunzipping *.gz
// files first. The error return is reserved for I/O failures; schema
// violations come back as messages.
func ValidateResultFile(path string) ([]string, error) {
	r, err := discovery.OpenResultFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	defer r.Close() //nolint:errcheck

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ValidateBytes(data), nil
}

// ValidateBytes validates raw JSON bytes against the result file schema.
func ValidateBytes(data []byte) []string {
	// UnmarshalJSON keeps numbers as json.Number, which the validator needs
	// to tell integers from floats.
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return []string{fmt.Sprintf("JSON parse error: %v", err)}
	}
	return validateAgainstSchema(resultsSchema, doc)
}

func validateAgainstSchema(schema *jsonschema.Schema, instance any) []string {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}
