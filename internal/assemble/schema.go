package assemble

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "mem://clipat/result.json"

// Schema compiles and returns the JSON Schema a successful Build result
// must satisfy: an object whose values are string, boolean, an array of
// strings, or null (spec.md §6's value domain), grounded on the
// teacher's jsonschema.NewCompiler()/Draft2020 usage in
// core/types/validation.go.
func Schema() (*jsonschema.Schema, error) {
	doc := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"additionalProperties": map[string]any{
			"anyOf": []any{
				map[string]any{"type": "string"},
				map[string]any{"type": "boolean"},
				map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				map[string]any{"type": "null"},
			},
		},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("assemble: marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, strings.NewReader(string(raw))); err != nil {
		return nil, fmt.Errorf("assemble: add schema resource: %w", err)
	}
	return compiler.Compile(schemaURL)
}

// Validate checks result (as produced by ToInterfaceMap) against Schema.
// []string values are passed to the validator as []any, the array shape
// it accepts.
func Validate(result map[string]any) error {
	schema, err := Schema()
	if err != nil {
		return err
	}
	doc := make(map[string]any, len(result))
	for k, v := range result {
		if list, ok := v.([]string); ok {
			items := make([]any, len(list))
			for i, s := range list {
				items[i] = s
			}
			v = items
		}
		doc[k] = v
	}
	return schema.Validate(doc)
}
