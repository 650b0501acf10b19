package wikidata

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resultSchema describes a SPARQL 1.1 JSON result set in which every
// binding carries the given variables as objects with a string value.
func resultSchema(vars []string) map[string]any {
	varProps := make(map[string]any, len(vars))
	for _, v := range vars {
		varProps[v] = map[string]any{
			"type":     "object",
			"required": []string{"value"},
			"properties": map[string]any{
				"type":  map[string]any{"type": "string"},
				"value": map[string]any{"type": "string"},
			},
		}
	}

	return map[string]any{
		"type":     "object",
		"required": []string{"head", "results"},
		"properties": map[string]any{
			"head": map[string]any{
				"type":     "object",
				"required": []string{"vars"},
				"properties": map[string]any{
					"vars": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
			"results": map[string]any{
				"type":     "object",
				"required": []string{"bindings"},
				"properties": map[string]any{
					"bindings": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":       "object",
							"required":   vars,
							"properties": varProps,
						},
					},
				},
			},
		},
	}
}

func validateResult(body []byte, vars []string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(resultSchema(vars)),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return fmt.Errorf("validate result: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("malformed result: %s", strings.Join(errs, "; "))
	}

	return nil
}
