package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vectorize-io/vectorize-iris/pkg/iris"
)

// parseSchemas turns repeated ID:JSON flag values into metadata schemas. The
// JSON value is wrapped under a "document" key unless it already is.
func parseSchemas(values []string) ([]iris.MetadataSchema, error) {
	if len(values) == 0 {
		return nil, nil
	}

	schemas := make([]iris.MetadataSchema, 0, len(values))

	for _, value := range values {
		id, raw, ok := strings.Cut(value, ":")

		if !ok || id == "" {
			return nil, fmt.Errorf("invalid metadata schema %q: expected ID:JSON", value)
		}

		var definition any

		if err := json.Unmarshal([]byte(raw), &definition); err != nil {
			return nil, fmt.Errorf("invalid JSON in metadata schema %q: %w", id, err)
		}

		document := map[string]any{
			"document": definition,
		}

		if object, ok := definition.(map[string]any); ok {
			if _, ok := object["document"]; ok {
				document = object
			}
		}

		schema, err := iris.SchemaObject(document)

		if err != nil {
			return nil, err
		}

		schemas = append(schemas, iris.MetadataSchema{
			ID:     id,
			Schema: schema,
		})
	}

	return schemas, nil
}
