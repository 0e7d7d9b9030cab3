package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://catalog.json"

// catalogSchema describes the shape of a catalog document.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":        "string",
			"description": "Semantic version of the content, e.g. v1.0.0",
		},
		"title": map[string]any{"type": "string"},
		"sections": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items":    map[string]any{"$ref": "#/$defs/section"},
		},
	},
	"required":             []any{"version", "title", "sections"},
	"additionalProperties": false,
	"$defs": map[string]any{
		"section": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":          map[string]any{"type": "string", "minLength": 1},
				"title":       map[string]any{"type": "string", "minLength": 1},
				"description": map[string]any{"type": "string"},
				"icon":        map[string]any{"type": "string"},
				"completed":   map[string]any{"type": "boolean"},
				"scenarios": map[string]any{
					"type":  "array",
					"items": map[string]any{"$ref": "#/$defs/scenario"},
				},
			},
			"required":             []any{"id", "title"},
			"additionalProperties": false,
		},
		"scenario": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":          map[string]any{"type": "string", "minLength": 1},
				"title":       map[string]any{"type": "string", "minLength": 1},
				"description": map[string]any{"type": "string"},
				"situation":   map[string]any{"type": "string"},
				"questions": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"$ref": "#/$defs/question"},
				},
			},
			"required":             []any{"id", "title", "situation", "questions"},
			"additionalProperties": false,
		},
		"question": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":   map[string]any{"type": "string", "minLength": 1},
				"text": map[string]any{"type": "string", "minLength": 1},
				"type": map[string]any{
					"type": "string",
					"enum": []any{"multiple-choice", "ranking", "text", "scale"},
				},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string", "minLength": 1},
				},
				"required": map[string]any{"type": "boolean"},
			},
			"required":             []any{"id", "text", "type", "required"},
			"additionalProperties": false,
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles catalogSchema on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a decoded YAML document against the catalog schema.
func validateDocument(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	// The validator wants JSON-shaped values (json.Number, map[string]any),
	// so round-trip the YAML tree through encoding/json.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert catalog to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("convert catalog to JSON: %w", err)
	}

	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}
