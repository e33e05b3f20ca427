package realism

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const resultSchemaURL = "schema://realitycheck/result.json"

// ResultSchema is the JSON Schema for a serialized Result.
var ResultSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":   map[string]any{"type": "string", "pattern": "^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$"},
		"tier": map[string]any{"type": "string", "enum": []any{"achievable", "optimistic", "delusional"}},
		"payload": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"verdict": map[string]any{"type": "string", "minLength": 1},
				"message": map[string]any{"type": "string", "minLength": 1},
				"advice":  map[string]any{"type": "string", "minLength": 1},
			},
			"required":             []any{"verdict", "message", "advice"},
			"additionalProperties": false,
		},
		"rule":   map[string]any{"type": "string", "minLength": 1},
		"index":  map[string]any{"type": "integer", "minimum": 0},
		"pinned": map[string]any{"type": "boolean"},
	},
	"required":             []any{"id", "tier", "payload", "rule", "index", "pinned"},
	"additionalProperties": false,
}

// ErrInvalidResult is returned when serialized output fails validation.
type ErrInvalidResult struct {
	Content []byte
	Err     error
}

func (e *ErrInvalidResult) Error() string {
	return fmt.Sprintf("invalid result: %v", e.Err)
}

func (e *ErrInvalidResult) Unwrap() error { return e.Err }

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidateJSON checks raw JSON against ResultSchema.
func ValidateJSON(raw []byte) error {
	// UnmarshalJSON keeps numbers as json.Number so "integer" checks are exact.
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidResult{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := resultSchema()
	if err != nil {
		return &ErrInvalidResult{Content: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := schema.Validate(parsed); err != nil {
		return &ErrInvalidResult{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// MarshalJSON encodes r as indented JSON and validates it against ResultSchema.
func MarshalJSON(r Result) ([]byte, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	if err := ValidateJSON(out); err != nil {
		return nil, err
	}
	return out, nil
}

func resultSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded value, so round-trip the map.
		defBytes, err := json.Marshal(ResultSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(resultSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(resultSchemaURL)
	})
	return compiledSchema, compileErr
}
