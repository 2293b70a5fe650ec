package validation

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/app_state.schema.json
var appStateSchema []byte

const appStateSchemaURL = "https://healthquest.local/schemas/app_state.schema.json"

// SchemaValidator validates serialized state records against the canonical record schema
type SchemaValidator interface {
	ValidateState(data []byte) error
	ValidateStateFile(path string) error
}

type validator struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// NewSchemaValidator creates a validator for the embedded state schema.
// The schema is compiled on first use.
func NewSchemaValidator() SchemaValidator {
	return &validator{}
}

// ValidateStateFile validates a JSON file against the state schema
func (v *validator) ValidateStateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	return v.ValidateState(data)
}

// ValidateState validates JSON bytes against the state schema
func (v *validator) ValidateState(data []byte) error {
	schema, err := v.loadSchema()
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	jsonData, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(jsonData); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// loadSchema compiles the embedded schema once
func (v *validator) loadSchema() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(appStateSchema))
		if err != nil {
			v.err = fmt.Errorf("failed to parse schema JSON: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(appStateSchemaURL, doc); err != nil {
			v.err = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}

		v.schema, v.err = compiler.Compile(appStateSchemaURL)
		if v.err != nil {
			v.err = fmt.Errorf("failed to compile schema: %w", v.err)
		}
	})
	return v.schema, v.err
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errors []string
		collectErrors(validationErr, &errors)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors walks the cause tree; only leaves name the failing keyword
func collectErrors(err *jsonschema.ValidationError, errors *[]string) {
	if len(err.Causes) == 0 {
		*errors = append(*errors, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, errors)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(keywordPath, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
