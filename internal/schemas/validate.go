// Package schemas validates JSON configuration documents against the
// JSON Schema files shipped under schemas/.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResolvePath locates a schema file by trying the path relative to the
// working directory and then one and two levels up. Commands and tests
// run from different directories; the first existing path wins. Returns
// "" when no candidate exists.
func ResolvePath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return abs
		}
	}
	return ""
}

// ValidationError aggregates per-field schema violations.
type ValidationError struct {
	Violations []FieldViolation
}

// FieldViolation is one schema violation at a field path.
type FieldViolation struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:")
	for _, v := range e.Violations {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", v.Field, v.Message))
	}
	return sb.String()
}

// ValidateAgainstFile validates a JSON document against a schema file.
// Violations come back as a *ValidationError so callers can inspect
// individual fields.
func ValidateAgainstFile(schemaPath string, document []byte) error {
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("schema file not found: %s", abs)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + abs)
	documentLoader := gojsonschema.NewBytesLoader(document)
	return validate(schemaLoader, documentLoader)
}

// ValidateStrings validates JSON document content against schema content.
func ValidateStrings(schemaContent, documentContent string) error {
	return validate(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(documentContent),
	)
}

func validate(schemaLoader, documentLoader gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Violations: make([]FieldViolation, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Violations = append(validationErr.Violations, FieldViolation{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
