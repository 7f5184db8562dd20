package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationBuilder accumulates field problems and turns them into a single
// InvalidArgument error. Each offending field is also exposed as metadata
// under "field.<name>".
type ValidationBuilder struct {
	fields map[string][]string
}

func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a problem with field.
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.fields) > 0
}

// Build returns nil when nothing was recorded.
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for name := range vb.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	err := InvalidArgument("")
	for _, name := range names {
		joined := strings.Join(vb.fields[name], ", ")
		parts = append(parts, name+": "+joined)
		err.WithMeta("field."+name, joined)
	}
	err.Message = "validation failed: " + strings.Join(parts, "; ")
	return err
}

// ValidateRequired flags blank strings.
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
