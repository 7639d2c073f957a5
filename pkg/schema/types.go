package schema

import (
	"fmt"
	"strings"
)

// Type defines the contract for parameter validation.
// Implementations determine how values are validated against a
// semantic type.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	_, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// IntType validates integer values.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		return nil
	case float64:
		// Accept floats that are whole numbers (from JSON unmarshaling)
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
}

// FloatType validates floating-point values.
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Validate(value any) error {
	switch value.(type) {
	case float32, float64, int, int8, int16, int32, int64:
		return nil
	default:
		return fmt.Errorf("expected float, got %T", value)
	}
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	_, ok := value.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// EnumType validates a string against a closed set of options.
type EnumType struct {
	options []string
}

func (t *EnumType) Name() string {
	return "enum(" + strings.Join(t.options, "|") + ")"
}

func (t *EnumType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	for _, opt := range t.options {
		if s == opt {
			return nil
		}
	}
	return fmt.Errorf("value %q not one of %s", s, strings.Join(t.options, ", "))
}

// Options returns the allowed values.
func (t *EnumType) Options() []string { return t.options }

// TemplateType validates templated strings. A template may embed
// "{{id.capability}}" binding expressions; whether those bindings
// resolve is the validation engine's concern, not the type system's.
type TemplateType struct{}

func (t *TemplateType) Name() string { return "template" }

func (t *TemplateType) Validate(value any) error {
	_, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected templated string, got %T", value)
	}
	return nil
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Int creates an integer type validator.
func Int() Type { return &IntType{} }

// Float creates a float type validator.
func Float() Type { return &FloatType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// Enum creates a closed string set validator.
func Enum(options ...string) Type { return &EnumType{options: options} }

// Template creates a templated-string validator.
func Template() Type { return &TemplateType{} }

// ParseType converts a string type name to a Type.
// Supports "string", "int", "float", "bool", "template" and
// "enum(a|b|c)".
func ParseType(typeStr string) (Type, error) {
	if strings.HasPrefix(typeStr, "enum(") && strings.HasSuffix(typeStr, ")") {
		inner := typeStr[len("enum(") : len(typeStr)-1]
		if inner == "" {
			return nil, fmt.Errorf("enum type needs at least one option")
		}
		return Enum(strings.Split(inner, "|")...), nil
	}

	switch typeStr {
	case "string":
		return String(), nil
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "bool":
		return Bool(), nil
	case "template":
		return Template(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", typeStr)
	}
}

// ParseTypeMap converts a map of parameter names to type strings into
// a Schema. Example: {"folder": "string", "maxResults": "int"}.
func ParseTypeMap(typeMap map[string]string) (Schema, error) {
	result := make(Schema)
	for key, typeStr := range typeMap {
		t, err := ParseType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", key, err)
		}
		result[key] = t
	}
	return result, nil
}
