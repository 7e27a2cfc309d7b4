package jsonschema

// Draft is the dialect emitted in the root "$schema" keyword.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
// Only the keywords needed to describe a collection document are modeled.
type Schema struct {
	// Core
	Dialect     string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        any    `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Const       any    `json:"const,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// String / number
	MinLength *int   `json:"minLength,omitempty"`
	Minimum   *int64 `json:"minimum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	PropertyNames        *Schema            `json:"propertyNames,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`
}

// String returns a string schema. A positive minLen is emitted as minLength.
func String(minLen int) *Schema {
	s := &Schema{Type: "string"}
	if minLen > 0 {
		s.MinLength = &minLen
	}
	return s
}

// Integer returns an integer schema with an optional lower bound.
func Integer(lower *int64) *Schema { return &Schema{Type: "integer", Minimum: lower} }

// Nullable widens s so that null is also accepted.
func Nullable(s *Schema) *Schema {
	if t, ok := s.Type.(string); ok {
		s.Type = []string{t, "null"}
	}
	return s
}

// ArrayOf returns an array schema whose elements match items.
func ArrayOf(items *Schema) *Schema { return &Schema{Type: "array", Items: items} }

// Object returns an object schema. names restricts the set of property names
// accepted at this level; nil leaves names unconstrained.
func Object(props map[string]*Schema, required []string, names []string) *Schema {
	s := &Schema{Type: "object", Properties: props, Required: required}
	if names != nil {
		enum := make([]any, len(names))
		for i, n := range names {
			enum[i] = n
		}
		s.PropertyNames = &Schema{Enum: enum}
		// keys outside props are still accepted when they are in names
		s.AdditionalProperties = true
	} else {
		s.AdditionalProperties = false
	}
	return s
}
