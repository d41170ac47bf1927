package swagger

import (
	"encoding/json"
	"strings"

	"github.com/sean-nixon/scala-case-class-swagger-util/internal/ptr"
	"gopkg.in/yaml.v3"
)

// Type is a swagger schema type. Each variant knows how to serialize
// itself to both JSON and YAML and carries a required flag that is set
// at construction and never changes afterwards.
type Type interface {
	json.Marshaler
	yaml.Marshaler

	Required() bool
}

// numericFormats maps a source type name to its swagger type and format.
// Source names outside the map produce a plain "number" with no format.
var numericFormats = map[string]numericValue{
	"int":    {Type: "integer", Format: ptr.V("int32")},
	"long":   {Type: "integer", Format: ptr.V("int64")},
	"float":  {Type: "number", Format: ptr.V("float")},
	"double": {Type: "number", Format: ptr.V("double")},
}

// Primitive is a plain scalar type like "string" or "boolean".
type Primitive struct {
	Kind string

	required bool
}

// NewPrimitive creates a primitive schema type. The source type name is
// lowercased, so `String` becomes the swagger type "string".
func NewPrimitive(sourceType string, required bool) *Primitive {
	return &Primitive{
		Kind:     strings.ToLower(sourceType),
		required: required,
	}
}

func (p *Primitive) Required() bool {
	return p.required
}

func (p *Primitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value())
}

func (p *Primitive) MarshalYAML() (any, error) {
	return p.value(), nil
}

func (p *Primitive) value() primitiveValue {
	return primitiveValue{Type: p.Kind}
}

// Numeric is an integer or floating point type, optionally qualified
// by a swagger format like "int32" or "double".
type Numeric struct {
	Kind   string
	Format *string

	required bool
}

// NewNumeric creates a numeric schema type for the given source type
// name. The names int, long, float and double (case-insensitive) map to
// the matching swagger type and format pair; any other name falls back
// to an unformatted "number".
func NewNumeric(sourceType string, required bool) *Numeric {
	v, ok := numericFormats[strings.ToLower(sourceType)]
	if !ok {
		v = numericValue{Type: "number"}
	}

	return &Numeric{
		Kind:     v.Type,
		Format:   v.Format,
		required: required,
	}
}

func (n *Numeric) Required() bool {
	return n.required
}

func (n *Numeric) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value())
}

func (n *Numeric) MarshalYAML() (any, error) {
	return n.value(), nil
}

func (n *Numeric) value() numericValue {
	return numericValue{Type: n.Kind, Format: n.Format}
}

// Array wraps an element type. The element tree is owned by the array
// and fully built before the array is created.
type Array struct {
	Element Type

	required bool
}

func NewArray(element Type, required bool) *Array {
	return &Array{
		Element:  element,
		required: required,
	}
}

func (a *Array) Required() bool {
	return a.required
}

func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value())
}

func (a *Array) MarshalYAML() (any, error) {
	return a.value(), nil
}

func (a *Array) value() arrayValue {
	return arrayValue{Items: a.Element, Type: "array"}
}

// Reference points at another record's definition by name. Targets are
// not resolved here; consumers follow the `$ref` themselves.
type Reference struct {
	Target string

	required bool
}

func NewReference(target string, required bool) *Reference {
	return &Reference{
		Target:   target,
		required: required,
	}
}

func (r *Reference) Required() bool {
	return r.required
}

func (r *Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value())
}

func (r *Reference) MarshalYAML() (any, error) {
	return r.value(), nil
}

func (r *Reference) value() referenceValue {
	return referenceValue{Ref: refPrefix + r.Target}
}
