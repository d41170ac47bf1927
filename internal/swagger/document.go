package swagger

import (
	"encoding/json"
)

// Field is a named property of a document. Fields are never modified
// once added.
type Field struct {
	Name string
	Type Type
}

// Document is the schema document of a single record: its name, its
// fields in declaration order and the names of the required fields in
// the order they were added.
type Document struct {
	Name     string
	Fields   []Field
	Required []string
}

func NewDocument(name string) *Document {
	return &Document{
		Name:     name,
		Fields:   make([]Field, 0),
		Required: make([]string, 0),
	}
}

// AddField appends a field to the document. Required field names are
// tracked as a side effect, so `Required` always lists a subsequence of
// the field names.
func (d *Document) AddField(name string, t Type) {
	d.Fields = append(d.Fields, Field{Name: name, Type: t})

	if t.Required() {
		d.Required = append(d.Required, name)
	}
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]documentValue{d.Name: d.value()})
}

func (d *Document) MarshalYAML() (any, error) {
	return map[string]documentValue{d.Name: d.value()}, nil
}

func (d *Document) value() documentValue {
	props := make(map[string]Type, len(d.Fields))
	for _, f := range d.Fields {
		props[f.Name] = f.Type
	}

	return documentValue{
		Properties: props,
		Required:   d.Required,
		Type:       "object",
	}
}
