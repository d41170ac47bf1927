package pg

import (
	"strings"

	"github.com/sean-nixon/scala-case-class-swagger-util/internal/swagger"
)

// Types that serialize as a json string on the wire. Timestamps,
// intervals and binary types all travel as strings.
var stringTypes = map[string]bool{
	"text":                        true,
	"varchar":                     true,
	"char":                        true,
	"bpchar":                      true,
	"character":                   true,
	"character varying":           true,
	"time without time zone":      true,
	"time":                        true,
	"time with time zone":         true,
	"timetz":                      true,
	"timestamp without time zone": true,
	"timestamp":                   true,
	"timestamp with time zone":    true,
	"timestamptz":                 true,
	"date":                        true,
	"interval":                    true,
	"uuid":                        true,
	"bit":                         true,
	"bit varying":                 true,
	"varbit":                      true,
	"bytea":                       true,
	"json":                        true,
	"jsonb":                       true,
}

var booleanTypes = map[string]bool{
	"bool":    true,
	"boolean": true,
}

// Numeric types keyed to the source type names the swagger package
// maps to formats. Arbitrary precision types map to a plain number.
var numericTypes = map[string]string{
	"smallint":         "int",
	"int2":             "int",
	"int":              "int",
	"integer":          "int",
	"int4":             "int",
	"smallserial":      "int",
	"serial2":          "int",
	"serial":           "int",
	"serial4":          "int",
	"bigint":           "long",
	"int8":             "long",
	"bigserial":        "long",
	"serial8":          "long",
	"real":             "float",
	"float4":           "float",
	"double precision": "double",
	"float8":           "double",
	"numeric":          "numeric",
	"decimal":          "numeric",
	"money":            "numeric",
}

// Documents converts every table in the catalog into a schema
// document, in table creation order.
func Documents(db *DB) []*swagger.Document {
	docs := make([]*swagger.Document, 0, len(db.Tables))

	for _, t := range db.Tables {
		docs = append(docs, tableDocument(t))
	}

	return docs
}

func tableDocument(t *Table) *swagger.Document {
	doc := swagger.NewDocument(pascalCase(t.Name.Name))

	for _, c := range t.Columns {
		doc.AddField(camelCase(c.Name), columnType(c.Type))
	}

	return doc
}

// columnType maps a postgres data type to its schema type. An unknown
// type name is assumed to be a user defined type with a definition of
// its own and becomes a reference.
func columnType(t DataType) swagger.Type {
	if t.Array {
		element := t
		element.Array = false
		element.NotNull = true
		return swagger.NewArray(columnType(element), t.NotNull)
	}

	if stringTypes[t.Name] {
		return swagger.NewPrimitive("string", t.NotNull)
	}

	if booleanTypes[t.Name] {
		return swagger.NewPrimitive("boolean", t.NotNull)
	}

	if sourceType, ok := numericTypes[t.Name]; ok {
		return swagger.NewNumeric(sourceType, t.NotNull)
	}

	return swagger.NewReference(pascalCase(t.Name), t.NotNull)
}

// pascalCase converts a snake_case table or type name to the pascal
// case definition names the class frontend produces.
func pascalCase(s string) string {
	parts := strings.Split(s, "_")

	for i := range parts {
		parts[i] = firstUpper(parts[i])
	}

	return strings.Join(parts, "")
}

func camelCase(s string) string {
	return firstLower(pascalCase(s))
}

func firstUpper(s string) string {
	if len(s) == 0 {
		return s
	}

	return strings.ToUpper(s[0:1]) + s[1:]
}

func firstLower(s string) string {
	if len(s) == 0 {
		return s
	}

	return strings.ToLower(s[0:1]) + s[1:]
}
