package swagger

import (
	"os"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func personDocument() *Document {
	doc := NewDocument("Person")
	doc.AddField("name", NewPrimitive("String", true))
	doc.AddField("age", NewNumeric("Int", true))
	doc.AddField("nickname", NewPrimitive("String", false))
	doc.AddField("tags", NewArray(NewPrimitive("String", true), true))
	return doc
}

// Key order and indentation are part of the output contract: encoding
// the same document always produces identical bytes.
func TestEncodeJson(t *testing.T) {
	data, err := Encode(personDocument(), FormatJSON)
	assert.NoError(t, err)

	assert.Equal(t, `{
    "Person": {
        "properties": {
            "age": {
                "format": "int32",
                "type": "integer"
            },
            "name": {
                "type": "string"
            },
            "nickname": {
                "type": "string"
            },
            "tags": {
                "items": {
                    "type": "string"
                },
                "type": "array"
            }
        },
        "required": [
            "name",
            "age",
            "tags"
        ],
        "type": "object"
    }
}`, string(data))
}

func TestEncodeEmptyDocument(t *testing.T) {
	data, err := Encode(NewDocument("Empty"), FormatJSON)
	assert.NoError(t, err)

	// An empty document still carries its properties and required keys.
	assert.Equal(t, `{
    "Empty": {
        "properties": {},
        "required": [],
        "type": "object"
    }
}`, string(data))
}

func TestEncodeYaml(t *testing.T) {
	doc := NewDocument("Person")
	doc.AddField("name", NewPrimitive("String", true))
	doc.AddField("age", NewNumeric("Int", false))

	data, err := Encode(doc, FormatYAML)
	assert.NoError(t, err)

	assert.Equal(t, `Person:
    properties:
        age:
            format: int32
            type: integer
        name:
            type: string
    required:
        - name
    type: object
`, string(data))
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("")
	assert.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	format, err = ParseFormat("json")
	assert.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	format, err = ParseFormat("yaml")
	assert.NoError(t, err)
	assert.Equal(t, FormatYAML, format)

	_, err = ParseFormat("xml")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestFileName(t *testing.T) {
	doc := NewDocument("Person")
	assert.Equal(t, "Person_output_swagger.json", FileName(doc, FormatJSON))
	assert.Equal(t, "Person_output_swagger.yaml", FileName(doc, FormatYAML))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	doc := personDocument()

	assert.NoError(t, WriteFile(dir, doc, FormatJSON))

	written, err := os.ReadFile(filepath.Join(dir, "Person_output_swagger.json"))
	assert.NoError(t, err)

	expected, err := Encode(doc, FormatJSON)
	assert.NoError(t, err)
	assert.Equal(t, expected, written)
}
