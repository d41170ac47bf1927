package swagger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const refPrefix = "#/definitions/"

// jsonIndent is the indentation width of written JSON documents.
const jsonIndent = 4

// Format selects the serialization format of written documents.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name from the config. An empty name
// defaults to JSON.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML):
		return FormatYAML, nil
	}

	return "", fmt.Errorf(`unknown output format "%s"`, s)
}

// The value types below define the wire shape of each schema type.
// Fields are declared in alphabetical key order so that both encoders
// write every object with sorted keys.

type primitiveValue struct {
	Type string `json:"type" yaml:"type"`
}

type numericValue struct {
	Format *string `json:"format,omitempty" yaml:"format,omitempty"`
	Type   string  `json:"type" yaml:"type"`
}

type arrayValue struct {
	Items Type   `json:"items" yaml:"items"`
	Type  string `json:"type" yaml:"type"`
}

type referenceValue struct {
	Ref string `json:"$ref" yaml:"$ref"`
}

type documentValue struct {
	Properties map[string]Type `json:"properties" yaml:"properties"`
	Required   []string        `json:"required" yaml:"required"`
	Type       string          `json:"type" yaml:"type"`
}

// Encode serializes a document in the given format. JSON output is
// indented and has its keys sorted, so encoding the same document
// twice produces identical bytes.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", strings.Repeat(" ", jsonIndent))
	case FormatYAML:
		return yaml.Marshal(doc)
	}

	return nil, fmt.Errorf(`unknown output format "%s"`, format)
}

// FileName returns the output file name for a document.
func FileName(doc *Document, format Format) string {
	return fmt.Sprintf("%s_output_swagger.%s", doc.Name, format)
}

// WriteFile encodes the document and writes it to its file under dir.
func WriteFile(dir string, doc *Document, format Format) error {
	data, err := Encode(doc, format)
	if err != nil {
		return err
	}

	filePath := filepath.Join(dir, FileName(doc, format))
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf(`failed to write schema document "%s": %w`, filePath, err)
	}

	return nil
}
