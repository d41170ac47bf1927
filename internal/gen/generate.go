package gen

import (
	"os"
	"path"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/sean-nixon/scala-case-class-swagger-util/internal/config"
	"github.com/sean-nixon/scala-case-class-swagger-util/internal/swagger"
)

// GenerateModels writes one Go struct per schema document into the
// package file configured in `cfg.Package`.
func GenerateModels(cfg config.Config, workingDir string, docs []*swagger.Document) error {
	f := jen.NewFile(path.Base(cfg.Package.Path))

	for _, d := range docs {
		genModel(f, d)
	}

	return writeModelsToFile(f, cfg, workingDir)
}

func genModel(f *jen.File, doc *swagger.Document) {
	f.Type().Id(doc.Name).StructFunc(func(g *jen.Group) {
		for _, field := range doc.Fields {
			g.Id(firstUpper(field.Name)).Add(fieldType(field.Type)).Tag(map[string]string{"json": field.Name})
		}
	})
	f.Empty()
}

// fieldType maps a schema type to the Go type of the generated struct
// field. Optional scalars and references become pointers.
func fieldType(t swagger.Type) *jen.Statement {
	var s *jen.Statement

	switch t := t.(type) {
	case *swagger.Array:
		// A nil slice already encodes an absent array.
		return jen.Index().Add(fieldType(t.Element))
	case *swagger.Numeric:
		s = numericType(t)
	case *swagger.Reference:
		s = jen.Id(t.Target)
	case *swagger.Primitive:
		if t.Kind == "boolean" {
			s = jen.Bool()
		} else {
			s = jen.String()
		}
	default:
		s = jen.Any()
	}

	if !t.Required() {
		return jen.Op("*").Add(s)
	}

	return s
}

func numericType(t *swagger.Numeric) *jen.Statement {
	if t.Format == nil {
		return jen.Float64()
	}

	switch *t.Format {
	case "int32":
		return jen.Int32()
	case "int64":
		return jen.Int64()
	case "float":
		return jen.Float32()
	}

	return jen.Float64()
}

func writeModelsToFile(f *jen.File, cfg config.Config, workingDir string) error {
	filePath := path.Join(workingDir, cfg.Package.Path) + ".go"

	if err := os.MkdirAll(path.Dir(filePath), 0700); err != nil {
		return err
	}

	return os.WriteFile(filePath, []byte(f.GoString()), 0600)
}

func firstUpper(s string) string {
	return strings.ToUpper(s[0:1]) + s[1:]
}
