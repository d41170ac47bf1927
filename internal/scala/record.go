package scala

import (
	"fmt"
	"strings"

	"github.com/sean-nixon/scala-case-class-swagger-util/internal/swagger"
)

const classKeyword = "case class"

// SplitClasses splits the contents of a definitions file into one raw
// string per case class, with all whitespace removed. The file must
// contain nothing but case class definitions.
func SplitClasses(contents string) []string {
	classes := make([]string, 0)

	for _, chunk := range strings.Split(contents, classKeyword) {
		chunk = strings.Join(strings.Fields(chunk), "")

		if len(chunk) > 0 {
			classes = append(classes, chunk)
		}
	}

	return classes
}

// ParseClass parses a whitespace-free case class definition like
// `Person(name:String,nickname:Option[String]=None)` into its schema
// document. Parameter default values are dropped before the type
// annotation is resolved. A type resolution failure aborts the whole
// class.
func ParseClass(raw string) (*swagger.Document, error) {
	open := strings.IndexByte(raw, '(')
	if open <= 0 {
		return nil, classErrorf(raw, "expected a class name followed by a parameter list")
	}

	if !strings.HasSuffix(raw, ")") {
		return nil, classErrorf(raw, "unterminated parameter list")
	}

	className := raw[:open]
	if strings.ContainsAny(className, ",)") {
		return nil, classErrorf(raw, `expected a class name, found "%s"`, className)
	}

	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '(' || r == ',' || r == ')'
	})

	doc := swagger.NewDocument(className)

	for _, param := range tokens[1:] {
		// Drop the default value assignment if the parameter has one.
		if i := strings.IndexByte(param, '='); i != -1 {
			param = param[:i]
		}

		name, typeString, ok := strings.Cut(param, ":")
		if !ok || len(name) == 0 || len(typeString) == 0 {
			return nil, classErrorf(raw, `parameter "%s" is not of the form name:Type`, param)
		}

		t, err := ResolveType(typeString)
		if err != nil {
			return nil, fmt.Errorf(`failed to resolve the type of parameter "%s": %w`, name, err)
		}

		doc.AddField(name, t)
	}

	return doc, nil
}
