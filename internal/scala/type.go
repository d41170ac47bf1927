package scala

import (
	"strings"

	"github.com/sean-nixon/scala-case-class-swagger-util/internal/swagger"
)

// optionType marks a parameter optional without contributing anything
// to the shape of the resolved type.
const optionType = "Option"

// arrayTypes are the container identifiers that resolve to an array of
// their element type.
var arrayTypes = map[string]bool{
	"Array":       true,
	"List":        true,
	"ArrayBuffer": true,
}

var primitiveTypes = map[string]bool{
	"String":  true,
	"Char":    true,
	"Boolean": true,
}

var numericTypes = map[string]bool{
	"Int":    true,
	"Long":   true,
	"Float":  true,
	"Double": true,
}

// ResolveType resolves a raw type annotation like `Option[List[Int]]`
// into a swagger schema type. Identifiers outside the known primitive
// and numeric sets resolve to a reference, so records can freely refer
// to each other. The only failure mode is a bracketed expression whose
// subtype can't be extracted.
func ResolveType(typeString string) (swagger.Type, error) {
	return resolveType(typeString, true)
}

func resolveType(s string, required bool) (swagger.Type, error) {
	superType, subType, wrapped, err := splitType(s)
	if err != nil {
		return nil, err
	}

	if wrapped {
		if superType == optionType {
			// Required-ness is decided by the outermost Option. Any
			// further Option wrappers below it change nothing.
			return resolveType(subType, false)
		}

		if arrayTypes[superType] {
			// Elements resolve independently of the wrappers above
			// them; the array itself carries the accumulated flag.
			element, err := resolveType(subType, true)
			if err != nil {
				return nil, err
			}

			return swagger.NewArray(element, required), nil
		}
	}

	// An unrecognized container falls through here together with the
	// plain leaf identifiers and resolves as a whole.
	if primitiveTypes[s] {
		return swagger.NewPrimitive(s, required), nil
	}

	if numericTypes[s] {
		return swagger.NewNumeric(s, required), nil
	}

	return swagger.NewReference(s, required), nil
}

// splitType splits a type expression into the container identifier
// before the first bracket and the subtype inside the outermost bracket
// pair, found by scanning for the bracket that balances the first one.
// wrapped is false when the expression has no brackets at all. The
// balancing bracket must be the last character of the expression.
func splitType(s string) (superType string, subType string, wrapped bool, err error) {
	open := strings.IndexByte(s, '[')
	if open == -1 {
		return "", "", false, nil
	}

	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				if i != len(s)-1 {
					return "", "", false, &MalformedTypeError{TypeString: s}
				}

				return s[:open], s[open+1 : i], true, nil
			}
		}
	}

	return "", "", false, &MalformedTypeError{TypeString: s}
}
