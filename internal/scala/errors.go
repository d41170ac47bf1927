package scala

import "fmt"

// MalformedTypeError is returned when a type expression contains a
// bracketed group that never terminates the string, so no subtype can
// be extracted from it.
type MalformedTypeError struct {
	TypeString string
}

func (e *MalformedTypeError) Error() string {
	return fmt.Sprintf(`no subtype found in type expression "%s"`, e.TypeString)
}

// MalformedClassError is returned when a raw class definition doesn't
// have the expected name and parameter list shape.
type MalformedClassError struct {
	Definition string
	Message    string
}

func (e *MalformedClassError) Error() string {
	return fmt.Sprintf(`%s in class definition "%s"`, e.Message, e.Definition)
}

func classErrorf(definition string, format string, args ...any) *MalformedClassError {
	return &MalformedClassError{
		Definition: definition,
		Message:    fmt.Sprintf(format, args...),
	}
}
