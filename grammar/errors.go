package grammar

import "fmt"

// FormatError is returned for malformed grammar source or builder input.
// Line and Col are 1-based; they are 0 if unknown.
type FormatError struct {
	Source string
	Line   int
	Col    int
	Msg    string
}

func (e *FormatError) Error() string {
	switch {
	case e.Line > 0 && e.Col > 0:
		return fmt.Sprintf("%s:%d:%d: %s", e.Source, e.Line, e.Col, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Msg)
}

func formatError(source string, line, col int, msg string, params ...interface{}) *FormatError {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return &FormatError{Source: source, Line: line, Col: col, Msg: msg}
}

// UndefinedSymbolError is returned when a non-terminal without a rule has to be
// expanded.
type UndefinedSymbolError struct {
	Symbol Symbol
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("no rule for non-terminal %s", e.Symbol)
}
