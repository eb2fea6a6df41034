/*
Package scanner defines how inputs are split into tokens for the recognizer.

Inputs are usually recognized rune by rune. Clients who prefer to recognize
sequences of tokens plug in a Tokenizer instead. GoTokenizer splits text into
Go-like tokens (identifiers, numbers, strings, operators), using 'text/scanner'.
Sub-package `lexmach` builds tokenizers from regular expressions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unger"
)

// tracer traces with key 'unger.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("unger.scanner")
}

// Token types produced by GoTokenizer. Other tokens, i.e. operators and
// punctuation, have their rune as token type.
const (
	EOF    = scanner.EOF
	Ident  = scanner.Ident
	Int    = scanner.Int
	Float  = scanner.Float
	String = scanner.String
)

// Tokenizer produces the units of a token input. It returns a token of
// type EOF at the end of input.
type Tokenizer interface {
	NextToken() unger.Token
	SetErrorHandler(func(error))
}

// LogError traces a scanner error. Tokenizers report errors to it unless
// clients set an error handler.
func LogError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// ScanError is reported to a tokenizer's error handler for malformed input.
type ScanError struct {
	Source string
	Offset int // byte offset within the input
	Msg    string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Offset, e.Msg)
}

// --- Go-style tokens -------------------------------------------------------

// GoTokens splits an input into Go-style tokens. Comments and white space
// separate tokens and are dropped. Create one with GoTokenizer.
type GoTokens struct {
	sc      scanner.Scanner
	source  string
	onError func(error)
}

var _ Tokenizer = (*GoTokens)(nil)

// GoTokenizer creates a tokenizer for input. Character literals and raw strings
// are typed as String. sourceID names the input in errors.
func GoTokenizer(sourceID string, input io.Reader) *GoTokens {
	t := &GoTokens{source: sourceID, onError: LogError}
	t.sc.Init(input)
	t.sc.Filename = sourceID
	t.sc.Error = func(s *scanner.Scanner, msg string) {
		t.onError(&ScanError{Source: t.source, Offset: s.Pos().Offset, Msg: msg})
	}
	return t
}

// SetErrorHandler is part of the Tokenizer interface. A nil handler
// selects LogError.
func (t *GoTokens) SetErrorHandler(h func(error)) {
	if h == nil {
		h = LogError
	}
	t.onError = h
}

// NextToken is part of the Tokenizer interface.
func (t *GoTokens) NextToken() unger.Token {
	typ := t.sc.Scan()
	switch typ {
	case scanner.EOF:
		tracer().Debugf("%s: end of input", t.source)
	case scanner.Char, scanner.RawString:
		typ = scanner.String
	}
	from := t.sc.Position.Offset
	if typ == scanner.EOF {
		from = t.sc.Pos().Offset
	}
	return MakeToken(unger.TokType(typ), t.sc.TokenText(),
		unger.Span{uint64(from), uint64(t.sc.Pos().Offset)})
}

// --- Tokens ----------------------------------------------------------------

// Token is the token type of the tokenizers of this module. Its value is
// its lexeme.
type Token struct {
	typ    unger.TokType
	lexeme string
	span   unger.Span
}

var _ unger.Token = Token{}

// MakeToken creates a token.
func MakeToken(typ unger.TokType, lexeme string, span unger.Span) Token {
	return Token{typ: typ, lexeme: lexeme, span: span}
}

// TokType is part of interface unger.Token.
func (t Token) TokType() unger.TokType { return t.typ }

// Value is part of interface unger.Token.
func (t Token) Value() interface{} { return t.lexeme }

// Lexeme is part of interface unger.Token.
func (t Token) Lexeme() string { return t.lexeme }

// Span is part of interface unger.Token.
func (t Token) Span() unger.Span { return t.span }

func (t Token) String() string {
	return fmt.Sprintf("%d|%q%v", t.typ, t.lexeme, t.span)
}
