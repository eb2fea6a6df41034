package unger

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to applications to define them.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for an identifier:
//
//    TokType = Ident       // identifier for this kind of tokens (application specific)
//    Lexeme  = "foo"       // lexeme how it appeared in the input stream
//    Value   = nil         // scanners may attach a converted value
//    Span    = 67…70       // occured from position 67 in the input stream
//
// The recognizer matches terminals against lexemes only.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input units. Depending on the
// input, units are runes or tokens. A span denotes a start position and the
// position just behind the end. Spans are views: they never own input text.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// Prefix returns the span of the first n units of s.
func (s Span) Prefix(n uint64) Span {
	return Span{s[0], s[0] + n}
}

// Suffix returns the span of s behind its first n units.
func (s Span) Suffix(n uint64) Span {
	return Span{s[0] + n, s[1]}
}

// Unit returns the span of the i-th unit of s.
func (s Span) Unit(i uint64) Span {
	return Span{s[0] + i, s[0] + i + 1}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
