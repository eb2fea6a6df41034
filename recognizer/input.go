package recognizer

import (
	"strconv"
	"strings"

	"github.com/npillmayer/unger"
	"github.com/npillmayer/unger/scanner"
)

// Input is a sequence of input units over a single text. Units are either
// runes or tokens. Spans over an input never copy text.
type Input struct {
	text   string
	bounds []int // byte offset of each unit, plus len(text)
	tokens bool  // units are tokens
}

// StringInput creates an input with one unit per rune of s.
// Bytes which are not valid UTF-8 form units of their own.
func StringInput(s string) *Input {
	in := &Input{text: s, bounds: make([]int, 0, len(s)+1)}
	for i := range s {
		in.bounds = append(in.bounds, i)
	}
	in.bounds = append(in.bounds, len(s))
	return in
}

// TokenInput creates an input with one unit per token, reading tokens until
// EOF. The text of a span is the concatenation of the lexemes of its tokens.
// A terminal matches a single token with a lexeme equal to its literal.
func TokenInput(tokenizer scanner.Tokenizer) *Input {
	in := &Input{tokens: true}
	var b strings.Builder
	for token := tokenizer.NextToken(); token.TokType() != scanner.EOF; token = tokenizer.NextToken() {
		in.bounds = append(in.bounds, b.Len())
		b.WriteString(token.Lexeme())
	}
	in.text = b.String()
	in.bounds = append(in.bounds, len(in.text))
	tracer().Debugf("token input of %d units: %q", in.Len(), in.text)
	return in
}

// Len returns the number of units.
func (in *Input) Len() uint64 {
	return uint64(len(in.bounds) - 1)
}

// Span returns the span covering the whole input.
func (in *Input) Span() unger.Span {
	return unger.Span{0, in.Len()}
}

// Text returns the text denoted by a span.
func (in *Input) Text(span unger.Span) string {
	return in.text[in.bounds[span.From()]:in.bounds[span.To()]]
}

// cuts encodes the unit boundaries inside a span, relative to its start.
// Rune boundaries follow from the text, token boundaries do not.
func (in *Input) cuts(span unger.Span) string {
	if !in.tokens || span.Len() < 2 {
		return ""
	}
	var b strings.Builder
	base := in.bounds[span.From()]
	for i := span.From() + 1; i < span.To(); i++ {
		b.WriteString(strconv.Itoa(in.bounds[i] - base))
		b.WriteByte(',')
	}
	return b.String()
}
