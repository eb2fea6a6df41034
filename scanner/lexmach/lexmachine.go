package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unger"
	"github.com/npillmayer/unger/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'unger.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("unger.scanner")
}

// Pattern is a regular expression together with the type of the tokens
// it produces. Matches of a pattern with type Skip are dropped.
type Pattern struct {
	Regex string
	Type  unger.TokType
}

// Skip is the token type of patterns for input to drop, e.g. white space.
const Skip unger.TokType = 0

// Literal is a pattern matching lit verbatim.
func Literal(lit string, typ unger.TokType) Pattern {
	var b strings.Builder
	for _, r := range lit {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return Pattern{Regex: b.String(), Type: typ}
}

// Lexer is a compiled set of patterns. Where patterns overlap, the longest
// match wins, then the pattern given first. A lexer may be shared between
// goroutines.
type Lexer struct {
	dfa *lexmachine.Lexer
}

// Compile creates a lexer for a list of patterns. It returns an error if
// compiling the DFA failed.
func Compile(patterns ...Pattern) (*Lexer, error) {
	dfa := lexmachine.NewLexer()
	for _, p := range patterns {
		dfa.Add([]byte(p.Regex), action(p.Type))
	}
	if err := dfa.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &Lexer{dfa: dfa}, nil
}

func action(typ unger.TokType) lexmachine.Action {
	if typ == Skip {
		return func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
			return nil, nil
		}
	}
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// Tokenizer creates a tokenizer for input.
func (lx *Lexer) Tokenizer(input string) (*Tokenizer, error) {
	sc, err := lx.dfa.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Tokenizer{sc: sc, onError: scanner.LogError}, nil
}

// Tokenizer implements scanner.Tokenizer for a single input.
type Tokenizer struct {
	sc      *lexmachine.Scanner
	onError func(error)
}

var _ scanner.Tokenizer = (*Tokenizer)(nil)

// SetErrorHandler is part of the scanner.Tokenizer interface. A nil
// handler selects scanner.LogError.
func (t *Tokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		h = scanner.LogError
	}
	t.onError = h
}

// NextToken is part of the scanner.Tokenizer interface. Input no pattern
// matches is reported as a *scanner.ScanError and skipped.
//
// Token spans are byte offsets into the input.
func (t *Tokenizer) NextToken() unger.Token {
	tok, err, eof := t.sc.Next()
	for err != nil {
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			t.onError(&scanner.ScanError{Offset: ui.StartTC, Msg: unconsumed(ui)})
			t.sc.TC = ui.FailTC
		} else {
			t.onError(err)
		}
		tok, err, eof = t.sc.Next()
	}
	if eof {
		end := uint64(len(t.sc.Text))
		return scanner.MakeToken(scanner.EOF, "", unger.Span{end, end})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d %q at %d", token.Type, token.Lexeme, token.TC)
	return scanner.MakeToken(
		unger.TokType(token.Type),
		string(token.Lexeme),
		unger.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

func unconsumed(ui *machines.UnconsumedInput) string {
	return fmt.Sprintf("unexpected input %q", ui.Text[ui.StartTC:ui.FailTC])
}
