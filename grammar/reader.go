package grammar

import (
	"bufio"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/npillmayer/unger"
	"github.com/npillmayer/unger/scanner"
	"github.com/npillmayer/unger/scanner/lexmach"
)

// Arrow separates the left hand side of a rule from its derivations.
const Arrow = "->"

// MaxLineLength is the maximum length of a source line in bytes.
const MaxLineLength = 4 << 20

// Token types for the right hand side of a rule.
const (
	tokBar unger.TokType = iota + 1
	tokTerminal
	tokUnterminated
	tokNonTerminal
)

var rhsLexer struct {
	once  sync.Once
	lexer *lexmach.Lexer
	err   error
}

// rhsTokenizer returns a tokenizer for the right hand side of a rule. The lexer
// is compiled once and shared.
func rhsTokenizer(rhs string) (*lexmach.Tokenizer, error) {
	rhsLexer.once.Do(func() {
		rhsLexer.lexer, rhsLexer.err = lexmach.Compile(
			lexmach.Literal("|", tokBar),
			lexmach.Pattern{Regex: `'[^']*'`, Type: tokTerminal},
			lexmach.Pattern{Regex: `'[^']*`, Type: tokUnterminated},
			lexmach.Pattern{Regex: `[^ \t\r\n'\|]+`, Type: tokNonTerminal},
			lexmach.Pattern{Regex: `( |\t|\r|\n)+`, Type: lexmach.Skip},
		)
	})
	if rhsLexer.err != nil {
		return nil, rhsLexer.err
	}
	return rhsLexer.lexer.Tokenizer(rhs)
}

// ReadString reads a grammar from a string. See Read.
func ReadString(name string, src string) (*Grammar, error) {
	return Read(name, strings.NewReader(src))
}

// ReadFile reads a grammar from file path of file system fs. The grammar
// is named after the file.
func ReadFile(fs afero.Fs, path string) (*Grammar, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open grammar")
	}
	defer f.Close()
	return Read(path, f)
}

// Read reads a grammar in line-oriented format from r:
//
//    LHS -> RHS1 | RHS2 | ...
//
// Blank lines are skipped. Every other line has to contain the separator "->".
// Read either returns a complete grammar or an error; an error for
// malformed input is of type *FormatError.
func Read(name string, r io.Reader) (*Grammar, error) {
	b := NewBuilder(name)
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := lines.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := readRule(b, name, lineno, line); err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
	}
	if err := lines.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, formatError(name, lineno+1, 0, "line longer than %d bytes", MaxLineLength)
		}
		return nil, errors.Wrapf(err, "reading grammar %s", name)
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Infof("read grammar %s with %d rules, start symbol %s", name, g.Size(), g.Start())
	return g, nil
}

// readRule parses a single source line into the builder. The rule replaces
// any previous rule for the same non-terminal.
func readRule(b *Builder, source string, lineno int, line string) error {
	arrow := strings.Index(line, Arrow)
	if arrow < 0 {
		return formatError(source, lineno, 0, "missing %q separator", Arrow)
	}
	lhs := strings.TrimSpace(line[:arrow])
	col := strings.Index(line, lhs) + 1
	switch {
	case lhs == "":
		return formatError(source, lineno, 1, "missing left hand side")
	case strings.HasPrefix(lhs, "'"):
		return formatError(source, lineno, col, "left hand side %s is not a non-terminal", lhs)
	case strings.ContainsAny(lhs, " \t|'"):
		return formatError(source, lineno, col, "left hand side %q is not a single non-terminal", lhs)
	}
	offset := arrow + len(Arrow)
	derivations, err := splitDerivations(line[offset:])
	if err != nil {
		if pe, ok := err.(*posError); ok {
			return formatError(source, lineno, offset+pe.pos+1, pe.msg)
		}
		return formatError(source, lineno, 0, "%v", err)
	}
	b.Redefine(lhs)
	for _, d := range derivations {
		rb := b.LHS(lhs)
		for _, sym := range d {
			if sym.IsTerminal() {
				rb.T(sym.Value)
			} else {
				rb.N(sym.Value)
			}
		}
		rb.End()
	}
	return nil
}

type posError struct {
	pos int // byte offset within the right hand side
	msg string
}

func (e *posError) Error() string {
	return e.msg
}

// splitDerivations tokenizes the right hand side of a rule. Empty alternatives
// are dropped.
func splitDerivations(rhs string) ([]Derivation, error) {
	tokens, err := rhsTokenizer(rhs)
	if err != nil {
		return nil, err
	}
	var scanErr error
	tokens.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	var derivations []Derivation
	var current Derivation
	flush := func() {
		if len(current) > 0 {
			derivations = append(derivations, current)
		}
		current = nil
	}
	for token := tokens.NextToken(); token.TokType() != scanner.EOF; token = tokens.NextToken() {
		switch token.TokType() {
		case tokBar:
			flush()
		case tokTerminal:
			lexeme := token.Lexeme()
			current = append(current, T(lexeme[1:len(lexeme)-1]))
		case tokUnterminated:
			return nil, &posError{pos: int(token.Span().From()), msg: "unterminated terminal quote"}
		default:
			current = append(current, N(token.Lexeme()))
		}
	}
	if scanErr != nil {
		return nil, scanErr
	}
	flush()
	return derivations, nil
}
