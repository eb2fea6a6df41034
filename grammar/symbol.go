package grammar

import (
	"strings"

	"github.com/emirpasic/gods/utils"
)

// Kind tells terminals from non-terminals.
type Kind int8

// Symbol kinds
const (
	NonTerminal Kind = iota
	Terminal
)

func (k Kind) String() string {
	if k == Terminal {
		return "terminal"
	}
	return "non-terminal"
}

// Symbol is a grammar symbol. For terminals, Value is the literal text to
// match, without quotes. For non-terminals, Value is the symbol's name.
//
// Symbols are values and may be compared with ==.
type Symbol struct {
	Kind  Kind
	Value string
}

// T creates a terminal symbol.
func T(literal string) Symbol {
	return Symbol{Kind: Terminal, Value: literal}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{Kind: NonTerminal, Value: name}
}

// IsTerminal is a predicate.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

func (s Symbol) String() string {
	if s.IsTerminal() {
		return "'" + s.Value + "'"
	}
	return s.Value
}

// symbolComparator orders symbols by value. Kind breaks ties, which matters
// only for terminals and non-terminals sharing a spelling.
func symbolComparator(s1, s2 interface{}) int {
	a := s1.(Symbol)
	b := s2.(Symbol)
	if c := utils.StringComparator(a.Value, b.Value); c != 0 {
		return c
	}
	return utils.IntComparator(int(a.Kind), int(b.Kind))
}

// --- Derivations -----------------------------------------------------------

// Derivation is one alternative right hand side of a rule.
type Derivation []Symbol

func (d Derivation) String() string {
	var b strings.Builder
	for i, sym := range d {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sym.String())
	}
	return b.String()
}
