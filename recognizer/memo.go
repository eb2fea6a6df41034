package recognizer

import (
	"fmt"

	"github.com/npillmayer/unger/grammar"
)

// goal asks whether a symbol derives a text. Goals for spans denoting the
// same text are identical, whatever their position in the input.
type goal struct {
	sym  grammar.Symbol
	text string
	cuts string // token boundaries within text, empty for rune input
}

func (g goal) String() string {
	return fmt.Sprintf("%s ⇒* %q", g.sym, g.text)
}

// memo maps goals to results. A goal not present has never been attempted.
// A goal is entered as false before it is explored and keeps this value
// unless it is resolved to true.
type memo map[goal]bool

func (m memo) lookup(g goal) (bool, bool) {
	v, found := m[g]
	return v, found
}

func (m memo) tentative(g goal) {
	m[g] = false
}

func (m memo) resolve(g goal, v bool) {
	m[g] = v
}
