/*
Package grammar implements context-free grammars as consumed by the recognizer.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry the literal text they match. Epsilon-productions are not supported:
every derivation consists of at least one symbol.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("A").N("B").End()   // S  ->  A B
    b.LHS("A").T("a").End()          // A  ->  'a'
    b.LHS("B").T("b").End()          // B  ->  'b'
    b.LHS("B").N("B").T("b").End()   // B  ->  ... | B 'b'
    g, err := b.Grammar()

The first left hand side handed to the builder is the start symbol.
Calling LHS for a symbol again adds an alternative derivation, while
Redefine drops all derivations collected so far.

Reading a Grammar

Grammars may be read from a line-oriented text format instead:

    S -> A B
    A -> 'a'
    B -> 'b' | B 'b'

Every line defines the complete rule for one non-terminal. Derivations are
separated by '|', terminals are quoted with single quotes. A later line for
the same non-terminal replaces the earlier rule.

    g, err := grammar.ReadString("G", src)

Grammars are immutable once built and may be shared between goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unger.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("unger.grammar")
}
