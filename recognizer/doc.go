/*
Package recognizer implements Unger's method for recognizing context-free languages.

For a grammar symbol A and an input span w, the recognizer decides whether
A ⇒* w. Terminals match if their literal equals the text of the span.
For a non-terminal, every derivation of A's rule is tried in turn: the span
is partitioned among the symbols of the derivation in every possible way,
and each part is recognized recursively.

Take the derivation S → A B C and input "abcd". Every symbol has to derive
at least one input unit, which leaves three partitions:

    A | B | C
    a | b | cd
    a | bc| d
    ab| c | d

Every (symbol, text) pair, called a goal, is memoized. Before a goal is
explored it is entered into the memo as 'false'. If exploring the goal leads
back to the very same goal, as happens with rules like A → A | 'x', the
inner attempt fails immediately instead of looping forever. As a consequence
the outcome for such grammars depends on the order of derivations: a goal may be
rejected although a derivation not yet tried would have matched.

Exploration is depth-first: derivations in the order of their
definition, symbols from left to right, shorter prefixes first.

Usage

    g, _ := grammar.ReadString("G", "S -> A B\nA -> 'a'\nB -> 'b'")
    p := recognizer.NewParser(g)
    accept, err := p.ParseString("ab")

A Parser holds no state between calls and may be used concurrently.
Errors are reserved for runs which could not be completed (undefined
non-terminals, exceeded limits, cancellation); a rejected input
is reported as (false, nil).

The method is exponential in the worst case. Clients should consider
limiting a run with options MaxDepth and Budget, or with a context.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package recognizer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unger.recognizer'.
func tracer() tracing.Trace {
	return tracing.Select("unger.recognizer")
}
