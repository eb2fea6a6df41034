/*
Command unger checks input strings against a context-free grammar, using
Unger's method.

	unger check grammar.txt "a+b" "a+"    # report acceptance for every input
	unger dump grammar.txt                # print the grammar
	unger repl grammar.txt                # check lines interactively

The grammar file holds one rule per line:

	Sum    -> Sum '+' Factor | Factor
	Factor -> 'a' | 'b'

Check exits with 0 if every input is accepted, with 1 if an input is rejected,
and with 2 on errors. Flags may be given in a TOML file as well:

	trace     = "Info"
	max-depth = 10000
	budget    = 1000000
	tokens    = true
	stats     = true

Flags on the command line take precedence over the config file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'unger.cli'
func tracer() tracing.Trace {
	return tracing.Select("unger.cli")
}
