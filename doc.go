/*
Package unger is a recognizer toolbox for context-free grammars, built around
Unger's method.

Unger's method is a top-down, backtracking recognizer: for every pair of a
grammar symbol and an input span it decides whether the symbol derives the
span, trying all ways to partition the span among the symbols of each
candidate derivation. Results for sub-goals are memoized. The method is
exponential in the worst case; it is mainly of interest because it is simple
and handles every context-free grammar without preprocessing.
See "Parsing Techniques" by Dick Grune and Ceriel J.H. Jacobs, Section 6.1.

Package structure is as follows:

■ grammar: Package grammar implements the grammar data model (symbols,
derivations, rules) together with a builder and a reader for a line-oriented
grammar text format.

■ recognizer: Package recognizer implements Unger's method proper.

■ scanner: Package scanner defines a tokenizer interface, used to recognize
token sequences instead of runes.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package unger
