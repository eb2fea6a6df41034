/*
Package lexmach builds scanner.Tokenizers from regular expressions, using the
lexmachine scanner generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

A lexer is compiled once from a list of patterns and creates a tokenizer for
every concrete input:

	lexer, err := lexmach.Compile(
		lexmach.Pattern{Regex: `[a-z]+`, Type: ID},
		lexmach.Literal("+", Plus),
		lexmach.Pattern{Regex: `( |\t)+`, Type: lexmach.Skip},
	)
	tokens, err := lexer.Tokenizer("input string to tokenize")
	for token := tokens.NextToken(); token.TokType() != scanner.EOF; token = tokens.NextToken() {
		…
	}

Package grammar uses a lexer to split the right hand side of grammar rules
into symbols.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
