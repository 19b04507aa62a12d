/*
Package lexmach provides an adapter to use the lexmachine scanner generator for
reading the textual formats of package formal.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing literals and regular expressions.

	var literals []string       // The tokens representing literal strings
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   formal.Token
	}

	LM, err := NewLMAdapter(init, literals, tokenIds)

A scanner is instantiated for each concrete input sequence and implements the
scanner.Tokenizer interface. Token spans are byte offsets into the input.

	scan, err := LM.Scanner("S => aSb")

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
