/*
Package grammar implements context-free grammars over single-letter symbols.

Non-terminals are the capital letters A…Z, terminals are the lower case letters
a…z. A rule (production) has a single non-terminal on its left-hand side and a
(possibly empty) sequence of symbols on its right-hand side. Rules are identified
by their (LHS, RHS) pair, adding an existing rule is a no-op.

Grammars may be created programmatically

	g := grammar.New(grammar.WithStart('S'))
	g.AddRule(grammar.MustRule('S', "aSb"))
	g.AddRule(grammar.MustRule('S', ""))

or read from a textual form, one rule per line:

	S => aSb
	S => .

where '.' denotes the empty right-hand side.

As there are only 26 non-terminals, transformations which have to introduce fresh
non-terminals (see TransformToCNF) may fail with formal.ErrSymbolsExhausted.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formal.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("formal.grammar")
}
