/*
Package regex implements regular expressions as a closed set of AST node kinds:
the empty language, single letters, the empty word, union, concatenation and
Kleene star.

Expressions are read either from reverse Polish notation

	ab+c.*      // ((a+b)c)*

where '.' concatenates, '+' unites, '*' is the Kleene star and '1' denotes the
empty word, or from the infix notation produced by automaton.NFAToRegexp:

	(a+b)c(1+a)*

Algorithms on expressions are written as a fold over the AST (see Fold and
Algebra). PrefixedMin is an example: it computes the length of the shortest word
of a language which starts with a given number of repetitions of a letter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package regex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'formal.regex'.
func tracer() tracing.Trace {
	return tracing.Select("formal.regex")
}
