/*
Package formal is a toolbox for finite automata and context-free grammars.

It supports the typical exercises of a course in formal languages: building
non-deterministic automata, making them deterministic, complete and minimal,
synthesizing regular expressions from automata, normalizing context-free grammars
and recognizing words with the CYK and Earley algorithms. Package structure is
as follows:

■ automaton: Package automaton implements labelled state graphs together with the
classic transformations on them (epsilon removal, subset construction, completion,
complementation, minimization and state elimination).

■ grammar: Package grammar implements context-free grammars over single-letter
symbols, a reader for a small textual grammar syntax and the transformation to
Chomsky normal form.

■ cyk and earley: Recognizers for context-free languages.

■ regex: Package regex implements an AST for regular expressions and algorithms
operating on it.

■ render: Visualization of automata for Graphviz and terminals.

The base package contains data types which are used throughout all the other packages,
most notably the error kinds the algorithms report.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package formal
