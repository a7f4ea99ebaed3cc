/*
Package ll implements prerequisites for LL(1) parsing: grammars, static
grammar analysis and construction of predictive parse tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry a token category, i.e., the value a scanner reports for them.
Grammars may contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a", 1).End()  // S  ->  A a
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b", 2).End()         // B  ->  b
    b.LHS("B").Epsilon()               // B  ->  #eps
    b.LHS("D").T("d", 3).End()         // D  ->  d
    b.LHS("D").Epsilon()               // D  ->  #eps
    g, err := b.Grammar()

The first rule's left hand side is the start symbol. The position of a rule
within the grammar is significant: parse tables refer to rules by this
ordinal number.

   g.Dump()

   0: [S] ::= [A a]
   1: [A] ::= [B D]
   2: [B] ::= [b]
   3: [B] ::= [#eps]
   4: [D] ::= [d]
   5: [D] ::= [#eps]

Static Grammar Analysis

FIRST and FOLLOW sets are computed as soon as a grammar is built, using
fixed-point iterations which terminate for every context-free grammar.
Afterwards the sets are immutable.

    g.EachNonTerminal(func(A Symbol) {
        fmt.Printf("FIRST(%s) = %v\n", A, g.First(A.Name))
    })

    // Output:
    FIRST(S) = {a, b, d}
    FIRST(A) = {#eps, b, d}
    FIRST(B) = {#eps, b}
    FIRST(D) = {#eps, d}

Parse Table Construction

From the analysed grammar an LL(1) parse table is constructed. If the
grammar is not LL(1), construction fails with a *ConflictError and no
table is returned.

    table, err := ll.BuildTable(g)

The table is the input for the predictive parser of package ll/predict.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'topdown.ll'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.ll")
}
