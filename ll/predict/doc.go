/*
Package predict implements a table-driven predictive parser for LL(1)
grammars, with panic-mode error recovery.

The parser is a stack machine. It starts with the end marker and the start
symbol on its stack and consults an LL(1) parse table (see package ll) to
expand non-terminals. Terminals on top of the stack are matched against the
lookahead token.

    table, err := ll.BuildTable(g)
    ...
    p, err := predict.NewParser(g, table)
    result, err := p.Parse(scanner.GoTokenizer("input", strings.NewReader("a+b")))

Error Recovery

Syntax errors do not stop the parser. If a terminal on top of the stack does
not match the lookahead, tokens are discarded until the lookahead is a
member of the synchronization set, then the expected terminal is popped.
Table cells without a rule are either sync entries (pop the non-terminal
without consuming input) or error entries (discard the lookahead token).
At end of input an error entry pops the non-terminal, thus every parse
terminates.

The default synchronization set consists of the end marker, ";" and ")",
as far as they are terminals of the grammar. Use option SyncOn to change it.

Parse Trace

Every action of the parser is recorded as an Event, carrying a snapshot of
the parse stack. Clients may stream events with option WithListener. The
sequence of events for a given grammar and input is deterministic.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'topdown.ll'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.ll")
}
