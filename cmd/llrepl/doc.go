/*
Command llrepl provides an interactive command line tool for the
straight-line language of package straightline. Every line of input is
parsed by the predictive parser and the parse trace is displayed, together
with syntax errors and the verdict.

    llrepl [-trace Debug|Info|Error] [-sets] [-table] [-html file] [program]

If a program is given as an argument, llrepl parses it and exits.
Otherwise it reads programs line by line. Lines starting with a colon are
commands:

    :sets     print FIRST- and FOLLOW-sets
    :table    print the LL(1) parse table
    :rules    print the grammar rules
    :quit     leave llrepl


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'topdown.straightline'
func tracer() tracing.Trace {
	return tracing.Select("topdown.straightline")
}
