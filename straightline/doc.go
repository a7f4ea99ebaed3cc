/*
Package straightline implements a small language of straight-line programs:
assignments and print statements over integer expressions, separated by
semicolons.

    x = 5; y = x * (x - 1); print(y + 2)

The package bundles an LL(1) grammar for the language, a lexmachine-based
lexer and a predictive parser. It serves as an example for packages ll and
ll/predict, and as a test bed for their error recovery.

Grammar

    0: P   → SL
    1: SL  → S SL'
    2: SL' → ; S SL'
    3: SL' → #eps
    4: S   → ID = E
    5: S   → print ( E )
    6: E   → T E'
    7: E'  → + T E'
    8: E'  → - T E'
    9: E'  → #eps
   10: T   → F T'
   11: T'  → * F T'
   12: T'  → #eps
   13: F   → ID
   14: F   → NUM
   15: F   → ( E )

Characters the lexer does not know are reported as ERR tokens. ERR is not a
terminal of the grammar, so the parser treats it as a syntax error and
recovers.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package straightline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'topdown.straightline'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.straightline")
}
