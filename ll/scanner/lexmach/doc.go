/*
Package lexmach lets lexmachine DFAs serve as scanners for the predictive
parser of package ll/predict.

An LMAdapter is compiled once per token language and hands out an LMScanner
for every input string. LMScanner implements scanner.Tokenizer.

NewLMAdapter receives three ingredients: literals, which are matched
verbatim; keywords; and a map from literal, keyword and pattern names to
token categories. Literals and keywords are registered before the patterns
of the init function. As lexmachine prefers the earliest pattern among
matches of equal length, "print" is reported as a keyword even if an
identifier pattern matches it as well.

    ids := map[string]int{"ID": ID, "NUM": NUM, "print": PRINT, "=": ASSIGN}
    patterns := func(lexer *lexmachine.Lexer) {
        lexer.Add([]byte(`[a-z]+`), lexmach.MakeToken("ID", ID))
        lexer.Add([]byte(`[0-9]+`), lexmach.MakeToken("NUM", NUM))
        lexer.Add([]byte(`( |\t|\n)+`), lexmach.Skip)
    }
    LM, err := lexmach.NewLMAdapter(patterns, []string{"="}, []string{"print"}, ids)

Categories of the token map have to match the token categories of the
terminals of the grammar, as given to GrammarBuilder.T. Then a parse is
a matter of

    scan, err := LM.Scanner("x = 42")
    ...
    result, err := parser.Parse(scan)   // parser is a *predict.Parser

Input which no pattern matches is reported to the scanner's error handler
and skipped. Once the input is exhausted, the scanner reports EOF tokens.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
