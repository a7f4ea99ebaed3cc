/*
Package topdown is a toolbox for predictive top-down parsing.

It analyses context-free grammars, constructs LL(1) parse tables and drives
a table-based parser with panic-mode error recovery. Package structure is
as follows:

■ ll: Package ll implements grammars, FIRST/FOLLOW analysis and LL(1) parse
table construction. Sub-package predict contains the predictive parser,
sub-package scanner the tokenizer interface and adapters.

■ straightline: Package straightline provides a small toy language (assignments,
print statements and arithmetic expressions) together with its lexer.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package topdown
