package straightline

import (
	"fmt"
	"sync"

	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/predict"
	"github.com/npillmayer/topdown/ll/scanner"
	"github.com/npillmayer/topdown/ll/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Token categories of the language.
const (
	ID = iota + 1
	NUM
	ASSIGN
	SEMI
	LP
	RP
	PLUS
	MINUS
	MUL
	PRINT
	ERR
)

var literals = []string{"=", ";", "(", ")", "+", "-", "*"}
var keywords = []string{"print"}

var tokenIds = map[string]int{
	"ID":    ID,
	"NUM":   NUM,
	"=":     ASSIGN,
	";":     SEMI,
	"(":     LP,
	")":     RP,
	"+":     PLUS,
	"-":     MINUS,
	"*":     MUL,
	"print": PRINT,
	"ERR":   ERR,
}

// TokenName returns the name of a token category. It is a topdown.TokTypeStringer.
func TokenName(t topdown.TokType) string {
	if t == scanner.EOF {
		return "END"
	}
	for name, id := range tokenIds {
		if topdown.TokType(id) == t {
			return name
		}
	}
	return fmt.Sprintf("?%d", t)
}

var _ topdown.TokTypeStringer = TokenName

// Grammar creates the LL(1) grammar for straight-line programs.
func Grammar() (*ll.Grammar, error) {
	b := ll.NewGrammarBuilder("straight-line")
	b.LHS("P").N("SL").End()
	b.LHS("SL").N("S").N("SL'").End()
	b.LHS("SL'").T(";", SEMI).N("S").N("SL'").End()
	b.LHS("SL'").Epsilon()
	b.LHS("S").T("ID", ID).T("=", ASSIGN).N("E").End()
	b.LHS("S").T("print", PRINT).T("(", LP).N("E").T(")", RP).End()
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T("+", PLUS).N("T").N("E'").End()
	b.LHS("E'").T("-", MINUS).N("T").N("E'").End()
	b.LHS("E'").Epsilon()
	b.LHS("T").N("F").N("T'").End()
	b.LHS("T'").T("*", MUL).N("F").N("T'").End()
	b.LHS("T'").Epsilon()
	b.LHS("F").T("ID", ID).End()
	b.LHS("F").T("NUM", NUM).End()
	b.LHS("F").T("(", LP).N("E").T(")", RP).End()
	return b.Grammar()
}

// Lexer creates a lexmachine lexer for straight-line programs.
func Lexer() (*lexmach.LMAdapter, error) {
	patterns := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[a-zA-Z][a-zA-Z0-9]*`), lexmach.MakeToken("ID", ID))
		lexer.Add([]byte(`[0-9]+`), lexmach.MakeToken("NUM", NUM))
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		lexer.Add([]byte(`.`), lexmach.MakeToken("ERR", ERR))
	}
	return lexmach.NewLMAdapter(patterns, literals, keywords, tokenIds)
}

// Language bundles grammar, parse table and lexer. A Language is immutable
// and may be shared between goroutines; every call to Parse uses a parser
// of its own.
type Language struct {
	Grammar *ll.Grammar
	Table   *ll.ParseTable
	Lexer   *lexmach.LMAdapter
}

// New creates a Language instance.
func New() (*Language, error) {
	g, err := Grammar()
	if err != nil {
		return nil, fmt.Errorf("straight-line grammar: %w", err)
	}
	table, err := ll.BuildTable(g)
	if err != nil {
		return nil, fmt.Errorf("straight-line parse table: %w", err)
	}
	lexer, err := Lexer()
	if err != nil {
		return nil, fmt.Errorf("straight-line lexer: %w", err)
	}
	return &Language{Grammar: g, Table: table, Lexer: lexer}, nil
}

// Parse parses a straight-line program. Options are handed to the
// predictive parser. Parse returns an error if the input is not a valid
// program; the result carries the parse trace and all syntax errors.
func (lang *Language) Parse(input string, opts ...predict.Option) (*predict.Result, error) {
	p, err := predict.NewParser(lang.Grammar, lang.Table, opts...)
	if err != nil {
		return nil, err
	}
	scan, err := lang.Lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	scan.SetErrorHandler(func(e error) {
		tracer().Errorf("invalid input: %v", e)
	})
	tracer().Infof("parsing %q", input)
	return p.Parse(scan)
}

var defaultLang struct {
	once sync.Once
	lang *Language
	err  error
}

// Parse parses a straight-line program with a default Language instance.
func Parse(input string, opts ...predict.Option) (*predict.Result, error) {
	defaultLang.once.Do(func() {
		defaultLang.lang, defaultLang.err = New()
	})
	if defaultLang.err != nil {
		return nil, defaultLang.err
	}
	return defaultLang.lang.Parse(input, opts...)
}
