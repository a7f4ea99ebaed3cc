package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/topdown/ll/scanner"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
	"nil nilly",
}

var tokenCounts = []int{1, 3, 2, 3, 3, 2}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(lispInit, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestKeywordPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(lispInit, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("nil nilly")
	if tok := sc.NextToken(); int(tok.TokType()) != tokenIds["nil"] {
		t.Errorf("expected keyword 'nil', got category %d", tok.TokType())
	}
	if tok := sc.NextToken(); int(tok.TokType()) != tokenIds["ID"] {
		t.Errorf("expected identifier 'nilly', got category %d", tok.TokType())
	}
	for i := 0; i < 2; i++ {
		if tok := sc.NextToken(); tok.TokType() != scanner.EOF {
			t.Errorf("expected repeated EOF, got category %d", tok.TokType())
		}
	}
}

func TestUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(lispInit, literals, keywords, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("a & b")
	errcnt := 0
	sc.SetErrorHandler(func(e error) {
		errcnt++
	})
	count := 0
	for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
		count++
	}
	if errcnt != 1 || count != 2 {
		t.Errorf("expected 1 error and 2 tokens, have %d errors and %d tokens", errcnt, count)
	}
}

func TestMissingTokenID(t *testing.T) {
	_, err := NewLMAdapter(nil, []string{"@"}, nil, map[string]int{})
	if err == nil {
		t.Errorf("expected adapter creation to fail for literal without token ID")
	}
}

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokens []string         // All of the tokens (including literals and keywords)
var tokenIds map[string]int // A map from the token names to their int ids

func lispInit(lexer *lexmachine.Lexer) {
	lexer.Add([]byte(`//[^\n]*\n?`), Skip)
	lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
	lexer.Add([]byte(`#?([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`), MakeToken("ID", tokenIds["ID"]))
	lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM", tokenIds["NUM"]))
	lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
}

func initTokens() {
	literals = []string{
		"'",
		"(",
		")",
		"[",
		"]",
		"=",
		"+",
		"-",
		"*",
		"/",
	}
	keywords = []string{
		"nil",
		"t",
	}
	tokens = []string{
		"COMMENT",
		"ID",
		"NUM",
		"STRING",
	}
	tokens = append(tokens, keywords...)
	tokens = append(tokens, literals...)
	tokenIds = make(map[string]int)
	tokenIds["COMMENT"] = scanner.Comment
	tokenIds["ID"] = scanner.Ident
	tokenIds["NUM"] = scanner.Int
	tokenIds["STRING"] = int(scanner.String)
	for i, tok := range tokens[4:] {
		tokenIds[tok] = i + 10
	}
}
