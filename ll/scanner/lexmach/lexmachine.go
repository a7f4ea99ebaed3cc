package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll/scanner"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'topdown.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if a literal or keyword has no token ID
// or if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		id, ok := tokenIds[lit]
		if !ok {
			return nil, fmt.Errorf("no token ID for literal %q", lit)
		}
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, id))
	}
	for _, name := range keywords {
		id, ok := tokenIds[name]
		if !ok {
			return nil, fmt.Errorf("no token ID for keyword %q", name)
		}
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, id))
	}
	if init != nil {
		init(adapter.Lexer)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface.
// Input which no pattern matches is reported to the error handler and skipped.
// At the end of input NextToken returns EOF tokens, as often as it is called.
func (lms *LMScanner) NextToken() topdown.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", topdown.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := uint64(len(lms.scanner.Text))
		return scanner.MakeDefaultToken(scanner.EOF, "", topdown.Span{end, end})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("lexmachine token %q/%d", token.Lexeme, token.Type)
	from := uint64(token.TC)
	return scanner.MakeDefaultToken(
		topdown.TokType(token.Type),
		string(token.Lexeme),
		topdown.Span{from, from + uint64(len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
