/*
Package scanner defines an interface for scanners to be used with the
predictive parser of package ll/predict.

Two default scanner implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', and (2) an adapter for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"io"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/topdown"
)

// tracer traces with key 'topdown.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("topdown.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface. After the end of input has been reached,
// NextToken keeps returning tokens of category EOF.
type Tokenizer interface {
	NextToken() topdown.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken rune        // last token this scanner has produced
	Error     func(error) // error handler
	keywords  map[string]topdown.TokType
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(scanError{pos: s.Position, msg: msg})
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() topdown.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
		pos := uint64(t.Pos().Offset)
		return DefaultToken{kind: EOF, span: topdown.Span{pos, pos}}
	}
	kind := topdown.TokType(t.lastToken)
	lexeme := t.TokenText()
	if t.lastToken == scanner.Ident && t.keywords != nil {
		if kw, ok := t.keywords[lexeme]; ok {
			kind = kw
		}
	}
	return DefaultToken{
		kind:   kind,
		lexeme: lexeme,
		span:   topdown.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

type scanError struct {
	pos scanner.Position
	msg string
}

func (e scanError) Error() string {
	return e.pos.String() + ": " + e.msg
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the LexMachine scanner. It is a plain value: a category
// together with a lexeme and a span.
type DefaultToken struct {
	kind   topdown.TokType
	lexeme string
	span   topdown.Span
}

// MakeDefaultToken creates a token value.
func MakeDefaultToken(typ topdown.TokType, lexeme string, span topdown.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType is part of interface topdown.Token.
func (t DefaultToken) TokType() topdown.TokType {
	return t.kind
}

// Lexeme is part of interface topdown.Token.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of interface topdown.Token.
func (t DefaultToken) Span() topdown.Span {
	return t.span
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// Keywords lets the tokenizer report the given identifiers with a category of
// their own instead of Ident.
func Keywords(kw map[string]topdown.TokType) Option {
	return func(t *DefaultTokenizer) {
		t.keywords = kw
	}
}
