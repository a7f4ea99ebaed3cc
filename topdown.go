package topdown

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Applications define the concrete
// categories; package ll/scanner replicates the categories of text/scanner.
type TokType int

// TokTypeStringer is a type to be provided by a scanner/parser combination to be able
// to print out token categories.
type TokTypeStringer func(TokType) string

// Token represents an input token. Tokens are produced by a scanner and
// reflect terminals of a grammar.
//
// An example would be a token for an integer literal:
//
//    TokType = Int         // identifier for this kind of tokens (application specific)
//    Lexeme  = "42"        // lexeme how it appeared in the input stream
//    Span    = 67…69       // occured from position 67 in the input stream
//
// Tokens are values: a parser may copy them freely and never has to release them.
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// TokenString is a helper for trace output. It formats a token as
// lexeme/category, or as <eof> for tokens with an empty lexeme.
func TokenString(t Token) string {
	if t == nil {
		return "<none>"
	}
	if t.Lexeme() == "" {
		return fmt.Sprintf("<eof>/%d", t.TokType())
	}
	return fmt.Sprintf("%q/%d", t.Lexeme(), t.TokType())
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing the input positions a token covers.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
