package predict

import (
	"fmt"
	"strings"

	"github.com/npillmayer/topdown"
)

// EventKind classifies parser actions.
type EventKind int8

// Kinds of parser events.
const (
	Match   EventKind = iota // terminal matched, token consumed
	Predict                  // non-terminal expanded by a rule
	Error                    // syntax error reported
	Skip                     // input token discarded during recovery
	Pop                      // stack symbol discarded during recovery
	Accept                   // input accepted
	Reject                   // input not accepted
)

func (k EventKind) String() string {
	switch k {
	case Match:
		return "match"
	case Predict:
		return "predict"
	case Error:
		return "error"
	case Skip:
		return "skip"
	case Pop:
		return "pop"
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	}
	return "?"
}

// NoRule is the rule number of events not related to a rule.
const NoRule = -1

// Event is a step of the parser. Stack is a snapshot of the parse stack after
// the step, from bottom to top.
type Event struct {
	Kind    EventKind
	Stack   []string
	Token   topdown.Token // lookahead at the time of the step
	Rule    int           // rule applied for Predict, NoRule otherwise
	Message string
}

func (e Event) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-7s [%s] %s", e.Kind, strings.Join(e.Stack, " "),
		topdown.TokenString(e.Token)))
	if e.Rule != NoRule {
		b.WriteString(fmt.Sprintf(" rule %d", e.Rule))
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// SyntaxError describes a syntax error found during a parse.
type SyntaxError struct {
	Token    topdown.Token // offending lookahead
	Expected string        // symbol on top of the stack
	Msg      string
}

func (e *SyntaxError) Error() string {
	if e.Token == nil {
		return "syntax error: " + e.Msg
	}
	return fmt.Sprintf("syntax error at %s %v: %s", topdown.TokenString(e.Token),
		e.Token.Span(), e.Msg)
}

// Result is the outcome of a parse.
type Result struct {
	Accepted bool
	Errors   []*SyntaxError
	Trace    []Event
}

// Option configures a parser.
type Option func(p *Parser)

// SyncOn sets the names of the terminals recovery synchronizes on.
// The end marker is always a synchronization point.
func SyncOn(names ...string) Option {
	return func(p *Parser) {
		p.syncNames = append([]string(nil), names...)
	}
}

// WithListener sets a function to be called for every parser event.
func WithListener(f func(Event)) Option {
	return func(p *Parser) {
		p.listener = f
	}
}
