package predict

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/scanner"
)

// DefaultSyncSet lists the default terminals for recovery to synchronize on.
// Names which are not terminals of a parser's grammar are ignored.
var DefaultSyncSet = []string{ll.EOFName, ll.EpsilonName, ";", ")"}

// Parser is an LL(1)-parser type. Create and initialize one with
// predict.NewParser(...). A parser may be re-used for more than one parse,
// but it is not safe for concurrent use.
type Parser struct {
	g         *ll.Grammar
	table     *ll.ParseTable
	syncNames []string
	sync      map[string]bool
	listener  func(Event)
	stack     *arraystack.Stack // symbol names
	scan      scanner.Tokenizer
	token     topdown.Token // lookahead
	result    *Result
}

// NewParser creates a predictive parser for grammar g. The parse table has
// to be built from g, otherwise an error is returned.
func NewParser(g *ll.Grammar, table *ll.ParseTable, opts ...Option) (*Parser, error) {
	if g == nil || table == nil {
		return nil, fmt.Errorf("LL(1)-parser needs a grammar and a parse table")
	}
	if g.Fingerprint() != table.Fingerprint() {
		return nil, fmt.Errorf("parse table has been built for grammar %q, not for %q",
			table.Grammar().Name, g.Name)
	}
	p := &Parser{
		g:         g,
		table:     table,
		syncNames: DefaultSyncSet,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.sync = map[string]bool{ll.EOFName: true}
	for _, a := range p.syncNames {
		if g.IsTerminal(a) || a == ll.EpsilonName {
			p.sync[a] = true
		} else {
			tracer().Infof("synchronization symbol %q is not a terminal of %q, ignored", a, g.Name)
		}
	}
	return p, nil
}

// Parse parses the tokens of a scanner until the parse stack is empty.
// Syntax errors are recovered from and collected in the result.
//
// Parse returns an error if the input has not been accepted, i.e. if there
// have been syntax errors. The result is valid in either case.
func (p *Parser) Parse(scan scanner.Tokenizer) (*Result, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if scan == nil {
		return nil, fmt.Errorf("LL(1)-parser needs a scanner")
	}
	p.scan = scan
	p.result = &Result{}
	p.stack = arraystack.New()
	p.stack.Push(ll.EOFName)
	p.stack.Push(p.g.StartSymbol().Name)
	p.advance()
	reachedEnd := false
	for !p.stack.Empty() {
		x, _ := p.stack.Peek()
		top := x.(string)
		la := p.lookahead()
		tracer().Debugf("top = %s, lookahead = %s", top, topdown.TokenString(p.token))
		switch {
		case top == ll.EOFName:
			p.stack.Pop()
			if p.atEOF() {
				reachedEnd = true
				p.emit(Match, NoRule, "end of input")
			} else {
				p.syntaxError(top, "input left after derivation completed")
			}
		case p.g.IsTerminal(top):
			if top == la {
				p.stack.Pop()
				p.emit(Match, NoRule, "")
				p.advance()
				break
			}
			p.syntaxError(top, fmt.Sprintf("expected %s", top))
			for !p.atEOF() && !p.sync[la] {
				p.emit(Skip, NoRule, "")
				p.advance()
				la = p.lookahead()
			}
			p.stack.Pop()
			p.emit(Pop, NoRule, fmt.Sprintf("dropped expectation %s", top))
		default:
			p.expand(top, la)
		}
	}
	p.result.Accepted = reachedEnd && len(p.result.Errors) == 0
	if p.result.Accepted {
		p.emit(Accept, NoRule, "")
		return p.result, nil
	}
	err := fmt.Errorf("input not accepted, %d syntax error(s)", len(p.result.Errors))
	if len(p.result.Errors) > 0 {
		err = fmt.Errorf("input not accepted, %d syntax error(s), first: %w",
			len(p.result.Errors), p.result.Errors[0])
	}
	p.emit(Reject, NoRule, err.Error())
	return p.result, err
}

// expand handles non-terminal A on top of the stack, given lookahead a.
func (p *Parser) expand(A, a string) {
	entry := p.table.Entry(A, a)
	tracer().Debugf("M[%s, %s] = %s", A, a, ll.EntryString(entry))
	switch entry {
	case ll.SyncAction:
		p.syntaxError(A, fmt.Sprintf("missing %s", A))
		p.stack.Pop()
		p.emit(Pop, NoRule, fmt.Sprintf("dropped %s", A))
	case ll.ErrorAction:
		p.syntaxError(A, fmt.Sprintf("unexpected input while parsing %s", A))
		if p.atEOF() { // cannot skip end of input
			p.stack.Pop()
			p.emit(Pop, NoRule, fmt.Sprintf("dropped %s", A))
			return
		}
		p.emit(Skip, NoRule, "")
		p.advance()
	default:
		rule := p.g.Rule(entry)
		p.stack.Pop()
		if !rule.IsEpsilon() {
			rhs := rule.RHS()
			for i := len(rhs) - 1; i >= 0; i-- {
				p.stack.Push(rhs[i].Name)
			}
		}
		p.emit(Predict, rule.Serial, rule.String())
	}
}

// --- Helpers ----------------------------------------------------------

func (p *Parser) advance() {
	p.token = p.scan.NextToken()
}

func (p *Parser) atEOF() bool {
	return p.token.TokType() == scanner.EOF
}

// lookahead returns the name of the terminal for the current token, or ""
// if the token category is not a terminal of the grammar.
func (p *Parser) lookahead() string {
	if a, ok := p.g.TerminalFor(p.token.TokType()); ok {
		return a.Name
	}
	return ""
}

func (p *Parser) syntaxError(expected, msg string) {
	err := &SyntaxError{Token: p.token, Expected: expected, Msg: msg}
	tracer().Errorf("%v", err)
	p.result.Errors = append(p.result.Errors, err)
	p.emit(Error, NoRule, msg)
}

func (p *Parser) emit(kind EventKind, rule int, msg string) {
	ev := Event{
		Kind:    kind,
		Stack:   p.snapshot(),
		Token:   p.token,
		Rule:    rule,
		Message: msg,
	}
	tracer().Debugf("%v", ev)
	p.result.Trace = append(p.result.Trace, ev)
	if p.listener != nil {
		p.listener(ev)
	}
}

// snapshot returns the stack symbols from bottom to top.
func (p *Parser) snapshot() []string {
	values := p.stack.Values() // top first
	stack := make([]string, len(values))
	for i, x := range values {
		stack[len(values)-1-i] = x.(string)
	}
	return stack
}
