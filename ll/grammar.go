package ll

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/topdown"
	"github.com/npillmayer/topdown/ll/scanner"
)

// SymbolKind classifies grammar symbols.
type SymbolKind int8

// Kinds of grammar symbols. The end marker stands for the end of input and
// behaves like a terminal.
const (
	Terminal SymbolKind = iota
	NonTerminal
	Epsilon
	EndMarker
)

func (k SymbolKind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	case Epsilon:
		return "epsilon"
	case EndMarker:
		return "end-marker"
	}
	return "?"
}

// Names of the pre-defined symbols.
const (
	EpsilonName = "#eps"
	EOFName     = "#eof"
)

// Symbol is a symbol of a grammar. Symbols are values and never change.
// Terminals and the end marker carry the token category a scanner reports
// for them.
type Symbol struct {
	Name  string
	Kind  SymbolKind
	Token topdown.TokType
}

// EpsilonSymbol is the right hand side of epsilon productions.
var EpsilonSymbol = Symbol{Name: EpsilonName, Kind: Epsilon}

// EOFSymbol is the end marker, matched by the scanner's EOF token.
var EOFSymbol = Symbol{Name: EOFName, Kind: EndMarker, Token: scanner.EOF}

// IsTerminal is true for terminals and for the end marker.
func (A Symbol) IsTerminal() bool {
	return A.Kind == Terminal || A.Kind == EndMarker
}

// Equals compares symbols by name and kind.
func (A Symbol) Equals(B Symbol) bool {
	return A.Name == B.Name && A.Kind == B.Kind
}

func (A Symbol) String() string {
	return A.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is a production rule of a grammar. Serial is the position of the
// rule within its grammar; parse tables store this number.
type Rule struct {
	Serial int
	LHS    Symbol
	rhs    []Symbol
}

// RHS returns a copy of the right hand side of a rule.
func (r *Rule) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs...)
}

// IsEpsilon is true for rules X → #eps.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 1 && r.rhs[0].Kind == Epsilon
}

// Equals compares rules structurally, i.e. by LHS and RHS. The serial number
// does not take part in the comparison.
func (r *Rule) Equals(other *Rule) bool {
	if r == nil || other == nil {
		return r == other
	}
	if !r.LHS.Equals(other.LHS) || len(r.rhs) != len(other.rhs) {
		return false
	}
	for i, A := range r.rhs {
		if !A.Equals(other.rhs[i]) {
			return false
		}
	}
	return true
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("[%s] ::= [", r.LHS.Name))
	for i, A := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(A.Name)
	}
	b.WriteString("]")
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a context-free grammar. Grammars are created using a
// GrammarBuilder and are immutable afterwards, including their FIRST- and
// FOLLOW-sets.
type Grammar struct {
	Name         string
	rules        []*Rule
	terminals    []Symbol // in order of appearance, end marker last
	nonterminals []Symbol // in order of appearance
	symbols      map[string]Symbol
	tokens       map[topdown.TokType]Symbol
	first        map[string]*TermSet
	follow       map[string]*TermSet
	fingerprint  string
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule no. i, or nil if i is out of range.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns the rules of g, in order.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// StartSymbol returns the LHS of the first rule.
func (g *Grammar) StartSymbol() Symbol {
	return g.rules[0].LHS
}

// Terminals returns the terminals of g, including the end marker.
func (g *Grammar) Terminals() []Symbol {
	return append([]Symbol(nil), g.terminals...)
}

// NonTerminals returns the non-terminals of g.
func (g *Grammar) NonTerminals() []Symbol {
	return append([]Symbol(nil), g.nonterminals...)
}

// IsTerminal checks a symbol name against the terminal set of g. The end
// marker counts as a terminal.
func (g *Grammar) IsTerminal(name string) bool {
	A, ok := g.symbols[name]
	return ok && A.IsTerminal()
}

// IsNonTerminal checks a symbol name against the non-terminal set of g.
func (g *Grammar) IsNonTerminal(name string) bool {
	A, ok := g.symbols[name]
	return ok && A.Kind == NonTerminal
}

// Symbol looks up a terminal or non-terminal by name.
func (g *Grammar) Symbol(name string) (Symbol, bool) {
	A, ok := g.symbols[name]
	return A, ok
}

// TerminalFor returns the terminal a scanner token category stands for.
func (g *Grammar) TerminalFor(tokval topdown.TokType) (Symbol, bool) {
	A, ok := g.tokens[tokval]
	return A, ok
}

// EachNonTerminal calls f for every non-terminal, in order of appearance.
func (g *Grammar) EachNonTerminal(f func(A Symbol)) {
	for _, A := range g.nonterminals {
		f(A)
	}
}

// EachTerminal calls f for every terminal, including the end marker.
func (g *Grammar) EachTerminal(f func(a Symbol)) {
	for _, a := range g.terminals {
		f(a)
	}
}

// RulesFor returns all the rules with LHS A, in order.
func (g *Grammar) RulesFor(A string) []*Rule {
	var R []*Rule
	for _, r := range g.rules {
		if r.LHS.Name == A {
			R = append(R, r)
		}
	}
	return R
}

// Fingerprint is a hash over the rules and the token categories of g.
// Grammars with identical rules in identical order share a fingerprint.
func (g *Grammar) Fingerprint() string {
	return g.fingerprint
}

// Dump traces the rules of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ----------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------")
}

type ruleDigest struct {
	LHS string
	RHS []string
}

type tokenDigest struct {
	Name  string
	Token int
}

func (g *Grammar) computeFingerprint() error {
	digest := struct {
		Rules  []ruleDigest
		Tokens []tokenDigest
	}{}
	for _, r := range g.rules {
		d := ruleDigest{LHS: r.LHS.Name}
		for _, A := range r.rhs {
			d.RHS = append(d.RHS, A.Name)
		}
		digest.Rules = append(digest.Rules, d)
	}
	for _, a := range g.terminals {
		digest.Tokens = append(digest.Tokens, tokenDigest{Name: a.Name, Token: int(a.Token)})
	}
	h, err := structhash.Hash(digest, 1)
	if err != nil {
		return fmt.Errorf("cannot compute fingerprint of grammar %q: %w", g.Name, err)
	}
	g.fingerprint = h
	return nil
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is a tool to construct a grammar, rule by rule.
//
//    b := NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a", 1).End()  // S  ->  A a
//    b.LHS("A").Epsilon()               // A  ->  #eps
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	name  string
	rules []*Rule
	errs  []error
}

// NewGrammarBuilder creates a builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{name: name}
}

// RuleBuilder collects the right hand side of a rule. Create one with
// GrammarBuilder.LHS and finish it with End or Epsilon.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Symbol
	rhs []Symbol
}

// LHS starts a new rule for non-terminal name.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{
		gb:  gb,
		lhs: Symbol{Name: name, Kind: NonTerminal},
	}
}

// N appends a non-terminal to the RHS.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, Symbol{Name: name, Kind: NonTerminal})
	return rb
}

// T appends a terminal to the RHS. tokval is the token category a scanner
// reports for this terminal.
func (rb *RuleBuilder) T(name string, tokval int) *RuleBuilder {
	rb.rhs = append(rb.rhs, Symbol{Name: name, Kind: Terminal, Token: topdown.TokType(tokval)})
	return rb
}

// End finishes a rule. A rule with an empty RHS is an epsilon production.
func (rb *RuleBuilder) End() {
	if len(rb.rhs) == 0 {
		rb.rhs = []Symbol{EpsilonSymbol}
	}
	rb.gb.appendRule(rb.lhs, rb.rhs)
}

// Epsilon finishes a rule as an epsilon production. It is an error to call
// Epsilon after symbols have been appended.
func (rb *RuleBuilder) Epsilon() {
	if len(rb.rhs) > 0 {
		rb.gb.errs = append(rb.gb.errs,
			fmt.Errorf("rule for %s: epsilon must be the only symbol of a right hand side", rb.lhs))
		return
	}
	rb.gb.appendRule(rb.lhs, []Symbol{EpsilonSymbol})
}

func (gb *GrammarBuilder) appendRule(lhs Symbol, rhs []Symbol) {
	r := &Rule{
		Serial: len(gb.rules),
		LHS:    lhs,
		rhs:    rhs,
	}
	gb.rules = append(gb.rules, r)
}

// Grammar validates the rules and returns the grammar, with FIRST- and
// FOLLOW-sets computed.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.errs) > 0 {
		return nil, gb.errs[0]
	}
	if len(gb.rules) == 0 {
		return nil, fmt.Errorf("grammar %q has no rules", gb.name)
	}
	g := &Grammar{
		Name:    gb.name,
		rules:   append([]*Rule(nil), gb.rules...),
		symbols: make(map[string]Symbol),
		tokens:  make(map[topdown.TokType]Symbol),
	}
	hasRules := make(map[string]bool)
	for _, r := range g.rules {
		hasRules[r.LHS.Name] = true
		if err := g.declare(r.LHS); err != nil {
			return nil, err
		}
		for _, A := range r.rhs {
			if A.Kind == Epsilon {
				continue
			}
			if err := g.declare(A); err != nil {
				return nil, err
			}
		}
	}
	for _, A := range g.nonterminals {
		if !hasRules[A.Name] {
			return nil, fmt.Errorf("grammar %q: non-terminal %s has no rules", g.Name, A)
		}
	}
	g.terminals = append(g.terminals, EOFSymbol)
	g.symbols[EOFName] = EOFSymbol
	g.tokens[EOFSymbol.Token] = EOFSymbol
	if err := g.computeFingerprint(); err != nil {
		return nil, err
	}
	g.computeFirst()
	g.computeFollow()
	return g, nil
}

// declare enters a symbol into the symbol table of g and checks it for
// consistency with earlier appearances.
func (g *Grammar) declare(A Symbol) error {
	if A.Name == "" {
		return fmt.Errorf("grammar %q: symbol with empty name", g.Name)
	}
	if A.Name == EpsilonName || A.Name == EOFName {
		return fmt.Errorf("grammar %q: symbol name %s is reserved", g.Name, A.Name)
	}
	if B, ok := g.symbols[A.Name]; ok {
		if B.Kind != A.Kind {
			return fmt.Errorf("grammar %q: %s used as %s and as %s", g.Name, A, B.Kind, A.Kind)
		}
		if A.Kind == Terminal && B.Token != A.Token {
			return fmt.Errorf("grammar %q: terminal %s bound to token categories %d and %d",
				g.Name, A, B.Token, A.Token)
		}
		return nil
	}
	if A.Kind == Terminal {
		if A.Token == EOFSymbol.Token {
			return fmt.Errorf("grammar %q: terminal %s uses the EOF token category", g.Name, A)
		}
		if B, ok := g.tokens[A.Token]; ok {
			return fmt.Errorf("grammar %q: terminals %s and %s share token category %d",
				g.Name, B, A, A.Token)
		}
		g.tokens[A.Token] = A
		g.terminals = append(g.terminals, A)
	} else {
		g.nonterminals = append(g.nonterminals, A)
	}
	g.symbols[A.Name] = A
	return nil
}
