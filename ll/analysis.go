package ll

import (
	"bytes"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
)

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.,
// chapter on LL(1) grammars and parsers.

// === Terminal sets =========================================================

// TermSet is a set of terminal names, possibly including #eps.
// Iteration order is lexicographic, thus independent from the order in which
// terminals have been added. TermSets handed out by a Grammar are read-only.
type TermSet struct {
	set *treeset.Set
}

func newTermSet(names ...string) *TermSet {
	S := &TermSet{set: treeset.NewWithStringComparator()}
	for _, a := range names {
		S.set.Add(a)
	}
	return S
}

// Contains checks if terminal a is a member of S.
func (S *TermSet) Contains(a string) bool {
	return S != nil && S.set.Contains(a)
}

// HasEpsilon is a shortcut for S.Contains(EpsilonName).
func (S *TermSet) HasEpsilon() bool {
	return S.Contains(EpsilonName)
}

// Size returns the number of members.
func (S *TermSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Names returns the members of S, sorted.
func (S *TermSet) Names() []string {
	if S == nil {
		return nil
	}
	names := make([]string, 0, S.set.Size())
	for _, x := range S.set.Values() {
		names = append(names, x.(string))
	}
	return names
}

// Equals is true if S and T have the same members.
func (S *TermSet) Equals(T *TermSet) bool {
	if S.Size() != T.Size() {
		return false
	}
	for _, a := range S.Names() {
		if !T.Contains(a) {
			return false
		}
	}
	return true
}

func (S *TermSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, a := range S.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a)
	}
	b.WriteString("}")
	return b.String()
}

func (S *TermSet) add(a string) bool {
	if S.set.Contains(a) {
		return false
	}
	S.set.Add(a)
	return true
}

// union adds all members of T to S, leaving out #eps if withoutEps is set.
// It returns true if S has grown.
func (S *TermSet) union(T *TermSet, withoutEps bool) bool {
	changed := false
	for _, a := range T.Names() {
		if withoutEps && a == EpsilonName {
			continue
		}
		if S.add(a) {
			changed = true
		}
	}
	return changed
}

// === FIRST =================================================================

// First returns FIRST(A). For a terminal a, FIRST(a) = {a}. Unknown symbols
// have an empty FIRST-set.
func (g *Grammar) First(A string) *TermSet {
	if S, ok := g.first[A]; ok {
		return S
	}
	if g.IsTerminal(A) {
		return newTermSet(A)
	}
	return newTermSet()
}

// FirstOfSequence computes FIRST for a sequence of grammar symbols. The
// sequence is scanned from left to right: a terminal or #eps ends the scan,
// a non-terminal contributes its FIRST-set (without #eps) and ends the scan
// unless it is nullable. If every symbol of the sequence is nullable,
// #eps is a member of the result. FIRST of the empty sequence is {#eps}.
func (g *Grammar) FirstOfSequence(seq []Symbol) *TermSet {
	F := newTermSet()
	for _, A := range seq {
		switch A.Kind {
		case Terminal, EndMarker:
			F.add(A.Name)
			return F
		case Epsilon:
			F.add(EpsilonName)
			return F
		}
		firstA := g.first[A.Name]
		F.union(firstA, true)
		if !firstA.HasEpsilon() {
			return F
		}
	}
	F.add(EpsilonName)
	return F
}

// computeFirst iterates FIRST[lhs] ∪= FIRST(rhs) over all rules until a fixed
// point is reached. Sets only grow and are bounded by the terminal set,
// therefore the iteration terminates.
func (g *Grammar) computeFirst() {
	g.first = make(map[string]*TermSet, len(g.nonterminals))
	for _, A := range g.nonterminals {
		g.first[A.Name] = newTermSet()
	}
	rounds := 0
	for changed := true; changed; rounds++ {
		changed = false
		for _, r := range g.rules {
			if g.first[r.LHS.Name].union(g.FirstOfSequence(r.rhs), false) {
				changed = true
			}
		}
	}
	tracer().Debugf("FIRST sets of %q stable after %d rounds", g.Name, rounds)
	for _, A := range g.nonterminals {
		tracer().Debugf("FIRST(%s) = %v", A, g.first[A.Name])
	}
}

// === FOLLOW ================================================================

// Follow returns FOLLOW(A). FOLLOW-sets never contain #eps, but may contain
// the end marker #eof.
func (g *Grammar) Follow(A string) *TermSet {
	if S, ok := g.follow[A]; ok {
		return S
	}
	return newTermSet()
}

// computeFollow computes all FOLLOW-sets in two steps.
//
// First, for every occurrence of a non-terminal B in a rule A → α B β, the
// non-epsilon members of FIRST(β) are added to FOLLOW(B). If β is nullable,
// FOLLOW(A) ⊆ FOLLOW(B) is recorded as an edge A → B.
//
// Second, a worklist propagates FOLLOW-sets along the edges. A non-terminal
// re-enters the worklist whenever its FOLLOW-set grows. Cyclic dependencies
// between FOLLOW-sets are harmless: propagation stops as soon as no set
// grows any more.
func (g *Grammar) computeFollow() {
	g.follow = make(map[string]*TermSet, len(g.nonterminals))
	for _, A := range g.nonterminals {
		g.follow[A.Name] = newTermSet()
	}
	g.follow[g.StartSymbol().Name].add(EOFName)
	edges := make(map[string]*arraylist.List)
	for _, r := range g.rules {
		for i, B := range r.rhs {
			if B.Kind != NonTerminal {
				continue
			}
			firstBeta := g.FirstOfSequence(r.rhs[i+1:])
			g.follow[B.Name].union(firstBeta, true)
			if firstBeta.HasEpsilon() && B.Name != r.LHS.Name {
				succ, ok := edges[r.LHS.Name]
				if !ok {
					succ = arraylist.New()
					edges[r.LHS.Name] = succ
				}
				if !succ.Contains(B.Name) {
					succ.Add(B.Name)
				}
			}
		}
	}
	worklist := arraylist.New()
	for _, A := range g.nonterminals {
		worklist.Add(A.Name)
	}
	steps := 0
	for !worklist.Empty() {
		x, _ := worklist.Get(0)
		worklist.Remove(0)
		A := x.(string)
		steps++
		succ, ok := edges[A]
		if !ok {
			continue
		}
		it := succ.Iterator()
		for it.Next() {
			B := it.Value().(string)
			if g.follow[B].union(g.follow[A], false) && !worklist.Contains(B) {
				worklist.Add(B)
			}
		}
	}
	tracer().Debugf("FOLLOW sets of %q stable after %d worklist steps", g.Name, steps)
	for _, A := range g.nonterminals {
		tracer().Debugf("FOLLOW(%s) = %v", A, g.follow[A.Name])
	}
}

// PredictSet returns the set of lookahead terminals which select rule r:
// FIRST(rhs) without #eps, plus FOLLOW(lhs) if the RHS is nullable.
func (g *Grammar) PredictSet(r *Rule) *TermSet {
	firstRHS := g.FirstOfSequence(r.rhs)
	P := newTermSet()
	P.union(firstRHS, true)
	if firstRHS.HasEpsilon() {
		P.union(g.Follow(r.LHS.Name), false)
	}
	return P
}
