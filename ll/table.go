package ll

import (
	"fmt"

	"github.com/npillmayer/topdown/ll/sparse"
)

// Non-rule entries of a parse table. All other entries are rule numbers.
const (
	ErrorAction = -1 // skip the input token
	SyncAction  = -2 // pop the non-terminal without consuming input
)

// ParseTable is an LL(1) parse table, mapping (non-terminal, terminal) to a
// rule number, SyncAction or ErrorAction. Create one with BuildTable.
// Tables are immutable.
type ParseTable struct {
	g           *Grammar
	matrix      *sparse.IntMatrix
	rows        map[string]int
	cols        map[string]int
	fingerprint string
}

// ConflictError is returned by BuildTable for grammars which are not LL(1):
// two rules compete for the same table cell.
type ConflictError struct {
	Grammar     string
	NonTerminal string
	Terminal    string
	Rules       [2]*Rule
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("grammar %q is not LL(1): rules %d and %d conflict at (%s, %s)",
		e.Grammar, e.Rules[0].Serial, e.Rules[1].Serial, e.NonTerminal, e.Terminal)
}

// BuildTable constructs the LL(1) parse table for a grammar.
//
// Every rule A → α is entered at (A, a) for every terminal a of its predict
// set (see Grammar.PredictSet). If a cell is already occupied by a different
// rule, the grammar is not LL(1) and construction stops with a *ConflictError.
// No table is returned in this case.
//
// Remaining empty cells (A, a) are set to SyncAction if a ∈ FOLLOW(A), and
// to ErrorAction otherwise.
func BuildTable(g *Grammar) (*ParseTable, error) {
	if g == nil {
		return nil, fmt.Errorf("cannot build parse table for nil grammar")
	}
	t := &ParseTable{
		g:           g,
		rows:        make(map[string]int, len(g.nonterminals)),
		cols:        make(map[string]int, len(g.terminals)),
		fingerprint: g.Fingerprint(),
	}
	for i, A := range g.nonterminals {
		t.rows[A.Name] = i
	}
	for j, a := range g.terminals {
		t.cols[a.Name] = j
	}
	// Empty cells are stored as the null value, which reads as ErrorAction.
	t.matrix = sparse.NewIntMatrix(len(g.nonterminals), len(g.terminals), ErrorAction)
	tracer().Infof("LL(1) table of size %d x %d for grammar %q",
		len(g.nonterminals), len(g.terminals), g.Name)
	for _, r := range g.rules {
		la := g.PredictSet(r)
		tracer().Debugf("predict(%d) = %v for %v", r.Serial, la, r)
		i := t.rows[r.LHS.Name]
		for _, a := range la.Names() {
			j := t.cols[a]
			old := t.matrix.Set(i, j, int32(r.Serial))
			if old != t.matrix.NullValue() && int(old) != r.Serial {
				err := &ConflictError{
					Grammar:     g.Name,
					NonTerminal: r.LHS.Name,
					Terminal:    a,
					Rules:       [2]*Rule{g.rules[old], r},
				}
				tracer().Errorf("%v", err)
				return nil, err
			}
		}
	}
	for _, A := range g.nonterminals {
		follow := g.Follow(A.Name)
		for _, a := range g.terminals {
			i, j := t.rows[A.Name], t.cols[a.Name]
			if t.matrix.Value(i, j) == t.matrix.NullValue() && follow.Contains(a.Name) {
				t.matrix.Set(i, j, SyncAction)
			}
		}
	}
	return t, nil
}

// Grammar returns the grammar this table has been built for.
func (t *ParseTable) Grammar() *Grammar {
	return t.g
}

// Fingerprint returns the fingerprint of the table's grammar.
func (t *ParseTable) Fingerprint() string {
	return t.fingerprint
}

// Entry returns the table entry for non-terminal A and terminal a: a rule
// number, SyncAction or ErrorAction. Unknown symbols yield ErrorAction.
func (t *ParseTable) Entry(A, a string) int {
	i, ok := t.rows[A]
	if !ok {
		return ErrorAction
	}
	j, ok := t.cols[a]
	if !ok {
		return ErrorAction
	}
	return int(t.matrix.Value(i, j))
}

// EntryCount returns the number of cells holding a rule or SyncAction.
func (t *ParseTable) EntryCount() int {
	return t.matrix.ValueCount()
}

// Dump traces all the rule and sync entries of the table.
func (t *ParseTable) Dump() {
	tracer().Debugf("--- LL(1) table for %s -------------------", t.g.Name)
	t.matrix.Each(func(i, j int, v int32) {
		A, a := t.g.nonterminals[i], t.g.terminals[j]
		tracer().Debugf("M[%s, %s] = %s", A, a, EntryString(int(v)))
	})
	tracer().Debugf("-------------------------------------------")
}

// EntryString is a short helper to stringify a table entry.
func EntryString(v int) string {
	switch v {
	case ErrorAction:
		return "<error>"
	case SyncAction:
		return "<sync>"
	}
	return fmt.Sprintf("%d", v)
}
