package ll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFirstSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g := makeStraightLine(t)
	expected := map[string][]string{
		"P":   {"ID", "print"},
		"SL":  {"ID", "print"},
		"SL'": {";", EpsilonName},
		"S":   {"ID", "print"},
		"E":   {"(", "ID", "NUM"},
		"E'":  {"+", "-", EpsilonName},
		"T":   {"(", "ID", "NUM"},
		"T'":  {"*", EpsilonName},
		"F":   {"(", "ID", "NUM"},
	}
	for A, set := range expected {
		if !g.First(A).Equals(newTermSet(set...)) {
			t.Errorf("expected FIRST(%s) = %v, is %v", A, set, g.First(A))
		}
	}
	if !g.First("print").Equals(newTermSet("print")) {
		t.Errorf("expected FIRST(print) = {print}, is %v", g.First("print"))
	}
}

func TestFirstOfSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g := makeStraightLine(t)
	sym := func(name string) Symbol {
		A, ok := g.Symbol(name)
		if !ok {
			t.Fatalf("unknown symbol %s", name)
		}
		return A
	}
	assert := assert.New(t)
	assert.Equal([]string{EpsilonName}, g.FirstOfSequence(nil).Names())
	// names are sorted bytewise, so #eps comes first
	assert.Equal([]string{EpsilonName, "*", "+", "-"},
		g.FirstOfSequence([]Symbol{sym("T'"), sym("E'")}).Names())
	// T' is nullable, thus FIRST(F) joins in
	assert.Equal([]string{"(", "*", "ID", "NUM"},
		g.FirstOfSequence([]Symbol{sym("T'"), sym("F")}).Names())
	// F is not nullable, thus the scan stops before T'
	assert.Equal([]string{"(", "ID", "NUM"},
		g.FirstOfSequence([]Symbol{sym("F"), sym("T'")}).Names())
	assert.Equal([]string{"*", ";"},
		g.FirstOfSequence([]Symbol{sym("T'"), sym(";"), sym("E'")}).Names())
	assert.Equal([]string{EpsilonName},
		g.FirstOfSequence([]Symbol{EpsilonSymbol}).Names())
}

func TestFollowSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g := makeStraightLine(t)
	expected := map[string][]string{
		"P":   {EOFName},
		"SL":  {EOFName},
		"SL'": {EOFName},
		"S":   {";", EOFName},
		"E":   {")", ";", EOFName},
		"E'":  {")", ";", EOFName},
		"T":   {"+", "-", ")", ";", EOFName},
		"T'":  {"+", "-", ")", ";", EOFName},
		"F":   {"*", "+", "-", ")", ";", EOFName},
	}
	for A, set := range expected {
		F := g.Follow(A)
		if !F.Equals(newTermSet(set...)) {
			t.Errorf("expected FOLLOW(%s) = %v, is %v", A, set, F)
		}
		if F.HasEpsilon() {
			t.Errorf("FOLLOW(%s) must not contain epsilon", A)
		}
	}
}

// Mutually dependent FOLLOW-sets: FOLLOW(A) ⊆ FOLLOW(B) and FOLLOW(B) ⊆ FOLLOW(A).
func TestFollowCycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("cycle")
	b.LHS("S").N("A").T("q", 1).End()
	b.LHS("A").T("x", 2).N("B").End()
	b.LHS("B").T("y", 3).N("A").End()
	b.LHS("B").T("z", 4).End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"q"}, g.Follow("A").Names())
	assert.Equal(t, []string{"q"}, g.Follow("B").Names())
	assert.Equal(t, []string{EOFName}, g.Follow("S").Names())
}

func TestSetsIndependentOfRuleOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g := makeStraightLine(t)
	// same rules, start rule first, all other rules reversed
	b := NewGrammarBuilder("straight-line reversed")
	rules := g.Rules()
	b.LHS(rules[0].LHS.Name).N("SL").End()
	for i := len(rules) - 1; i > 0; i-- {
		rb := b.LHS(rules[i].LHS.Name)
		for _, A := range rules[i].RHS() {
			switch A.Kind {
			case NonTerminal:
				rb.N(A.Name)
			case Terminal:
				rb.T(A.Name, int(A.Token))
			}
		}
		rb.End()
	}
	h, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Fingerprint() == h.Fingerprint() {
		t.Errorf("expected grammars with different rule order to differ in fingerprint")
	}
	g.EachNonTerminal(func(A Symbol) {
		if !g.First(A.Name).Equals(h.First(A.Name)) {
			t.Errorf("FIRST(%s) differs: %v vs %v", A, g.First(A.Name), h.First(A.Name))
		}
		if !g.Follow(A.Name).Equals(h.Follow(A.Name)) {
			t.Errorf("FOLLOW(%s) differs: %v vs %v", A, g.Follow(A.Name), h.Follow(A.Name))
		}
	})
}

func TestPredictSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g := makeStraightLine(t)
	assert := assert.New(t)
	assert.Equal([]string{"ID", "print"}, g.PredictSet(g.Rule(0)).Names())
	assert.Equal([]string{EOFName}, g.PredictSet(g.Rule(3)).Names())
	assert.Equal([]string{"#eof", ")", ";"}, g.PredictSet(g.Rule(9)).Names())
	assert.Equal([]string{"(", "ID", "NUM"}, g.PredictSet(g.Rule(10)).Names())
}
