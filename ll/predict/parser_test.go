package predict

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/topdown/ll"
	"github.com/npillmayer/topdown/ll/scanner"
	"github.com/stretchr/testify/assert"
)

//   0: E  → T E'
//   1: E' → + T E'
//   2: E' → #eps
//   3: T  → F T'
//   4: T' → * F T'
//   5: T' → #eps
//   6: F  → ( E )
//   7: F  → id
//   8: F  → num
func makeExprGrammar(t *testing.T) (*ll.Grammar, *ll.ParseTable) {
	b := ll.NewGrammarBuilder("expr")
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T("+", '+').N("T").N("E'").End()
	b.LHS("E'").Epsilon()
	b.LHS("T").N("F").N("T'").End()
	b.LHS("T'").T("*", '*').N("F").N("T'").End()
	b.LHS("T'").Epsilon()
	b.LHS("F").T("(", '(').N("E").T(")", ')').End()
	b.LHS("F").T("id", scanner.Ident).End()
	b.LHS("F").T("num", scanner.Int).End()
	return buildTable(t, b)
}

//   0: L → S L
//   1: L → #eps
//   2: S → id = num ;
func makeAssignGrammar(t *testing.T) (*ll.Grammar, *ll.ParseTable) {
	b := ll.NewGrammarBuilder("assignments")
	b.LHS("L").N("S").N("L").End()
	b.LHS("L").Epsilon()
	b.LHS("S").T("id", scanner.Ident).T("=", '=').T("num", scanner.Int).T(";", ';').End()
	return buildTable(t, b)
}

func buildTable(t *testing.T, b *ll.GrammarBuilder) (*ll.Grammar, *ll.ParseTable) {
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	table, err := ll.BuildTable(g)
	if err != nil {
		t.Fatal(err)
	}
	return g, table
}

func parse(t *testing.T, g *ll.Grammar, table *ll.ParseTable, input string, opts ...Option) (*Result, error) {
	p, err := NewParser(g, table, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return p.Parse(scanner.GoTokenizer(t.Name(), strings.NewReader(input)))
}

func kinds(trace []Event) []EventKind {
	k := make([]EventKind, len(trace))
	for i, ev := range trace {
		k[i] = ev.Kind
	}
	return k
}

func count(trace []Event, kind EventKind) int {
	n := 0
	for _, ev := range trace {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestParseAccept(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, table := makeExprGrammar(t)
	for _, input := range []string{"a", "1+2", "a + b * (c + 1)", "((x))*y*3"} {
		result, err := parse(t, g, table, input)
		if err != nil {
			t.Errorf("input %q: unexpected error: %v", input, err)
			continue
		}
		assert.True(t, result.Accepted, input)
		assert.Empty(t, result.Errors, input)
		last := result.Trace[len(result.Trace)-1]
		assert.Equal(t, Accept, last.Kind)
		assert.Empty(t, last.Stack)
		assert.Equal(t, scanner.EOF, int(last.Token.TokType()))
	}
}

func TestParseTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, table := makeExprGrammar(t)
	result, err := parse(t, g, table, "a")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []EventKind{Predict, Predict, Predict, Match, Predict, Predict, Match, Accept},
		kinds(result.Trace))
	rules := make([]int, len(result.Trace))
	for i, ev := range result.Trace {
		rules[i] = ev.Rule
	}
	assert.Equal(t, []int{0, 3, 7, NoRule, 5, 2, NoRule, NoRule}, rules)
	assert.Equal(t, []string{ll.EOFName, "E'", "T"}, result.Trace[0].Stack)
	assert.Equal(t, []string{ll.EOFName, "E'", "T'", "id"}, result.Trace[2].Stack)
	// the trace is reproducible
	again, _ := parse(t, g, table, "a")
	assert.Equal(t, len(result.Trace), len(again.Trace))
	for i := range result.Trace {
		assert.Equal(t, result.Trace[i].String(), again.Trace[i].String())
	}
}

func TestParseSyncAndExtraInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, table := makeExprGrammar(t)
	result, err := parse(t, g, table, "a + )")
	if err == nil {
		t.Fatalf("expected syntax errors for 'a + )'")
	}
	assert.False(t, result.Accepted)
	if assert.Len(t, result.Errors, 2) {
		assert.Equal(t, "T", result.Errors[0].Expected) // T missing, sync
		assert.Equal(t, ll.EOFName, result.Errors[1].Expected)
		assert.Equal(t, ")", result.Errors[1].Token.Lexeme())
	}
	assert.Equal(t, Reject, result.Trace[len(result.Trace)-1].Kind)
}

func TestParseRecovery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, table := makeAssignGrammar(t)
	result, err := parse(t, g, table, "a 1 ; b = 2 ;")
	assert.Error(t, err)
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, 1, count(result.Trace, Skip))
	assert.Equal(t, 2, count(result.Trace, Pop))
	// a ; b = 2 ; and the end marker
	assert.Equal(t, 7, count(result.Trace, Match))
}

func TestSyncOn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, table := makeAssignGrammar(t)
	result, err := parse(t, g, table, "a 1 ; b = 2 ;", SyncOn())
	assert.Error(t, err)
	assert.Len(t, result.Errors, 3)
	assert.Equal(t, 6, count(result.Trace, Skip))
	result, err = parse(t, g, table, "a 1 ; b = 2 ;", SyncOn(";", "unknown"))
	assert.Error(t, err)
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, 1, count(result.Trace, Skip))
}

func TestParseTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, table := makeExprGrammar(t)
	inputs := []string{
		"",
		"+ + + + + +",
		"( ( ( ( (",
		") ) ) )",
		"a b c d",
		"* 1 ( ; ; ;",
		"a + ",
	}
	for _, input := range inputs {
		steps := 0
		listener := func(ev Event) {
			steps++
			if steps > 1000 {
				t.Fatalf("input %q: parser does not terminate", input)
			}
		}
		result, err := parse(t, g, table, input, WithListener(listener))
		assert.Error(t, err, input)
		assert.False(t, result.Accepted, input)
		assert.NotEmpty(t, result.Errors, input)
		assert.Equal(t, len(result.Trace), steps, input)
		assert.Empty(t, result.Trace[len(result.Trace)-1].Stack, input)
	}
}

func TestTableMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, _ := makeExprGrammar(t)
	_, table := makeAssignGrammar(t)
	if _, err := NewParser(g, table); err == nil {
		t.Errorf("expected parser construction to fail for a foreign parse table")
	}
	if _, err := NewParser(g, nil); err == nil {
		t.Errorf("expected parser construction to fail without a parse table")
	}
}

func TestParserReuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	g, table := makeExprGrammar(t)
	p, err := NewParser(g, table)
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Parse(scanner.GoTokenizer("1", strings.NewReader("a +")))
	assert.Error(t, err)
	result, err := p.Parse(scanner.GoTokenizer("2", strings.NewReader("a + b")))
	assert.NoError(t, err)
	assert.True(t, result.Accepted)
}
