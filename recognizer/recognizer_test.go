package recognizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unger/grammar"
	"github.com/npillmayer/unger/scanner"
)

func makeGrammar(t *testing.T, src string) *grammar.Grammar {
	g, err := grammar.ReadString("G", src)
	if err != nil {
		t.Fatalf("cannot read grammar: %v", err)
	}
	return g
}

func expect(t *testing.T, p *Parser, input string, accept bool) {
	t.Helper()
	ok, err := p.ParseString(input)
	if err != nil {
		t.Errorf("input %q: unexpected error: %v", input, err)
		return
	}
	if ok != accept {
		t.Errorf("input %q: expected accept=%v, have %v", input, accept, ok)
	}
}

// --- the Tests -------------------------------------------------------------

func TestEndToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	p := NewParser(makeGrammar(t, "S -> A B\nA -> 'a'\nB -> 'b'"))
	expect(t, p, "ab", true)
	expect(t, p, "ba", false)
	expect(t, p, "a", false)
	expect(t, p, "", false)
	expect(t, p, "abb", false)
}

func TestTerminalExactness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	p := NewParser(makeGrammar(t, "S -> 'a'"))
	expect(t, p, "a", true)
	expect(t, p, "aa", false)
	expect(t, p, "ab", false)
	expect(t, p, "A", false)
	p = NewParser(makeGrammar(t, "S -> 'ab' 'c'"))
	expect(t, p, "abc", true)
	expect(t, p, "abcc", false)
}

func TestFixedArityRow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	p := NewParser(makeGrammar(t, "S -> 'a' 'b' 'c'"))
	expect(t, p, "abc", true)
	expect(t, p, "axc", false)
	expect(t, p, "abx", false)
}

func TestDerivationDisjunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	p := NewParser(makeGrammar(t, "S -> X | 'y'\nX -> 'z' 'z'"))
	expect(t, p, "y", true)
	expect(t, p, "zz", true)
	expect(t, p, "z", false)
}

func TestCycleGuard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	p := NewParser(makeGrammar(t, "A -> A | 'x'"))
	expect(t, p, "x", true)
	expect(t, p, "y", false)
	p = NewParser(makeGrammar(t, "S -> A\nA -> B | 'a'\nB -> A"))
	expect(t, p, "a", true)
}

// The tentative 'false' entered for a goal under exploration may be cached
// for a goal which would match by a derivation not yet tried.
func TestCycleGuardOrderSensitivity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	p := NewParser(makeGrammar(t, "S -> A B\nA -> B | 'a'\nB -> A"))
	expect(t, p, "aa", false)
	p = NewParser(makeGrammar(t, "S -> A B\nA -> 'a' | B\nB -> A"))
	expect(t, p, "aa", true)
}

func TestRuleOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	p := NewParser(makeGrammar(t, "S -> 'a' | X\nX -> 'x'\nS -> 'b'"))
	expect(t, p, "b", true)
	expect(t, p, "a", false)
	expect(t, p, "x", false)
}

func TestPrefixUpperBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	// the first symbol has to be able to take all but one unit per other symbol
	p := NewParser(makeGrammar(t, "S -> AA 'b'\nAA -> 'a' 'a'"))
	expect(t, p, "aab", true)
	p = NewParser(makeGrammar(t, "S -> X 'c' 'd'\nX -> 'a' 'b'"))
	expect(t, p, "abcd", true)
}

func TestExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	p := NewParser(makeGrammar(t, `Sum -> Sum '+' Product | Product
Product -> Product '*' Factor | Factor
Factor -> '(' Sum ')' | Digit
Digit -> '1' | '2' | '3'`))
	for _, input := range []string{"1", "1+2", "1*2", "1+2*3", "1*(2+3)", "1+2+3+1", "1*2+3*1"} {
		expect(t, p, input, true)
	}
	for _, input := range []string{"", "+", "1+", "(1", "1**2", "4", "()"} {
		expect(t, p, input, false)
	}
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	p := NewParser(makeGrammar(t, "S -> A B\nA -> B | 'a'\nB -> A"))
	for i := 0; i < 5; i++ {
		expect(t, p, "aa", false)
		expect(t, p, "a", false)
	}
}

func TestGoalIdentityByText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	p := NewParser(makeGrammar(t, "S -> A A\nA -> 'a'"))
	res, err := p.Recognize(context.Background(), StringInput("aa"))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Accepted {
		t.Errorf("Expected 'aa' to be accepted")
	}
	if res.Stats.Goals != 3 || res.Stats.MemoHits != 1 {
		t.Errorf("Expected 3 goals and 1 memo hit, have %+v", res.Stats)
	}
}

func TestUndefinedSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	g := makeGrammar(t, "S -> A B | 'x' Y\nA -> 'a'")
	ok, err := Parse(g, "ab")
	var uerr *grammar.UndefinedSymbolError
	if !errors.As(err, &uerr) {
		t.Fatalf("Expected UndefinedSymbolError, have %v", err)
	}
	if ok || uerr.Symbol != grammar.N("B") {
		t.Errorf("Expected B to be reported as undefined, have %v", uerr.Symbol)
	}
	// undefined symbols are detected when they have to be expanded
	if ok, err = Parse(g, "b"); err != nil || ok {
		t.Errorf("Expected 'b' to be rejected without error, have %v, %v", ok, err)
	}
}

func TestRecursionLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	g := makeGrammar(t, "L -> 'a' L | 'a'")
	input := strings.Repeat("a", 100)
	ok, err := NewParser(g, MaxDepth(20)).ParseString(input)
	var rerr *RecursionLimitError
	if !errors.As(err, &rerr) || ok {
		t.Fatalf("Expected RecursionLimitError, have %v, %v", ok, err)
	}
	if rerr.Limit != 20 {
		t.Errorf("Expected limit 20 to be reported, have %d", rerr.Limit)
	}
	expect(t, NewParser(g), input, true)
	expect(t, NewParser(g, MaxDepth(0)), input, true)
}

func TestBudget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	g := makeGrammar(t, "S -> A B\nA -> 'a'\nB -> 'b'")
	_, err := NewParser(g, Budget(3)).ParseString("ab")
	var berr *BudgetExceededError
	if !errors.As(err, &berr) || berr.Budget != 3 {
		t.Errorf("Expected BudgetExceededError, have %v", err)
	}
	res, err := NewParser(g, Budget(5)).Recognize(context.Background(), StringInput("ab"))
	if err != nil || !res.Accepted {
		t.Errorf("Expected 'ab' to be accepted within 5 steps, have %v, %v", res.Accepted, err)
	}
	if res.Stats.Steps != 5 {
		t.Errorf("Expected 5 steps, have %d", res.Stats.Steps)
	}
}

func TestCancel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	g := makeGrammar(t, "S -> 'a'")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := NewParser(g).Recognize(ctx, StringInput("a"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected cancellation error, have %v", err)
	}
	if res.Accepted {
		t.Errorf("Expected interrupted run not to accept")
	}
}

func TestObserver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	var events []Event
	observer := func(ev Event) {
		events = append(events, ev)
	}
	g := makeGrammar(t, "S -> A A\nA -> 'a'")
	expect(t, NewParser(g, Observe(observer)), "aa", true)
	if len(events) == 0 {
		t.Fatalf("Expected observer to be called")
	}
	first, last := events[0], events[len(events)-1]
	if first.Kind != GoalAdded || first.Symbol != grammar.N("S") || first.Text != "aa" {
		t.Errorf("Expected first event to add goal S ⇒* aa, is %+v", first)
	}
	if last.Kind != GoalResolved || last.Symbol != grammar.N("S") || !last.Result {
		t.Errorf("Expected last event to resolve S to true, is %+v", last)
	}
	cached := 0
	for _, ev := range events {
		if ev.Kind == GoalCached {
			cached++
			if ev.Span.From() != 1 {
				t.Errorf("Expected cached goal at position 1, is %v", ev.Span)
			}
		}
	}
	if cached != 1 {
		t.Errorf("Expected 1 cache event, have %d", cached)
	}
	expect(t, NewParser(g, Observe(TraceObserver())), "aa", true)
}

func TestTokenInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unger.recognizer")
	defer teardown()
	//
	tokens := func(s string) *Input {
		return TokenInput(scanner.GoTokenizer("test", strings.NewReader(s)))
	}
	g := makeGrammar(t, "E -> E '+' T | T\nT -> 'x' | 'y' | 'foo'")
	p := NewParser(g)
	for _, x := range []struct {
		input  string
		accept bool
	}{
		{"x + y", true},
		{"foo+x", true},
		{"x +", false},
		{"fo o", false},
	} {
		in := tokens(x.input)
		if ok, err := p.Parse(in); err != nil || ok != x.accept {
			t.Errorf("tokens %q: expected accept=%v, have %v (%v)", x.input, x.accept, ok, err)
		}
	}
	// "ab" is a single identifier token, thus cannot be split among two terminals
	g = makeGrammar(t, "S -> 'a' 'b'")
	if ok, _ := NewParser(g).Parse(tokens("ab")); ok {
		t.Errorf("Expected token 'ab' not to match two terminals")
	}
	if ok, _ := NewParser(g).Parse(tokens("a b")); !ok {
		t.Errorf("Expected tokens 'a' 'b' to match two terminals")
	}
}

func TestInput(t *testing.T) {
	in := StringInput("aäb")
	if in.Len() != 3 {
		t.Fatalf("Expected 3 units, have %d", in.Len())
	}
	if text := in.Text(in.Span().Suffix(1)); text != "äb" {
		t.Errorf("Expected suffix 'äb', have %q", text)
	}
	if StringInput("").Len() != 0 {
		t.Errorf("Expected empty input to have no units")
	}
	tok := TokenInput(scanner.GoTokenizer("test", strings.NewReader("ab c d")))
	if tok.Len() != 3 || tok.Text(tok.Span()) != "abcd" {
		t.Errorf("Expected 3 tokens with text 'abcd', have %d, %q", tok.Len(), tok.Text(tok.Span()))
	}
	if tok.cuts(tok.Span()) != "2,3," {
		t.Errorf("Expected token cuts '2,3,', have %q", tok.cuts(tok.Span()))
	}
}
