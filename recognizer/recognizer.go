package recognizer

import (
	"context"
	"fmt"

	"github.com/npillmayer/unger"
	"github.com/npillmayer/unger/grammar"
)

// DefaultMaxDepth is the default limit for the recursion depth of a run.
const DefaultMaxDepth = 1 << 16

// Parser is a recognizer for the language of a grammar. Create one with
// NewParser.
type Parser struct {
	g        *grammar.Grammar
	maxDepth int
	budget   int64
	observer Observer
}

// Option configures a parser.
type Option func(p *Parser)

// MaxDepth limits the recursion depth of a run. Runs exceeding the limit fail
// with a *RecursionLimitError. Values < 1 select DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		p.maxDepth = n
	}
}

// Budget limits the number of symbol recognition steps of a run. Runs exceeding
// the budget fail with a *BudgetExceededError. A budget of 0 means no limit.
func Budget(steps int64) Option {
	return func(p *Parser) {
		if steps < 0 {
			steps = 0
		}
		p.budget = steps
	}
}

// Observe installs an observer, called at goal boundaries.
func Observe(o Observer) Option {
	return func(p *Parser) {
		p.observer = o
	}
}

// NewParser creates a recognizer for grammar g.
func NewParser(g *grammar.Grammar, opts ...Option) *Parser {
	p := &Parser{
		g:        g,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse recognizes an input with the grammar's start symbol.
// It returns false, together with an error, if the run could not be completed.
func Parse(g *grammar.Grammar, input string) (bool, error) {
	return NewParser(g).ParseString(input)
}

// ParseString recognizes a string, rune by rune.
func (p *Parser) ParseString(input string) (bool, error) {
	return p.Parse(StringInput(input))
}

// Parse recognizes an input with the grammar's start symbol.
func (p *Parser) Parse(input *Input) (bool, error) {
	res, err := p.Recognize(context.Background(), input)
	return res.Accepted, err
}

// Stats collects counters for a single run.
type Stats struct {
	Steps      int64 // symbol recognition steps, including memo hits
	Goals      int   // goals explored
	MemoHits   int64 // goals answered from the memo
	Partitions int64 // prefix lengths tried while partitioning spans
	MaxDepth   int   // deepest recursion reached
}

// Result is the outcome of a run.
type Result struct {
	Accepted bool
	Stats    Stats
}

// Recognize recognizes an input with the grammar's start symbol. The context
// is checked at every recognition step; if it is done, the run fails with the
// context's error.
//
// Every call uses a fresh memo, thus no state persists between calls.
func (p *Parser) Recognize(ctx context.Context, input *Input) (Result, error) {
	r := &run{
		p:     p,
		ctx:   ctx,
		input: input,
		memo:  memo{},
	}
	start := p.g.Start()
	tracer().Infof("recognizing %q with %s, start symbol %s", input.text, p.g.Name, start)
	ok, err := r.symbol(start, input.Span())
	if err != nil {
		tracer().Errorf("recognition aborted: %v", err)
		return Result{Stats: r.stats}, err
	}
	tracer().Infof("accept=%v after %d steps, %d goals, %d memo hits",
		ok, r.stats.Steps, r.stats.Goals, r.stats.MemoHits)
	return Result{Accepted: ok, Stats: r.stats}, nil
}

// --- A single run ----------------------------------------------------------

type run struct {
	p     *Parser
	ctx   context.Context
	input *Input
	memo  memo
	depth int
	stats Stats
}

func (r *run) goal(sym grammar.Symbol, span unger.Span) goal {
	return goal{
		sym:  sym,
		text: r.input.Text(span),
		cuts: r.input.cuts(span),
	}
}

// enter descends one level of recursion. Callers have to call leave
// if and only if enter returned true.
func (r *run) enter() bool {
	if r.depth >= r.p.maxDepth {
		return false
	}
	r.depth++
	if r.depth > r.stats.MaxDepth {
		r.stats.MaxDepth = r.depth
	}
	return true
}

func (r *run) tooDeep(what fmt.Stringer) error {
	return &RecursionLimitError{Limit: r.p.maxDepth, Goal: what.String()}
}

func (r *run) leave() {
	r.depth--
}

// step accounts for a symbol recognition step and checks budget and context.
func (r *run) step() error {
	r.stats.Steps++
	if r.p.budget > 0 && r.stats.Steps > r.p.budget {
		return &BudgetExceededError{Budget: r.p.budget}
	}
	if err := r.ctx.Err(); err != nil {
		return fmt.Errorf("recognition interrupted: %w", err)
	}
	return nil
}

func (r *run) notify(kind EventKind, g goal, span unger.Span, result bool) {
	if r.p.observer == nil {
		return
	}
	r.p.observer(Event{
		Kind:   kind,
		Symbol: g.sym,
		Span:   span,
		Text:   g.text,
		Result: result,
		Depth:  r.depth,
	})
}

// symbol decides whether sym derives the text of span.
func (r *run) symbol(sym grammar.Symbol, span unger.Span) (bool, error) {
	if err := r.step(); err != nil {
		return false, err
	}
	g := r.goal(sym, span)
	if !r.enter() {
		return false, r.tooDeep(g)
	}
	defer r.leave()
	if v, found := r.memo.lookup(g); found {
		r.stats.MemoHits++
		r.notify(GoalCached, g, span, v)
		return v, nil
	}
	r.memo.tentative(g) // guards against re-entering g while exploring it
	r.stats.Goals++
	r.notify(GoalAdded, g, span, false)
	if sym.IsTerminal() {
		ok := sym.Value == g.text && g.cuts == "" // tokens are never split or merged
		r.memo.resolve(g, ok)
		r.notify(GoalResolved, g, span, ok)
		return ok, nil
	}
	rule, found := r.p.g.FindRule(sym)
	if !found {
		return false, &grammar.UndefinedSymbolError{Symbol: sym}
	}
	for _, d := range rule.Derivations {
		ok, err := r.derivation(d, 0, span)
		if err != nil {
			return false, err
		}
		if ok {
			r.memo.resolve(g, true)
			r.notify(GoalResolved, g, span, true)
			return true, nil
		}
	}
	r.notify(GoalResolved, g, span, false)
	return false, nil
}

// derivation decides whether the symbols d[at:] jointly derive the text of span,
// trying every partition of span which assigns at least one unit to each symbol.
func (r *run) derivation(d grammar.Derivation, at int, span unger.Span) (bool, error) {
	if !r.enter() {
		return false, r.tooDeep(partition{d, at, span})
	}
	defer r.leave()
	remaining := uint64(len(d) - at)
	length := span.Len()
	switch {
	case remaining > length:
		return false, nil
	case remaining == length: // one unit per symbol
		for i := uint64(0); i < remaining; i++ {
			ok, err := r.symbol(d[at+int(i)], span.Unit(i))
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case remaining == 1:
		return r.symbol(d[at], span)
	}
	// d[at] takes a prefix of i units, leaving one unit for each other symbol
	for i := uint64(1); i <= length-remaining+1; i++ {
		r.stats.Partitions++
		ok, err := r.symbol(d[at], span.Prefix(i))
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		ok, err = r.derivation(d, at+1, span.Suffix(i))
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

// partition describes a derivation step for error messages.
type partition struct {
	d    grammar.Derivation
	at   int
	span unger.Span
}

func (p partition) String() string {
	return fmt.Sprintf("[%s] over %v", p.d[p.at:], p.span)
}
