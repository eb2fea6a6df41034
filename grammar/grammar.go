package grammar

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
)

// Rule is the set of alternative derivations for a non-terminal.
// The order of derivations is the order in which they have been defined.
type Rule struct {
	LHS         Symbol
	Derivations []Derivation
}

func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.LHS.String())
	b.WriteString(" ->")
	for i, d := range r.Derivations {
		if i > 0 {
			b.WriteString(" |")
		}
		b.WriteByte(' ')
		b.WriteString(d.String())
	}
	return b.String()
}

func (r *Rule) clone() *Rule {
	c := &Rule{LHS: r.LHS}
	for _, d := range r.Derivations {
		c.Derivations = append(c.Derivations, append(Derivation(nil), d...))
	}
	return c
}

// Grammar is a table of rules, one per non-terminal, plus a start symbol.
// Create one with a Builder or read it from text.
type Grammar struct {
	Name  string
	start Symbol
	rules *treemap.Map // Symbol -> *Rule, ordered by symbol
}

// Start returns the start symbol of the grammar.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return g.rules.Size()
}

// FindRule returns the rule for a non-terminal.
func (g *Grammar) FindRule(sym Symbol) (*Rule, bool) {
	if sym.IsTerminal() {
		return nil, false
	}
	r, found := g.rules.Get(sym)
	if !found {
		return nil, false
	}
	return r.(*Rule), true
}

// EachRule iterates over all the rules of the grammar, ordered by
// non-terminal name. The mapper's return value is ignored.
func (g *Grammar) EachRule(mapper func(r *Rule) interface{}) {
	it := g.rules.Iterator()
	for it.Next() {
		mapper(it.Value().(*Rule))
	}
}

// UndefinedSymbols returns all non-terminals which are referenced by a derivation,
// but have no rule. The result is sorted and free of duplicates.
//
// The recognizer reports an undefined non-terminal only when it has to expand it;
// UndefinedSymbols lets clients check a grammar ahead of time.
func (g *Grammar) UndefinedSymbols() []Symbol {
	missing := treeset.NewWith(symbolComparator)
	g.EachRule(func(r *Rule) interface{} {
		for _, d := range r.Derivations {
			for _, sym := range d {
				if sym.IsTerminal() {
					continue
				}
				if _, found := g.rules.Get(sym); !found {
					missing.Add(sym)
				}
			}
		}
		return nil
	})
	syms := make([]Symbol, 0, missing.Size())
	for _, x := range missing.Values() {
		syms = append(syms, x.(Symbol))
	}
	return syms
}

// String returns the grammar in the line-oriented source format, with the
// rule for the start symbol first. Reading it back results in an equivalent
// grammar.
func (g *Grammar) String() string {
	var b strings.Builder
	if r, ok := g.FindRule(g.start); ok {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	g.EachRule(func(r *Rule) interface{} {
		if r.LHS != g.start {
			b.WriteString(r.String())
			b.WriteByte('\n')
		}
		return nil
	})
	return b.String()
}

// Dump is a debugging helper, tracing the rules of the grammar.
func (g *Grammar) Dump() {
	tracer().Infof("--- Grammar %s ---------------------------------", g.Name)
	tracer().Infof("start: %s", g.start)
	n := 0
	g.EachRule(func(r *Rule) interface{} {
		for _, d := range r.Derivations {
			tracer().Infof("%3d: [%s] ::= [%s]", n, r.LHS, d)
			n++
		}
		return nil
	})
	tracer().Infof("-------------------------------------------------")
}

// === Builder ===============================================================

// Builder is a helper type to construct grammars. Errors are collected and
// reported by Grammar().
type Builder struct {
	name     string
	start    Symbol
	hasStart bool
	rules    *treemap.Map
	err      error
}

// NewBuilder returns a new grammar builder for a grammar with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:  name,
		rules: treemap.NewWith(symbolComparator),
	}
}

func (b *Builder) rule(name string) *Rule {
	lhs := N(name)
	if name == "" {
		b.fail("empty name for left hand side")
	}
	if !b.hasStart {
		b.start, b.hasStart = lhs, true
	}
	r, found := b.rules.Get(lhs)
	if !found {
		r = &Rule{LHS: lhs}
		b.rules.Put(lhs, r)
	}
	return r.(*Rule)
}

func (b *Builder) fail(msg string, params ...interface{}) {
	if b.err == nil {
		b.err = formatError(b.name, 0, 0, msg, params...)
	}
}

// LHS starts a new derivation for non-terminal name. Complete it with End().
func (b *Builder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{b: b, rule: b.rule(name)}
}

// Redefine drops all derivations for non-terminal name. The rule stays defined,
// even if no derivation is added afterwards.
func (b *Builder) Redefine(name string) *Builder {
	r := b.rule(name)
	tracer().Debugf("redefining rule %s", r.LHS)
	r.Derivations = nil
	return b
}

// Grammar returns the grammar built so far, or the first error encountered.
// Each call returns a grammar of its own, unaffected by later
// calls to the builder.
func (b *Builder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.rules.Empty() {
		return nil, formatError(b.name, 0, 0, "grammar has no rules")
	}
	g := &Grammar{
		Name:  b.name,
		start: b.start,
		rules: treemap.NewWith(symbolComparator),
	}
	b.rules.Each(func(k, v interface{}) {
		g.rules.Put(k, v.(*Rule).clone())
	})
	return g, nil
}

// RuleBuilder collects the symbols of a single derivation.
type RuleBuilder struct {
	b    *Builder
	rule *Rule
	rhs  Derivation
}

// N appends a non-terminal to the derivation.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	if name == "" {
		rb.b.fail("empty non-terminal name in rule for %s", rb.rule.LHS)
	}
	rb.rhs = append(rb.rhs, N(name))
	return rb
}

// T appends a terminal to the derivation.
func (rb *RuleBuilder) T(literal string) *RuleBuilder {
	rb.rhs = append(rb.rhs, T(literal))
	return rb
}

// End completes the derivation and adds it to the rule for the LHS.
func (rb *RuleBuilder) End() {
	if len(rb.rhs) == 0 {
		rb.b.fail("empty derivation for %s", rb.rule.LHS)
		return
	}
	rb.rule.Derivations = append(rb.rule.Derivations, rb.rhs)
	tracer().Debugf("rule %s -> %s", rb.rule.LHS, rb.rhs)
	rb.rhs = nil
}

// String is a debugging helper.
func (rb *RuleBuilder) String() string {
	return fmt.Sprintf("%s -> %s …", rb.rule.LHS, rb.rhs)
}
