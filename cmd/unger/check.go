package main

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/unger/grammar"
	"github.com/npillmayer/unger/recognizer"
	"github.com/npillmayer/unger/scanner"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check GRAMMAR INPUT...",
		Short: "Check inputs against a grammar",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrammar(args[0])
			if err != nil {
				return err
			}
			p := recognizer.NewParser(g, a.cfg.parserOptions()...)
			for _, input := range args[1:] {
				v, err := a.check(cmd.Context(), p, input)
				if err != nil {
					return err
				}
				a.report(v)
			}
			return nil
		},
	}
}

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump GRAMMAR",
		Short: "Print a grammar and warn about undefined symbols",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrammar(args[0])
			if err != nil {
				return err
			}
			g.Dump()
			printGrammar(g)
			for _, sym := range g.UndefinedSymbols() {
				pterm.Warning.Printf("no rule for non-terminal %s\n", sym)
			}
			return nil
		},
	}
}

func (a *app) loadGrammar(path string) (*grammar.Grammar, error) {
	g, err := grammar.ReadFile(a.fs, path)
	if err != nil {
		return nil, err
	}
	tracer().Infof("grammar %s has %d rules, start symbol %s", g.Name, g.Size(), g.Start())
	return g, nil
}

// verdict is the outcome of checking one input.
type verdict struct {
	input  string
	result recognizer.Result
}

// check recognizes a single input. Rejection is not an error.
func (a *app) check(ctx context.Context, p *recognizer.Parser, input string) (verdict, error) {
	in, err := a.makeInput(input)
	if err != nil {
		return verdict{input: input}, err
	}
	res, err := p.Recognize(ctx, in)
	if err != nil {
		return verdict{input: input, result: res}, errors.Wrapf(err, "input %q", input)
	}
	if !res.Accepted {
		a.rejected = true
	}
	return verdict{input: input, result: res}, nil
}

// makeInput splits an input into runes or, with tokens enabled, into Go-style
// tokens.
func (a *app) makeInput(input string) (*recognizer.Input, error) {
	if !a.cfg.Tokens {
		return recognizer.StringInput(input), nil
	}
	var scanErr error
	tokenizer := scanner.GoTokenizer("input", strings.NewReader(input))
	tokenizer.SetErrorHandler(func(err error) {
		if scanErr == nil {
			scanErr = err
		}
	})
	in := recognizer.TokenInput(tokenizer)
	if scanErr != nil {
		return nil, errors.Wrapf(scanErr, "cannot tokenize %q", input)
	}
	return in, nil
}

func (a *app) report(v verdict) {
	if v.result.Accepted {
		pterm.Success.Printf("accepted: %q\n", v.input)
	} else {
		pterm.Warning.Printf("rejected: %q\n", v.input)
	}
	if a.cfg.Stats {
		printStats(v.result.Stats)
	}
}

func printStats(s recognizer.Stats) {
	pterm.Info.Printf("%d steps, %d goals, %d memo hits, %d partitions, depth %d\n",
		s.Steps, s.Goals, s.MemoHits, s.Partitions, s.MaxDepth)
}

// grammarTable lays out the rules of g, start rule first.
func grammarTable(g *grammar.Grammar) pterm.TableData {
	data := pterm.TableData{{"Non-terminal", "Derivations"}}
	row := func(r *grammar.Rule) []string {
		alts := make([]string, len(r.Derivations))
		for i, d := range r.Derivations {
			alts[i] = d.String()
		}
		return []string{r.LHS.Value, strings.Join(alts, " | ")}
	}
	if r, ok := g.FindRule(g.Start()); ok {
		data = append(data, row(r))
	}
	g.EachRule(func(r *grammar.Rule) interface{} {
		if r.LHS != g.Start() {
			data = append(data, row(r))
		}
		return nil
	})
	return data
}

func printGrammar(g *grammar.Grammar) {
	pterm.Info.Printfln("grammar %s, start symbol %s", g.Name, g.Start())
	pterm.DefaultTable.WithHasHeader().WithData(grammarTable(g)).Render()
}
