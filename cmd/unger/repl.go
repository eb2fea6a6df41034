package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/unger/grammar"
	"github.com/npillmayer/unger/recognizer"
)

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl GRAMMAR",
		Short: "Check input lines interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrammar(args[0])
			if err != nil {
				return err
			}
			rl, err := readline.New("unger> ")
			if err != nil {
				return err
			}
			defer rl.Close()
			intp := &Intp{
				app:    a,
				g:      g,
				parser: recognizer.NewParser(g, a.cfg.parserOptions()...),
				repl:   rl,
			}
			pterm.Info.Println("Welcome to the Unger REPL")
			tracer().Infof("Quit with <ctrl>D")
			intp.REPL(cmd)
			a.rejected = false // exit code of the REPL ignores rejections
			return nil
		},
	}
}

// Intp is our interpreter object.
type Intp struct {
	app    *app
	g      *grammar.Grammar
	parser *recognizer.Parser
	repl   *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL(cmd *cobra.Command) {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if intp.Eval(cmd, line) {
			break
		}
	}
	println("Good bye!")
}

// Eval checks a line against the grammar. Lines starting with a colon are
// commands:
//
//	:grammar   print the grammar
//	:stats     toggle statistics
//	:quit      leave the REPL
//
// Eval returns true if the REPL should quit.
func (intp *Intp) Eval(cmd *cobra.Command, line string) bool {
	switch strings.TrimSpace(line) {
	case ":quit", ":q":
		return true
	case ":grammar":
		printGrammar(intp.g)
		return false
	case ":stats":
		intp.app.cfg.Stats = !intp.app.cfg.Stats
		pterm.Info.Printf("statistics %v\n", intp.app.cfg.Stats)
		return false
	}
	v, err := intp.app.check(cmd.Context(), intp.parser, line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	intp.app.report(v)
	return false
}
