package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Exit codes of the command.
const (
	exitAccepted = 0 // all inputs accepted
	exitRejected = 1 // at least one input rejected
	exitError    = 2 // grammar, config or recognition error
)

// traceKeys are the tracers a trace level applies to.
var traceKeys = []string{"unger.cli", "unger.grammar", "unger.recognizer", "unger.scanner"}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, afero.NewOsFs(), os.Args[1:])
	stop()
	os.Exit(code)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// app carries the state of one command invocation.
type app struct {
	fs       afero.Fs
	cfgFile  string // --config
	flags    Config // values given on the command line
	cfg      Config // effective settings
	rejected bool   // an input has been rejected
}

// execute runs the command line args and returns the exit code.
func execute(ctx context.Context, fs afero.Fs, args []string) int {
	a := &app{fs: fs}
	root := a.rootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		pterm.Error.Println(err.Error())
		return exitError
	}
	if a.rejected {
		return exitRejected
	}
	return exitAccepted
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "unger",
		Short:             "Recognize strings with a context-free grammar",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	def := defaultConfig()
	pf.StringVar(&a.cfgFile, "config", "", "TOML config file")
	pf.StringVar(&a.flags.Trace, "trace", def.Trace, "Trace level [Debug|Info|Error]")
	pf.IntVar(&a.flags.MaxDepth, "max-depth", def.MaxDepth, "Recursion limit")
	pf.Int64Var(&a.flags.Budget, "budget", def.Budget, "Step budget per input, 0 for no limit")
	pf.BoolVar(&a.flags.Tokens, "tokens", def.Tokens, "Split inputs into Go-style tokens instead of runes")
	pf.BoolVar(&a.flags.Stats, "stats", def.Stats, "Print statistics for every input")
	root.AddCommand(a.checkCmd(), a.dumpCmd(), a.replCmd())
	return root
}

// setup layers command line flags over the config file.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.cfg = defaultConfig()
	if a.cfgFile != "" {
		if err := loadConfig(a.fs, a.cfgFile, &a.cfg); err != nil {
			return err
		}
	}
	a.cfg.overrideFrom(cmd.Flags(), a.flags)
	setTraceLevel(a.cfg.Trace)
	tracer().Infof("trace level is %s", a.cfg.Trace)
	return nil
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
