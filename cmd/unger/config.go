package main

import (
	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/npillmayer/unger/recognizer"
)

// Config holds the settings of a CLI run.
type Config struct {
	Trace    string `toml:"trace"`     // trace level [Debug|Info|Error]
	MaxDepth int    `toml:"max-depth"` // recursion limit of the recognizer
	Budget   int64  `toml:"budget"`    // step budget per input, 0 = unlimited
	Tokens   bool   `toml:"tokens"`    // recognize Go-style tokens instead of runes
	Stats    bool   `toml:"stats"`     // print run statistics
}

func defaultConfig() Config {
	return Config{
		Trace:    "Error",
		MaxDepth: recognizer.DefaultMaxDepth,
	}
}

// loadConfig decodes a TOML file into cfg. Keys missing from the file leave
// cfg untouched.
func loadConfig(fs afero.Fs, path string, cfg *Config) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Wrap(err, "cannot read config")
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return errors.Wrapf(err, "malformed config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.Errorf("unknown keys in config %s: %v", path, undecoded)
	}
	return nil
}

// overrideFrom copies the values of flags set on the command line.
func (cfg *Config) overrideFrom(flags *pflag.FlagSet, set Config) {
	if flags.Changed("trace") {
		cfg.Trace = set.Trace
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = set.MaxDepth
	}
	if flags.Changed("budget") {
		cfg.Budget = set.Budget
	}
	if flags.Changed("tokens") {
		cfg.Tokens = set.Tokens
	}
	if flags.Changed("stats") {
		cfg.Stats = set.Stats
	}
}

// parserOptions translates the config into recognizer options.
func (cfg *Config) parserOptions() []recognizer.Option {
	opts := []recognizer.Option{
		recognizer.MaxDepth(cfg.MaxDepth),
		recognizer.Budget(cfg.Budget),
	}
	if tracing.TraceLevelFromString(cfg.Trace) == tracing.LevelDebug {
		opts = append(opts, recognizer.Observe(recognizer.TraceObserver()))
	}
	return opts
}
