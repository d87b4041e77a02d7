package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/jlinoff/pam/internal/common"
	"github.com/jlinoff/pam/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-f string   snapshot file to load and save (default from Config)
//	-d string   duplicate-load strategy: ignore, replace or allow
//	-k          keep existing records when loading (disables clear-before-load)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so the -c/-config flags handled by parseJson do
// not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-d", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.FileName, "f", cfg.FileName, "snapshot file to load and save")
	fs.StringVar(&cfg.LoadDupStrategy, "d", cfg.LoadDupStrategy, "duplicate-load strategy (ignore, replace, allow)")
	keep := fs.Bool("k", !cfg.ClearBeforeLoad, "keep existing records when loading")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if !ValidDupStrategy(cfg.LoadDupStrategy) {
		panic(fmt.Errorf("%w: invalid -d value %q, want ignore, replace or allow",
			common.ErrConfig, cfg.LoadDupStrategy))
	}

	cfg.ClearBeforeLoad = !*keep
}
