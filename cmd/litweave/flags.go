package main

import (
	flag "github.com/spf13/pflag"

	litweave "github.com/alnah/go-litweave"
)

// cliFlags holds parsed command-line flags. Positional arguments are
// the source files to document.
type cliFlags struct {
	outDir    string
	config    string
	inlineCSS bool
	verbose   bool
	version   bool
}

// parseFlags parses args (including the program name at args[0]) and
// returns the flags and the remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet(litweave.ToolName, flag.ContinueOnError)

	flags := &cliFlags{}
	fs.StringVarP(&flags.outDir, "outdir", "o", "", "output directory for generated pages (default docs)")
	fs.StringVarP(&flags.config, "config", "c", "", "YAML config file path")
	fs.BoolVar(&flags.inlineCSS, "inline-css", false, "embed the stylesheet into each page instead of linking it")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return flags, fs.Args(), nil
}
