package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	litweave "github.com/alnah/go-litweave"
	"github.com/alnah/go-litweave/internal/fileutil"
)

// run builds the service from config file and flags (flags win) and
// generates documentation for the given source files.
func run(ctx context.Context, flags *cliFlags, files []string, logger *slog.Logger) error {
	opts := []litweave.Option{litweave.WithLogger(logger)}

	if flags.config != "" {
		cfg, err := litweave.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfgOpts, err := cfg.Options()
		if err != nil {
			return err
		}
		opts = append(opts, cfgOpts...)
	}

	if flags.outDir != "" {
		opts = append(opts, litweave.WithOutputDir(flags.outDir))
	}
	if flags.inlineCSS {
		opts = append(opts, litweave.WithInlineCSS(true))
	}

	// Fail before any output is written when an input is missing.
	for _, file := range files {
		if !fileutil.FileExists(file) {
			return fmt.Errorf("source %s: %w", file, os.ErrNotExist)
		}
	}

	svc, err := litweave.New(opts...)
	if err != nil {
		return err
	}
	return svc.Run(ctx, files)
}
