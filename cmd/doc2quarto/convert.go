package main

import (
	"context"
	"fmt"
	"time"

	doc2quarto "github.com/rvbug/doc2quarto"
	"github.com/rvbug/doc2quarto/internal/config"
)

// runConvert orchestrates the conversion process: configuration, discovery,
// batch conversion, and result reporting.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		env.Logger.ConfigLoaded(flags.config)
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve source path
	sourcePath, err := resolveSourcePath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	// Resolve destination root
	destRoot, err := resolveDestRoot(flags.output, cfg)
	if err != nil {
		return err
	}

	// Discover files to convert
	files, sourceRoot, err := discoverFiles(sourcePath)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoFilesFound, sourcePath)
	}

	env.Logger.Info("starting conversion",
		"files", len(files),
		"source", sourceRoot,
		"dest", destRoot,
		"workers", resolveWorkers(flags.workers))

	var opts []doc2quarto.Option
	if flags.dryRun {
		opts = append(opts, doc2quarto.WithDryRun())
	}
	svc := doc2quarto.New(opts...)

	start := env.Now()
	results := convertBatch(ctx, svc, files, sourceRoot, destRoot, resolveWorkers(flags.workers))

	failed := printResults(results, flags, env)
	env.Logger.BatchCompleted(len(results)-failed, failed, time.Since(start))

	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.workers == 0 && cfg.Convert.Workers != 0 {
		flags.workers = cfg.Convert.Workers
	}
	if cfg.Convert.DryRun {
		flags.dryRun = true
	}
	if cfg.Log.Verbose {
		flags.verbose = true
	}
}

// resolveSourcePath picks the source from positional args, falling back to
// the configured default directory.
func resolveSourcePath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveDestRoot picks the destination from the --output flag, falling
// back to the configured default directory.
func resolveDestRoot(output string, cfg *config.Config) (string, error) {
	if output != "" {
		return output, nil
	}
	if cfg.Output.DefaultDir != "" {
		return cfg.Output.DefaultDir, nil
	}
	return "", ErrNoOutput
}
