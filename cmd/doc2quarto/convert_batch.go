package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	doc2quarto "github.com/rvbug/doc2quarto"

	"github.com/rvbug/doc2quarto/internal/styles"
)

// FileConverter is the interface for the conversion service.
type FileConverter interface {
	ConvertFile(ctx context.Context, in doc2quarto.FileInput) (*doc2quarto.FileResult, error)
}

// Compile-time interface implementation check.
var _ FileConverter = (*doc2quarto.Service)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently with a fixed worker pool.
// Results are index-stable: results[i] corresponds to files[i].
func convertBatch(ctx context.Context, svc FileConverter, files []string, sourceRoot, destRoot string, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx],
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertOne(ctx, svc, files[idx], sourceRoot, destRoot)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertOne processes a single file and returns the result.
func convertOne(ctx context.Context, svc FileConverter, path, sourceRoot, destRoot string) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: path}

	fileResult, err := svc.ConvertFile(ctx, doc2quarto.FileInput{
		SourcePath: path,
		SourceRoot: sourceRoot,
		DestRoot:   destRoot,
	})
	result.Duration = time.Since(start)

	if err != nil {
		result.Err = err
		return result
	}

	result.OutputPath = fileResult.OutputPath
	return result
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, flags *convertFlags, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "%s %s: %v\n", styles.ErrorMark, r.InputPath, r.Err)
			env.Logger.FileError(r.InputPath, r.Err)
			continue
		}

		succeeded++
		env.Logger.FileConverted(r.InputPath, r.OutputPath, r.Duration)
		if flags.quiet {
			continue
		}

		switch {
		case flags.dryRun:
			fmt.Fprintf(env.Stdout, "%s %s (dry run)\n", styles.HighlightStyle.Render("~"), r.OutputPath)
		case flags.verbose:
			fmt.Fprintf(env.Stdout, "%s %s -> %s %s\n", styles.SuccessMark, r.InputPath, r.OutputPath,
				styles.DimStyle.Render(r.Duration.Round(time.Millisecond).String()))
		default:
			fmt.Fprintf(env.Stdout, "%s Created %s\n", styles.SuccessMark, r.OutputPath)
		}
	}

	if !flags.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
