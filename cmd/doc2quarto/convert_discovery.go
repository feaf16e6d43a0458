package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	doc2quarto "github.com/rvbug/doc2quarto"
	"github.com/rvbug/doc2quarto/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no source specified")
	ErrNoOutput           = errors.New("no destination specified")
	ErrNoFilesFound       = errors.New("no markdown files found")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// Worker pool bounds.
const (
	minWorkers = 1
	maxWorkers = 32
)

// discoverFiles finds all markdown files under sourcePath. A single-file
// source yields one entry; its parent directory serves as the source root.
// The returned root is what relative destination paths are computed against.
func discoverFiles(sourcePath string) (files []string, sourceRoot string, err error) {
	info, err := os.Stat(sourcePath)
	if err != nil {
		return nil, "", err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdownFile(sourcePath) {
			return nil, "", fmt.Errorf("%w: got %q", doc2quarto.ErrInvalidExtension, filepath.Ext(sourcePath))
		}
		return []string{sourcePath}, filepath.Dir(sourcePath), nil
	}

	err = filepath.WalkDir(sourcePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdownFile(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return files, sourcePath, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// resolveWorkers maps the --workers flag to an actual pool size.
// Zero means auto: one worker per available CPU, bounded to [1, 32].
func resolveWorkers(n int) int {
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n < minWorkers {
		return minWorkers
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}
