package doc2quarto

import (
	"fmt"
	"path/filepath"
)

// FileInput identifies a single markdown file to convert and the roots used
// to mirror its location.
type FileInput struct {
	SourcePath string // path to the source .md file (required)
	SourceRoot string // root of the source tree, for relative path mapping (required)
	DestRoot   string // root of the destination tree (required)
}

// Validate checks that the input names a markdown file and both roots.
func (in FileInput) Validate() error {
	if in.SourcePath == "" {
		return ErrEmptySourcePath
	}
	if in.SourceRoot == "" {
		return ErrEmptySourceRoot
	}
	if in.DestRoot == "" {
		return ErrEmptyDestRoot
	}
	if ext := filepath.Ext(in.SourcePath); ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// FileResult holds the outcome of a single file conversion.
type FileResult struct {
	OutputPath   string // destination .qmd path (computed even on dry run)
	BytesRead    int    // size of the source document
	BytesWritten int    // size of the converted document (0 on dry run)
	ImagesCopied int    // files copied from a sibling img directory
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	dryRun bool
}

// WithDryRun makes ConvertFile compute paths and run the conversion without
// writing anything to disk.
func WithDryRun() Option {
	return func(s *Service) {
		s.cfg.dryRun = true
	}
}
