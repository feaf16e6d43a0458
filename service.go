package doc2quarto

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rvbug/doc2quarto/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Service converts markdown files on disk, wrapping the pure conversion
// core with path mapping, persistence, and image copying. A Service is
// stateless and safe for concurrent use.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithDryRun).
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ConvertFile converts one markdown file from Docusaurus to Quarto format:
// it reads the source, converts the content, mirrors the source's relative
// path under the destination root with a .qmd extension, writes the result,
// and copies a sibling "img" directory alongside it.
//
// Every failure is wrapped in a sentinel error and is recoverable per file;
// callers processing a batch should record the error and continue. The
// context is checked between stages.
func (s *Service) ConvertFile(ctx context.Context, in FileInput) (*FileResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(in.SourcePath) // #nosec G304 -- caller-supplied path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	converted := ConvertContent(string(content))

	destPath, err := resolveDestPath(in)
	if err != nil {
		return nil, err
	}

	result := &FileResult{
		OutputPath:   destPath,
		BytesRead:    len(content),
		BytesWritten: len(converted),
	}

	if s.cfg.dryRun {
		result.BytesWritten = 0
		return result, nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteDest, err)
	}
	if err := os.WriteFile(destPath, []byte(converted), filePermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteDest, err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	copied, err := copyImageDir(filepath.Dir(in.SourcePath), filepath.Dir(destPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCopyImages, err)
	}
	result.ImagesCopied = copied

	return result, nil
}

// resolveDestPath maps the source path to its destination: the path relative
// to the source root, mirrored under the destination root, with the
// extension changed to .qmd. A source outside its claimed root is an error.
func resolveDestPath(in FileInput) (string, error) {
	rel, err := filepath.Rel(in.SourceRoot, in.SourcePath)
	if err != nil || fileutil.EscapesParent(rel) {
		return "", fmt.Errorf("%w: %s not under %s", ErrOutsideRoot, in.SourcePath, in.SourceRoot)
	}

	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".qmd"
	return filepath.Join(in.DestRoot, rel), nil
}
