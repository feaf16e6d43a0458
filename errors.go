package doc2quarto

import "errors"

// Sentinel errors for file conversion operations.
// The pure conversion functions never fail; every error here belongs to the
// orchestration around them and is recoverable per file.
var (
	ErrEmptySourcePath  = errors.New("source path cannot be empty")
	ErrEmptySourceRoot  = errors.New("source root cannot be empty")
	ErrEmptyDestRoot    = errors.New("destination root cannot be empty")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrOutsideRoot      = errors.New("source file is not under source root")
	ErrReadSource       = errors.New("failed to read source file")
	ErrWriteDest        = errors.New("failed to write destination file")
	ErrCopyImages       = errors.New("failed to copy image directory")
)
