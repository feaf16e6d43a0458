package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	doc2quarto "github.com/rvbug/doc2quarto"
	"github.com/rvbug/doc2quarto/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "read source", err: doc2quarto.ErrReadSource, want: ExitIO},
		{name: "write dest", err: doc2quarto.ErrWriteDest, want: ExitIO},
		{name: "copy images", err: doc2quarto.ErrCopyImages, want: ExitIO},
		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "no files found", err: ErrNoFilesFound, want: ExitIO},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "no input", err: ErrNoInput, want: ExitUsage},
		{name: "no output", err: ErrNoOutput, want: ExitUsage},
		{name: "invalid workers", err: ErrInvalidWorkerCount, want: ExitUsage},
		{name: "invalid extension", err: doc2quarto.ErrInvalidExtension, want: ExitUsage},
		{name: "unknown error", err: errors.New("boom"), want: ExitGeneral},
		{
			name: "wrapped sentinel still matches",
			err:  fmt.Errorf("loading config: %w", config.ErrConfigNotFound),
			want: ExitUsage,
		},
		{
			name: "deeply wrapped io error",
			err:  fmt.Errorf("converting: %w", fmt.Errorf("%w: permission denied", doc2quarto.ErrWriteDest)),
			want: ExitIO,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
