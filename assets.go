package doc2quarto

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// imageDirName is the sibling directory copied alongside converted files.
// Docusaurus projects keep referenced images in an "img" directory next to
// the markdown that uses them.
const imageDirName = "img"

// copyImageDir copies the top-level regular files of sourceDir/img into
// destDir/img, byte-for-byte and without transformation. A missing img
// directory is not an error; the function succeeds silently and reports
// zero copies. Subdirectories and other non-regular entries are skipped.
func copyImageDir(sourceDir, destDir string) (int, error) {
	imgDir := filepath.Join(sourceDir, imageDirName)

	info, err := os.Stat(imgDir)
	if err != nil || !info.IsDir() {
		return 0, nil
	}

	entries, err := os.ReadDir(imgDir)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", imgDir, err)
	}

	destImg := filepath.Join(destDir, imageDirName)
	if err := os.MkdirAll(destImg, dirPermissions); err != nil {
		return 0, fmt.Errorf("creating %s: %w", destImg, err)
	}

	copied := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		src := filepath.Join(imgDir, entry.Name())
		dst := filepath.Join(destImg, entry.Name())
		if err := copyFile(src, dst); err != nil {
			return copied, err
		}
		copied++
	}

	return copied, nil
}

// copyFile copies a single regular file, truncating any existing destination.
func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 -- path from directory listing
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePermissions) // #nosec G304
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}
