package doc2quarto

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyImageDirMissingSourceIsNotAnError(t *testing.T) {
	t.Parallel()

	copied, err := copyImageDir(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("copyImageDir() error: %v", err)
	}
	if copied != 0 {
		t.Errorf("copied = %d, want 0", copied)
	}
}

func TestCopyImageDirCopiesRegularFiles(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	destDir := t.TempDir()

	imgDir := filepath.Join(srcDir, "img")
	if err := os.MkdirAll(imgDir, 0o750); err != nil {
		t.Fatalf("creating img dir: %v", err)
	}

	files := map[string]string{
		"a.png": "png-bytes",
		"b.svg": "<svg/>",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(imgDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	copied, err := copyImageDir(srcDir, destDir)
	if err != nil {
		t.Fatalf("copyImageDir() error: %v", err)
	}
	if copied != len(files) {
		t.Errorf("copied = %d, want %d", copied, len(files))
	}

	for name, content := range files {
		data, err := os.ReadFile(filepath.Join(destDir, "img", name))
		if err != nil {
			t.Fatalf("reading copied %s: %v", name, err)
		}
		if string(data) != content {
			t.Errorf("%s = %q, want %q", name, data, content)
		}
	}
}

func TestCopyImageDirSkipsSubdirectories(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	destDir := t.TempDir()

	imgDir := filepath.Join(srcDir, "img")
	if err := os.MkdirAll(filepath.Join(imgDir, "thumbs"), 0o750); err != nil {
		t.Fatalf("creating nested dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(imgDir, "logo.png"), []byte("x"), 0o644); err != nil {
		t.Fatalf("writing image: %v", err)
	}

	copied, err := copyImageDir(srcDir, destDir)
	if err != nil {
		t.Fatalf("copyImageDir() error: %v", err)
	}
	if copied != 1 {
		t.Errorf("copied = %d, want 1", copied)
	}

	if _, err := os.Stat(filepath.Join(destDir, "img", "thumbs")); !os.IsNotExist(err) {
		t.Errorf("subdirectory was copied, want skipped")
	}
}

func TestCopyImageDirOverwritesExisting(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	destDir := t.TempDir()

	imgDir := filepath.Join(srcDir, "img")
	if err := os.MkdirAll(imgDir, 0o750); err != nil {
		t.Fatalf("creating img dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(imgDir, "logo.png"), []byte("new"), 0o644); err != nil {
		t.Fatalf("writing image: %v", err)
	}

	destImg := filepath.Join(destDir, "img")
	if err := os.MkdirAll(destImg, 0o750); err != nil {
		t.Fatalf("creating dest img dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(destImg, "logo.png"), []byte("stale-longer-content"), 0o644); err != nil {
		t.Fatalf("writing stale image: %v", err)
	}

	if _, err := copyImageDir(srcDir, destDir); err != nil {
		t.Fatalf("copyImageDir() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(destImg, "logo.png"))
	if err != nil {
		t.Fatalf("reading copied image: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("copied content = %q, want %q", data, "new")
	}
}
