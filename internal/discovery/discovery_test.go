package discovery

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// touch creates an empty file, and its parent directories, at path.
func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFindResultFiles(t *testing.T) {
	root := t.TempDir()

	touch(t, filepath.Join(root, "run1", "results.json"))
	touch(t, filepath.Join(root, "run2", "nested", "results.json.gz"))
	touch(t, filepath.Join(root, "a.json"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "results.json.bak"))
	touch(t, filepath.Join(root, ".cache", "stale.json"))

	files, err := FindResultFiles(root)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(root, "a.json"),
		filepath.Join(root, "run1", "results.json"),
		filepath.Join(root, "run2", "nested", "results.json.gz"),
	}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(files), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("file %d: expected %s, got %s", i, want[i], files[i])
		}
	}
}

func TestFindResultFilesEmptyDir(t *testing.T) {
	files, err := FindResultFiles(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestFindResultFilesMissingRoot(t *testing.T) {
	_, err := FindResultFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestFindResultFilesRootIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	touch(t, path)

	if _, err := FindResultFiles(path); err == nil {
		t.Fatal("expected error when root is a file")
	}
}

func TestIsResultFile(t *testing.T) {
	cases := map[string]bool{
		"results.json":    true,
		"results.json.gz": true,
		"results.JSON":    false,
		"results.gz":      false,
		"json":            false,
	}
	for name, want := range cases {
		if got := IsResultFile(name); got != want {
			t.Errorf("IsResultFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestOpenResultFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "results.json")
	if err := os.WriteFile(plain, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(`{"b":2}`)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	zipped := filepath.Join(dir, "results.json.gz")
	if err := os.WriteFile(zipped, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	for path, want := range map[string]string{plain: `{"a":1}`, zipped: `{"b":2}`} {
		rc, err := OpenResultFile(path)
		if err != nil {
			t.Fatalf("OpenResultFile(%s): %v", path, err)
		}
		got, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		if err := rc.Close(); err != nil {
			t.Errorf("Close(%s): %v", path, err)
		}
		if string(got) != want {
			t.Errorf("OpenResultFile(%s) read %q, want %q", path, got, want)
		}
	}
}

func TestOpenResultFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := OpenResultFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	notGzip := filepath.Join(dir, "results.json.gz")
	touch(t, notGzip)
	if _, err := OpenResultFile(notGzip); err == nil {
		t.Error("expected error for a .gz file that is not gzip")
	}
}
