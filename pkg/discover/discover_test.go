package discover

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("pass\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"b.py",
		"a.py",
		"__init__.py",
		"notes.txt",
		"sub/__init__.py",
		"sub/c.py",
		"sub/__pycache__/c.cpython-312.py",
		".venv/lib/site.py",
		"sub/.hidden/d.py",
		".dotfile.py",
	)

	files, err := Files(root)
	if err != nil {
		t.Fatalf("Files() error: %v", err)
	}

	want := []string{".dotfile.py", "a.py", "b.py", "sub/c.py"}
	if got := relAll(t, root, files); !slices.Equal(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
}

func TestFilesHiddenRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), ".pkg")
	writeTree(t, root, "a.py")

	files, err := Files(root)
	if err != nil {
		t.Fatalf("Files() error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Files() = %v, want the root's own file", files)
	}
}

func TestFilesMissingDir(t *testing.T) {
	if _, err := Files(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Files() on missing dir: expected error")
	}
}

func TestPackages(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"utils/helpers.py",
		"cli/main.py",
		"docs/index.md",
		"empty/__init__.py",
		".git/hooks/x.py",
		"setup.py",
	)

	pkgs, err := Packages(root)
	if err != nil {
		t.Fatalf("Packages() error: %v", err)
	}
	if want := []string{"cli", "utils"}; !slices.Equal(pkgs, want) {
		t.Errorf("Packages() = %v, want %v", pkgs, want)
	}
}
