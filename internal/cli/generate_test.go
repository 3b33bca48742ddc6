package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/pumlgen/pkg/errors"
	"github.com/matzehuels/pumlgen/pkg/pipeline"
)

func writePackage(t *testing.T, root, pkg string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, pkg, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestStatusLine(t *testing.T) {
	success := pipeline.Outcome{
		Package: "utils",
		Result: &pipeline.Result{
			Paths: map[string]string{"puml": "package puml/utils.puml"},
			Stats: pipeline.Stats{Files: 2},
		},
	}
	success.Result.Stats.Classes = 4

	line, ok := statusLine(success, []string{"puml"})
	if !ok || line != "Generated package puml/utils.puml with 4 classes" {
		t.Errorf("success line = %q, ok = %v", line, ok)
	}

	failure := pipeline.Outcome{
		Package: "missing",
		Err:     errors.New(errors.ErrCodePackageNotFound, "Package directory not found: %s", "./missing"),
	}
	line, ok = statusLine(failure, []string{"puml"})
	if ok || line != "Failed to generate for 'missing': Package directory not found: ./missing" {
		t.Errorf("failure line = %q, ok = %v", line, ok)
	}
}

func TestRunGenerate(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "shapes", map[string]string{
		"base.py":   "class Shape:\n    def area(self): pass\n",
		"circle.py": "from base import Shape\nclass Circle(Shape):\n    def area(self): pass\n",
	})

	opts := pipeline.Options{Root: root, Formats: []string{"puml", "dot"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	if err := c.runGenerate(context.Background(), opts, []string{"shapes"}); err != nil {
		t.Fatalf("runGenerate() error: %v", err)
	}

	for _, ext := range []string{"puml", "dot"} {
		path := filepath.Join(root, pipeline.DefaultOutputDir, "shapes."+ext)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing %s: %v", path, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(root, pipeline.DefaultOutputDir, "shapes.puml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "circle_Circle --|> base_Shape") {
		t.Errorf("diagram missing edge:\n%s", data)
	}
}

func TestRunGenerateReportsFailure(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "ok", map[string]string{"a.py": "class A: pass\n"})

	opts := pipeline.Options{Root: root}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}

	err := New(io.Discard, LogInfo).runGenerate(context.Background(), opts, []string{"missing", "ok"})
	if err == nil || !strings.Contains(err.Error(), "1 of 2 packages failed") {
		t.Errorf("runGenerate() error = %v, want failure count", err)
	}
	// The package after the failure is still written.
	if _, err := os.Stat(filepath.Join(root, pipeline.DefaultOutputDir, "ok.puml")); err != nil {
		t.Errorf("ok.puml not written: %v", err)
	}
}

func TestRunGenerateCancelled(t *testing.T) {
	opts := pipeline.Options{Root: t.TempDir()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(io.Discard, LogInfo).runGenerate(ctx, opts, []string{"a"})
	if err != context.Canceled {
		t.Errorf("runGenerate() error = %v, want context.Canceled", err)
	}
}

func TestGenerateCommandRequiresPackages(t *testing.T) {
	isolate(t)
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"generate"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.Execute()
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Execute() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestGenerateCommandUsesConfiguredPackages(t *testing.T) {
	dir := isolate(t)
	writePackage(t, dir, "pkg", map[string]string{"m.py": "class M: pass\n"})
	if err := os.WriteFile(filepath.Join(dir, "pumlgen.toml"), []byte("packages = [\"pkg\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"generate"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, pipeline.DefaultOutputDir, "pkg.puml")); err != nil {
		t.Errorf("pkg.puml not written: %v", err)
	}
}
