package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/pumlgen/pkg/errors"
	"github.com/matzehuels/pumlgen/pkg/model"
	"github.com/matzehuels/pumlgen/pkg/pipeline"
)

func TestClassTable(t *testing.T) {
	pkg := model.Build("pkg", []model.Class{
		{Module: "a", Name: "Base", Methods: []string{"x", "y"}, Path: "a.py", Line: 1},
		{Module: "b", Name: "Child", Bases: []string{"Base", "Mixin"}, Path: "b.py", Line: 7},
	})

	out := classTable(pkg).Render()
	for _, want := range []string{"Module", "Base, Mixin", "a.py:1", "b.py:7", "—"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRunClassesMissingPackage(t *testing.T) {
	opts := pipeline.Options{Root: t.TempDir()}
	err := New(io.Discard, LogInfo).runClasses(context.Background(), opts, "missing")
	if !errors.Is(err, errors.ErrCodePackageNotFound) {
		t.Errorf("runClasses() error = %v, want %s", err, errors.ErrCodePackageNotFound)
	}
}

func TestRunPackages(t *testing.T) {
	root := t.TempDir()
	writePackage(t, root, "utils", map[string]string{"a.py": "class A: pass\n"})

	if err := New(io.Discard, LogInfo).runPackages(root); err != nil {
		t.Errorf("runPackages() error: %v", err)
	}
	if err := New(io.Discard, LogInfo).runPackages(t.TempDir()); err != nil {
		t.Errorf("runPackages() on empty root error: %v", err)
	}
}
