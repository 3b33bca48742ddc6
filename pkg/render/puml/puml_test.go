package puml

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/pumlgen/pkg/model"
)

func TestRenderBaseChild(t *testing.T) {
	pkg := model.Build("pkg", []model.Class{
		{Module: "b", Name: "Child", Bases: []string{"Base"}, Methods: []string{"bar"}, Path: "b.py", Line: 1},
		{Module: "a", Name: "Base", Methods: []string{"foo"}, Path: "a.py", Line: 1},
	})

	want := strings.Join([]string{
		"@startuml",
		"skinparam classAttributeIconSize 0",
		`package "pkg" {`,
		`  package "a" {`,
		`    class "a.Base" as a_Base {`,
		"      + foo()",
		"    }",
		"  }",
		`  package "b" {`,
		`    class "b.Child" as b_Child {`,
		"      + bar()",
		"    }",
		"  }",
		"}",
		"b_Child --|> a_Base",
		"@enduml",
	}, "\n")

	if got := Render(pkg, Options{}); got != want {
		t.Errorf("Render() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	got := Render(model.Build("empty", nil), Options{})
	want := "@startuml\nskinparam classAttributeIconSize 0\npackage \"empty\" {\n}\n@enduml"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderModuleLabels(t *testing.T) {
	pkg := model.Build("app", []model.Class{
		{Module: "", Name: "Root"},
		{Module: "core.shapes", Name: "Circle"},
	})
	out := Render(pkg, Options{})

	if !strings.Contains(out, `  package "app" {`+"\n"+`    class "Root" as Root {`) {
		t.Errorf("root module not labeled with package name:\n%s", out)
	}
	if !strings.Contains(out, `  package "shapes" {`+"\n"+`    class "core.shapes.Circle" as core_shapes_Circle {`) {
		t.Errorf("nested module not labeled with last segment:\n%s", out)
	}
}

func TestRenderSortsClassesAndMethods(t *testing.T) {
	pkg := model.Build("p", []model.Class{
		{Module: "m", Name: "Zeta", Methods: []string{"z", "a", "m"}},
		{Module: "m", Name: "Alpha"},
	})
	out := Render(pkg, Options{})

	if strings.Index(out, "m.Alpha") > strings.Index(out, "m.Zeta") {
		t.Errorf("classes not sorted by name:\n%s", out)
	}
	if !strings.Contains(out, "      + a()\n      + m()\n      + z()") {
		t.Errorf("methods not sorted:\n%s", out)
	}
}

func methodLines(out string) []string {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "      ") {
			lines = append(lines, strings.TrimSpace(l))
		}
	}
	return lines
}

func TestRenderMethodCap(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		opts        Options
		wantMethods int
		wantElided  bool
	}{
		{"under cap", 5, Options{}, 5, false},
		{"exactly cap", 12, Options{}, 12, false},
		{"over cap", 13, Options{}, 12, true},
		{"far over cap", 40, Options{}, 12, true},
		{"custom cap", 5, Options{MaxMethods: 3}, 3, true},
		{"negative means default", 20, Options{MaxMethods: -1}, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			methods := make([]string, tt.count)
			for i := range methods {
				methods[i] = fmt.Sprintf("m%02d", i)
			}
			pkg := model.Build("p", []model.Class{{Module: "m", Name: "Big", Methods: methods}})

			lines := methodLines(Render(pkg, tt.opts))
			elided := len(lines) > 0 && lines[len(lines)-1] == elisionMarker
			n := len(lines)
			if elided {
				n--
			}
			if n != tt.wantMethods {
				t.Errorf("method lines = %d, want %d", n, tt.wantMethods)
			}
			if elided != tt.wantElided {
				t.Errorf("elided = %v, want %v", elided, tt.wantElided)
			}
			if tt.count > 0 && lines[0] != "+ m00()" {
				t.Errorf("first method = %q, want %q", lines[0], "+ m00()")
			}
		})
	}
}

func TestRenderEdges(t *testing.T) {
	tests := []struct {
		name    string
		classes []model.Class
		want    []string
	}{
		{
			name:    "no bases",
			classes: []model.Class{{Module: "a", Name: "A"}},
			want:    nil,
		},
		{
			name: "unmatched base",
			classes: []model.Class{
				{Module: "a", Name: "A", Bases: []string{"Exception"}},
			},
			want: nil,
		},
		{
			name: "same-named bases in two modules",
			classes: []model.Class{
				{Module: "x", Name: "Base"},
				{Module: "y", Name: "Base"},
				{Module: "z", Name: "Impl", Bases: []string{"Base"}},
			},
			want: []string{"z_Impl --|> x_Base", "z_Impl --|> y_Base"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var edges []string
			for _, l := range strings.Split(Render(model.Build("p", tt.classes), Options{}), "\n") {
				if strings.Contains(l, " --|> ") {
					edges = append(edges, l)
				}
			}
			if !slices.Equal(edges, tt.want) {
				t.Errorf("edges = %v, want %v", edges, tt.want)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	classes := []model.Class{
		{Module: "c", Name: "C", Bases: []string{"A", "B"}, Methods: []string{"y", "x"}, Path: "c.py", Line: 1},
		{Module: "a", Name: "A", Methods: []string{"run"}, Path: "a.py", Line: 1},
		{Module: "b", Name: "B", Bases: []string{"A"}, Path: "b.py", Line: 4},
		{Module: "b", Name: "Helper", Path: "b.py", Line: 9},
	}
	first := Render(model.Build("p", classes), Options{})

	reversed := slices.Clone(classes)
	slices.Reverse(reversed)
	if second := Render(model.Build("p", reversed), Options{}); first != second {
		t.Errorf("Render() depends on input order\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestDisplayModule(t *testing.T) {
	tests := []struct {
		module, pkg, want string
	}{
		{"", "pkg", "pkg"},
		{"a", "pkg", "a"},
		{"a.b.c", "pkg", "c"},
	}
	for _, tt := range tests {
		if got := displayModule(tt.module, tt.pkg); got != tt.want {
			t.Errorf("displayModule(%q, %q) = %q, want %q", tt.module, tt.pkg, got, tt.want)
		}
	}
}
