package model

import (
	"maps"
	"slices"
)

// Package is the aggregated model of one package run.
//
// All fields are populated by [Build] and must be treated as read-only.
type Package struct {
	// Name is the package (top-level directory) name.
	Name string

	// Classes holds every record of the run, sorted by module, name, path
	// and line.
	Classes []Class

	// ByModule maps a module key to the classes it declares, in Classes order.
	ByModule map[string][]Class

	// ByName maps a simple class name to every class sharing it, in Classes
	// order.
	ByName map[string][]Class
}

// Edge is a resolved "is-a" relationship between two class aliases.
type Edge struct {
	From string // alias of the subclass
	To   string // alias of the matched base class
}

// Stats summarizes a package model.
type Stats struct {
	Classes    int // number of class records
	Modules    int // number of modules declaring at least one class
	Methods    int // total method count over all classes
	Edges      int // number of resolved inheritance edges
	Unresolved int // base identifiers that matched no class in the package
}

// Build aggregates class records into a package model. The input slice is not
// modified and may come in any order.
func Build(name string, classes []Class) *Package {
	sorted := slices.Clone(classes)
	slices.SortStableFunc(sorted, compareClasses)

	p := &Package{
		Name:     name,
		Classes:  sorted,
		ByModule: make(map[string][]Class),
		ByName:   make(map[string][]Class),
	}
	for _, c := range sorted {
		p.ByModule[c.Module] = append(p.ByModule[c.Module], c)
		p.ByName[c.Name] = append(p.ByName[c.Name], c)
	}
	return p
}

// Modules returns the module keys in ascending lexical order.
func (p *Package) Modules() []string {
	return slices.Sorted(maps.Keys(p.ByModule))
}

// Edges resolves every base identifier against ByName and returns one edge per
// match. Classes are visited in package order, bases in declaration order and
// matches in package order, so the result is stable across runs.
//
// Bases naming classes outside the package produce no edge.
func (p *Package) Edges() []Edge {
	var edges []Edge
	for _, c := range p.Classes {
		for _, base := range c.Bases {
			for _, target := range p.ByName[base] {
				edges = append(edges, Edge{From: c.Alias(), To: target.Alias()})
			}
		}
	}
	return edges
}

// Stats computes summary counts for the package.
func (p *Package) Stats() Stats {
	s := Stats{
		Classes: len(p.Classes),
		Modules: len(p.ByModule),
	}
	for _, c := range p.Classes {
		s.Methods += len(c.Methods)
		for _, base := range c.Bases {
			n := len(p.ByName[base])
			if n == 0 {
				s.Unresolved++
			}
			s.Edges += n
		}
	}
	return s
}
