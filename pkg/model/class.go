package model

import (
	"cmp"
	"strings"
)

// Class is the record of one class declaration.
//
// Module and Name are the only fields that reach the diagram. Path and Line
// locate the declaration in the source tree; they break ties between
// same-named classes of one module and are carried into the JSON export.
type Class struct {
	Module  string   // dotted path relative to the package root, extension removed
	Name    string   // simple class identifier
	Bases   []string // base identifiers in declaration order, without duplicates
	Methods []string // methods declared directly in the class body, in source order
	Path    string   // slash-separated file path relative to the package root
	Line    int      // 1-based line of the class statement
}

// FQName returns the module-qualified class name, or just the name when the
// class has no module.
func (c Class) FQName() string {
	if c.Module == "" {
		return c.Name
	}
	return c.Module + "." + c.Name
}

// Alias returns a diagram-safe token for the class: module and name joined by
// an underscore with every dot replaced by an underscore.
func (c Class) Alias() string {
	if c.Module == "" {
		return c.Name
	}
	return strings.ReplaceAll(c.Module+"_"+c.Name, ".", "_")
}

// compareClasses orders classes by module, name, path and line.
func compareClasses(a, b Class) int {
	return cmp.Or(
		strings.Compare(a.Module, b.Module),
		strings.Compare(a.Name, b.Name),
		strings.Compare(a.Path, b.Path),
		cmp.Compare(a.Line, b.Line),
	)
}
