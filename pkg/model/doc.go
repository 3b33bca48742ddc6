// Package model holds the class records extracted from a Python package and
// the read-only indexes built over them.
//
// # Overview
//
// A [Class] identifies one class declaration: the dotted module it was found
// in, its simple name, the identifiers of its declared bases and the names of
// the methods declared directly in its body. Records are created once during
// extraction and never modified afterwards.
//
// [Build] aggregates every record of one package run into a [Package] with two
// indexes:
//
//   - ByModule groups classes by their declaring module and drives the nested
//     containers of the rendered diagram.
//   - ByName groups classes by simple name and is used to resolve which classes
//     a base identifier refers to.
//
// # Inheritance Resolution
//
// Bases are matched by simple name only. A base "Base" connects to every class
// named Base in the package, whatever module declared it, and a base that
// matches nothing produces no edge. This is deliberately best-effort: no import
// is followed and no qualified name is compared.
//
//	pkg := model.Build("shapes", classes)
//	for _, e := range pkg.Edges() {
//	    fmt.Printf("%s --|> %s\n", e.From, e.To)
//	}
//
// # Determinism
//
// [Build] sorts its input by module, name, source path and line before
// indexing, so the order in which files were discovered never leaks into the
// model or anything rendered from it.
package model
