// Package puml renders a package model as a PlantUML class diagram.
//
// # Document Layout
//
//	@startuml
//	skinparam classAttributeIconSize 0
//	package "<package>" {
//	  package "<module>" {
//	    class "<fqname>" as <alias> {
//	      + <method>()
//	      .. (more) ..
//	    }
//	  }
//	}
//	<alias> --|> <alias>
//	@enduml
//
// Modules appear in ascending key order, each labeled with the last segment
// of its dotted path (or the package name for the empty module). Classes are
// sorted by name and list at most [DefaultMaxMethods] methods in ascending
// order; longer lists end with an elision marker. Inheritance edges follow the
// closed package container, as computed by [model.Package.Edges].
//
// # Determinism
//
// [Render] sorts everything it emits. Two models built from the same files
// produce byte-identical documents, whatever order the files were discovered
// in, which keeps generated diagrams diffable across runs.
package puml
