// Package io persists rendered diagrams and exports class models as JSON.
//
// # Documents
//
// [WriteDocument] is the output sink of the pipeline: it creates the output
// directory when needed and writes "<package>.<ext>", replacing any existing
// file of that name. Content is written as-is (UTF-8 for PlantUML and DOT).
//
//	path, err := io.WriteDocument("package puml", "utils", "puml", []byte(doc))
//
// # JSON Format
//
// [WriteJSON] exports the extracted records of one package for tooling that
// wants the data rather than a picture:
//
//	{
//	  "package": "shapes",
//	  "classes": [
//	    {
//	      "module": "base",
//	      "name": "Shape",
//	      "fqname": "base.Shape",
//	      "alias": "base_Shape",
//	      "bases": [],
//	      "methods": ["area"],
//	      "path": "base.py",
//	      "line": 1
//	    }
//	  ],
//	  "edges": [{"from": "circle_Circle", "to": "base_Shape"}]
//	}
//
// Classes and edges appear in the same order as in the PlantUML output. The
// export is one-way: nothing in this module reads it back.
package io
