// Package pkg provides the core libraries for pumlgen class diagrams.
//
// # Overview
//
// pumlgen reads the Python sources of a package without executing them and
// draws one PlantUML class diagram per package: a container per module, a
// box per class with its methods, and an inheritance arrow from every class
// to each class in the package whose simple name matches one of its bases.
//
// # Architecture
//
// The data flow through pumlgen:
//
//	Package directory
//	         ↓
//	    [discover] package (collect *.py files)
//	         ↓
//	    [extract] package (tree-sitter parse → class records)
//	         ↓
//	    [model] package (index by module and simple name)
//	         ↓
//	    [render/puml], [render/nodelink], [io] (PlantUML, DOT/SVG, JSON)
//	         ↓
//	    <output>/<package>.<ext>
//
// [pipeline] runs these stages for one package or a batch, and is what the
// CLI uses.
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/pumlgen/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Generate(context.Background(), pipeline.Options{Root: "."}, "utils")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Paths["puml"])
//
// Or step by step:
//
//	ex := extract.New(nil)
//	var classes []model.Class
//	for _, f := range files {
//	    classes = append(classes, ex.File(ctx, dir, f)...)
//	}
//	doc := puml.Render(model.Build("utils", classes), puml.Options{})
//
// # Main Packages
//
// [extract] - Class extraction from Python source with tree-sitter, including
// the resolution of base class expressions to display names.
//
// [model] - Class records and the per-package aggregate with its two indexes.
//
// [render/puml] - Deterministic PlantUML serialization.
//
// [render/nodelink] - The same model as a Graphviz digraph, rendered to SVG.
//
// [io] - Output files and the JSON export.
//
// [errors] - Structured error codes shared by the pipeline and the CLI.
//
// [observability] - Optional hooks around pipeline stages.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/extract/...            # Specific package
//	go test -run Example                 # Examples only
//
// [discover]: https://pkg.go.dev/github.com/matzehuels/pumlgen/pkg/discover
// [extract]: https://pkg.go.dev/github.com/matzehuels/pumlgen/pkg/extract
// [model]: https://pkg.go.dev/github.com/matzehuels/pumlgen/pkg/model
// [render/puml]: https://pkg.go.dev/github.com/matzehuels/pumlgen/pkg/render/puml
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/pumlgen/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/pumlgen/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/pumlgen/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pumlgen/pkg/observability
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pumlgen/pkg/pipeline
package pkg
