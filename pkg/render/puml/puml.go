package puml

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/pumlgen/pkg/model"
)

// DefaultMaxMethods is the number of methods listed per class before the
// remainder is elided.
const DefaultMaxMethods = 12

const (
	styleDirective = "skinparam classAttributeIconSize 0"
	elisionMarker  = ".. (more) .."
)

// Options configures diagram rendering.
type Options struct {
	// MaxMethods caps the methods listed per class. Zero or negative means
	// DefaultMaxMethods.
	MaxMethods int
}

func (o Options) maxMethods() int {
	if o.MaxMethods <= 0 {
		return DefaultMaxMethods
	}
	return o.MaxMethods
}

// Render serializes pkg as a PlantUML document. Lines are separated by "\n"
// and the document has no trailing newline.
func Render(pkg *model.Package, opts Options) string {
	limit := opts.maxMethods()

	var lines []string
	lines = append(lines,
		"@startuml",
		styleDirective,
		fmt.Sprintf(`package "%s" {`, pkg.Name),
	)

	for _, module := range pkg.Modules() {
		lines = append(lines, fmt.Sprintf(`  package "%s" {`, displayModule(module, pkg.Name)))
		for _, c := range pkg.ByModule[module] {
			lines = append(lines, classBlock(c, limit)...)
		}
		lines = append(lines, "  }")
	}
	lines = append(lines, "}")

	for _, e := range pkg.Edges() {
		lines = append(lines, e.From+" --|> "+e.To)
	}

	lines = append(lines, "@enduml")
	return strings.Join(lines, "\n")
}

// displayModule labels a module container with the last dotted segment of
// its key, falling back to the package name for classes at the root.
func displayModule(module, pkgName string) string {
	if module == "" {
		return pkgName
	}
	return module[strings.LastIndex(module, ".")+1:]
}

func classBlock(c model.Class, limit int) []string {
	lines := []string{fmt.Sprintf(`    class "%s" as %s {`, c.FQName(), c.Alias())}

	methods := slices.Sorted(slices.Values(c.Methods))
	for _, m := range methods[:min(limit, len(methods))] {
		lines = append(lines, "      + "+m+"()")
	}
	if len(methods) > limit {
		lines = append(lines, "      "+elisionMarker)
	}
	return append(lines, "    }")
}
