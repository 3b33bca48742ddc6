// Package pipeline provides the class diagram pipeline for pumlgen.
//
// This package implements the complete discover → extract → aggregate →
// render pipeline used by every CLI command. By centralizing this logic, the
// batch command, the class listing and the interactive picker all see the
// same classes.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Discover: Walk the package directory for Python source files
//  2. Extract: Parse each file and collect its class records
//  3. Aggregate: Index the records by module and by simple name
//  4. Render: Generate output in the requested formats (PlantUML, SVG, DOT, JSON)
//
// Files that cannot be read or parsed contribute no classes and never fail
// a package. A missing package directory fails only that package.
//
// # Usage
//
// Create a Runner and process a batch of packages:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Root:    ".",
//	    Formats: []string{"puml"},
//	}
//	for _, out := range runner.Batch(ctx, opts, []string{"utils", "models"}, nil) {
//	    if out.Err != nil {
//	        fmt.Println(out.Err)
//	    }
//	}
//
// Run individual stages:
//
//	// Model only
//	pkg, err := runner.Model(ctx, opts, "utils")
//
//	// Render an existing model
//	artifacts, err := runner.Render(ctx, pkg, opts)
package pipeline

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pumlgen/pkg/errors"
	"github.com/matzehuels/pumlgen/pkg/model"
	"github.com/matzehuels/pumlgen/pkg/render/puml"
)

const (
	// DefaultRoot is the repository root when none is configured.
	DefaultRoot = "."

	// DefaultOutputDir is the output directory, relative to the root.
	DefaultOutputDir = "package puml"

	// DefaultMaxMethods is the number of methods listed per class.
	DefaultMaxMethods = puml.DefaultMaxMethods
)

// Format constants for output formats.
const (
	FormatPUML = "puml"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPUML: true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// Options contains all configuration for the pipeline.
type Options struct {
	Root       string   // Repository root holding the package directories
	Output     string   // Output directory; defaults to <Root>/package puml
	Formats    []string // Output formats, in write order
	MaxMethods int      // Methods listed per class before the overflow marker

	validated bool
}

// Result contains the outputs of one package run.
type Result struct {
	// Package is the aggregated class model.
	Package *model.Package

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Paths contains written files keyed by format. Only Generate fills it.
	Paths map[string]string

	// Stats contains timing and size information.
	Stats Stats
}

// Path returns the first written file, following the order of formats.
func (r *Result) Path(formats []string) string {
	for _, f := range formats {
		if p, ok := r.Paths[f]; ok {
			return p
		}
	}
	return ""
}

// Stats contains pipeline execution statistics.
type Stats struct {
	model.Stats
	Files       int
	ExtractTime time.Duration
	RenderTime  time.Duration
}

// Outcome is the result of one package of a batch. Exactly one of Result and
// Err is set.
type Outcome struct {
	Package string
	Result  *Result
	Err     error
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: puml, svg, dot, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if strings.TrimSpace(o.Root) == "" {
		o.Root = DefaultRoot
	}
	if o.Output == "" {
		o.Output = filepath.Join(o.Root, DefaultOutputDir)
	}
	if err := errors.ValidateOutputDir(o.Output); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPUML}
	}
	o.Formats = dedupe(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.MaxMethods < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_methods must not be negative, got %d", o.MaxMethods)
	}
	if o.MaxMethods == 0 {
		o.MaxMethods = DefaultMaxMethods
	}
	o.validated = true
	return nil
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
