package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pumlgen/pkg/discover"
	"github.com/matzehuels/pumlgen/pkg/errors"
	"github.com/matzehuels/pumlgen/pkg/extract"
	pkgio "github.com/matzehuels/pumlgen/pkg/io"
	"github.com/matzehuels/pumlgen/pkg/model"
	"github.com/matzehuels/pumlgen/pkg/observability"
)

// Runner executes the pipeline. It holds no per-package state, so one Runner
// serves a whole batch.
type Runner struct {
	Logger    *log.Logger
	extractor *extract.Extractor
}

// NewRunner creates a runner. If logger is nil, output is discarded.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{
		Logger:    logger,
		extractor: extract.New(logger),
	}
}

// Model discovers and extracts every class of the named package and returns
// the aggregated model.
//
// The name must be a single directory below opts.Root. A missing directory
// fails with PACKAGE_NOT_FOUND, a malformed name with INVALID_PACKAGE. A
// directory without parseable files yields an empty model.
func (r *Runner) Model(ctx context.Context, opts Options, name string) (*model.Package, error) {
	pkg, _, err := r.model(ctx, opts, name)
	return pkg, err
}

func (r *Runner) model(ctx context.Context, opts Options, name string) (*model.Package, int, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, 0, err
	}
	if err := errors.ValidatePackageName(name); err != nil {
		return nil, 0, err
	}

	dir := filepath.Join(opts.Root, name)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, 0, errors.New(errors.ErrCodePackageNotFound, "Package directory not found: %s", dir)
	}

	files, err := discover.Files(dir)
	if err != nil {
		return nil, 0, errors.Wrap(errors.ErrCodePackageNotFound, err, "read package directory %s", dir)
	}

	var classes []model.Class
	for _, f := range files {
		classes = append(classes, r.extractor.File(ctx, dir, f)...)
	}
	return model.Build(name, classes), len(files), nil
}

// Build runs discovery, extraction, aggregation and rendering for one
// package. Nothing is written.
func (r *Runner) Build(ctx context.Context, opts Options, name string) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	extractStart := time.Now()
	pkg, files, err := r.model(ctx, opts, name)
	if err != nil {
		return nil, err
	}
	result := &Result{Package: pkg}
	result.Stats.Stats = pkg.Stats()
	result.Stats.Files = files
	result.Stats.ExtractTime = time.Since(extractStart)

	observability.Pipeline().OnExtractComplete(ctx, name, files, result.Stats.Classes, result.Stats.ExtractTime)
	r.Logger.Debug("extracted classes",
		"package", name,
		"files", files,
		"classes", result.Stats.Classes,
		"duration", result.Stats.ExtractTime)

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, pkg, opts)
	observability.Pipeline().OnRenderComplete(ctx, name, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered outputs",
		"package", name,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate builds the named package and writes one file per format into
// opts.Output, overwriting earlier runs.
func (r *Runner) Generate(ctx context.Context, opts Options, name string) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result, err := r.Build(ctx, opts, name)
	if err != nil {
		return nil, err
	}

	result.Paths = make(map[string]string, len(opts.Formats))
	for _, format := range opts.Formats {
		path, err := pkgio.WriteDocument(opts.Output, name, format, result.Artifacts[format])
		if err != nil {
			return nil, err
		}
		result.Paths[format] = path
		r.Logger.Debug("wrote file", "package", name, "path", path)
	}
	return result, nil
}

// Batch generates every named package in order. A failing package is
// recorded in its Outcome and processing continues with the next one. If
// report is non-nil it receives each Outcome as soon as its package is done.
// If ctx is cancelled, the remaining packages are not started and the
// returned slice is shorter than names.
func (r *Runner) Batch(ctx context.Context, opts Options, names []string, report func(Outcome)) []Outcome {
	outcomes := make([]Outcome, 0, len(names))
	for _, name := range names {
		if ctx.Err() != nil {
			break
		}
		hooks := observability.Pipeline()
		hooks.OnPackageStart(ctx, name)
		start := time.Now()

		result, err := r.Generate(ctx, opts, name)
		classes := 0
		if err != nil {
			r.Logger.Debug("package failed", "package", name, "err", err)
		} else {
			classes = result.Stats.Classes
		}
		hooks.OnPackageComplete(ctx, name, classes, time.Since(start), err)
		out := Outcome{Package: name, Result: result, Err: err}
		if report != nil {
			report(out)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}
