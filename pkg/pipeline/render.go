package pipeline

import (
	"bytes"
	"context"

	"github.com/matzehuels/pumlgen/pkg/errors"
	pkgio "github.com/matzehuels/pumlgen/pkg/io"
	"github.com/matzehuels/pumlgen/pkg/model"
	"github.com/matzehuels/pumlgen/pkg/render/nodelink"
	"github.com/matzehuels/pumlgen/pkg/render/puml"
)

// Render generates output artifacts for pkg in the requested formats.
func (r *Runner) Render(ctx context.Context, pkg *model.Package, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var dot string

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatPUML:
			data = []byte(puml.Render(pkg, puml.Options{MaxMethods: opts.MaxMethods}))
		case FormatDOT, FormatSVG:
			if dot == "" {
				dot = nodelink.ToDOT(pkg, nodelink.Options{Methods: true, MaxMethods: opts.MaxMethods})
			}
			if format == FormatDOT {
				data = []byte(dot)
			} else {
				data, err = nodelink.RenderSVG(ctx, dot)
			}
		case FormatJSON:
			var buf bytes.Buffer
			err = pkgio.WriteJSON(&buf, pkg)
			data = buf.Bytes()
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
