package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pumlgen/internal/config"
	"github.com/matzehuels/pumlgen/pkg/errors"
	"github.com/matzehuels/pumlgen/pkg/pipeline"
)

// generateCommand creates the generate command, the batch entry point.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		formatsStr  string
		maxMethods  int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "generate [packages...]",
		Short: "Generate class diagrams for Python packages",
		Long: `Generate one class diagram per package.

Each package is a directory below the root. Its Python files are parsed
without being executed; files that fail to parse are skipped. The diagram
lists every module with its classes and their methods, and draws an
inheritance edge to every class in the package whose name matches a base.

Packages are processed in order and one status line is printed per package.
A failing package does not stop the others, but makes the command exit
with a non-zero status.

Without arguments the packages listed in the config file are used.`,
		Example: `  pumlgen generate utils models
  pumlgen generate --format puml,svg utils
  pumlgen generate --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := c.options(formatsStr, maxMethods)
			if err != nil {
				return err
			}

			names := args
			if interactive {
				names, err = pickPackages(cmd.Context(), opts.Root)
				if err != nil {
					return err
				}
				if len(names) == 0 {
					printInfo("No packages selected")
					return nil
				}
			} else if len(names) == 0 {
				names = cfg.Packages
			}
			if len(names) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no packages given (pass package names, use --interactive, or set packages in %s)", config.FileName)
			}

			return c.runGenerate(cmd.Context(), opts, names)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): puml (default), svg, dot, json (comma-separated)")
	cmd.Flags().IntVar(&maxMethods, "max-methods", 0, fmt.Sprintf("methods listed per class (default %d)", pipeline.DefaultMaxMethods))
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick packages interactively")

	return cmd
}

// runGenerate processes names in order, printing one status line each.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, names []string) error {
	runner := c.newRunner()
	prog := newProgress(c.Logger)

	failed := 0
	outcomes := runner.Batch(ctx, opts, names, func(out pipeline.Outcome) {
		line, ok := statusLine(out, opts.Formats)
		if !ok {
			failed++
			printError("%s", line)
			return
		}
		printSuccess("%s", line)
		for _, format := range opts.Formats[1:] {
			printFile(out.Result.Paths[format])
		}
	})

	if err := ctx.Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Processed %d packages", len(outcomes)))

	if failed > 0 {
		return fmt.Errorf("%d of %d packages failed", failed, len(names))
	}
	return nil
}

// statusLine formats the per-package result line. ok is false for failures.
func statusLine(out pipeline.Outcome, formats []string) (line string, ok bool) {
	if out.Err != nil {
		return fmt.Sprintf("Failed to generate for '%s': %s", out.Package, errors.UserMessage(out.Err)), false
	}
	return fmt.Sprintf("Generated %s with %d classes", out.Result.Path(formats), out.Result.Stats.Classes), true
}
