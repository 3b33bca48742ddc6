// Package cli implements the pumlgen command-line interface.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pumlgen/internal/config"
	"github.com/matzehuels/pumlgen/pkg/buildinfo"
	"github.com/matzehuels/pumlgen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "pumlgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Persistent flags, applied on top of the config file and environment.
	verbose    bool
	configPath string
	root       string
	output     string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "pumlgen draws PlantUML class diagrams of Python packages",
		Long:          `pumlgen reads the Python sources of one or more packages without running them and writes one PlantUML class diagram per package, with modules, classes, methods and inheritance edges.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "config file (default: ./"+config.FileName+" if present)")
	flags.StringVarP(&c.root, "root", "r", "", "repository root holding the package directories (default: .)")
	flags.StringVarP(&c.output, "output", "o", "", "output directory (default: <root>/"+pipeline.DefaultOutputDir+")")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.classesCommand())
	root.AddCommand(c.packagesCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// options resolves pipeline options from the config file, the environment
// and the flags. formats and maxMethods are command flags; their zero values
// leave the configured value in place.
func (c *CLI) options(formats string, maxMethods int) (pipeline.Options, *config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return pipeline.Options{}, nil, err
	}
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}

	opts := pipeline.Options{
		Root:       firstNonEmpty(c.root, cfg.Root),
		Output:     firstNonEmpty(c.output, cfg.Output),
		Formats:    cfg.Formats,
		MaxMethods: cfg.MaxMethods,
	}
	if formats != "" {
		opts.Formats = parseFormats(formats)
	}
	if maxMethods != 0 {
		opts.MaxMethods = maxMethods
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, nil, err
	}
	return opts, cfg, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatPUML}
	}
	return strings.Split(s, ",")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
