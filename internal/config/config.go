// Package config loads pumlgen settings.
//
// Settings are layered, later layers winning: built-in defaults, the
// pumlgen.toml file, the environment (PUMLGEN_ROOT, PUMLGEN_OUTPUT, also read
// from a .env file in the working directory) and finally command-line flags,
// which the CLI applies on top of the returned Config.
//
// A pumlgen.toml looks like:
//
//	root = "src"
//	output = "docs/uml"
//	packages = ["utils", "models"]
//	formats = ["puml", "svg"]
//	max_methods = 8
//
// Relative root and output paths are resolved against the directory holding
// the file.
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/pumlgen/pkg/errors"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName = "pumlgen.toml"

	// EnvRoot overrides the repository root.
	EnvRoot = "PUMLGEN_ROOT"

	// EnvOutput overrides the output directory.
	EnvOutput = "PUMLGEN_OUTPUT"
)

// Config holds the resolved settings. Empty fields mean "use the pipeline
// default".
type Config struct {
	Root       string   `toml:"root"`
	Output     string   `toml:"output"`
	Packages   []string `toml:"packages"`
	Formats    []string `toml:"formats"`
	MaxMethods int      `toml:"max_methods"`

	// Path is the file the settings were read from, empty if none.
	Path string `toml:"-"`
}

// Load reads settings from path and the environment. An empty path means
// FileName in the working directory, which may be absent. An explicit path
// that does not exist is an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	explicit := path != ""
	if !explicit {
		path = FileName
	}

	cfg := &Config{}
	if _, err := os.Stat(path); err == nil {
		if err := cfg.decode(path); err != nil {
			return nil, err
		}
	} else if explicit || !stderrors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}

	if v := strings.TrimSpace(os.Getenv(EnvRoot)); v != "" {
		cfg.Root = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		cfg.Output = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(path string) error {
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: failed to parse TOML", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	dir := filepath.Dir(path)
	if meta.IsDefined("root") {
		c.Root = resolve(dir, c.Root)
	}
	if meta.IsDefined("output") {
		c.Output = resolve(dir, c.Output)
	}
	c.Path = path
	return nil
}

// Validate checks the values that can be checked without the pipeline.
func (c *Config) Validate() error {
	if c.MaxMethods < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_methods must not be negative, got %d", c.MaxMethods)
	}
	if c.Output != "" {
		if err := errors.ValidateOutputDir(c.Output); err != nil {
			return err
		}
	}
	for _, p := range c.Packages {
		if err := errors.ValidatePackageName(p); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "packages")
		}
	}
	return nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
