// Package config loads and locates the .chaingen.yml project file.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

const FileName = ".chaingen.yml"

// Config is the schema of .chaingen.yml.
type Config struct {
	Version   string    `yaml:"version" validate:"required,oneof=1"`
	Generator Generator `yaml:"generator" validate:"required"`
	Formatter Formatter `yaml:"formatter" validate:"required"`
	Check     Check     `yaml:"check,omitempty"`
}

// Generator configures the code-generation collaborator.
type Generator struct {
	// Bin is the generator binary, invoked as: <bin> <args...> --path <path>.
	Bin string `yaml:"bin" validate:"required"`
	// Path is where generated sources are written, relative to the project root.
	Path string `yaml:"path" validate:"required"`
	// Dir optionally runs the generator in a subdirectory of the project.
	Dir string `yaml:"dir,omitempty"`
	// Args are extra arguments passed before --path.
	Args []string `yaml:"args,omitempty"`
	// Crate names the cargo crate that provides the generator binary,
	// used by "chaingen tools install".
	Crate string `yaml:"crate,omitempty"`
	// Metadata is the runtime metadata file the generator reads, watched
	// by "chaingen dev watch".
	Metadata string `yaml:"metadata,omitempty"`
}

// Formatter configures the in-place formatting collaborator.
type Formatter struct {
	Bin  string   `yaml:"bin" validate:"required"`
	Args []string `yaml:"args,omitempty"`
}

// Check configures drift-check enforcement.
type Check struct {
	// FailOnDrift makes "check drift" exit non-zero when the working tree
	// is dirty after regeneration. Off by default: drift is advisory.
	FailOnDrift bool `yaml:"fail_on_drift"`
}

func Default() Config {
	return Config{
		Version: "1",
		Generator: Generator{
			Bin:  "codegen",
			Path: "generated/src",
		},
		Formatter: Formatter{
			Bin:  "cargo",
			Args: []string{"+nightly", "fmt"},
		},
	}
}

type Loader interface {
	Load(path string) (Config, error)
}

type Writer interface {
	Write(w io.Writer, cfg Config) error
}

type Finder interface {
	Find(startDir string) (cfg Config, projectDir string, err error)
}

type yamlLoader struct {
	validate *validator.Validate
}

func NewLoader() Loader {
	return &yamlLoader{
		validate: validator.New(),
	}
}

func (l *yamlLoader) Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config file")
	}

	dec := yaml.NewDecoder(
		bytes.NewReader(data),
		yaml.Validator(l.validate),
		yaml.Strict(),
	)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config file")
	}

	return cfg, nil
}

type yamlWriter struct{}

func NewWriter() Writer {
	return &yamlWriter{}
}

func (w *yamlWriter) Write(wr io.Writer, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if _, err := wr.Write(data); err != nil {
		return errors.Wrap(err, "failed to write config")
	}

	return nil
}

type finder struct {
	loader Loader
}

func NewFinder(loader Loader) Finder {
	return &finder{loader: loader}
}

func (f *finder) Find(startDir string) (Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			cfg, err := f.loader.Load(configPath)
			if err != nil {
				return Config{}, "", err
			}
			return cfg, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Config{}, "", errors.Newf(
				"config file %s not found (searched from %s to root)",
				FileName, startDir,
			)
		}
		dir = parent
	}
}

func WriteToFile(dir string, cfg Config, w Writer) error {
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "failed to create config file")
	}
	defer f.Close()

	return w.Write(f, cfg)
}
