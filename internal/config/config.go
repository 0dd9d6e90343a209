// Package config loads the YAML configuration shared by the mcrl commands
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/cottand/mcrl/internal/log"
	"github.com/cottand/mcrl/lps"
	"github.com/cottand/mcrl/rewr"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// LogLevel is one of debug, info, warn or error
	LogLevel string `yaml:"log_level"`
	// LogSections restricts debug and info output to these sections.
	// Empty means all of them
	LogSections []string            `yaml:"log_sections"`
	Rewriter    rewr.Settings       `yaml:"rewriter"`
	Constelm    lps.ConstelmOptions `yaml:"constelm"`
}

func Default() Config {
	return Config{
		LogLevel: "warn",
		Rewriter: rewr.DefaultSettings(),
	}
}

// Load reads the file at path on top of Default. An empty path
// gives Default
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "could not read config")
	}
	c, err := Parse(content)
	if err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return c, nil
}

// Parse decodes content on top of Default, rejecting unknown keys
func Parse(content []byte) (Config, error) {
	c := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return c.Rewriter.Validate()
}

func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, errors.Wrapf(err, "log_level")
	}
	return l, nil
}

// Apply configures the process-wide logger
func (c Config) Apply() error {
	l, err := c.Level()
	if err != nil {
		return err
	}
	log.SetLevel(l)
	if len(c.LogSections) > 0 {
		log.EnableSections(c.LogSections...)
	}
	return nil
}
