package cmd

import (
	"fmt"
	"log/slog"

	"github.com/cottand/mcrl/internal/config"
	"github.com/cottand/mcrl/internal/log"
	"github.com/spf13/cobra"
)

var cliLogger = log.DefaultLogger.With("section", "cli")

func addConfigFlags(c *cobra.Command) {
	c.Flags().StringP("config", "c", "", "path to a YAML config file")
	c.Flags().IntP("log-level", "l", int(slog.LevelWarn), "log level, overrides the config file")
}

// loadConfig reads the config named by the --config flag and applies
// its logging settings, letting --log-level take precedence
func loadConfig(c *cobra.Command) (config.Config, error) {
	path, err := c.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	conf, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("could not load config: %w", err)
	}
	if err := conf.Apply(); err != nil {
		return config.Config{}, err
	}
	if c.Flags().Changed("log-level") {
		level, err := c.Flags().GetInt("log-level")
		if err != nil {
			return config.Config{}, err
		}
		log.SetLevel(slog.Level(level))
	}
	cliLogger.Debug("loaded config", "path", path, "rewriter", conf.Rewriter.Strategy)
	return conf, nil
}
