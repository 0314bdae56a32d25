package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/sheetcrop/internal/config"
	"github.com/backmassage/sheetcrop/internal/logging"
)

// commandContext carries the shared flag values to every subcommand.
type commandContext struct {
	flags *config.FlagValues
}

// loadConfig builds the effective configuration: defaults, then the TOML
// file, then flags the user set on cmd. The result is validated.
func (c *commandContext) loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg, path, err := c.load(cmd)
	if err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, path, nil
}

// rawConfig is loadConfig without validation.
func (c *commandContext) rawConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, _, err := c.load(cmd)
	return cfg, err
}

func (c *commandContext) load(cmd *cobra.Command) (*config.Config, string, error) {
	cfg, path, found, err := config.Load(c.flags.ConfigPath)
	if err != nil {
		return nil, "", err
	}
	if err := config.ApplyFlags(cmd.Flags(), c.flags, &cfg); err != nil {
		return nil, "", err
	}
	if !found {
		path = ""
	}
	return &cfg, path, nil
}

// open loads the configuration and starts the logger. The caller must
// Close the logger.
func (c *commandContext) open(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	cfg, path, err := c.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log, err := openLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	if path != "" {
		log.Debug(cfg.Verbose, "Config: %s", path)
	}
	return cfg, log, nil
}

func openLogger(cfg *config.Config) (*logging.Logger, error) {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return log, nil
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of targets vs results hierarchies. A path that does not exist yet is
// resolved through its closest existing ancestor.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		return abs, nil
	}
	base, err := absPath(parent)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, filepath.Base(abs)), nil
}
