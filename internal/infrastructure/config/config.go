package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/hookguard/internal/adapters/otel"
	"github.com/emiliopalmerini/hookguard/internal/util"
)

// Prefix is prepended to every environment variable name.
const Prefix = "HOOKGUARD"

// Config holds hook configuration read from HOOKGUARD_* variables.
type Config struct {
	// EditLog is the edit log file; defaults to ~/.claude/localbus-edits.log.
	EditLog    string `envconfig:"EDIT_LOG"`
	EditSuffix string `envconfig:"EDIT_SUFFIX" default:".swift"`
	Debug      bool   `envconfig:"DEBUG"`

	OTEL otel.Config `envconfig:"OTEL"`
}

// Load reads configuration from the environment and resolves defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.EditLog == "" {
		path, err := util.DefaultEditLogPath()
		if err != nil {
			return nil, err
		}
		cfg.EditLog = path
	}
	return &cfg, nil
}
