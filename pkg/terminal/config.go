package terminal

import (
	"slices"

	"github.com/lvim-tech/qmenu/pkg/config"
)

// Config represents terminal resolution configuration
type Config struct {
	Env              string   `mapstructure:"env"`
	RequireInstalled bool     `mapstructure:"require_installed"`
	Candidates       []string `mapstructure:"candidates"`
}

// DefaultConfig returns default terminal configuration
func DefaultConfig() Config {
	return Config{
		Env:        DefaultEnv,
		Candidates: slices.Clone(DefaultCandidates),
	}
}

// ConfigFrom decodes the [terminal] section on top of the defaults.
func ConfigFrom(section config.Section) (Config, error) {
	cfg := DefaultConfig()
	if err := section.Decode(&cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}
