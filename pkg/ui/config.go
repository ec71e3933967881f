package ui

import "github.com/lvim-tech/qmenu/pkg/config"

// Config represents terminal UI configuration
type Config struct {
	Heading      string `mapstructure:"heading"`
	Prompt       string `mapstructure:"prompt"`
	Mouse        bool   `mapstructure:"mouse"`
	ExitOnLaunch bool   `mapstructure:"exit_on_launch"`
}

// DefaultConfig returns default UI configuration
func DefaultConfig() Config {
	return Config{
		Heading: "QMenu",
		Prompt:  "> ",
		Mouse:   true,
	}
}

// ConfigFrom decodes the [ui] section on top of the defaults.
func ConfigFrom(section config.Section) (Config, error) {
	cfg := DefaultConfig()
	if err := section.Decode(&cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}
