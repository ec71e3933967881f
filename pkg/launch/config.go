package launch

import "github.com/lvim-tech/qmenu/pkg/config"

// DefaultHelper starts an application from its desktop file id.
const DefaultHelper = "gtk-launch"

// Config represents launcher configuration
type Config struct {
	Helper string `mapstructure:"helper"`
}

// DefaultConfig returns default launcher configuration
func DefaultConfig() Config {
	return Config{Helper: DefaultHelper}
}

// ConfigFrom decodes the [launcher] section on top of the defaults.
func ConfigFrom(section config.Section) (Config, error) {
	cfg := DefaultConfig()
	if err := section.Decode(&cfg); err != nil {
		return DefaultConfig(), err
	}
	if cfg.Helper == "" {
		cfg.Helper = DefaultHelper
	}
	return cfg, nil
}
