package desktop

import (
	"path/filepath"

	"github.com/lvim-tech/qmenu/pkg/config"
	"github.com/lvim-tech/qmenu/pkg/utils"
)

// Config represents scanner configuration
type Config struct {
	Directories []string `mapstructure:"directories"`
	Exclude     []string `mapstructure:"exclude"`
}

// DefaultDirectories returns the system directory followed by the user's
// $XDG_DATA_HOME/applications.
func DefaultDirectories() []string {
	return []string{
		DefaultDirectory,
		filepath.Join(utils.GetDataDir(), "applications"),
	}
}

// DefaultConfig returns default scanner configuration
func DefaultConfig() Config {
	return Config{
		Directories: DefaultDirectories(),
	}
}

// ConfigFrom decodes the [scanner] section on top of the defaults.
func ConfigFrom(section config.Section) (Config, error) {
	cfg := DefaultConfig()
	if err := section.Decode(&cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}
