// Package config provides configuration management for qmenu.
// It handles loading, merging, and accessing configuration from default and user config files.
package config

import (
	_ "embed"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
)

//go:embed default.toml
var defaultConfigData string

// Config структура
type Config struct {
	DefaultFrontend string                    `toml:"default_frontend"`
	Log             LogConfig                 `toml:"log"`
	Notifications   NotificationConfig        `toml:"notifications"`
	Frontends       map[string]FrontendConfig `toml:"frontends"`

	// Module sections, decoded by the owning package
	Scanner  Section `toml:"scanner"`
	Terminal Section `toml:"terminal"`
	Launcher Section `toml:"launcher"`
	UI       Section `toml:"ui"`
}

// Section is a raw module table. Each package decodes it into its own Config.
type Section map[string]any

// LogConfig описва logging настройките
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// NotificationConfig описва desktop notifications
type NotificationConfig struct {
	Enabled bool   `toml:"enabled"`
	Tool    string `toml:"tool"`
	Timeout int    `toml:"timeout"`
	Urgency string `toml:"urgency"`
}

// FrontendConfig описва как да се стартира външно menu
type FrontendConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// LogConfigFile е за четене от TOML (с pointers за optional полета)
type LogConfigFile struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// NotificationConfigFile е за четене от TOML
type NotificationConfigFile struct {
	Enabled *bool   `toml:"enabled"`
	Tool    *string `toml:"tool"`
	Timeout *int    `toml:"timeout"`
	Urgency *string `toml:"urgency"`
}

// ConfigFile е за четене от TOML файл
type ConfigFile struct {
	DefaultFrontend *string                   `toml:"default_frontend"`
	Log             LogConfigFile             `toml:"log"`
	Notifications   NotificationConfigFile    `toml:"notifications"`
	Frontends       map[string]FrontendConfig `toml:"frontends"`

	Scanner  Section `toml:"scanner"`
	Terminal Section `toml:"terminal"`
	Launcher Section `toml:"launcher"`
	UI       Section `toml:"ui"`
}

// GetUserConfigPath връща пътя до user config
func GetUserConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "qmenu", "config.toml")
}

// GetSystemConfigPath връща пътя до system config
func GetSystemConfigPath() string {
	return "/etc/qmenu/config.toml"
}

// Load зарежда config с merge на defaults + user config.
// An explicit path replaces the user/system lookup.
func Load(path string) (*Config, error) {
	if path != "" {
		defaultCfg, err := loadDefaultConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load default config: %w", err)
		}
		userCfg, err := loadConfigFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return mergeConfigs(defaultCfg, userCfg), nil
	}
	return LoadFrom(GetUserConfigPath(), GetSystemConfigPath())
}

// LoadFrom зарежда defaults и после първия съществуващ файл от userPath, systemPath
func LoadFrom(userPath, systemPath string) (*Config, error) {
	// 1. Зареди defaults
	defaultCfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	// 2. Опитай да заредиш user, после system config
	for _, p := range []string{userPath, systemPath} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		fileCfg, err := loadConfigFromFile(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load config %s: %v\n", p, err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			return defaultCfg, nil
		}
		return mergeConfigs(defaultCfg, fileCfg), nil
	}

	// 3. Няма user/system config - използвай defaults
	return defaultCfg, nil
}

// loadDefaultConfig зарежда вградения default config
func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromFile зарежда config от файл
func loadConfigFromFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs merge user config с defaults (user override defaults)
func mergeConfigs(defaultCfg *Config, userCfg *ConfigFile) *Config {
	merged := *defaultCfg

	if userCfg.DefaultFrontend != nil && *userCfg.DefaultFrontend != "" {
		merged.DefaultFrontend = *userCfg.DefaultFrontend
	}

	mergeLogConfig(&merged.Log, &userCfg.Log)
	mergeNotificationConfig(&merged.Notifications, &userCfg.Notifications)

	merged.Frontends = maps.Clone(defaultCfg.Frontends)
	if merged.Frontends == nil {
		merged.Frontends = make(map[string]FrontendConfig)
	}
	for name, fe := range userCfg.Frontends {
		base := merged.Frontends[name]
		if fe.Command != "" {
			base.Command = fe.Command
		}
		if fe.Args != nil {
			base.Args = fe.Args
		}
		merged.Frontends[name] = base
	}

	merged.Scanner = mergeSection(defaultCfg.Scanner, userCfg.Scanner)
	merged.Terminal = mergeSection(defaultCfg.Terminal, userCfg.Terminal)
	merged.Launcher = mergeSection(defaultCfg.Launcher, userCfg.Launcher)
	merged.UI = mergeSection(defaultCfg.UI, userCfg.UI)

	return &merged
}

func mergeLogConfig(merged *LogConfig, user *LogConfigFile) {
	if user.Level != nil && *user.Level != "" {
		merged.Level = *user.Level
	}
	if user.File != nil {
		merged.File = *user.File
	}
}

func mergeNotificationConfig(merged *NotificationConfig, user *NotificationConfigFile) {
	if user.Enabled != nil {
		merged.Enabled = *user.Enabled
	}
	if user.Tool != nil && *user.Tool != "" {
		merged.Tool = *user.Tool
	}
	if user.Timeout != nil {
		merged.Timeout = *user.Timeout
	}
	if user.Urgency != nil && *user.Urgency != "" {
		merged.Urgency = *user.Urgency
	}
}

// mergeSection връща копие на defaults с user ключовете отгоре
func mergeSection(defaults, user Section) Section {
	merged := make(Section, len(defaults)+len(user))
	maps.Copy(merged, defaults)
	maps.Copy(merged, user)
	return merged
}

// Decode decodes the section on top of out, which should already hold the
// package defaults. Keys absent from the section keep their value.
func (s Section) Decode(out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ZeroFields:       true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(map[string]any(s))
}

// InitUserConfig копира default config в user config директорията
func InitUserConfig() error {
	userConfigPath := GetUserConfigPath()
	userConfigDir := filepath.Dir(userConfigPath)

	// Провери дали вече съществува
	if _, err := os.Stat(userConfigPath); err == nil {
		return fmt.Errorf("config already exists: %s", userConfigPath)
	}

	if err := os.MkdirAll(userConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigContent връща съдържанието на default config
func GetDefaultConfigContent() string {
	return defaultConfigData
}

// GetFrontendConfig връща настройките за конкретен frontend
func (c *Config) GetFrontendConfig(name string) (FrontendConfig, bool) {
	fe, ok := c.Frontends[name]
	return fe, ok
}
