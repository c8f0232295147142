package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the user's configuration
type Config struct {
	Assignees       []string  `mapstructure:"assignees"`
	DefaultAssignee string    `mapstructure:"default_assignee"`
	DefaultZone     string    `mapstructure:"default_zone"`
	Catalog         string    `mapstructure:"catalog"` // Optional path to a YAML catalog
	Log             LogConfig `mapstructure:"log"`
}

// LogConfig controls the session log file
type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"` // Defaults to ~/.chores/logs
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Assignees:       []string{"Eric", "Sam"},
		DefaultAssignee: "Eric",
		DefaultZone:     "front",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GlobalDir returns the global config directory path (~/.chores)
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chores"), nil
}

// globalConfigPath returns the global config file path (~/.chores/config.yaml)
func globalConfigPath() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// projectConfigPath returns the project-level config path (.chores/config.yaml in cwd)
func projectConfigPath() string {
	return filepath.Join(".chores", "config.yaml")
}

// Load reads the configuration. An explicit path is the only file read;
// otherwise the global config is read and the project config is merged
// over it. Missing files are skipped.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		if err := mergeFile(v, path); err != nil {
			return nil, err
		}
		return decode(v)
	}

	if globalPath, err := globalConfigPath(); err == nil {
		if err := mergeFile(v, globalPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := mergeFile(v, projectConfigPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return decode(v)
}

// newViper returns a viper instance seeded with DefaultConfig values
func newViper() *viper.Viper {
	d := DefaultConfig()
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("assignees", d.Assignees)
	v.SetDefault("default_assignee", d.DefaultAssignee)
	v.SetDefault("default_zone", d.DefaultZone)
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.dir", d.Log.Dir)
	return v
}

func mergeFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Assignees) == 0 {
		return fmt.Errorf("config validation: assignees must not be empty")
	}
	if !slices.Contains(c.Assignees, c.DefaultAssignee) {
		return fmt.Errorf("config validation: default_assignee %q is not in assignees %v", c.DefaultAssignee, c.Assignees)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config validation: log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

// WriteDefault writes a commented default configuration to path
func WriteDefault(path string) error {
	content := `# Chore scheduler configuration

# People chores can be assigned to
assignees:
  - Eric
  - Sam
default_assignee: Eric

# Zone shown at startup (front or back for the built-in catalog)
default_zone: front

# Optional YAML catalog replacing the built-in rooms and chores.
# Print the built-in one with: chores catalog > catalog.yaml
# catalog: ./catalog.yaml

log:
  level: info   # debug, info, warn or error
  # dir: ~/.chores/logs
`
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// LogDir returns the directory for session logs, expanding a leading ~
func (c *Config) LogDir() (string, error) {
	if c.Log.Dir == "" {
		dir, err := GlobalDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "logs"), nil
	}
	if c.Log.Dir == "~" || strings.HasPrefix(c.Log.Dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(c.Log.Dir, "~")), nil
	}
	return c.Log.Dir, nil
}
