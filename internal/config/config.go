package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Drumstickz64/todolist/internal/logging"
	"github.com/Drumstickz64/todolist/internal/store"
	"github.com/spf13/viper"
)

// Config represents the complete todolist configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig controls where the task list is persisted
type StorageConfig struct {
	// Path is the state file. Empty means store.DefaultPath().
	Path string `mapstructure:"path"`
}

// UIConfig controls the terminal UI and list output
type UIConfig struct {
	// CharLimit caps the length of a task name typed in the TUI (0 = unlimited)
	CharLimit int `mapstructure:"char_limit"`
	// Group splits `ls` output into pending and done sections
	Group bool `mapstructure:"group"`
	// ShowHelp shows the key help line under the list
	ShowHelp bool `mapstructure:"show_help"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// File is the log file. Empty means todolist.log next to the state file.
	File string `mapstructure:"file"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: "",
		},
		UI: UIConfig{
			CharLimit: 200,
			Group:     false,
			ShowHelp:  true,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			File:    "",
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("storage.path", defaults.Storage.Path)

	v.SetDefault("ui.char_limit", defaults.UI.CharLimit)
	v.SetDefault("ui.group", defaults.UI.Group)
	v.SetDefault("ui.show_help", defaults.UI.ShowHelp)

	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file", defaults.Logging.File)
}

// Init prepares v: defaults, config file search paths, and TODOLIST_ env
// overrides. cfgFile, when set, replaces the search. A missing config file
// is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TODOLIST")
	// e.g., TODOLIST_STORAGE_PATH for storage.path
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// StatePath returns the configured state file, or the default location.
func (c *Config) StatePath() string {
	if c.Storage.Path != "" {
		return expandHome(c.Storage.Path)
	}
	return store.DefaultPath()
}

// LogPath returns the configured log file, or todolist.log beside the state file.
func (c *Config) LogPath() string {
	if c.Logging.File != "" {
		return expandHome(c.Logging.File)
	}
	return filepath.Join(filepath.Dir(c.StatePath()), "todolist.log")
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "todolist")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".todolist"
	}
	return filepath.Join(home, ".config", "todolist")
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ValidationError describes one invalid config field
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a list of validation failures
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// Validate checks field ranges and enumerations
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	if c.UI.CharLimit < 0 {
		errs = append(errs, ValidationError{
			Field:   "ui.char_limit",
			Value:   c.UI.CharLimit,
			Message: "must be zero or positive",
		})
	}
	if !logging.IsValidLevel(c.Logging.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: "must be one of " + strings.ToLower(strings.Join(logging.ValidLevels(), ", ")),
		})
	}
	return errs
}
