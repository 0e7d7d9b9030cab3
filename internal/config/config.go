package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/balancer/internal/assessment"
	"github.com/abhisek/balancer/internal/catalog"
)

// DisableLogging is the log_file value that discards log output.
const DisableLogging = "-"

// Config holds application configuration loaded from files, the environment and flags.
type Config struct {
	Env         string `mapstructure:"env"`          // local, production
	CatalogPath string `mapstructure:"catalog_path"` // empty uses the embedded catalog
	Presence    string `mapstructure:"presence"`     // exists or truthy
	LogFile     string `mapstructure:"log_file"`     // "-" disables logging
	LogLevel    string `mapstructure:"log_level"`
	JournalPath string `mapstructure:"journal_path"` // empty keeps the journal in memory
	ExportPath  string `mapstructure:"export_path"`  // written at completion when set
}

// LoadOptions controls where Load looks besides the defaults.
type LoadOptions struct {
	// ConfigFile is an explicit config file. When set it must exist.
	ConfigFile string

	// Flags are bound over the file and environment values. Only flags the
	// user actually set take precedence.
	Flags *pflag.FlagSet

	// EnvFile is loaded into the environment before anything else. Defaults
	// to ".env"; a missing file is ignored.
	EnvFile string
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"catalog":   "catalog_path",
	"presence":  "presence",
	"journal":   "journal_path",
	"export":    "export_path",
	"log-file":  "log_file",
	"log-level": "log_level",
}

// Load reads configuration from .env, config files, BALANCER_* environment
// variables and flags, in increasing precedence.
func Load(opts LoadOptions) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	v := viper.New()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetDefault("env", "local")
	v.SetDefault("catalog_path", "")
	v.SetDefault("presence", assessment.PresenceExists.String())
	v.SetDefault("log_file", defaultLogFile())
	v.SetDefault("log_level", "info")
	v.SetDefault("journal_path", "")
	v.SetDefault("export_path", "")

	v.SetEnvPrefix("balancer")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("env", "BALANCER_ENV", "APP_ENV")

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if _, err := c.PresencePolicy(); err != nil {
		return fmt.Errorf("invalid presence: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

// IsProduction reports whether env selects production logging.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// PresencePolicy parses the presence setting.
func (c *Config) PresencePolicy() (assessment.PresencePolicy, error) {
	return assessment.ParsePresencePolicy(c.Presence)
}

// Level parses the log level setting.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// LoggingDisabled reports whether log output is discarded.
func (c *Config) LoggingDisabled() bool {
	return c.LogFile == "" || c.LogFile == DisableLogging
}

// Catalog loads the configured catalog, or the embedded one.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if c.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(c.CatalogPath)
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "balancer"), nil
}

// defaultLogFile resolves $XDG_STATE_HOME/balancer/balancer.log, falling
// back to ~/.local/state.
func defaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DisableLogging
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "balancer", "balancer.log")
}
