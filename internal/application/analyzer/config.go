package analyzer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/es-debug/nginx-log-analyzer/internal/logging"
	"github.com/spf13/viper"
)

const (
	envPrefix = "NGINXSTAT"

	keyTopAddresses = "top-ips"
	keyTopPaths     = "top-paths"
	keyLogLevel     = "log-level"
	keyNoColor      = "no-color"

	defaultTopAddresses = 10
	defaultTopPaths     = 10
)

// Config is the resolved configuration of one analysis run.
type Config struct {
	Path         string `mapstructure:"-"`
	TopAddresses int    `mapstructure:"top-ips"`
	TopPaths     int    `mapstructure:"top-paths"`
	LogLevel     string `mapstructure:"log-level"`
	NoColor      bool   `mapstructure:"no-color"`
	ConfigPath   string `mapstructure:"-"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig(path string) Config {
	return Config{
		Path:         path,
		TopAddresses: defaultTopAddresses,
		TopPaths:     defaultTopPaths,
		LogLevel:     logging.DefaultLevel,
	}
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", appName, "config.yml")
}

// loadConfig layers defaults, the config file, NGINXSTAT_* environment
// variables and command-line flags, in increasing priority.
func loadConfig(flags cmdFlags) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault(keyTopAddresses, defaultTopAddresses)
	v.SetDefault(keyTopPaths, defaultTopPaths)
	v.SetDefault(keyLogLevel, logging.DefaultLevel)
	v.SetDefault(keyNoColor, false)

	for _, key := range []string{keyTopAddresses, keyTopPaths, keyLogLevel, keyNoColor} {
		if err := v.BindPFlag(key, flags.set.Lookup(key)); err != nil {
			return cfg, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	explicit := flags.config != ""

	configFile := flags.config
	if !explicit {
		configFile = defaultConfigFile()
	}

	if configFile != "" {
		v.SetConfigFile(configFile)

		err := v.ReadInConfig()
		if err == nil {
			cfg.ConfigPath = v.ConfigFileUsed()
		} else {
			var configFileNotFound viper.ConfigFileNotFoundError
			if explicit || (!errors.As(err, &configFileNotFound) && !os.IsNotExist(err)) {
				return cfg, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, NewErrFlag(fmt.Sprintf("decode config: %s", err))
	}

	cfg.Path = flags.path

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyLogPath{}
	}

	if c.TopAddresses <= 0 {
		return NewErrFlag(fmt.Sprintf("%s must be a positive integer, got %d", keyTopAddresses, c.TopAddresses))
	}

	if c.TopPaths <= 0 {
		return NewErrFlag(fmt.Sprintf("%s must be a positive integer, got %d", keyTopPaths, c.TopPaths))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return NewErrFlag(fmt.Sprintf("%s: %s", keyLogLevel, err))
	}

	return nil
}
