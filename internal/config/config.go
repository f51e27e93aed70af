// Package config loads textfn settings with Viper.
//
// Settings come from, in increasing priority: built-in defaults, a
// textfn.{yaml,toml,json} file, and TEXTFN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shapestone/shape-dsv/pkg/dsv"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "textfn"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "textfn"
	// EnvPrefix prefixes environment overrides, e.g. TEXTFN_OUTPUT_DIALECT.
	EnvPrefix = "TEXTFN"
)

// Config holds the CLI settings.
type Config struct {
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
	// OutputDialect is the preset used to print rows.
	OutputDialect string `mapstructure:"output_dialect"`
	// SplitOptions are name:value tokens placed before the options of split and splitv.
	SplitOptions []string `mapstructure:"split_options"`
	// JoinOptions are name:value tokens placed before the options of join.
	JoinOptions []string `mapstructure:"join_options"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Verbose:       false,
		OutputDialect: "tsv",
		SplitOptions:  []string{},
		JoinOptions:   []string{},
	}
}

// LoadOptions selects where Load looks for a config file.
type LoadOptions struct {
	// ConfigFilePath, if set, is the only file read. It must exist.
	ConfigFilePath string
	// ConfigDirPath overrides ConfigDir.
	ConfigDirPath string
}

// ConfigDir returns $XDG_CONFIG_HOME/textfn, defaulting to ~/.config/textfn.
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName), nil
}

// Load reads the settings. It returns the path of the file used, or "" when
// no file was found, which is not an error.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("output_dialect", defaults.OutputDialect)
	v.SetDefault("split_options", defaults.SplitOptions)
	v.SetDefault("join_options", defaults.JoinOptions)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return nil, "", fmt.Errorf("config file not found: %s: %w", opts.ConfigFilePath, err)
		}
		v.SetConfigFile(opts.ConfigFilePath)
	} else {
		cfgDir := opts.ConfigDirPath
		if cfgDir == "" {
			dir, err := ConfigDir()
			if err != nil {
				return nil, "", err
			}
			cfgDir = dir
		}
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(".")
		v.AddConfigPath(cfgDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, v.ConfigFileUsed(), nil
}

// Validate checks the output dialect and the option lists.
func (c *Config) Validate() error {
	if _, ok := dsv.LookupDialect(c.OutputDialect); !ok {
		return fmt.Errorf("output_dialect: unknown dialect %q (want one of %s)",
			c.OutputDialect, strings.Join(dsv.Dialects(), ", "))
	}
	if err := validateOptions("split_options", c.SplitOptions); err != nil {
		return err
	}
	return validateOptions("join_options", c.JoinOptions)
}

func validateOptions(key string, tokens []string) error {
	rest, _, err := dsv.ParseOptions(tokens)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if len(rest) > 0 {
		return fmt.Errorf("%s: %q is not a name:value option", key, rest[0])
	}
	return nil
}
