// Package config resolves conversion settings from flags, environment
// variables and an optional config file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nvinuesa/applewarden/internal/normalize"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "APPLEWARDEN"

	KeyFolder             = "folder"
	KeyStripParenthetical = "strip_parenthetical_suffix"
	KeyPrefixes           = "prefixes"
	KeySuffixes           = "suffixes"
)

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"folder":              KeyFolder,
	"strip-parenthetical": KeyStripParenthetical,
	"prefixes":            KeyPrefixes,
	"suffixes":            KeySuffixes,
}

// Config holds the settings of one conversion.
type Config struct {
	// Folder is the name of the folder items are placed in. Empty for none.
	Folder string `mapstructure:"folder"`
	// StripParenthetical enables trailing "(...)" removal from names.
	StripParenthetical bool `mapstructure:"strip_parenthetical_suffix"`
	// Prefixes are name prefixes to strip.
	Prefixes []string `mapstructure:"prefixes"`
	// Suffixes are name suffixes to strip.
	Suffixes []string `mapstructure:"suffixes"`
}

// DefaultConfig returns a Config that converts without a folder and leaves
// names unchanged.
func DefaultConfig() *Config {
	return &Config{}
}

// Rules returns the normalization rules described by the config.
func (c *Config) Rules() normalize.Rules {
	return normalize.NewRules(c.StripParenthetical, c.Prefixes, c.Suffixes)
}

// LoadOptions selects the inputs Load merges.
type LoadOptions struct {
	// ConfigFilePath is an optional yaml, toml or json file.
	ConfigFilePath string
	// Flags are bound so that flags set on the command line win.
	Flags *pflag.FlagSet
}

// Load merges, in increasing priority: defaults, the config file,
// APPLEWARDEN_* environment variables and explicitly set flags.
// List values given as strings are split on commas.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeyFolder, defaults.Folder)
	v.SetDefault(KeyStripParenthetical, defaults.StripParenthetical)
	v.SetDefault(KeyPrefixes, defaults.Prefixes)
	v.SetDefault(KeySuffixes, defaults.Suffixes)

	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return nil, fmt.Errorf("config file not found: %s", opts.ConfigFilePath)
		}
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFilePath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range flagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Prefixes, err = ruleList(v.Get(KeyPrefixes)); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyPrefixes, err)
	}
	if cfg.Suffixes, err = ruleList(v.Get(KeySuffixes)); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeySuffixes, err)
	}

	return &cfg, nil
}

// ruleList reads a prefix or suffix list. Strings come from flags and the
// environment and are comma-split with each piece trimmed. Lists come from
// a config file and keep their entries verbatim.
func ruleList(raw any) ([]string, error) {
	switch val := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return normalize.ParseList(val), nil
	default:
		items, err := cast.ToStringSliceE(val)
		if err != nil {
			return nil, err
		}
		return normalize.CleanList(items), nil
	}
}

// RegisterFlags adds the conversion flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("folder", "f", "", "Name of the Bitwarden folder to put entries into")
	fs.Bool("strip-parenthetical", false, "Remove a trailing \"(...)\" group from item names")
	fs.String("prefixes", "", "Comma-separated prefixes to strip from item names (longest match first)")
	fs.String("suffixes", "", "Comma-separated suffixes to strip from item names (longest match first)")
}
