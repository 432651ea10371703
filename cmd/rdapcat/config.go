package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	rdap "github.com/reoring/rdap"
)

// configuration holds the settings read from rdapcat.yaml and RDAPCAT_* variables.
// Command line flags are applied on top by main.
type configuration struct {
	MaxDepth     int    `mapstructure:"max_depth"`
	MaxJSONDepth int    `mapstructure:"max_json_depth"`
	Output       string `mapstructure:"output"`
	Lang         string `mapstructure:"lang"`
	LogLevel     string `mapstructure:"log_level"`
	Strict       bool   `mapstructure:"strict"`
}

func getConfig(configFile string) (*configuration, error) {
	v := viper.New()
	v.SetDefault("max_depth", rdap.DefaultMaxDepth)
	v.SetDefault("max_json_depth", rdap.DefaultMaxJSONDepth)
	v.SetDefault("output", "json")
	v.SetDefault("lang", "en")
	v.SetDefault("log_level", "info")
	v.SetDefault("strict", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", configFile)
		}
	} else {
		v.SetConfigName("rdapcat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "rdapcat"))
		}
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "reading rdapcat.yaml")
			}
		}
	}
	v.SetEnvPrefix("RDAPCAT")
	v.AutomaticEnv()

	c := &configuration{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	return c, c.validate()
}

func (c *configuration) validate() error {
	c.Output = strings.ToLower(c.Output)
	if c.Output != "json" && c.Output != "yaml" {
		return errors.Errorf("output must be json or yaml, got %q", c.Output)
	}
	if c.MaxDepth < 1 {
		return errors.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.MaxJSONDepth < 1 {
		return errors.Errorf("max_json_depth must be positive, got %d", c.MaxJSONDepth)
	}
	return nil
}

func (c *configuration) parseOpt() rdap.ParseOpt {
	opt := rdap.ParseOpt{
		MaxDepth:     c.MaxDepth,
		MaxJSONDepth: c.MaxJSONDepth,
		Strictness:   rdap.Strictness{OnDuplicateKey: rdap.Warn},
	}
	if c.Strict {
		opt.Unknown = rdap.UnknownStrict
		opt.Strictness.OnDuplicateKey = rdap.Error
	}
	return opt
}
