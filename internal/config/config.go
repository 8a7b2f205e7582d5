// Package config holds app-wide settings unmarshalled from Viper:
// defaults, then an optional .seqscan.yaml, then SEQSCAN_* environment
// variables. Command-line flags override all of these (see /internal/cmd).
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// AlignConfig carries the default scoring schemes for the aligners.
type AlignConfig struct {
	// global-alignment scores
	Match    int `mapstructure:"match"`
	Mismatch int `mapstructure:"mismatch"`
	Gap      int `mapstructure:"gap"`

	// match score used when --local is set
	LocalMatch int `mapstructure:"local-match"`
}

// Config is the root-level settings struct.
type Config struct {
	// output format: text | json
	Output string `mapstructure:"output"`

	// worker threads for multi-sequence scans (0 = all CPUs)
	Threads int `mapstructure:"threads"`

	// aligner defaults
	Align AlignConfig `mapstructure:"align"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "text")
	v.SetDefault("threads", 0)
	v.SetDefault("align.match", 1)
	v.SetDefault("align.mismatch", -1)
	v.SetDefault("align.gap", -1)
	v.SetDefault("align.local-match", 2)
}

// New returns a Config populated from defaults, an optional .seqscan.yaml
// in the working directory or home directory, and SEQSCAN_* env vars.
// A missing config file is not an error.
func New() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".seqscan")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix("seqscan")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
