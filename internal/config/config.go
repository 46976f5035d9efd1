// Package config holds run-wide settings unmarshalled from Viper: built-in
// defaults, an optional seqmatch.yaml, SEQMATCH_* environment variables and
// command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SEQMATCH_MATCH_METHOD.
const EnvPrefix = "SEQMATCH"

// MatchConfig are settings for exact and approximate matching.
type MatchConfig struct {
	// one of boyer-moore | substring-index | subseq-index | automaton | naive
	Method string `mapstructure:"method"`

	// max mismatches per alignment
	Mismatches int `mapstructure:"mismatches"`

	// index key length for the index methods (0 = derive from segments)
	K int `mapstructure:"k"`

	// subsequence index stride (0 = interleaved phases)
	Stride int `mapstructure:"stride"`

	// also search the reverse complement of the pattern
	RevComp bool `mapstructure:"revcomp"`
}

// AssembleConfig are settings for greedy assembly.
type AssembleConfig struct {
	// minimum overlap between merged reads
	MinOverlap int `mapstructure:"min-overlap"`

	// build the overlap index once instead of after every merge
	StaleIndex bool `mapstructure:"stale-index"`
}

// Config is the root-level settings struct.
type Config struct {
	Output          string `mapstructure:"output"`
	Quiet           bool   `mapstructure:"quiet"`
	Pretty          bool   `mapstructure:"pretty"`
	Metrics         bool   `mapstructure:"metrics"`
	HitCap          int    `mapstructure:"hit-cap"`
	NoMatchExitCode bool   `mapstructure:"no-match-exit-code"`

	Match    MatchConfig    `mapstructure:"match"`
	Assemble AssembleConfig `mapstructure:"assemble"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", "text")
	v.SetDefault("quiet", false)
	v.SetDefault("pretty", false)
	v.SetDefault("metrics", false)
	v.SetDefault("hit-cap", 0)
	v.SetDefault("no-match-exit-code", false)
	v.SetDefault("match.method", "boyer-moore")
	v.SetDefault("match.mismatches", 0)
	v.SetDefault("match.k", 0)
	v.SetDefault("match.stride", 0)
	v.SetDefault("match.revcomp", false)
	v.SetDefault("assemble.min-overlap", 3)
	v.SetDefault("assemble.stale-index", false)
}

// Load reads file (or ./seqmatch.yaml when file is empty and one exists),
// applies environment overrides and unmarshals the result. Flags must
// already be bound to v.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("seqmatch")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unable to decode: %w", err)
	}
	return c, nil
}
