// Package config holds app-wide settings unmarshalled from Viper: built-in
// defaults, then an optional YAML settings file, then flags bound by the CLI.
package config

import (
	"time"

	"github.com/spf13/viper"

	"ampsim/core/amplicon"
	"ampsim/core/dimer"
	"ampsim/core/extend"
	"ampsim/core/sim"
)

// ScoringConfig tunes the likelihood model coefficients.
type ScoringConfig struct {
	// base cost of a 5'-end mismatch
	MismatchPenalty float64 `mapstructure:"mismatch-penalty"`

	// extra weight for mismatches approaching the 3' end
	ThreePrimeWeight float64 `mapstructure:"three-prime-weight"`

	// tie-break target product size; 0 disables
	OptimalLength int `mapstructure:"optimal-length"`
}

// DimerConfig tunes primer-dimer flagging.
type DimerConfig struct {
	MaxMismatches  int     `mapstructure:"max-mismatches"`
	MinOverlapFrac float64 `mapstructure:"min-overlap-frac"`
}

// Config is the root settings struct.
type Config struct {
	MaxMismatches          int           `mapstructure:"max-mismatches"`
	RequireThreePrimeExact bool          `mapstructure:"require-3p-exact"`
	ThreePrimeRun          int           `mapstructure:"3p-window"`
	MinProduct             int           `mapstructure:"min-product"`
	MaxProduct             int           `mapstructure:"max-product"`
	Alternatives           int           `mapstructure:"alternatives"`
	Threads                int           `mapstructure:"threads"`
	Timeout                time.Duration `mapstructure:"timeout"`
	SecondsPerKb           float64       `mapstructure:"seconds-per-kb"`
	CheckDimers            bool          `mapstructure:"check-dimers"`
	Scoring                ScoringConfig `mapstructure:"scoring"`
	Dimer                  DimerConfig   `mapstructure:"dimer"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("max-mismatches", 2)
	v.SetDefault("require-3p-exact", true)
	v.SetDefault("3p-window", 3)
	v.SetDefault("min-product", 0)
	v.SetDefault("max-product", 0)
	v.SetDefault("alternatives", 3)
	v.SetDefault("threads", 0)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("seconds-per-kb", extend.DefaultSecondsPerKb)
	v.SetDefault("check-dimers", true)
	v.SetDefault("scoring.mismatch-penalty", 0.12)
	v.SetDefault("scoring.three-prime-weight", 2.0)
	v.SetDefault("scoring.optimal-length", 0)
	v.SetDefault("dimer.max-mismatches", 1)
	v.SetDefault("dimer.min-overlap-frac", dimer.DefaultMinOverlapFrac)
}

// Load merges defaults, an optional settings file, and already-bound flags
// into a Config.
func Load(v *viper.Viper, settingsPath string) (Config, error) {
	SetDefaults(v)
	if settingsPath != "" {
		v.SetConfigFile(settingsPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// SimConfig converts the app settings into the core's request config.
func (c Config) SimConfig() sim.Config {
	return sim.Config{
		MaxMismatches:          c.MaxMismatches,
		RequireThreePrimeExact: c.RequireThreePrimeExact,
		ThreePrimeRun:          c.ThreePrimeRun,
		MinProduct:             c.MinProduct,
		MaxProduct:             c.MaxProduct,
		Alternates:             c.Alternatives,
		Threads:                c.Threads,
		Budget:                 c.Timeout,
		SecondsPerKb:           c.SecondsPerKb,
		CheckDimers:            c.CheckDimers,
		Score: amplicon.ScoreConfig{
			MismatchPenalty:  c.Scoring.MismatchPenalty,
			ThreePrimeWeight: c.Scoring.ThreePrimeWeight,
			OptimalLength:    c.Scoring.OptimalLength,
		},
		Dimer: dimer.Options{
			MaxMismatches:  c.Dimer.MaxMismatches,
			MinOverlapFrac: c.Dimer.MinOverlapFrac,
		},
	}
}
