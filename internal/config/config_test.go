// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(viper.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if c.MaxMismatches != 2 || !c.RequireThreePrimeExact || c.ThreePrimeRun != 3 {
		t.Errorf("matching defaults: %+v", c)
	}
	if c.MinProduct != 0 || c.MaxProduct != 0 || c.Alternatives != 3 {
		t.Errorf("product defaults: %+v", c)
	}
	if c.Timeout != 0 || c.SecondsPerKb != 30 || !c.CheckDimers {
		t.Errorf("runtime defaults: %+v", c)
	}
	if c.Scoring.MismatchPenalty != 0.12 || c.Scoring.ThreePrimeWeight != 2.0 {
		t.Errorf("scoring defaults: %+v", c.Scoring)
	}
	if c.Dimer.MaxMismatches != 1 || c.Dimer.MinOverlapFrac != 0.5 {
		t.Errorf("dimer defaults: %+v", c.Dimer)
	}
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := `max-mismatches: 4
timeout: 2s
scoring:
  mismatch-penalty: 0.2
  optimal-length: 500
dimer:
  min-overlap-frac: 0.75
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(viper.New(), path)
	if err != nil {
		t.Fatal(err)
	}
	if c.MaxMismatches != 4 {
		t.Errorf("max-mismatches: %d", c.MaxMismatches)
	}
	if c.Timeout != 2*time.Second {
		t.Errorf("timeout: %v", c.Timeout)
	}
	if c.Scoring.MismatchPenalty != 0.2 || c.Scoring.OptimalLength != 500 {
		t.Errorf("scoring: %+v", c.Scoring)
	}
	if c.Dimer.MinOverlapFrac != 0.75 {
		t.Errorf("dimer: %+v", c.Dimer)
	}
	// Untouched keys keep their defaults.
	if c.Alternatives != 3 || c.SecondsPerKb != 30 {
		t.Errorf("defaults lost: %+v", c)
	}
}

func TestLoadMissingSettingsFile(t *testing.T) {
	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("want error for missing settings file")
	}
}

func TestSimConfig(t *testing.T) {
	c, err := Load(viper.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	c.MaxMismatches = 1
	c.Timeout = 5 * time.Second
	c.Scoring.OptimalLength = 200

	sc := c.SimConfig()
	if sc.MaxMismatches != 1 || sc.Budget != 5*time.Second {
		t.Errorf("sim config: %+v", sc)
	}
	if sc.Score.OptimalLength != 200 || sc.Score.MismatchPenalty != 0.12 {
		t.Errorf("score config: %+v", sc.Score)
	}
	if sc.Dimer.MaxMismatches != 1 || sc.Dimer.MinOverlapFrac != 0.5 {
		t.Errorf("dimer config: %+v", sc.Dimer)
	}
	if sc.Alternates != 3 {
		t.Errorf("alternates: %d", sc.Alternates)
	}
}
