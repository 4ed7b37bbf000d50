package nurikabe

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Config holds the solver's tunable budgets. The zero value is not
// valid; use DefaultConfig or LoadConfig.
type Config struct {
	// MaxRemaining bounds how many more cells a Region may need before
	// its completion enumeration is skipped for the round (see
	// spec §4.4). Default 8.
	MaxRemaining int `yaml:"maxRemaining"`

	// MaxSolutions bounds how many completions a single Region
	// enumeration may cache before it aborts with "budget exhausted".
	// Default 4096.
	MaxSolutions int `yaml:"maxSolutions"`
}

// DefaultConfig returns the engine's default tunables, unifying the
// reset-vs-constructor discrepancy in the source engine (spec's Open
// Questions): maxRemaining=8, maxSolutions=4096.
func DefaultConfig() Config {
	return Config{MaxRemaining: 8, MaxSolutions: 4096}
}

// LoadConfig reads and validates a YAML config file. Missing fields
// fall back to DefaultConfig's values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("nurikabe: reading config: %w", err)
	}

	var raw struct {
		MaxRemaining *int `yaml:"maxRemaining"`
		MaxSolutions *int `yaml:"maxSolutions"`
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return Config{}, fmt.Errorf("nurikabe: parsing config: %w", err)
	}
	if raw.MaxRemaining != nil {
		cfg.MaxRemaining = *raw.MaxRemaining
	}
	if raw.MaxSolutions != nil {
		cfg.MaxSolutions = *raw.MaxSolutions
	}

	if cfg.MaxRemaining <= 0 {
		return Config{}, fmt.Errorf("nurikabe: maxRemaining must be positive, got %d", cfg.MaxRemaining)
	}
	if cfg.MaxSolutions <= 0 {
		return Config{}, fmt.Errorf("nurikabe: maxSolutions must be positive, got %d", cfg.MaxSolutions)
	}
	return cfg, nil
}
