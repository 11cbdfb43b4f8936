package garland

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config fixes the startup shape of a session: the display class, the size
// of each fixed partition, and the random seed. The display class is
// evaluated once at startup and never again; it selects particle counts,
// camera constants, and the focus staging constants.
type Config struct {
	// Constrained marks a small display (narrow viewport). Fewer particles,
	// wider field of view, tighter photo ring.
	Constrained bool `toml:"constrained"`

	// Needles, Shapes, and Dust are the fixed partition sizes built once at
	// startup.
	Needles int `toml:"needles"`
	Shapes  int `toml:"shapes"`
	Dust    int `toml:"dust"`

	// Seed initializes the choreography's random source. Zero means the
	// default seed.
	Seed uint64 `toml:"seed"`
}

// DefaultConfig returns the stock configuration for the given display class.
func DefaultConfig(constrained bool) Config {
	if constrained {
		return Config{
			Constrained: true,
			Needles:     1400,
			Shapes:      170,
			Dust:        240,
		}
	}
	return Config{
		Needles: 2600,
		Shapes:  300,
		Dust:    420,
	}
}

// LoadConfig overlays the TOML file at path onto the default configuration
// for the given display class. Fields absent from the file keep their
// defaults.
func LoadConfig(path string, constrained bool) (Config, error) {
	cfg := DefaultConfig(constrained)
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field, or nil.
func (c Config) Validate() error {
	if c.Needles < 0 {
		return fmt.Errorf("needles must be >= 0, got %d", c.Needles)
	}
	if c.Shapes < 0 {
		return fmt.Errorf("shapes must be >= 0, got %d", c.Shapes)
	}
	if c.Dust < 0 {
		return fmt.Errorf("dust must be >= 0, got %d", c.Dust)
	}
	return nil
}
