package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/emrzvv/bulksim/internal/errs"
)

const (
	DefaultRho       = 0.2
	DefaultNiter     = 1000
	DefaultSeed      = 1993
	DefaultMaxCycles = 1 << 26
	DefaultLogLevel  = "info"
)

// Config holds the run settings. It may come from a YAML file; command line
// flags override whatever the file sets.
type Config struct {
	Params    string  `yaml:"params"`     // parameter file path
	Rho       float64 `yaml:"rho"`        // load factor
	Niter     int     `yaml:"niter"`      // simulated cycles
	Seed      int64   `yaml:"seed"`       // 0 = derived from the clock
	Output    string  `yaml:"output"`     // trace csv, optional
	Plot      string  `yaml:"plot"`       // trace png, optional
	Verbose   bool    `yaml:"verbose"`    // diagnostic dumps on stderr
	LogLevel  string  `yaml:"log_level"`
	MaxCycles int     `yaml:"max_cycles"` // upper bound on the cycle buffer
}

// Default returns the settings used when no file is given.
func Default() *Config {
	cfg := &Config{Seed: DefaultSeed}
	fillDefaults(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s for reading: %v: %w", path, err, errs.ErrInvalidArgument)
	}
	defer f.Close()

	cfg := Config{Seed: DefaultSeed}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error when parsing config: %v: %w", err, errs.ErrMalformedInput)
	}
	logrus.Debugf("loaded run config from %s: %+v", path, cfg)

	fillDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("error when validating config: %w", err)
	}
	return &cfg, nil
}

func fillDefaults(c *Config) {
	if c.Rho == 0 {
		c.Rho = DefaultRho
	}
	if c.Niter == 0 {
		c.Niter = DefaultNiter
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.MaxCycles == 0 {
		c.MaxCycles = DefaultMaxCycles
	}
}

// Validate rejects settings a run cannot start with. The parameter file
// path is checked by the caller, since flags may still supply it.
func Validate(c *Config) error {
	if !(c.Rho > 0) {
		return fmt.Errorf("load factor must be > 0, got %v: %w", c.Rho, errs.ErrInvalidArgument)
	}
	if c.Niter <= 0 {
		return fmt.Errorf("invalid value for niter %d: %w", c.Niter, errs.ErrInvalidArgument)
	}
	if c.MaxCycles <= 0 {
		return fmt.Errorf("invalid value for max_cycles %d: %w", c.MaxCycles, errs.ErrInvalidArgument)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, errs.ErrInvalidArgument)
	}
	return nil
}
