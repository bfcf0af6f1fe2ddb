// Package config loads runtime tuning: difficulty presets, level scaling and the shop catalog
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mittubose/Grabby-Hand-rat-killer/catalog"
)

//go:embed default.yaml
var defaultYAML []byte

// Difficulty tunes regular hostiles
type Difficulty struct {
	RegularHealth int           `yaml:"regular_health"`
	SpeedScale    float64       `yaml:"speed_scale"`
	Jitter        float64       `yaml:"jitter"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
}

// Progression holds per-level difficulty multipliers
type Progression struct {
	SpawnIntervalFactor float64 `yaml:"spawn_interval_factor"`
	SpeedFactor         float64 `yaml:"speed_factor"`
}

// Config is the full runtime configuration
type Config struct {
	Difficulty        string                `yaml:"difficulty"`
	Countdown         time.Duration         `yaml:"countdown"`
	BossKillThreshold int                   `yaml:"boss_kill_threshold"`
	Difficulties      map[string]Difficulty `yaml:"difficulties"`
	Progression       Progression           `yaml:"progression"`
	Catalog           []catalog.Item        `yaml:"catalog"`
}

// ErrUnknownDifficulty is returned when the selected preset does not exist
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Default returns the embedded configuration
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, fmt.Errorf("parse embedded config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Load reads path on top of the embedded defaults
// Scalars and presets present in the file override; a catalog list replaces the default one
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and the catalog
func (c *Config) Validate() error {
	if _, err := c.Active(); err != nil {
		return err
	}
	for name, d := range c.Difficulties {
		if d.RegularHealth <= 0 || d.SpeedScale <= 0 || d.SpawnInterval <= 0 || d.Jitter < 0 {
			return fmt.Errorf("difficulty %s: non-positive value", name)
		}
	}
	if c.Countdown <= 0 {
		return errors.New("countdown must be positive")
	}
	if c.BossKillThreshold <= 0 {
		return errors.New("boss_kill_threshold must be positive")
	}
	if c.Progression.SpawnIntervalFactor <= 0 || c.Progression.SpeedFactor <= 0 {
		return errors.New("progression factors must be positive")
	}
	_, err := c.Shop()
	return err
}

// Active returns the selected difficulty preset
func (c *Config) Active() (Difficulty, error) {
	d, ok := c.Difficulties[c.Difficulty]
	if !ok {
		return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, c.Difficulty)
	}
	return d, nil
}

// Shop builds the catalog
func (c *Config) Shop() (*catalog.Catalog, error) {
	return catalog.New(c.Catalog)
}

// AtLevel applies the progression multipliers for level to d
func (d Difficulty) AtLevel(level int, p Progression) Difficulty {
	steps := float64(max(level, 1) - 1)
	d.SpawnInterval = time.Duration(float64(d.SpawnInterval) * math.Pow(p.SpawnIntervalFactor, steps))
	d.SpeedScale *= math.Pow(p.SpeedFactor, steps)
	return d
}
