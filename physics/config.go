package physics

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tuning parameters of a World.
type Config struct {
	// FixedTimestep is the size of a single simulation step in seconds.
	FixedTimestep float64 `yaml:"fixedTimestep"`

	// MaxAccumulator caps the amount of frame time carried into Update.
	// Anything above is dropped to avoid a spiral of death.
	MaxAccumulator float64 `yaml:"maxAccumulator"`

	ConstraintIterations int     `yaml:"constraintIterations"`
	BaumgarteBias        float64 `yaml:"baumgarteBias"`

	MaxLinearVelocity  float64 `yaml:"maxLinearVelocity"`
	MaxAngularVelocity float64 `yaml:"maxAngularVelocity"`

	// MaxPenetrationCorrection limits the positional correction applied
	// to a single contact in one step.
	MaxPenetrationCorrection float64 `yaml:"maxPenetrationCorrection"`

	// BroadPhaseThreshold is the number of colliders above which the
	// spatial hash replaces the all pairs test.
	BroadPhaseThreshold int     `yaml:"broadPhaseThreshold"`
	SpatialCellSize     float64 `yaml:"spatialCellSize"`

	// CCDSafetyMargin is subtracted from the time of impact when a swept
	// body is moved back.
	CCDSafetyMargin float64 `yaml:"ccdSafetyMargin"`

	GroundRestThreshold  float64 `yaml:"groundRestThreshold"`
	GroundFrictionFactor float64 `yaml:"groundFrictionFactor"`

	RaycastMaxDistance float64 `yaml:"raycastMaxDistance"`

	EnableSleep           bool    `yaml:"enableSleep"`
	SleepLinearThreshold  float64 `yaml:"sleepLinearThreshold"`
	SleepAngularThreshold float64 `yaml:"sleepAngularThreshold"`
	SleepTime             float64 `yaml:"sleepTime"`
}

func DefaultConfig() Config {
	return Config{
		FixedTimestep:            1.0 / 64.0,
		MaxAccumulator:           0.25,
		ConstraintIterations:     8,
		BaumgarteBias:            0.2,
		MaxLinearVelocity:        500,
		MaxAngularVelocity:       100,
		MaxPenetrationCorrection: 1.0,
		BroadPhaseThreshold:      32,
		SpatialCellSize:          4.0,
		CCDSafetyMargin:          0.01,
		GroundRestThreshold:      0.1,
		GroundFrictionFactor:     0.1,
		RaycastMaxDistance:       1000,
		EnableSleep:              true,
		SleepLinearThreshold:     0.05,
		SleepAngularThreshold:    0.05,
		SleepTime:                0.5,
	}
}

// Validate checks that all values are in their valid range.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"fixedTimestep", c.FixedTimestep},
		{"maxAccumulator", c.MaxAccumulator},
		{"maxLinearVelocity", c.MaxLinearVelocity},
		{"maxAngularVelocity", c.MaxAngularVelocity},
		{"maxPenetrationCorrection", c.MaxPenetrationCorrection},
		{"spatialCellSize", c.SpatialCellSize},
		{"raycastMaxDistance", c.RaycastMaxDistance},
	}

	for _, field := range positive {
		if !(field.value > 0) {
			return fmt.Errorf("%s must be positive, got %v", field.name, field.value)
		}
	}

	if c.MaxAccumulator < c.FixedTimestep {
		return fmt.Errorf("maxAccumulator (%v) must not be smaller than fixedTimestep (%v)", c.MaxAccumulator, c.FixedTimestep)
	}

	if c.ConstraintIterations < 1 {
		return fmt.Errorf("constraintIterations must be at least 1, got %d", c.ConstraintIterations)
	}

	if c.BaumgarteBias < 0 || c.BaumgarteBias > 1 {
		return fmt.Errorf("baumgarteBias must be in [0, 1], got %v", c.BaumgarteBias)
	}

	if c.BroadPhaseThreshold < 0 {
		return fmt.Errorf("broadPhaseThreshold must not be negative, got %d", c.BroadPhaseThreshold)
	}

	if c.CCDSafetyMargin < 0 || c.CCDSafetyMargin >= 1 {
		return fmt.Errorf("ccdSafetyMargin must be in [0, 1), got %v", c.CCDSafetyMargin)
	}

	if c.GroundRestThreshold < 0 || c.GroundFrictionFactor < 0 {
		return fmt.Errorf("ground parameters must not be negative")
	}

	if c.SleepLinearThreshold < 0 || c.SleepAngularThreshold < 0 || c.SleepTime < 0 {
		return fmt.Errorf("sleep parameters must not be negative")
	}

	return nil
}

// LoadConfig reads a yaml document on top of the DefaultConfig.
// Keys missing from the document keep their default value.
func LoadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&config); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode physics config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid physics config: %w", err)
	}

	return config, nil
}

// LoadConfigFile reads the config from a yaml file.
func LoadConfigFile(path string) (Config, error) {
	fp, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open physics config: %w", err)
	}

	defer fp.Close()

	config, err := LoadConfig(fp)
	if err != nil {
		return Config{}, err
	}

	slog.Info("Loaded physics config", slog.String("path", path))

	return config, nil
}
