package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range is a closed interval sampled uniformly.
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// TargetTypeConfig describes one spawnable target kind. Points may be
// negative for penalty types.
type TargetTypeConfig struct {
	Name   string  `yaml:"name"`
	Points int     `yaml:"points"`
	Color  string  `yaml:"color"`
	Sound  string  `yaml:"sound"`
	Shape  string  `yaml:"shape"` // "box" or "sphere"
	Size   float32 `yaml:"size"`
}

// ComboStep maps a consecutive-hit threshold to a score multiplier. The
// active multiplier is the greatest threshold not exceeding the streak.
type ComboStep struct {
	Hits       int     `yaml:"hits"`
	Multiplier float64 `yaml:"multiplier"`
}

// Tuning is the gameplay configuration. It is loaded once at startup; target
// types are copied by value into spawned targets and never mutated.
type Tuning struct {
	TargetTypes   []TargetTypeConfig `yaml:"targetTypes"`
	MaxTargets    int                `yaml:"maxTargets"`
	SpawnInterval Range              `yaml:"spawnInterval"` // seconds
	SpawnX        Range              `yaml:"spawnX"`        // lateral
	SpawnY        Range              `yaml:"spawnY"`        // height
	SpawnZ        Range              `yaml:"spawnZ"`        // depth, negative is forward
	LaunchSpeed   float32            `yaml:"launchSpeed"`   // max initial speed per axis
	SpinSpeed     float32            `yaml:"spinSpeed"`     // max initial angular speed, deg/s
	FloorY        float32            `yaml:"floorY"`        // prune threshold
	Combo         []ComboStep        `yaml:"combo"`
}

// Default returns the compiled-in tuning, used when no config file is
// present.
func Default() *Tuning {
	return &Tuning{
		TargetTypes: []TargetTypeConfig{
			{Name: "STANDARD", Points: 10, Color: "SkyBlue", Sound: "hit_standard", Shape: "box", Size: 1.0},
			{Name: "BONUS", Points: 25, Color: "Gold", Sound: "hit_bonus", Shape: "box", Size: 0.7},
			{Name: "PENALTY", Points: -15, Color: "Red", Sound: "hit_penalty", Shape: "sphere", Size: 0.6},
		},
		MaxTargets:    10,
		SpawnInterval: Range{Min: 0.8, Max: 1.5},
		SpawnX:        Range{Min: -10, Max: 10},
		SpawnY:        Range{Min: 2, Max: 7},
		SpawnZ:        Range{Min: -12, Max: -3},
		LaunchSpeed:   2.0,
		SpinSpeed:     90.0,
		FloorY:        -10,
		Combo: []ComboStep{
			{Hits: 1, Multiplier: 1.0},
			{Hits: 5, Multiplier: 1.5},
			{Hits: 10, Multiplier: 2.0},
			{Hits: 15, Multiplier: 3.0},
		},
	}
}

// Load reads tuning from a YAML file and validates it.
func Load(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return &t, nil
}

// LoadOrDefault falls back to the compiled-in tuning when the file is
// missing, but still rejects a file that is present and invalid.
func LoadOrDefault(path string) (*Tuning, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func (t *Tuning) Validate() error {
	if len(t.TargetTypes) == 0 {
		return fmt.Errorf("targetTypes cannot be empty")
	}
	for i, tt := range t.TargetTypes {
		if tt.Name == "" {
			return fmt.Errorf("targetTypes[%d]: name cannot be empty", i)
		}
		if tt.Size <= 0 {
			return fmt.Errorf("target %s: size must be positive, got %v", tt.Name, tt.Size)
		}
		if tt.Shape != "box" && tt.Shape != "sphere" {
			return fmt.Errorf("target %s: shape must be box or sphere, got %q", tt.Name, tt.Shape)
		}
		if tt.Sound == "" {
			return fmt.Errorf("target %s: sound key cannot be empty", tt.Name)
		}
	}

	if t.MaxTargets <= 0 {
		return fmt.Errorf("maxTargets must be positive, got %d", t.MaxTargets)
	}

	for name, r := range map[string]Range{
		"spawnInterval": t.SpawnInterval,
		"spawnX":        t.SpawnX,
		"spawnY":        t.SpawnY,
		"spawnZ":        t.SpawnZ,
	} {
		if r.Min > r.Max {
			return fmt.Errorf("%s: min %v exceeds max %v", name, r.Min, r.Max)
		}
	}
	if t.SpawnInterval.Min <= 0 {
		return fmt.Errorf("spawnInterval.min must be positive, got %v", t.SpawnInterval.Min)
	}

	if len(t.Combo) == 0 {
		return fmt.Errorf("combo table cannot be empty")
	}
	prev := 0
	for i, step := range t.Combo {
		if step.Hits <= prev && i > 0 {
			return fmt.Errorf("combo[%d]: thresholds must be strictly ascending", i)
		}
		if step.Hits < 1 {
			return fmt.Errorf("combo[%d]: threshold must be at least 1, got %d", i, step.Hits)
		}
		if step.Multiplier <= 0 {
			return fmt.Errorf("combo[%d]: multiplier must be positive, got %v", i, step.Multiplier)
		}
		prev = step.Hits
	}

	return nil
}

// Sample returns a uniform value in the range.
func (r Range) Sample(randFloat func() float32) float32 {
	return r.Min + (r.Max-r.Min)*randFloat()
}
