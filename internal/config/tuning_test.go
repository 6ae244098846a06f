package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default tuning should validate, got: %v", err)
	}
}

func TestDefaultComboTable(t *testing.T) {
	d := Default()
	want := []ComboStep{
		{Hits: 1, Multiplier: 1.0},
		{Hits: 5, Multiplier: 1.5},
		{Hits: 10, Multiplier: 2.0},
		{Hits: 15, Multiplier: 3.0},
	}
	if len(d.Combo) != len(want) {
		t.Fatalf("Combo table has %d steps, want %d", len(d.Combo), len(want))
	}
	for i, step := range want {
		if d.Combo[i] != step {
			t.Errorf("Combo[%d] = %+v, want %+v", i, d.Combo[i], step)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	yaml := `
targetTypes:
  - { name: ONLY, points: 5, color: Red, sound: hit, shape: box, size: 1.0 }
maxTargets: 4
spawnInterval: { min: 0.5, max: 1.0 }
spawnX: { min: -2, max: 2 }
spawnY: { min: 1, max: 3 }
spawnZ: { min: -5, max: -1 }
launchSpeed: 1.0
spinSpeed: 45
floorY: -8
combo:
  - { hits: 1, multiplier: 1.0 }
  - { hits: 3, multiplier: 2.0 }
`
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if tuning.MaxTargets != 4 {
		t.Errorf("MaxTargets = %d, want 4", tuning.MaxTargets)
	}
	if len(tuning.TargetTypes) != 1 || tuning.TargetTypes[0].Name != "ONLY" {
		t.Errorf("TargetTypes = %+v, want single ONLY entry", tuning.TargetTypes)
	}
	if tuning.FloorY != -8 {
		t.Errorf("FloorY = %v, want -8", tuning.FloorY)
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	tuning, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if tuning.MaxTargets != Default().MaxTargets {
		t.Error("Missing file should fall back to defaults")
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("targetTypes: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"empty target types", func(t *Tuning) { t.TargetTypes = nil }},
		{"unnamed type", func(t *Tuning) { t.TargetTypes[0].Name = "" }},
		{"zero size", func(t *Tuning) { t.TargetTypes[0].Size = 0 }},
		{"unknown shape", func(t *Tuning) { t.TargetTypes[0].Shape = "cone" }},
		{"missing sound", func(t *Tuning) { t.TargetTypes[0].Sound = "" }},
		{"zero cap", func(t *Tuning) { t.MaxTargets = 0 }},
		{"inverted range", func(t *Tuning) { t.SpawnX = Range{Min: 5, Max: -5} }},
		{"zero interval", func(t *Tuning) { t.SpawnInterval = Range{Min: 0, Max: 1} }},
		{"empty combo", func(t *Tuning) { t.Combo = nil }},
		{"descending combo", func(t *Tuning) { t.Combo[1].Hits = 1 }},
		{"zero multiplier", func(t *Tuning) { t.Combo[0].Multiplier = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tuning := Default()
			tc.mutate(tuning)
			if err := tuning.Validate(); err == nil {
				t.Errorf("Expected validation error for %s", tc.name)
			}
		})
	}
}

func TestRangeSample(t *testing.T) {
	r := Range{Min: 2, Max: 6}
	if got := r.Sample(func() float32 { return 0 }); got != 2 {
		t.Errorf("Sample(0) = %v, want 2", got)
	}
	if got := r.Sample(func() float32 { return 1 }); got != 6 {
		t.Errorf("Sample(1) = %v, want 6", got)
	}
	if got := r.Sample(func() float32 { return 0.5 }); got != 4 {
		t.Errorf("Sample(0.5) = %v, want 4", got)
	}
}
