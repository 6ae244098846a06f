package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the player preferences that persist between sessions. Scores
// deliberately do not.
type Settings struct {
	SoundVolume      float64 `yaml:"soundVolume"`      // 0.0 ~ 1.0
	MouseSensitivity float64 `yaml:"mouseSensitivity"` // look speed scale
	Fullscreen       bool    `yaml:"fullscreen"`
}

func DefaultSettings() *Settings {
	return &Settings{
		SoundVolume:      0.8,
		MouseSensitivity: 1.0,
		Fullscreen:       false,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// SettingsManager loads and saves Settings through a gdata store. A nil
// store is the degraded mode: settings live in memory only and Save is a
// silent no-op.
type SettingsManager struct {
	store    *gdata.Manager
	settings *Settings
}

func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("settings: load failed: %v (using defaults)", err)
	}
	return sm
}

func (sm *SettingsManager) Settings() *Settings {
	return sm.settings
}

func (sm *SettingsManager) Load() error {
	if sm.store == nil {
		return nil
	}
	if !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	return nil
}

func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
