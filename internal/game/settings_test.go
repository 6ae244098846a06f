package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func openTestStore(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}
	return store
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.SoundVolume != 0.8 {
		t.Errorf("SoundVolume = %v, want 0.8", s.SoundVolume)
	}
	if s.MouseSensitivity != 1.0 {
		t.Errorf("MouseSensitivity = %v, want 1.0", s.MouseSensitivity)
	}
	if s.Fullscreen {
		t.Error("Fullscreen = true, want false")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := openTestStore(t, "dropshot_settings_roundtrip")

	sm1 := NewSettingsManager(store)
	sm1.Settings().SoundVolume = 0.35
	sm1.Settings().MouseSensitivity = 2.5
	sm1.Settings().Fullscreen = true
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sm2 := NewSettingsManager(store)
	got := sm2.Settings()
	if got.SoundVolume != 0.35 {
		t.Errorf("Loaded SoundVolume = %v, want 0.35", got.SoundVolume)
	}
	if got.MouseSensitivity != 2.5 {
		t.Errorf("Loaded MouseSensitivity = %v, want 2.5", got.MouseSensitivity)
	}
	if !got.Fullscreen {
		t.Error("Loaded Fullscreen = false, want true")
	}
}

func TestSettingsFreshStoreUsesDefaults(t *testing.T) {
	store := openTestStore(t, "dropshot_settings_fresh")

	sm := NewSettingsManager(store)
	if *sm.Settings() != *DefaultSettings() {
		t.Errorf("Settings = %+v, want defaults %+v", sm.Settings(), DefaultSettings())
	}
}

// A nil store is the degraded mode: everything works in memory and Save does
// not error.
func TestSettingsDegradedMode(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.Settings().SoundVolume = 0.1
	if err := sm.Save(); err != nil {
		t.Errorf("Save with nil store: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load with nil store: %v", err)
	}
	if sm.Settings().SoundVolume != 0.1 {
		t.Error("In-memory settings should survive a degraded-mode Load")
	}
}

func TestSettingsCorruptDataFallsBackToDefaults(t *testing.T) {
	store := openTestStore(t, "dropshot_settings_corrupt")
	if err := store.SaveObjectProp(settingsObject, settingsProperty, []byte("{not yaml:")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm := NewSettingsManager(store)
	if *sm.Settings() != *DefaultSettings() {
		t.Errorf("Settings = %+v after corrupt load, want defaults", sm.Settings())
	}
}
