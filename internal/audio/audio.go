package audio

import (
	"fmt"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Listener is the ear position and orientation used for spatialization.
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// Manager holds the loaded sound bank. Every package function is a silent
// no-op when the manager is nil (device unavailable or Init never called),
// so gameplay code calls into here unconditionally.
type Manager struct {
	mu           sync.Mutex
	listener     Listener
	sounds       map[string]rl.Sound
	masterVolume float32
	maxDistance  float32
}

var globalManager *Manager

// Init opens the audio device. Safe to call when audio is unsupported: the
// manager stays nil and playback degrades to no-ops.
func Init() {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return
	}
	globalManager = &Manager{
		sounds:       make(map[string]rl.Sound),
		masterVolume: 1.0,
		maxDistance:  50.0,
	}
}

// Close unloads the bank and shuts the device down.
func Close() {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	for _, snd := range globalManager.sounds {
		rl.UnloadSound(snd)
	}
	globalManager.sounds = nil
	globalManager.mu.Unlock()
	globalManager = nil
	rl.CloseAudioDevice()
}

// Load registers a sound file under a key.
func Load(key, path string) error {
	if globalManager == nil {
		return nil
	}

	sound := rl.LoadSound(path)
	if !rl.IsSoundValid(sound) {
		return fmt.Errorf("audio: failed to load %q from %s", key, path)
	}

	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.sounds[key] = sound
	return nil
}

// SetMasterVolume scales every subsequent playback.
func SetMasterVolume(volume float32) {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.masterVolume = clamp01(volume)
}

// SetListener updates the listener position and orientation.
func SetListener(pos, forward, up rl.Vector3) {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	globalManager.listener.Position = pos

	fwdLen := rl.Vector3Length(forward)
	if fwdLen > 0.001 {
		globalManager.listener.Forward = rl.Vector3Scale(forward, 1.0/fwdLen)
	} else {
		globalManager.listener.Forward = rl.Vector3{X: 0, Y: 0, Z: -1}
	}

	right := rl.Vector3CrossProduct(up, globalManager.listener.Forward)
	rightLen := rl.Vector3Length(right)
	if rightLen > 0.001 {
		globalManager.listener.Right = rl.Vector3Scale(right, 1.0/rightLen)
	} else {
		globalManager.listener.Right = rl.Vector3{X: 1, Y: 0, Z: 0}
	}
}

// PlayOptions controls one playback. A nil At plays the sound flat (no pan,
// no distance falloff).
type PlayOptions struct {
	At     *rl.Vector3
	Volume float32 // 0 means "use 1.0"
	Pitch  float32 // 0 means "use 1.0"
}

// Play fires a one-shot sound. Unknown keys are ignored.
func Play(key string, opts PlayOptions) {
	if globalManager == nil {
		return
	}
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()

	sound, ok := globalManager.sounds[key]
	if !ok {
		return
	}

	volume := opts.Volume
	if volume == 0 {
		volume = 1.0
	}
	pitch := opts.Pitch
	if pitch == 0 {
		pitch = 1.0
	}

	pan := float32(0.5)
	if opts.At != nil {
		volume, pan = globalManager.spatialize(*opts.At, volume)
	}

	rl.SetSoundVolume(sound, volume*globalManager.masterVolume)
	rl.SetSoundPitch(sound, pitch)
	rl.SetSoundPan(sound, pan)
	rl.PlaySound(sound)
}

// spatialize attenuates by distance and pans against the listener's right
// vector; sounds behind the listener are slightly quieter.
func (m *Manager) spatialize(pos rl.Vector3, volume float32) (float32, float32) {
	toSource := rl.Vector3Subtract(pos, m.listener.Position)
	distance := rl.Vector3Length(toSource)

	var outVolume float32
	if distance < m.maxDistance {
		outVolume = volume * (1.0 - distance/m.maxDistance)
	}

	pan := float32(0.5)
	if distance > 0.001 {
		direction := rl.Vector3Scale(toSource, 1.0/distance)
		rightDot := rl.Vector3DotProduct(direction, m.listener.Right)
		pan = clamp01(0.5 + rightDot*0.5)

		frontDot := rl.Vector3DotProduct(direction, m.listener.Forward)
		if frontDot < 0 {
			outVolume *= 0.7 - 0.3*frontDot
		}
	}

	return outVolume, pan
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
