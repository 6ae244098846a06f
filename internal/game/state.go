package game

import (
	"math/rand"

	"dropshot/internal/config"
	"dropshot/internal/engine"
)

// State is the single gameplay aggregate: score, combo streak, tracked
// targets and spawn cadence. Only the frame driver and the hit resolver
// mutate it, both on the render loop, so no locking is needed.
type State struct {
	Score           int
	ConsecutiveHits int
	ComboMultiplier float64

	targets []*Target
	byUID   map[uint64]*Target // visual object UID -> owning target

	SpawnTimer    float32
	SpawnInterval float32
	MaxTargets    int

	nextTargetID uint64
	combo        []config.ComboStep
	rng          *rand.Rand

	// UI notifications, fired on every score/combo change.
	ScoreChanged engine.EventWithArg[int]
	ComboChanged engine.EventWithArg[float64]
}

func NewState(tuning *config.Tuning, rng *rand.Rand) *State {
	s := &State{
		MaxTargets: tuning.MaxTargets,
		combo:      tuning.Combo,
		rng:        rng,
	}
	s.reset(tuning)
	return s
}

func (s *State) reset(tuning *config.Tuning) {
	s.Score = 0
	s.ConsecutiveHits = 0
	s.ComboMultiplier = s.comboFor(0)
	s.targets = make([]*Target, 0, tuning.MaxTargets)
	s.byUID = make(map[uint64]*Target, tuning.MaxTargets)
	s.SpawnTimer = 0
	s.SpawnInterval = tuning.SpawnInterval.Sample(s.rng.Float32)
	s.nextTargetID = 1
}

// Reset starts a new session: zero score, broken streak, fresh cadence.
// Live targets must be retired by the lifecycle manager before calling this.
func (s *State) Reset(tuning *config.Tuning) {
	s.reset(tuning)
	s.ScoreChanged.Invoke(s.Score)
	s.ComboChanged.Invoke(s.ComboMultiplier)
}

func (s *State) TargetCount() int {
	return len(s.targets)
}

// Targets returns the tracked targets in spawn order. Callers must not hold
// the slice across a retire.
func (s *State) Targets() []*Target {
	return s.targets
}

// TargetObjects returns the visual objects of all tracked targets, the exact
// pick set for hit resolution.
func (s *State) TargetObjects() []*engine.GameObject {
	objs := make([]*engine.GameObject, len(s.targets))
	for i, t := range s.targets {
		objs[i] = t.Object
	}
	return objs
}

// LookupByObject resolves a visual object back to its owning target.
func (s *State) LookupByObject(uid uint64) *Target {
	return s.byUID[uid]
}

func (s *State) track(t *Target) {
	s.targets = append(s.targets, t)
	s.byUID[t.Object.UID] = t
}

// untrack drops the target from the aggregate and reports whether it was
// still tracked. Dropping the index entry first guarantees the hit pipeline
// and the prune pass can never both observe the same target.
func (s *State) untrack(t *Target) bool {
	if _, tracked := s.byUID[t.Object.UID]; !tracked {
		return false
	}
	delete(s.byUID, t.Object.UID)
	for i, tracked := range s.targets {
		if tracked == t {
			s.targets = append(s.targets[:i], s.targets[i+1:]...)
			break
		}
	}
	return true
}

func (s *State) allocTargetID() uint64 {
	id := s.nextTargetID
	s.nextTargetID++
	return id
}
