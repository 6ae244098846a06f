package game

import "math"

// RecordHit advances the streak, updates the combo multiplier, and banks the
// points for the given target type. The multiplier reflects the streak after
// this hit, so the 5th consecutive hit already earns the 1.5x step. Points
// are rounded half away from zero (math.Round) and may push the score
// negative on penalty types. Returns the points earned by this hit.
func (s *State) RecordHit(tt TargetType) int {
	s.ConsecutiveHits++
	s.ComboMultiplier = s.comboFor(s.ConsecutiveHits)

	earned := int(math.Round(float64(tt.Points) * s.ComboMultiplier))
	s.Score += earned

	s.ScoreChanged.Invoke(s.Score)
	s.ComboChanged.Invoke(s.ComboMultiplier)
	return earned
}

// RecordMiss breaks the streak.
func (s *State) RecordMiss() {
	s.ConsecutiveHits = 0
	s.ComboMultiplier = s.comboFor(0)
	s.ComboChanged.Invoke(s.ComboMultiplier)
}

// comboFor returns the multiplier of the greatest threshold not exceeding
// the streak, or 1.0 when no step qualifies.
func (s *State) comboFor(hits int) float64 {
	multiplier := 1.0
	for _, step := range s.combo {
		if hits >= step.Hits {
			multiplier = step.Multiplier
		}
	}
	return multiplier
}
