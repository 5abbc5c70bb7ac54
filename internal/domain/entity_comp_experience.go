package domain

// Gain adds amount to the experience value. The level is left as is.
func (x *ExperienceComponent) Gain(amount int) {
	x.Value += amount
}

// Promote recomputes the level from the current value.
// It reports whether the level changed.
func (x *ExperienceComponent) Promote() (Level, bool) {
	next := LevelFor(x.Value, x.Level)
	if next == x.Level {
		return x.Level, false
	}
	x.Level = next
	return next, true
}
