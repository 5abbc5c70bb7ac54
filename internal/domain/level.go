package domain

import "strings"

// Level is the danger rank derived from experience.
type Level uint8

const (
	LevelBlue Level = iota
	LevelYellow
	LevelOrange
	LevelRed
)

// levelThresholds are checked in ascending order; every threshold that is
// met overrides the previous one, so a single promotion can skip tiers.
var levelThresholds = []struct {
	Min   int
	Level Level
}{
	{6, LevelYellow},
	{18, LevelOrange},
	{42, LevelRed},
}

var levelToString = map[Level]string{
	LevelBlue:   "blue",
	LevelYellow: "yellow",
	LevelOrange: "orange",
	LevelRed:    "red",
}

var levelStringToLevel = map[string]Level{
	"blue":   LevelBlue,
	"yellow": LevelYellow,
	"orange": LevelOrange,
	"red":    LevelRed,
}

// String implements fmt.Stringer.
func (l Level) String() string {
	if val, ok := levelToString[l]; ok {
		return val
	}
	return "unknown"
}

// MarshalText encodes the level by name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// ParseLevel is case-insensitive. Unknown names yield LevelBlue, false.
func ParseLevel(s string) (Level, bool) {
	l, ok := levelStringToLevel[strings.ToLower(s)]
	return l, ok
}

// LevelFor returns the level earned by the given experience value,
// starting from current. It never returns a level below current.
func LevelFor(value int, current Level) Level {
	level := current
	for _, th := range levelThresholds {
		if value >= th.Min && th.Level > level {
			level = th.Level
		}
	}
	return level
}
