package domain

// Result tells the caller whether an operation changed state,
// and if not, why it was skipped. Rules never fail; they are applied or ignored.
type Result uint8

const (
	Applied Result = iota
	IgnoredMissingComponent
	IgnoredAtCapacity
	IgnoredAtMax
	IgnoredUnwounded
	IgnoredDead
	IgnoredNoActions
	IgnoredDuplicateName
	IgnoredNotEquipped
	IgnoredUnknownSlot
	IgnoredUnchanged
	IgnoredOtherGame
)

var resultToString = map[Result]string{
	Applied:                 "applied",
	IgnoredMissingComponent: "ignored: missing component",
	IgnoredAtCapacity:       "ignored: at capacity",
	IgnoredAtMax:            "ignored: at max",
	IgnoredUnwounded:        "ignored: unwounded",
	IgnoredDead:             "ignored: dead",
	IgnoredNoActions:        "ignored: no actions left",
	IgnoredDuplicateName:    "ignored: duplicate name",
	IgnoredNotEquipped:      "ignored: not equipped",
	IgnoredUnknownSlot:      "ignored: unknown slot",
	IgnoredUnchanged:        "ignored: unchanged",
	IgnoredOtherGame:        "ignored: on another roster",
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if val, ok := resultToString[r]; ok {
		return val
	}
	return "unknown"
}

// IsApplied reports whether the operation changed state.
func (r Result) IsApplied() bool {
	return r == Applied
}
