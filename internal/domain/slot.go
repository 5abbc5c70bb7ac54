package domain

import "strings"

// Slot selects one of the two equipment lists.
type Slot uint8

const (
	SlotUnknown Slot = iota
	SlotInHand
	SlotInReserve
)

var slotStringToSlot = map[string]Slot{
	"inhand":    SlotInHand,
	"inreserve": SlotInReserve,
}

var slotToString = map[Slot]string{
	SlotInHand:    "inHand",
	SlotInReserve: "inReserve",
}

// ParseSlot is case-insensitive: "inHand", "INHAND" and "inhand" are the same slot.
func ParseSlot(s string) Slot {
	if val, ok := slotStringToSlot[strings.ToLower(s)]; ok {
		return val
	}
	return SlotUnknown
}

// String implements fmt.Stringer.
func (s Slot) String() string {
	if val, ok := slotToString[s]; ok {
		return val
	}
	return "unknown"
}
