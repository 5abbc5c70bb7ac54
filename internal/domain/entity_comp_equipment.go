package domain

// AddInHand appends item if there is room in hand.
func (eq *EquipmentComponent) AddInHand(item string) Result {
	if len(eq.InHand) >= eq.InHandCapacity {
		return IgnoredAtCapacity
	}
	eq.InHand = append(eq.InHand, item)
	return Applied
}

// AddInReserve appends item if there is room in reserve.
func (eq *EquipmentComponent) AddInReserve(item string) Result {
	if len(eq.InReserve) >= eq.InReserveCapacity {
		return IgnoredAtCapacity
	}
	eq.InReserve = append(eq.InReserve, item)
	return Applied
}

// RemoveInHand drops every occurrence of item from the hand.
func (eq *EquipmentComponent) RemoveInHand(item string) Result {
	var removed bool
	eq.InHand, removed = without(eq.InHand, item)
	if !removed {
		return IgnoredNotEquipped
	}
	return Applied
}

// RemoveInReserve drops every occurrence of item from the reserve.
func (eq *EquipmentComponent) RemoveInReserve(item string) Result {
	var removed bool
	eq.InReserve, removed = without(eq.InReserve, item)
	if !removed {
		return IgnoredNotEquipped
	}
	return Applied
}

// Add routes to AddInHand or AddInReserve.
func (eq *EquipmentComponent) Add(item string, slot Slot) Result {
	switch slot {
	case SlotInHand:
		return eq.AddInHand(item)
	case SlotInReserve:
		return eq.AddInReserve(item)
	}
	return IgnoredUnknownSlot
}

// Remove routes to RemoveInHand or RemoveInReserve.
func (eq *EquipmentComponent) Remove(item string, slot Slot) Result {
	switch slot {
	case SlotInHand:
		return eq.RemoveInHand(item)
	case SlotInReserve:
		return eq.RemoveInReserve(item)
	}
	return IgnoredUnknownSlot
}

// Shrink lowers both capacities by penalty (floored at 0) and truncates
// the lists to fit. Slots already at 0 capacity are left alone.
// It returns the items that no longer fit.
func (eq *EquipmentComponent) Shrink(penalty int) (dropped []string) {
	if eq.InReserveCapacity > 0 {
		eq.InReserveCapacity = max(0, eq.InReserveCapacity-penalty)
		if len(eq.InReserve) > eq.InReserveCapacity {
			dropped = append(dropped, eq.InReserve[eq.InReserveCapacity:]...)
			eq.InReserve = eq.InReserve[:eq.InReserveCapacity]
		}
	}

	if eq.InHandCapacity > 0 {
		eq.InHandCapacity = max(0, eq.InHandCapacity-penalty)
		if len(eq.InHand) > eq.InHandCapacity {
			dropped = append(dropped, eq.InHand[eq.InHandCapacity:]...)
			eq.InHand = eq.InHand[:eq.InHandCapacity]
		}
	}

	return dropped
}

// without returns items minus every occurrence of item, keeping order.
func without(items []string, item string) ([]string, bool) {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		if it != item {
			kept = append(kept, it)
		}
	}
	return kept, len(kept) != len(items)
}
