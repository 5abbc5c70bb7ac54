package domain

// Inflict adds one wound, never going past Max.
func (w *WoundComponent) Inflict() Result {
	if w.Value >= w.Max {
		w.Value = w.Max
		return IgnoredAtMax
	}
	w.Value++
	return Applied
}

// IsLethal reports whether the wounds reached the threshold.
func (w *WoundComponent) IsLethal() bool {
	return w.Value >= w.Max
}
