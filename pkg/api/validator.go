package api

import (
	"errors"
	"strings"
)

// Validator is implemented by payloads that can check themselves.
type Validator interface {
	Validate() error
}

func (p SurvivorPayload) Validate() error {
	if strings.TrimSpace(p.Survivor) == "" {
		return errors.New("survivor is required")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if strings.TrimSpace(p.Survivor) == "" {
		return errors.New("survivor is required")
	}
	if strings.TrimSpace(p.Item) == "" {
		return errors.New("item is required")
	}
	switch strings.ToLower(p.Slot) {
	case "inhand", "inreserve":
	default:
		return errors.New("slot must be inHand or inReserve")
	}
	return nil
}

func (p GainPayload) Validate() error {
	if strings.TrimSpace(p.Survivor) == "" {
		return errors.New("survivor is required")
	}
	if p.Amount < 0 {
		return errors.New("amount cannot be negative")
	}
	return nil
}
