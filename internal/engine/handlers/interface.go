package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
)

// ErrUnknownSurvivor is returned when a command names someone who is not on the roster.
var ErrUnknownSurvivor = errors.New("unknown survivor")

// Roster is the part of a game the handlers work with.
// *engine.Game implements it.
type Roster interface {
	AddSurvivor(s *domain.Survivor) domain.Result
	FindSurvivor(name string) (*domain.Survivor, bool)
	Survivors() []*domain.Survivor
	StartTurn()
	LevelUp() domain.Result
	IsGameOver() bool
	Level() domain.Level
	ExperienceValue() int
}

// Context hands the game to a handler.
type Context struct {
	Roster Roster
}

// Survivor resolves a roster member by name.
func (c Context) Survivor(name string) (*domain.Survivor, error) {
	s, ok := c.Roster.FindSurvivor(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSurvivor, name)
	}
	return s, nil
}

// Result is what a command did. Handlers never write to the game log
// themselves; the systems they call do.
type Result struct {
	Msg     string        // Human-readable summary
	Outcome domain.Result // Applied or the reason it was ignored
}

// HandlerFunc is the contract for every command (WOUND, EQUIP, ...).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)
