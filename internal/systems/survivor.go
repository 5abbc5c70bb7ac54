package systems

import (
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
)

// UpdateSurvivor kills the entity once its wounds reach the maximum.
// The dead stay dead.
func UpdateSurvivor(e *domain.Entity) domain.Result {
	log := systemLogger("survivor_system", e)

	wound, hasWound := e.Wound()
	alive, hasAlive := e.Alive()
	if !hasWound || !hasAlive {
		log.Debug("Lifecycle update ignored: missing Wound or Alive component.")
		return domain.IgnoredMissingComponent
	}

	if !alive.Alive {
		return domain.IgnoredDead
	}

	if !wound.IsLethal() {
		return domain.IgnoredUnchanged
	}

	alive.Alive = false
	log.WithField("wounds", wound.Value).Info("Survivor died.")
	e.Publish(domain.Event{Type: domain.EventDied})
	return domain.Applied
}

// StartTurn refills the survivor's actions, dead or alive.
func StartTurn(s *domain.Survivor) domain.Result {
	s.ActionsRemaining = domain.ActionsPerTurn
	return domain.Applied
}

// PerformAction spends one action. Dead survivors and survivors with no
// actions left are ignored.
func PerformAction(s *domain.Survivor) domain.Result {
	if !s.IsAlive() {
		return domain.IgnoredDead
	}
	if s.ActionsRemaining <= 0 {
		return domain.IgnoredNoActions
	}

	s.ActionsRemaining--
	systemLogger("survivor_system", s.Entity).
		WithField("actions_remaining", s.ActionsRemaining).
		Debug("Action performed.")
	return domain.Applied
}
