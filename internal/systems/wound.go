package systems

import (
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"

	"github.com/sirupsen/logrus"
)

// Wound gives the entity one wound, capped at the wound maximum.
// Death is not decided here; see UpdateSurvivor.
func Wound(e *domain.Entity) domain.Result {
	log := systemLogger("wound_system", e)

	wound, ok := e.Wound()
	if !ok {
		log.Debug("Wound ignored: no WoundComponent.")
		return domain.IgnoredMissingComponent
	}

	res := wound.Inflict()
	if !res.IsApplied() {
		log.WithField("wounds", wound.Value).Debug("Wound ignored: already at max.")
		return res
	}

	log.WithFields(logrus.Fields{
		"wounds":     wound.Value,
		"wounds_max": wound.Max,
	}).Debug("Wound taken.")
	e.Publish(domain.Event{Type: domain.EventWounded})
	return res
}
