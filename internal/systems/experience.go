package systems

import (
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"

	"github.com/sirupsen/logrus"
)

// GainExperience adds amount to the entity's experience. The level is not
// recomputed; call LevelUp for that.
func GainExperience(e *domain.Entity, amount int) domain.Result {
	log := systemLogger("experience_system", e)

	exp, ok := e.Experience()
	if !ok {
		log.Debug("Gain ignored: no ExperienceComponent.")
		return domain.IgnoredMissingComponent
	}

	exp.Gain(amount)
	log.WithFields(logrus.Fields{
		"amount":     amount,
		"experience": exp.Value,
	}).Debug("Experience gained.")
	return domain.Applied
}

// LevelUp recomputes the level from the current experience value.
// Levels never go down; several tiers can be crossed at once.
func LevelUp(e *domain.Entity) domain.Result {
	log := systemLogger("experience_system", e)

	exp, ok := e.Experience()
	if !ok {
		log.Debug("Level up ignored: no ExperienceComponent.")
		return domain.IgnoredMissingComponent
	}

	level, changed := exp.Promote()
	if !changed {
		return domain.IgnoredUnchanged
	}

	log.WithFields(logrus.Fields{
		"experience": exp.Value,
		"level":      level.String(),
	}).Info("Leveled up.")
	e.Publish(domain.Event{Type: domain.EventLeveledUp, Detail: level.String()})
	return domain.Applied
}
