package actions

import (
	"fmt"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/engine/handlers"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/systems"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/api"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleUnequip handles UNEQUIP: drop every copy of an item from a slot.
func HandleUnequip(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "unequip_handler",
		"survivor":  p.Survivor,
		"item":      p.Item,
	})

	s, err := ctx.Survivor(p.Survivor)
	if err != nil {
		log.Warn("Survivor is not on the roster")
		return handlers.Result{}, err
	}

	slot := domain.ParseSlot(p.Slot)
	res := systems.Unequip(s.Entity, p.Item, slot)
	if !res.IsApplied() {
		log.WithField("result", res.String()).Warn("Item was not unequipped")
	}
	return outcome(p.Survivor, res, fmt.Sprintf("%s drops %s.", p.Survivor, p.Item)), nil
}
