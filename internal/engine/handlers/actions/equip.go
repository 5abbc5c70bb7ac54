package actions

import (
	"fmt"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/engine/handlers"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/systems"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/api"
)

// HandleEquip handles EQUIP: put an item in hand or in reserve.
func HandleEquip(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	s, err := ctx.Survivor(p.Survivor)
	if err != nil {
		return handlers.Result{}, err
	}

	slot := domain.ParseSlot(p.Slot)
	res := systems.Equip(s.Entity, p.Item, slot)
	return outcome(p.Survivor, res, fmt.Sprintf("%s equips %s (%s).", p.Survivor, p.Item, slot)), nil
}
