package systems

import (
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"

	"github.com/sirupsen/logrus"
)

// UpdateEquipmentCapacity shrinks both equipment slots by the current wound
// count and drops the items that no longer fit.
//
// The penalty is not remembered: every call subtracts the full wound count
// again, so callers run it once per change in wounds.
func UpdateEquipmentCapacity(e *domain.Entity) domain.Result {
	log := systemLogger("equipment_capacity_system", e)

	equipment, hasEquipment := e.Equipment()
	wound, hasWound := e.Wound()
	if !hasEquipment || !hasWound {
		log.Debug("Capacity update ignored: missing Equipment or Wound component.")
		return domain.IgnoredMissingComponent
	}
	if wound.Value == 0 {
		return domain.IgnoredUnwounded
	}
	if equipment.InHandCapacity == 0 && equipment.InReserveCapacity == 0 {
		return domain.IgnoredUnchanged
	}

	dropped := equipment.Shrink(wound.Value)

	log.WithFields(logrus.Fields{
		"wounds":              wound.Value,
		"in_hand_capacity":    equipment.InHandCapacity,
		"in_reserve_capacity": equipment.InReserveCapacity,
		"dropped":             dropped,
	}).Debug("Equipment capacity reduced.")
	return domain.Applied
}
