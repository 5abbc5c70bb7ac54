package systems

import (
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"

	"github.com/sirupsen/logrus"
)

// --- EQUIP ---

// Equip puts item into slot if the entity has room for it.
func Equip(e *domain.Entity, item string, slot domain.Slot) domain.Result {
	log := systemLogger("equipment_system", e).WithFields(logrus.Fields{
		"item": item,
		"slot": slot.String(),
	})

	equipment, ok := e.Equipment()
	if !ok {
		log.Debug("Equip ignored: no EquipmentComponent.")
		return domain.IgnoredMissingComponent
	}

	res := equipment.Add(item, slot)
	if !res.IsApplied() {
		log.WithField("result", res.String()).Debug("Equip ignored.")
		return res
	}

	log.Debug("Item equipped.")
	e.Publish(domain.Event{Type: domain.EventEquipped, Detail: item})
	return res
}

// --- UNEQUIP ---

// Unequip removes every copy of item from slot.
func Unequip(e *domain.Entity, item string, slot domain.Slot) domain.Result {
	log := systemLogger("equipment_system", e).WithFields(logrus.Fields{
		"item": item,
		"slot": slot.String(),
	})

	equipment, ok := e.Equipment()
	if !ok {
		log.Debug("Unequip ignored: no EquipmentComponent.")
		return domain.IgnoredMissingComponent
	}

	res := equipment.Remove(item, slot)
	log.WithField("result", res.String()).Debug("Unequip resolved.")
	return res
}
