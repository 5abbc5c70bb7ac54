package systems

import (
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/logger"

	"github.com/sirupsen/logrus"
)

// systemLogger returns a logger tagged with the system and the entity it works on.
func systemLogger(system string, e *domain.Entity) *logrus.Entry {
	fields := logrus.Fields{"component": system}
	if e != nil {
		fields["entity_id"] = e.ID
		if name := e.Name(); name != "" {
			fields["entity_name"] = name
		}
	}
	return logger.Log.WithFields(fields)
}
