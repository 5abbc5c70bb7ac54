package engine

import (
	"fmt"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AddLog appends a line to the game's history and mirrors it to the application log.
func (g *Game) AddLog(text string) {
	g.logs = append(g.logs, text)
	g.logger().WithField("component", "game_log").Info(text)
}

// Logs returns the event log, oldest first.
func (g *Game) Logs() []string {
	out := make([]string, len(g.logs))
	copy(out, g.logs)
	return out
}

func (g *Game) logger() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{
		"game_id": g.id.String(),
	})
}

// formatLine renders "[Source]: text".
func formatLine(source string, ev domain.Event) string {
	return fmt.Sprintf("[%s]: %s", source, ev.Text())
}
