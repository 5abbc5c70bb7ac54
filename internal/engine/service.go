package engine

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/adrocodes/Zombie-Survivors-Kata/internal/domain"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/engine/handlers"
	"github.com/adrocodes/Zombie-Survivors-Kata/internal/engine/handlers/actions"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/api"
	"github.com/adrocodes/Zombie-Survivors-Kata/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrUnknownAction is returned for commands with no registered handler.
var ErrUnknownAction = errors.New("unknown action")

// GameService drives one game from host commands.
type GameService struct {
	Game *Game

	handlers map[domain.ActionType]handlers.HandlerFunc
}

// NewService wraps game with the standard command set.
func NewService(game *Game) *GameService {
	s := &GameService{
		Game:     game,
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionJoin] = handlers.WithPayload(actions.HandleJoin)
	s.handlers[domain.ActionWound] = handlers.WithPayload(actions.HandleWound)
	s.handlers[domain.ActionUpdate] = handlers.WithPayload(actions.HandleUpdate)
	s.handlers[domain.ActionEquip] = handlers.WithPayload(actions.HandleEquip)
	s.handlers[domain.ActionUnequip] = handlers.WithPayload(actions.HandleUnequip)
	s.handlers[domain.ActionCapacity] = handlers.WithPayload(actions.HandleCapacity)
	s.handlers[domain.ActionStartTurn] = handlers.WithPayload(actions.HandleStartTurn)
	s.handlers[domain.ActionAct] = handlers.WithPayload(actions.HandleAct)
	s.handlers[domain.ActionKill] = handlers.WithPayload(actions.HandleKill)
	s.handlers[domain.ActionGain] = handlers.WithPayload(actions.HandleGain)
	s.handlers[domain.ActionLevelUp] = handlers.WithPayload(actions.HandleLevelUp)
	s.handlers[domain.ActionGameLevelUp] = handlers.WithEmptyPayload(actions.HandleGameLevelUp)
	s.handlers[domain.ActionStatus] = handlers.WithPayload(actions.HandleStatus)
}

// Join puts each named survivor on the roster, skipping blanks.
func (s *GameService) Join(names ...string) {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s.Game.AddSurvivor(domain.NewSurvivor(name))
	}
}

// Execute runs a single command against the game.
func (s *GameService) Execute(cmd api.Command) (handlers.Result, error) {
	action := domain.ParseAction(cmd.Action)
	handler, ok := s.handlers[action]
	if !ok {
		return handlers.Result{}, fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}

	res, err := handler(handlers.Context{Roster: s.Game}, cmd.Payload)
	if err != nil {
		return handlers.Result{}, fmt.Errorf("%s: %w", action, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "game_service",
		"game_id":   s.Game.ID().String(),
		"action":    action.String(),
		"outcome":   res.Outcome.String(),
	}).Debug(res.Msg)
	return res, nil
}

// Run executes a JSON-lines script. Blank lines and lines starting with '#'
// are skipped. Lines may be of any length. A bad command is logged and the
// script goes on; only a read failure stops it.
func (s *GameService) Run(r io.Reader, out io.Writer) error {
	reader := bufio.NewReader(r)
	lineNo := 0

	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("read script: %w", readErr)
		}
		if raw != "" {
			lineNo++
			s.runLine(strings.TrimSpace(raw), lineNo, out)
		}
		if readErr == io.EOF {
			return nil
		}
	}
}

func (s *GameService) runLine(line string, lineNo int, out io.Writer) {
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	log := logger.Log.WithFields(logrus.Fields{
		"component": "game_service",
		"line":      lineNo,
	})

	var cmd api.Command
	if err := json.Unmarshal([]byte(line), &cmd); err != nil {
		log.WithError(err).Warn("Skipping malformed command")
		return
	}

	res, err := s.Execute(cmd)
	if err != nil {
		log.WithError(err).Warn("Command rejected")
		return
	}
	if out != nil {
		fmt.Fprintln(out, res.Msg)
	}
}
