package engine

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"creature-server/internal/domain"
	"creature-server/internal/systems"
	"creature-server/pkg/api"
	"creature-server/pkg/logger"
)

// executeCommand применяет команду наблюдателя к миру.
// Вызывается только из тикающей горутины (см. drainCommands).
func (s *GameService) executeCommand(cmd domain.InternalCommand) {
	cmdLogger := logger.Log.WithFields(logrus.Fields{
		"component": "commands",
		"action":    cmd.Action.String(),
	})

	var err error
	switch cmd.Action {
	case domain.ActionMove:
		err = s.handleMove(cmd)
	case domain.ActionCharm:
		err = s.handleCharm(cmd)
	case domain.ActionCalm:
		err = s.handleCalm(cmd)
	case domain.ActionProvoke:
		err = s.handleProvoke(cmd)
	case domain.ActionWait:
		// Ничего не делаем: тик пройдет сам
	default:
		err = fmt.Errorf("действие %s недоступно наблюдателю", cmd.Action)
	}

	if err != nil {
		cmdLogger.WithError(err).Warn("Command rejected.")
		s.AddLog(err.Error(), "ADMIN")
	}
}

// handleMove двигает странника на одну клетку
func (s *GameService) handleMove(cmd domain.InternalCommand) error {
	var p api.DirectionPayload
	if err := json.Unmarshal(cmd.Payload, &p); err != nil {
		return fmt.Errorf("неверный payload MOVE: %w", err)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	actor := s.GetEntity(cmd.Token)
	if actor == nil || actor.Type != domain.EntityTypePlayer {
		return fmt.Errorf("двигать можно только странника")
	}

	to := actor.Pos.Shift(p.Dx, p.Dy)
	switch s.Move(actor, to) {
	case systems.MoveDoor:
		if !s.OpenDoor(actor, to) {
			s.AddLog(fmt.Sprintf("%s дергает запертую дверь.", actor.Name), "INFO")
		}
	case systems.MoveBlocked:
		s.AddLog(fmt.Sprintf("%s упирается в препятствие.", actor.Name), "INFO")
	}
	return nil
}

// handleCharm добавляет существу накопительную поправку расположения
func (s *GameService) handleCharm(cmd domain.InternalCommand) error {
	var p api.CharmPayload
	if err := json.Unmarshal(cmd.Payload, &p); err != nil {
		return fmt.Errorf("неверный payload CHARM: %w", err)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	creature := s.GetEntity(p.CreatureID)
	if creature == nil || creature.Brain == nil {
		return fmt.Errorf("существо %s не найдено", p.CreatureID)
	}

	creature.Brain.Charm(p.TargetID, p.Magnitude)
	s.AddLog(fmt.Sprintf("%s смотрит дружелюбнее.", creature.Name), "ADMIN")
	return nil
}

// handleCalm снижает агрессию существа на четверть
func (s *GameService) handleCalm(cmd domain.InternalCommand) error {
	var p api.CreaturePayload
	if err := json.Unmarshal(cmd.Payload, &p); err != nil {
		return fmt.Errorf("неверный payload CALM: %w", err)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	creature := s.GetEntity(p.CreatureID)
	if creature == nil || creature.Brain == nil {
		return fmt.Errorf("существо %s не найдено", p.CreatureID)
	}

	creature.Brain.CalmDown()
	s.AddLog(fmt.Sprintf("%s успокаивается.", creature.Name), "ADMIN")
	return nil
}

// handleProvoke делает существо немедленно враждебным к цели
func (s *GameService) handleProvoke(cmd domain.InternalCommand) error {
	var p api.CreaturePayload
	if err := json.Unmarshal(cmd.Payload, &p); err != nil {
		return fmt.Errorf("неверный payload PROVOKE: %w", err)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	creature := s.GetEntity(p.CreatureID)
	if creature == nil || creature.Brain == nil {
		return fmt.Errorf("существо %s не найдено", p.CreatureID)
	}

	target := s.GetEntity(p.TargetID)
	if target == nil {
		target = s.Player
	}
	if target == nil {
		return fmt.Errorf("цель провокации не найдена")
	}

	systems.ForceHostile(creature, target)
	s.AddLog(fmt.Sprintf("%s приходит в ярость!", creature.Name), "ADMIN")
	return nil
}
