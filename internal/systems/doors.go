package systems

import (
	"creature-server/internal/domain"
	"creature-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// OpenDoorAt применяет правила открытия двери к клетке:
// закрытую просто открываем, запертую отпираем ключом с совпадающим LockID.
// Возвращает true, если дверь открылась.
func OpenDoorAt(e *domain.Entity, at domain.Position, w *domain.GameWorld) bool {
	tile := w.TileAt(at)
	if tile == nil {
		return false
	}

	doorLogger := logger.Log.WithFields(logrus.Fields{
		"component": "door_system",
		"actor":     e.Name,
		"pos":       at,
		"door":      tile.Door.String(),
	})

	switch tile.Door {
	case domain.DoorClosed:
		tile.Door = domain.DoorOpen
		doorLogger.Debug("Door forced open.")
		return true

	case domain.DoorLocked:
		if e.Inventory.HasKeyFor(tile.LockID) {
			tile.Door = domain.DoorOpen
			doorLogger.WithField("lock_id", tile.LockID).Debug("Door unlocked with carried key.")
			return true
		}
		doorLogger.WithField("lock_id", tile.LockID).Debug("Door is locked, no matching key.")
		return false
	}

	return false
}
