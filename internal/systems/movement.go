package systems

import (
	"creature-server/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	NewX, NewY int
	HasMoved   bool
	BlockedBy  *domain.Entity // Если врезались в кого-то
	IsTerrain  bool           // Если уперлись в непроходимый рельеф или границу
	IsDoor     bool           // Если на клетке закрытая/запертая дверь
}

// CalculateMove вычисляет перемещение в точку. Не меняет состояние мира!
func CalculateMove(e *domain.Entity, to domain.Position, w *domain.GameWorld) MovementResult {
	res := MovementResult{NewX: to.X, NewY: to.Y}

	// 1. Проверка границ
	if !w.InBounds(to) {
		res.IsTerrain = true
		return res
	}

	tile := w.TileAt(to)

	// 2. Проверка рельефа
	if !tile.IsPassable() {
		res.IsTerrain = true
		return res
	}

	// 3. Дверь: закрытую/запертую надо сначала открыть
	if tile.Door == domain.DoorClosed || tile.Door == domain.DoorLocked {
		res.IsDoor = true
		return res
	}

	// 4. Проверка сущностей
	if occupant := w.OccupantAt(to); occupant != nil && occupant.ID != e.ID {
		res.BlockedBy = occupant
		return res
	}

	res.HasMoved = true
	return res
}

// IsStepFree проверяет, свободна ли клетка для шага (без дверей и жильцов)
func IsStepFree(e *domain.Entity, to domain.Position, w *domain.GameWorld) bool {
	return CalculateMove(e, to, w).HasMoved
}
