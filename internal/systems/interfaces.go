package systems

import "creature-server/internal/domain"

// MoveStatus - результат попытки перемещения через исполнителя
type MoveStatus uint8

const (
	MoveOK      MoveStatus = iota // перемещение выполнено
	MoveBlocked                   // клетка занята или непроходима
	MoveDoor                      // на клетке закрытая/запертая дверь
)

var moveStatusToString = map[MoveStatus]string{
	MoveOK:      "OK",
	MoveBlocked: "BLOCKED",
	MoveDoor:    "DOOR",
}

func (m MoveStatus) String() string {
	if val, ok := moveStatusToString[m]; ok {
		return val
	}
	return "BLOCKED"
}

// MotionExecutor применяет перемещения к миру.
// Мозг НЕ меняет позиции сам: он только просит исполнителя
// (чтобы не зависеть от GameService напрямую).
type MotionExecutor interface {
	// Move пытается переместить существо в точку
	Move(e *domain.Entity, to domain.Position) MoveStatus
	// OpenDoor пытается открыть дверь в точке: отпирает ключом,
	// если заперта и ключ есть; просто открывает, если закрыта
	OpenDoor(e *domain.Entity, at domain.Position) bool
}

// EventSink принимает боевые и магические намерения.
// Их разрешение (урон, эффекты) - забота внешнего обработчика.
type EventSink interface {
	EmitAttack(attacker, target *domain.Entity)
	EmitCastAt(caster *domain.Entity, spell string, at domain.Position)
	EmitCastSelf(caster *domain.Entity, spell string)
}
