package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия (намерения мозга)
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionAttack
	ActionCastAt   // заклинание в точку (дальний бой)
	ActionCastSelf // заклинание/способность на себя (лечение, снятие состояний)
	ActionOpenDoor
	ActionWait
	// Административные команды наблюдателя
	ActionCharm
	ActionCalm
	ActionProvoke
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"MOVE":      ActionMove,
	"ATTACK":    ActionAttack,
	"CAST_AT":   ActionCastAt,
	"CAST_SELF": ActionCastSelf,
	"OPEN_DOOR": ActionOpenDoor,
	"WAIT":      ActionWait,
	"CHARM":     ActionCharm,
	"CALM":      ActionCalm,
	"PROVOKE":   ActionProvoke,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionMove:     "MOVE",
	ActionAttack:   "ATTACK",
	ActionCastAt:   "CAST_AT",
	ActionCastSelf: "CAST_SELF",
	ActionOpenDoor: "OPEN_DOOR",
	ActionWait:     "WAIT",
	ActionCharm:    "CHARM",
	ActionCalm:     "CALM",
	ActionProvoke:  "PROVOKE",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// InternalCommand - команда наблюдателя, уже сконвертированная во внутренний вид
type InternalCommand struct {
	Action  ActionType
	Token   string // ID сущности, от имени которой действие
	Payload []byte // сырой JSON, разбирает обработчик конкретного действия
}

// Behavior - выбранное мозгом поведение на тик (для журнала решений)
type Behavior uint8

const (
	BehaviorIdle Behavior = iota
	BehaviorWander
	BehaviorGuard
	BehaviorSchedule
	BehaviorFlee
	BehaviorCure
	BehaviorHeal
	BehaviorHunt
)

var behaviorToString = map[Behavior]string{
	BehaviorIdle:     "IDLE",
	BehaviorWander:   "WANDER",
	BehaviorGuard:    "GUARD",
	BehaviorSchedule: "SCHEDULE",
	BehaviorFlee:     "FLEE",
	BehaviorCure:     "CURE",
	BehaviorHeal:     "HEAL",
	BehaviorHunt:     "HUNT",
}

func (b Behavior) String() string {
	if val, ok := behaviorToString[b]; ok {
		return val
	}
	return "IDLE"
}
