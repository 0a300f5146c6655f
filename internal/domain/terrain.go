package domain

import "strings"

// TerrainType - модификатор передвижения клетки
type TerrainType uint8

const (
	TerrainClear TerrainType = iota // обычный пол/трава, штраф 0
	TerrainSwim                     // вода: штраф зависит от навыка плавания
	TerrainClimb                    // скалы: штраф зависит от навыка лазания
	TerrainBlock                    // непроходимо (стена, пропасть)
)

// Маппинг для конвертации JSON -> Domain
var terrainStringToType = map[string]TerrainType{
	"CLEAR": TerrainClear,
	"SWIM":  TerrainSwim,
	"CLIMB": TerrainClimb,
	"BLOCK": TerrainBlock,
}

// Маппинг для логов Domain -> String
var terrainTypeToString = map[TerrainType]string{
	TerrainClear: "CLEAR",
	TerrainSwim:  "SWIM",
	TerrainClimb: "CLIMB",
	TerrainBlock: "BLOCK",
}

// ParseTerrain конвертирует строку из JSON в TerrainType
func ParseTerrain(s string) TerrainType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := terrainStringToType[upper]; ok {
		return val
	}
	return TerrainClear
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (t TerrainType) String() string {
	if val, ok := terrainTypeToString[t]; ok {
		return val
	}
	return "CLEAR"
}

// DoorState - состояние двери на клетке
type DoorState uint8

const (
	DoorNone   DoorState = iota // двери нет
	DoorOpen                    // открыта, штраф 0
	DoorClosed                  // закрыта, но не заперта
	DoorLocked                  // заперта (нужен ключ с совпадающим LockID)
)

var doorStateToString = map[DoorState]string{
	DoorNone:   "NONE",
	DoorOpen:   "OPEN",
	DoorClosed: "CLOSED",
	DoorLocked: "LOCKED",
}

func (d DoorState) String() string {
	if val, ok := doorStateToString[d]; ok {
		return val
	}
	return "NONE"
}
