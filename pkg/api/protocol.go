package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - корневой объект, который сервер отправляет наблюдателю.
// Это полный "снимок" арены: наблюдатель видит всё, тумана войны нет.
// Рассылается после каждого тика симуляции.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Tick текущее глобальное время симуляции. Увеличивается с каждым тиком.
	Tick int `json:"tick"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез всех тайлов арены.
	Map []TileView `json:"map,omitempty"`

	// Entities срез всех сущностей.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого тика.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO (Data Transfer Object) для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Symbol и Color - визуальное представление тайла (e.g. "#" для скалы).
	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	// Terrain тип рельефа: CLEAR, SWIM, CLIMB, BLOCK.
	Terrain string `json:"terrain"`

	// Door состояние двери на тайле: OPEN, CLOSED, LOCKED. Пусто, если двери нет.
	Door string `json:"door,omitempty"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID      string `json:"id"`
	Type    string `json:"type"` // PLAYER, CREATURE, ITEM
	Name    string `json:"name"`
	Species string `json:"species,omitempty"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	Stats *StatsView `json:"stats,omitempty"`

	// Brain состояние мозга существа. Отсутствует у игроков и предметов.
	Brain *BrainView `json:"brain,omitempty"`
}

// StatsView это DTO для характеристик сущности.
type StatsView struct {
	HP           int  `json:"hp"`
	MaxHP        int  `json:"maxHp"`
	Strength     int  `json:"strength,omitempty"`
	Intelligence int  `json:"intelligence,omitempty"`
	IsDead       bool `json:"isDead"`
}

// BrainView показывает наблюдателю внутреннее состояние ИИ:
// агрессию, режим и поведение, выбранное на последнем тике.
type BrainView struct {
	Aggression   int    `json:"aggression"`
	Confidence   int    `json:"confidence"`
	Mode         string `json:"mode"`
	LastBehavior string `json:"lastBehavior,omitempty"`
	Calm         bool   `json:"calm,omitempty"`
}

// LogEntry представляет одну запись в журнале событий симуляции.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, MAGIC, ADMIN
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от наблюдателя к серверу.
type ClientCommand struct {
	// Token ID сущности, от имени которой выполняется действие
	// (для MOVE - подопечный игрок; для админ-команд игнорируется).
	Token string `json:"token,omitempty"`

	// Action название действия: MOVE, CHARM, CALM, PROVOKE.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для действий, связанных с направлением (MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// CharmPayload - админ-команда CHARM: накопительная поправка расположения.
type CharmPayload struct {
	CreatureID string `json:"creatureId"` // кого очаровываем
	TargetID   string `json:"targetId"`   // к кому растет расположение
	Magnitude  int    `json:"magnitude"`
}

// CreaturePayload используется для действий, нацеленных на существо (CALM, PROVOKE).
type CreaturePayload struct {
	CreatureID string `json:"creatureId"`
	TargetID   string `json:"targetId,omitempty"` // для PROVOKE: против кого
}
