package domain

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile - одна клетка мира.
// Вместо булевого IsWall храним модификатор передвижения (Terrain):
// он влияет и на проходимость, и на стоимость шага в поиске пути.
type Tile struct {
	X       int         `json:"x"`
	Y       int         `json:"y"`
	Terrain TerrainType `json:"terrain"`

	// Дверь на клетке (DoorNone, если двери нет)
	Door   DoorState `json:"door,omitempty"`
	LockID string    `json:"lockId,omitempty"` // ID замка (ключ с тем же LockID открывает)
}

// IsPassable возвращает true, если по клетке вообще можно ходить
func (t Tile) IsPassable() bool {
	return t.Terrain != TerrainBlock
}

type GameWorld struct {
	Map        [][]Tile `json:"map"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	GlobalTick int      `json:"globalTick"`

	// SpatialHash: Индекс позиции -> Список сущностей
	// Ключ: Y * Width + X
	// json:"-" означает, что мы НЕ отправляем этот индекс клиенту (экономия трафика)
	SpatialHash    map[int][]*Entity   `json:"-"`
	EntityRegistry map[string]*Entity  `json:"-"`
}

// TileAt возвращает клетку по координатам (nil при выходе за границы)
func (w *GameWorld) TileAt(p Position) *Tile {
	if p.X < 0 || p.X >= w.Width || p.Y < 0 || p.Y >= w.Height {
		return nil
	}
	return &w.Map[p.Y][p.X]
}

// InBounds проверяет границы карты
func (w *GameWorld) InBounds(p Position) bool {
	return p.X >= 0 && p.X < w.Width && p.Y >= 0 && p.Y < w.Height
}
