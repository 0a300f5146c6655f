package engine

import (
	"creature-server/internal/domain"
	"creature-server/pkg/api"
)

// Визуальное представление рельефа для наблюдателя
var terrainSymbols = map[domain.TerrainType]struct{ Symbol, Color string }{
	domain.TerrainClear: {".", "#333333"},
	domain.TerrainSwim:  {"~", "#2563EB"},
	domain.TerrainClimb: {"^", "#78716C"},
	domain.TerrainBlock: {"#", "#666666"},
}

// BuildState создает полный снимок арены.
// Наблюдатель всевидящ: ни тумана войны, ни скрытых статов.
func (s *GameService) BuildState() *api.ServerResponse {
	// 1. Карта
	mapDTO := make([]api.TileView, 0, s.World.Width*s.World.Height)
	for y := 0; y < s.World.Height; y++ {
		for x := 0; x < s.World.Width; x++ {
			tile := s.World.Map[y][x]
			look := terrainSymbols[tile.Terrain]

			tView := api.TileView{
				X: x, Y: y,
				Symbol:  look.Symbol,
				Color:   look.Color,
				Terrain: tile.Terrain.String(),
			}

			// Дверь перекрывает символ рельефа
			switch tile.Door {
			case domain.DoorOpen:
				tView.Symbol, tView.Door = "/", tile.Door.String()
			case domain.DoorClosed, domain.DoorLocked:
				tView.Symbol, tView.Door = "+", tile.Door.String()
			}

			mapDTO = append(mapDTO, tView)
		}
	}

	// 2. Сущности
	viewEntities := make([]api.EntityView, 0, len(s.Entities))
	for _, e := range s.Entities {
		viewEntities = append(viewEntities, s.toEntityView(e))
	}

	// Копия логов, чтобы не было гонки данных
	logsCopy := make([]api.LogEntry, len(s.Logs))
	copy(logsCopy, s.Logs)

	return &api.ServerResponse{
		Type:     "UPDATE",
		Tick:     s.World.GlobalTick,
		Grid:     &api.GridMeta{Width: s.World.Width, Height: s.World.Height},
		Map:      mapDTO,
		Entities: viewEntities,
		Logs:     logsCopy,
	}
}

// toEntityView конвертирует доменную сущность в DTO
func (s *GameService) toEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:      e.ID,
		Type:    e.Type,
		Name:    e.Name,
		Species: e.Species,
	}
	view.Pos.X = e.Pos.X
	view.Pos.Y = e.Pos.Y

	if e.Render != nil {
		view.Render.Symbol = e.Render.Symbol
		view.Render.Color = e.Render.Color
	} else {
		view.Render.Symbol = "?"
		view.Render.Color = "#fff"
	}

	if e.Stats != nil {
		view.Stats = &api.StatsView{
			HP:           e.Stats.HP,
			MaxHP:        e.Stats.MaxHP,
			Strength:     e.Stats.Strength,
			Intelligence: e.Stats.Intelligence,
			IsDead:       e.Stats.IsDead,
		}
	}

	if e.Brain != nil {
		view.Brain = &api.BrainView{
			Aggression:   e.Brain.Aggression,
			Confidence:   e.Brain.Confidence,
			Mode:         e.Brain.Mode.String(),
			LastBehavior: s.lastBehavior[e.ID].String(),
		}
		if e.Status != nil {
			view.Brain.Calm = e.Status.Calm
		}
	}

	return view
}
