package systems

import (
	"io"
	"math/rand"
	"os"
	"testing"

	"creature-server/internal/domain"
	"creature-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newTestWorld создает пустой проходимый мир заданного размера
func newTestWorld(width, height int) *domain.GameWorld {
	w := &domain.GameWorld{
		Width:          width,
		Height:         height,
		Map:            make([][]domain.Tile, height),
		SpatialHash:    make(map[int][]*domain.Entity),
		EntityRegistry: make(map[string]*domain.Entity),
	}
	for y := 0; y < height; y++ {
		w.Map[y] = make([]domain.Tile, width)
		for x := 0; x < width; x++ {
			w.Map[y][x] = domain.Tile{X: x, Y: y, Terrain: domain.TerrainClear}
		}
	}
	return w
}

func spawnCreature(w *domain.GameWorld, name string, x, y int) *domain.Entity {
	e := &domain.Entity{
		ID:      domain.GenerateID(),
		Type:    domain.EntityTypeCreature,
		Name:    name,
		Species: "wolf",
		Pos:     domain.Position{X: x, Y: y},
		Stats: &domain.StatsComponent{
			HP: 100, MaxHP: 100,
			Strength:     5,
			Intelligence: 10,
		},
		Status:    &domain.StatusComponent{},
		Brain:     &domain.BrainComponent{Aggression: 30, Confidence: 25},
		Inventory: &domain.InventoryComponent{},
		Equipment: &domain.EquipmentComponent{},
	}
	w.AddEntity(e)
	w.RegisterEntity(e)
	return e
}

func spawnPlayer(w *domain.GameWorld, name string, x, y int) *domain.Entity {
	e := spawnCreature(w, name, x, y)
	e.Type = domain.EntityTypePlayer
	e.Species = "human"
	e.Brain = nil
	return e
}

func spawnItem(name, category string, item *domain.ItemComponent) *domain.Entity {
	item.Category = category
	return &domain.Entity{
		ID:   domain.GenerateID(),
		Type: domain.EntityTypeItem,
		Name: name,
		Item: item,
	}
}

// testMotion применяет перемещения через CalculateMove и запоминает открытия дверей
type testMotion struct {
	w         *domain.GameWorld
	doorOpens []domain.Position
}

func (m *testMotion) Move(e *domain.Entity, to domain.Position) MoveStatus {
	res := CalculateMove(e, to, m.w)
	switch {
	case res.HasMoved:
		if err := m.w.UpdateEntityPos(e, to.X, to.Y); err != nil {
			return MoveBlocked
		}
		return MoveOK
	case res.IsDoor:
		return MoveDoor
	default:
		return MoveBlocked
	}
}

func (m *testMotion) OpenDoor(e *domain.Entity, at domain.Position) bool {
	m.doorOpens = append(m.doorOpens, at)
	return OpenDoorAt(e, at, m.w)
}

// recorderSink запоминает боевые намерения мозга
type recorderSink struct {
	attacks   []string // ID целей
	castsAt   []string // имена заклинаний дальнего каста
	castsSelf []string // имена заклинаний на себя
}

func (s *recorderSink) EmitAttack(attacker, target *domain.Entity) {
	s.attacks = append(s.attacks, target.ID)
}

func (s *recorderSink) EmitCastAt(caster *domain.Entity, spell string, at domain.Position) {
	s.castsAt = append(s.castsAt, spell)
}

func (s *recorderSink) EmitCastSelf(caster *domain.Entity, spell string) {
	s.castsSelf = append(s.castsSelf, spell)
}

func newTestContext(w *domain.GameWorld, seed int64) (*BrainContext, *testMotion, *recorderSink) {
	motion := &testMotion{w: w}
	sink := &recorderSink{}
	ctx := &BrainContext{
		World:       w,
		Rng:         rand.New(rand.NewSource(seed)),
		Motion:      motion,
		Sink:        sink,
		Finder:      PathFinder{},
		SightRadius: domain.SightRadius,
	}
	return ctx, motion, sink
}
