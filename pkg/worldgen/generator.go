package worldgen

import (
	"math/rand"

	"github.com/ojrac/opensimplex-go"

	"creature-server/internal/domain"
	"creature-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Размеры арены по умолчанию
const (
	MapWidth  = 40
	MapHeight = 30
)

// HutLockID - замок задней двери хижины
const HutLockID = "hut_back"

// Пороги шумовой карты высот (нормализованный шум, 0..1)
const (
	waterLevel = 0.32 // ниже - вода
	rockLevel  = 0.72 // выше - скалы
	peakLevel  = 0.86 // выше - непроходимые пики
)

// Generate создает арену: шумовой рельеф, хижина с дверьми
// и стартовая точка для странника. Один сид - одна и та же арена.
// Возвращенные существа уже зарегистрированы в индексах мира.
func Generate(seed int64) (*domain.GameWorld, []*domain.Entity, domain.Position) {
	rng := rand.New(rand.NewSource(seed))
	noise := opensimplex.NewNormalized(seed)

	world := &domain.GameWorld{
		Map:            make([][]domain.Tile, MapHeight),
		Width:          MapWidth,
		Height:         MapHeight,
		SpatialHash:    make(map[int][]*domain.Entity),
		EntityRegistry: make(map[string]*domain.Entity),
	}

	// --- РЕЛЬЕФ ---

	for y := 0; y < MapHeight; y++ {
		world.Map[y] = make([]domain.Tile, MapWidth)
		for x := 0; x < MapWidth; x++ {
			tile := domain.Tile{X: x, Y: y, Terrain: domain.TerrainClear}

			// Край карты всегда непроходим
			if x == 0 || y == 0 || x == MapWidth-1 || y == MapHeight-1 {
				tile.Terrain = domain.TerrainBlock
				world.Map[y][x] = tile
				continue
			}

			elev := octaveNoise(noise, float64(x), float64(y), 3, 0.08, 0.5)
			switch {
			case elev < waterLevel:
				tile.Terrain = domain.TerrainSwim
			case elev >= peakLevel:
				tile.Terrain = domain.TerrainBlock
			case elev >= rockLevel:
				tile.Terrain = domain.TerrainClimb
			}

			world.Map[y][x] = tile
		}
	}

	// --- ХИЖИНА ---

	hut := domain.Position{X: MapWidth / 2, Y: MapHeight / 2}
	carveHut(world, hut)

	// --- НАСЕЛЕНИЕ ---

	entities := populate(world, hut, rng)

	startPos := findFreeTile(world, domain.Position{X: MapWidth / 4, Y: MapHeight / 2})

	logger.Log.WithFields(logrus.Fields{
		"component": "worldgen",
		"seed":      seed,
		"creatures": len(entities),
	}).Info("Arena generated.")

	return world, entities, startPos
}

// carveHut вырезает каменную хижину 5x4: стены из BLOCK,
// закрытая дверь на юг и запертая на север (ключ носит дозорный)
func carveHut(w *domain.GameWorld, center domain.Position) {
	x0, y0 := center.X-2, center.Y-2
	x1, y1 := center.X+2, center.Y+1

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !w.InBounds(domain.Position{X: x, Y: y}) {
				continue
			}
			tile := &w.Map[y][x]
			tile.Door = domain.DoorNone
			if x == x0 || x == x1 || y == y0 || y == y1 {
				tile.Terrain = domain.TerrainBlock
			} else {
				tile.Terrain = domain.TerrainClear
			}
		}
	}

	// Южный вход: обычная закрытая дверь
	south := &w.Map[y1][center.X]
	south.Terrain = domain.TerrainClear
	south.Door = domain.DoorClosed

	// Северный выход: заперт
	north := &w.Map[y0][center.X]
	north.Terrain = domain.TerrainClear
	north.Door = domain.DoorLocked
	north.LockID = HutLockID
}

// populate расставляет существ вокруг хижины
func populate(w *domain.GameWorld, hut domain.Position, rng *rand.Rand) []*domain.Entity {
	var out []*domain.Entity

	// Каждое существо сразу попадает в индексы мира:
	// findFreeTile следующего спавна уже видит занятые клетки
	spawn := func(t CreatureTemplate, near domain.Position) *domain.Entity {
		pos := findFreeTile(w, near)
		e := t.SpawnCreature(pos, rng)
		w.AddEntity(e)
		w.RegisterEntity(e)
		out = append(out, e)
		return e
	}

	// Стая волков на западе
	for i := 0; i < 3; i++ {
		spawn(Wolf, domain.Position{X: 5 + rng.Intn(6), Y: 5 + rng.Intn(6)})
	}

	// Кабан и тролль в скалах на востоке
	spawn(Boar, domain.Position{X: w.Width - 8, Y: 6})
	spawn(Troll, domain.Position{X: w.Width - 6, Y: w.Height - 8})

	// Шаман у воды, со снадобьями на черный день
	shaman := spawn(Shaman, domain.Position{X: 6, Y: w.Height - 6})
	shaman.Inventory.AddItem(HealingDraught.SpawnItem(rng))
	shaman.Inventory.AddItem(Antidote.SpawnItem(rng))

	// Часовой у южной двери хижины
	sentry := spawn(Sentry, domain.Position{X: hut.X, Y: hut.Y + 3})
	sentry.Brain.Home = sentry.Pos
	sentry.Inventory.AddItem(IronSword.SpawnItem(rng))

	// Дозорный обходит хижину по кругу; у него ключ от задней двери
	patrol := spawn(Patrol, domain.Position{X: hut.X - 5, Y: hut.Y})
	patrol.Brain.Waypoints = []domain.Position{
		findFreeTile(w, domain.Position{X: hut.X - 5, Y: hut.Y - 4}),
		findFreeTile(w, domain.Position{X: hut.X + 5, Y: hut.Y - 4}),
		findFreeTile(w, domain.Position{X: hut.X + 5, Y: hut.Y + 4}),
		findFreeTile(w, domain.Position{X: hut.X - 5, Y: hut.Y + 4}),
	}
	patrol.Inventory.AddItem(HutKey.SpawnItem(rng))
	patrol.Inventory.AddItem(HuntingBow.SpawnItem(rng))
	patrol.Inventory.AddItem(Arrows.SpawnItem(rng))
	patrol.Inventory.AddItem(IronSword.SpawnItem(rng))

	return out
}

// findFreeTile ищет ближайшую к желаемой точке чистую клетку без жильцов.
// Идет расходящимися кольцами; в худшем случае возвращает желаемую точку.
func findFreeTile(w *domain.GameWorld, want domain.Position) domain.Position {
	for radius := 0; radius < w.Width; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				p := domain.Position{X: want.X + dx, Y: want.Y + dy}
				if !w.InBounds(p) {
					continue
				}
				tile := w.TileAt(p)
				if tile.Terrain != domain.TerrainClear || tile.Door != domain.DoorNone {
					continue
				}
				if w.OccupantAt(p) == nil {
					return p
				}
			}
		}
	}
	return want
}

// octaveNoise складывает несколько частот шума (фрактальный рельеф)
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
