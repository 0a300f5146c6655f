package worldgen

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

func TestGenerate(t *testing.T) {
	world, entities, startPos := Generate(12345)

	t.Run("map dimensions and sealed border", func(t *testing.T) {
		if world.Width != MapWidth || world.Height != MapHeight {
			t.Fatalf("Unexpected dimensions %dx%d", world.Width, world.Height)
		}
		for x := 0; x < world.Width; x++ {
			if world.Map[0][x].Terrain != domain.TerrainBlock ||
				world.Map[world.Height-1][x].Terrain != domain.TerrainBlock {
				t.Fatalf("Border tile at x=%d is passable", x)
			}
		}
		for y := 0; y < world.Height; y++ {
			if world.Map[y][0].Terrain != domain.TerrainBlock ||
				world.Map[y][world.Width-1].Terrain != domain.TerrainBlock {
				t.Fatalf("Border tile at y=%d is passable", y)
			}
		}
	})

	t.Run("start position is clear and free", func(t *testing.T) {
		tile := world.TileAt(startPos)
		if tile == nil || tile.Terrain != domain.TerrainClear {
			t.Errorf("Start position %v is not a clear tile", startPos)
		}
		if world.OccupantAt(startPos) != nil {
			t.Errorf("Start position %v is occupied", startPos)
		}
	})

	t.Run("creatures are registered and placed apart", func(t *testing.T) {
		if len(entities) == 0 {
			t.Fatal("Expected a populated arena")
		}
		seen := map[domain.Position]string{}
		for _, e := range entities {
			if world.GetEntity(e.ID) != e {
				t.Errorf("Creature %s is not in the registry", e.Name)
			}
			if prev, ok := seen[e.Pos]; ok {
				t.Errorf("Creatures %s and %s share tile %v", prev, e.Name, e.Pos)
			}
			seen[e.Pos] = e.Name
			if tile := world.TileAt(e.Pos); tile.Terrain != domain.TerrainClear {
				t.Errorf("Creature %s spawned on %v terrain", e.Name, tile.Terrain)
			}
		}
	})

	t.Run("hut has a closed and a locked door", func(t *testing.T) {
		closed, locked := 0, 0
		for y := 0; y < world.Height; y++ {
			for x := 0; x < world.Width; x++ {
				switch world.Map[y][x].Door {
				case domain.DoorClosed:
					closed++
				case domain.DoorLocked:
					locked++
					if world.Map[y][x].LockID != HutLockID {
						t.Errorf("Locked door at (%d,%d) has lock %q", x, y, world.Map[y][x].LockID)
					}
				}
			}
		}
		if closed != 1 || locked != 1 {
			t.Errorf("Expected 1 closed and 1 locked door, got %d/%d", closed, locked)
		}
	})

	t.Run("somebody carries the hut key", func(t *testing.T) {
		holder := ""
		for _, e := range entities {
			if e.Inventory.HasKeyFor(HutLockID) {
				holder = e.Name
			}
		}
		if holder == "" {
			t.Error("The locked door must have a key holder on the arena")
		}
	})

	t.Run("same seed, same arena", func(t *testing.T) {
		w2, ents2, start2 := Generate(12345)
		if start2 != startPos {
			t.Errorf("Start positions differ: %v vs %v", startPos, start2)
		}
		if len(ents2) != len(entities) {
			t.Fatalf("Creature counts differ: %d vs %d", len(entities), len(ents2))
		}
		for i := range entities {
			if entities[i].ID != ents2[i].ID || entities[i].Pos != ents2[i].Pos {
				t.Errorf("Creature %d differs: %s@%v vs %s@%v",
					i, entities[i].ID, entities[i].Pos, ents2[i].ID, ents2[i].Pos)
			}
		}
		for y := 0; y < world.Height; y++ {
			for x := 0; x < world.Width; x++ {
				if world.Map[y][x].Terrain != w2.Map[y][x].Terrain {
					t.Fatalf("Terrain differs at (%d,%d)", x, y)
				}
			}
		}
	})
}

func TestCreatePlayer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := CreatePlayer("hero_1", rng)

	if p.Type != domain.EntityTypePlayer || p.Brain != nil {
		t.Error("Player must have no brain component")
	}
	if len(p.Inventory.Items) != 2 {
		t.Errorf("Expected starting gear, got %d items", len(p.Inventory.Items))
	}
}
