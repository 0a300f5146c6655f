package systems

import (
	"testing"

	"creature-server/internal/domain"
)

// makeHostile выкручивает агрессию так, чтобы self был враждебен к любому
func makeHostile(self *domain.Entity) {
	self.Brain.Aggression = 200
}

func TestBrainFleeOrHeal(t *testing.T) {
	t.Run("wounded creature flees about four times out of five", func(t *testing.T) {
		w := newTestWorld(21, 21)
		self := spawnCreature(w, "Wolf", 10, 10)
		target := spawnPlayer(w, "Wanderer", 12, 10)
		makeHostile(self)
		self.Brain.Confidence = 50

		// Неистощимое средство: ветка "не бежим" всегда оканчивается лечением
		self.Inventory.AddItem(spawnItem("Elixir", domain.ItemCategoryPotion, &domain.ItemComponent{
			Effect: domain.EffectRestoreHealth,
		}))

		ctx, _, _ := newTestContext(w, 42)

		flees, heals := 0, 0
		for i := 0; i < 1000; i++ {
			w.UpdateEntityPos(self, 10, 10)
			self.Stats.HP = 10

			switch RunBrain(ctx, self, target) {
			case domain.BehaviorFlee:
				flees++
			case domain.BehaviorHeal:
				heals++
			}
		}

		if flees+heals != 1000 {
			t.Fatalf("Expected only flee/heal decisions, got flee=%d heal=%d", flees, heals)
		}
		if flees < 740 || flees > 860 {
			t.Errorf("Expected flee ratio near 0.8, got %d/1000", flees)
		}
	})

	t.Run("without any remedy the creature always flees", func(t *testing.T) {
		w := newTestWorld(21, 21)
		self := spawnCreature(w, "Wolf", 10, 10)
		target := spawnPlayer(w, "Wanderer", 12, 10)
		makeHostile(self)
		self.Brain.Confidence = 50

		ctx, _, _ := newTestContext(w, 7)

		for i := 0; i < 100; i++ {
			w.UpdateEntityPos(self, 10, 10)
			self.Stats.HP = 10

			if b := RunBrain(ctx, self, target); b != domain.BehaviorFlee {
				t.Fatalf("Trial %d: expected flee, got %v", i, b)
			}
		}
	})

	t.Run("flee steps directly away from the threat", func(t *testing.T) {
		w := newTestWorld(21, 21)
		self := spawnCreature(w, "Wolf", 10, 10)
		target := spawnPlayer(w, "Wanderer", 12, 10)
		makeHostile(self)
		self.Brain.Confidence = 50
		self.Stats.HP = 10

		ctx, _, _ := newTestContext(w, 1)

		for i := 0; i < 50; i++ {
			w.UpdateEntityPos(self, 10, 10)
			self.Stats.HP = 10
			if RunBrain(ctx, self, target) == domain.BehaviorFlee {
				if self.Pos != (domain.Position{X: 9, Y: 10}) {
					t.Fatalf("Expected step away to (9,10), got %v", self.Pos)
				}
			}
		}
	})
}

func TestBrainHunt(t *testing.T) {
	t.Run("adjacent target gets attacked with weapon readied", func(t *testing.T) {
		w := newTestWorld(11, 11)
		self := spawnCreature(w, "Wolf", 5, 5)
		target := spawnPlayer(w, "Wanderer", 6, 5)
		makeHostile(self)

		sword := spawnItem("Sword", domain.ItemCategoryWeapon, &domain.ItemComponent{Damage: 4})
		self.Inventory.AddItem(sword)

		ctx, _, sink := newTestContext(w, 3)

		if b := RunBrain(ctx, self, target); b != domain.BehaviorHunt {
			t.Fatalf("Expected hunt, got %v", b)
		}
		if len(sink.attacks) != 1 || sink.attacks[0] != target.ID {
			t.Errorf("Expected one attack on target, got %v", sink.attacks)
		}
		if self.Equipment.Weapon != sword {
			t.Error("Expected the sword to be auto-equipped before the attack")
		}
		if self.Pos != (domain.Position{X: 5, Y: 5}) {
			t.Errorf("Attacker must not move onto the target, got %v", self.Pos)
		}
	})

	t.Run("ranged destruction power fires before spells", func(t *testing.T) {
		w := newTestWorld(15, 15)
		self := spawnCreature(w, "Shaman", 5, 5)
		target := spawnPlayer(w, "Wanderer", 9, 5)
		makeHostile(self)
		self.Magic = &domain.MagicComponent{
			Powers: []domain.PowerDef{{
				Name: "Fire Burst", School: domain.SchoolDestruction,
				Effect: domain.EffectDamage, EffectValue: 8, Range: 6, Cooldown: 100,
			}},
			Spells: []domain.SpellDef{{
				Name: "Flames", School: domain.SchoolDestruction,
				Effect: domain.EffectDamage, EffectValue: 4, Range: 6,
			}},
		}

		ctx, _, sink := newTestContext(w, 11)

		// Бросок кости 50/50: гоняем тик, пока не наберется два каста
		for i := 0; i < 100 && len(sink.castsAt) < 2; i++ {
			w.UpdateEntityPos(self, 5, 5)
			RunBrain(ctx, self, target)
		}

		if len(sink.castsAt) < 2 {
			t.Fatal("Expected at least two ranged casts over 100 ticks")
		}
		if sink.castsAt[0] != "Fire Burst" {
			t.Errorf("First cast must use the innate power, got %q", sink.castsAt[0])
		}
		// Способность ушла на перезарядку: второй каст - заклинание
		if sink.castsAt[1] != "Flames" {
			t.Errorf("Second cast must fall back to the known spell, got %q", sink.castsAt[1])
		}
	})

	t.Run("out of range magic is skipped in favor of walking", func(t *testing.T) {
		w := newTestWorld(15, 15)
		self := spawnCreature(w, "Shaman", 2, 5)
		target := spawnPlayer(w, "Wanderer", 12, 5)
		makeHostile(self)
		self.Magic = &domain.MagicComponent{
			Spells: []domain.SpellDef{{
				Name: "Flames", School: domain.SchoolDestruction,
				Effect: domain.EffectDamage, Range: 3, // до цели 10 клеток
			}},
		}

		ctx, _, sink := newTestContext(w, 5)

		RunBrain(ctx, self, target)
		if len(sink.castsAt) != 0 {
			t.Errorf("Spell with range 3 must not reach a target 10 tiles away")
		}
		if self.Pos == (domain.Position{X: 2, Y: 5}) {
			t.Error("Expected the hunter to advance toward the target")
		}
	})

	t.Run("dumb creature walks straight into walls", func(t *testing.T) {
		w := newTestWorld(11, 11)
		w.Map[5][6].Terrain = domain.TerrainBlock
		self := spawnCreature(w, "Zombie", 5, 5)
		self.Stats.Intelligence = 1
		target := spawnPlayer(w, "Wanderer", 8, 5)
		makeHostile(self)

		ctx, _, sink := newTestContext(w, 9)

		if b := RunBrain(ctx, self, target); b != domain.BehaviorHunt {
			t.Fatalf("Expected hunt, got %v", b)
		}
		if self.Pos != (domain.Position{X: 5, Y: 5}) {
			t.Errorf("Dumb hunter must bounce off the wall, got %v", self.Pos)
		}
		if len(sink.attacks) != 0 {
			t.Error("No attack expected at distance 3")
		}
	})

	t.Run("smart creature routes around the wall", func(t *testing.T) {
		w := newTestWorld(11, 11)
		for y := 3; y <= 7; y++ {
			w.Map[y][6].Terrain = domain.TerrainBlock
		}
		self := spawnCreature(w, "Wolf", 5, 5)
		target := spawnPlayer(w, "Wanderer", 8, 5)
		makeHostile(self)

		ctx, _, _ := newTestContext(w, 9)

		RunBrain(ctx, self, target)
		if self.Pos == (domain.Position{X: 5, Y: 5}) {
			t.Error("Smart hunter must make progress around the wall")
		}
		if w.TileAt(self.Pos).Terrain == domain.TerrainBlock {
			t.Errorf("Hunter stepped into a wall at %v", self.Pos)
		}
	})

	t.Run("closed door on the route gets opened", func(t *testing.T) {
		w := newTestWorld(5, 1)
		w.Map[0][1].Door = domain.DoorClosed
		self := spawnCreature(w, "Wolf", 0, 0)
		target := spawnPlayer(w, "Wanderer", 4, 0)
		makeHostile(self)

		ctx, motion, _ := newTestContext(w, 2)

		RunBrain(ctx, self, target)
		if w.Map[0][1].Door != domain.DoorOpen {
			t.Errorf("Expected the door opened, state %v", w.Map[0][1].Door)
		}
		if len(motion.doorOpens) != 1 {
			t.Errorf("Expected exactly one open attempt, got %d", len(motion.doorOpens))
		}
	})

	t.Run("step onto an occupied tile degrades to wandering", func(t *testing.T) {
		w := newTestWorld(5, 1)
		self := spawnCreature(w, "Wolf", 0, 0)
		spawnCreature(w, "Boar", 1, 0)
		target := spawnPlayer(w, "Wanderer", 3, 0)
		makeHostile(self)

		ctx, _, sink := newTestContext(w, 4)

		if b := RunBrain(ctx, self, target); b != domain.BehaviorWander {
			t.Errorf("Expected wander fallback, got %v", b)
		}
		if len(sink.attacks) != 0 {
			t.Error("No attack expected through a blocking creature")
		}
	})
}

func TestBrainIdleModes(t *testing.T) {
	t.Run("blind hunter cannot see and wanders instead", func(t *testing.T) {
		w := newTestWorld(11, 11)
		self := spawnCreature(w, "Wolf", 5, 5)
		self.Status.Blind = true
		target := spawnPlayer(w, "Wanderer", 6, 5)
		makeHostile(self)

		ctx, _, sink := newTestContext(w, 6)

		if b := RunBrain(ctx, self, target); b != domain.BehaviorWander {
			t.Errorf("Expected wander, got %v", b)
		}
		if len(sink.attacks) != 0 {
			t.Error("Blind creature must not attack")
		}
	})

	t.Run("calm creature ignores a target at arm's length", func(t *testing.T) {
		w := newTestWorld(11, 11)
		self := spawnCreature(w, "Wolf", 5, 5)
		self.Status.Calm = true
		target := spawnPlayer(w, "Wanderer", 6, 5)
		makeHostile(self)

		ctx, _, sink := newTestContext(w, 6)

		if b := RunBrain(ctx, self, target); b == domain.BehaviorHunt || b == domain.BehaviorFlee {
			t.Errorf("Calm creature must stay peaceful, got %v", b)
		}
		if len(sink.attacks) != 0 {
			t.Error("Calm creature must not attack")
		}
	})

	t.Run("guard never drifts beyond its patrol radius", func(t *testing.T) {
		w := newTestWorld(21, 21)
		self := spawnCreature(w, "Sentry", 10, 10)
		self.Brain.Mode = domain.ModeGuard
		self.Brain.Home = domain.Position{X: 10, Y: 10}
		self.Brain.PatrolRadius = 1

		ctx, _, _ := newTestContext(w, 13)

		for i := 0; i < 200; i++ {
			if b := RunBrain(ctx, self, nil); b != domain.BehaviorGuard {
				t.Fatalf("Tick %d: expected guard behavior, got %v", i, b)
			}
			if d := self.Pos.DistanceTo(self.Brain.Home); d > 1.01 {
				t.Fatalf("Tick %d: guard drifted to %v, distance %.2f", i, self.Pos, d)
			}
		}
	})

	t.Run("schedule walks waypoints in a loop", func(t *testing.T) {
		w := newTestWorld(21, 21)
		self := spawnCreature(w, "Patrol", 10, 10)
		self.Brain.Mode = domain.ModeSchedule
		self.Brain.Waypoints = []domain.Position{
			{X: 12, Y: 10},
			{X: 12, Y: 12},
		}

		ctx, _, _ := newTestContext(w, 17)

		visited := map[domain.Position]bool{}
		for i := 0; i < 30; i++ {
			if b := RunBrain(ctx, self, nil); b != domain.BehaviorSchedule {
				t.Fatalf("Tick %d: expected schedule behavior, got %v", i, b)
			}
			visited[self.Pos] = true
		}

		for _, wp := range self.Brain.Waypoints {
			if !visited[wp] {
				t.Errorf("Waypoint %v was never visited; visited %v", wp, visited)
			}
		}
	})

	t.Run("empty schedule degrades to wandering", func(t *testing.T) {
		w := newTestWorld(11, 11)
		self := spawnCreature(w, "Patrol", 5, 5)
		self.Brain.Mode = domain.ModeSchedule

		ctx, _, _ := newTestContext(w, 19)

		if b := RunBrain(ctx, self, nil); b != domain.BehaviorWander {
			t.Errorf("Expected wander, got %v", b)
		}
	})
}
