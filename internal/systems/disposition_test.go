package systems

import (
	"testing"

	"creature-server/internal/domain"
)

func TestDisposition(t *testing.T) {
	t.Run("strangers start at the neutral base", func(t *testing.T) {
		w := newTestWorld(5, 5)
		a := spawnCreature(w, "Wolf", 0, 0)
		b := spawnCreature(w, "Bear", 1, 1)
		b.Species = "bear"
		b.Stats.Charisma = 0

		if got := Disposition(a, b); got != 40 {
			t.Errorf("Expected base disposition 40, got %d", got)
		}
	})

	t.Run("target charisma raises disposition", func(t *testing.T) {
		w := newTestWorld(5, 5)
		a := spawnCreature(w, "Wolf", 0, 0)
		b := spawnCreature(w, "Bard", 1, 1)
		b.Species = "human"
		b.Stats.Charisma = 12

		if got := Disposition(a, b); got != 52 {
			t.Errorf("Expected 40+12=52, got %d", got)
		}
	})

	t.Run("same species bonus", func(t *testing.T) {
		w := newTestWorld(5, 5)
		a := spawnCreature(w, "Wolf", 0, 0)
		b := spawnCreature(w, "Other Wolf", 1, 1)
		b.Stats.Charisma = 0

		if got := Disposition(a, b); got != 45 {
			t.Errorf("Expected 40+5=45 for same species, got %d", got)
		}
	})

	t.Run("only active shared factions count", func(t *testing.T) {
		w := newTestWorld(5, 5)
		a := spawnCreature(w, "Guard", 0, 0)
		b := spawnCreature(w, "Captain", 1, 1)
		b.Species = "bear"
		b.Stats.Charisma = 0

		a.Factions = []domain.FactionMembership{
			{Name: "legion", Active: true},
			{Name: "thieves", Active: false}, // спящее членство бонуса не дает
			{Name: "mages", Active: true},
		}
		b.Factions = []domain.FactionMembership{
			{Name: "legion", Active: true},
			{Name: "thieves", Active: true},
			{Name: "mages", Active: false}, // активность цели не важна
		}

		if got := Disposition(a, b); got != 60 {
			t.Errorf("Expected 40+10+10=60, got %d", got)
		}
	})

	t.Run("charm accumulates across casts", func(t *testing.T) {
		w := newTestWorld(5, 5)
		a := spawnCreature(w, "Wolf", 0, 0)
		b := spawnCreature(w, "Bear", 1, 1)
		b.Species = "bear"
		b.Stats.Charisma = 0

		a.Brain.Charm(b.ID, 15)
		a.Brain.Charm(b.ID, 15)

		if got := Disposition(a, b); got != 70 {
			t.Errorf("Expected 40+15+15=70, got %d", got)
		}
	})
}

func TestIsHostile(t *testing.T) {
	t.Run("hostility requires aggression strictly above disposition", func(t *testing.T) {
		w := newTestWorld(5, 5)
		a := spawnCreature(w, "Wolf", 0, 0)
		b := spawnCreature(w, "Bear", 1, 1)
		b.Species = "bear"
		b.Stats.Charisma = 0

		a.Brain.Aggression = 40 // ровно на границе
		if IsHostile(a, b) {
			t.Error("Aggression equal to disposition must not be hostile")
		}

		a.Brain.Aggression = 41
		if !IsHostile(a, b) {
			t.Error("Aggression above disposition must be hostile")
		}
	})

	t.Run("calm overrides any aggression", func(t *testing.T) {
		w := newTestWorld(5, 5)
		a := spawnCreature(w, "Wolf", 0, 0)
		b := spawnCreature(w, "Bear", 1, 1)

		a.Brain.Aggression = 1000
		a.Status.Calm = true
		if IsHostile(a, b) {
			t.Error("Calm creature must never be hostile")
		}
	})

	t.Run("charm can pacify an aggressive creature", func(t *testing.T) {
		w := newTestWorld(5, 5)
		a := spawnCreature(w, "Wolf", 0, 0)
		b := spawnCreature(w, "Bear", 1, 1)
		b.Species = "bear"
		b.Stats.Charisma = 0

		a.Brain.Aggression = 55
		if !IsHostile(a, b) {
			t.Fatal("Setup: expected hostile before charm")
		}

		a.Brain.Charm(b.ID, 20)
		if IsHostile(a, b) {
			t.Error("Disposition 60 against aggression 55 must not be hostile")
		}
	})

	t.Run("force hostile flips a friendly creature", func(t *testing.T) {
		w := newTestWorld(5, 5)
		a := spawnCreature(w, "Wolf", 0, 0)
		b := spawnCreature(w, "Bear", 1, 1)

		a.Brain.Aggression = 0
		ForceHostile(a, b)
		if !IsHostile(a, b) {
			t.Error("Provoked creature must become hostile immediately")
		}
	})

	t.Run("calm down shaves a quarter of aggression", func(t *testing.T) {
		b := &domain.BrainComponent{Aggression: 100}
		b.CalmDown()
		if b.Aggression != 75 {
			t.Errorf("Expected 75 after calm, got %d", b.Aggression)
		}
		b.CalmDown()
		if b.Aggression != 57 {
			t.Errorf("Expected 57 after second calm, got %d", b.Aggression)
		}
	})
}
