package systems

import (
	"strings"
	"testing"

	"creature-server/internal/domain"
)

func TestApplyAttack(t *testing.T) {
	t.Run("damage is strength plus weapon", func(t *testing.T) {
		w := newTestWorld(5, 5)
		attacker := spawnCreature(w, "Wolf", 1, 1)
		attacker.Stats.Strength = 3
		target := spawnPlayer(w, "Wanderer", 2, 1)

		sword := spawnItem("Sword", domain.ItemCategoryWeapon, &domain.ItemComponent{Damage: 4})
		attacker.Inventory.AddItem(sword)
		attacker.Equipment.Weapon = sword

		ApplyAttack(attacker, target)
		if target.Stats.HP != 93 {
			t.Errorf("Expected 100-7=93 HP, got %d", target.Stats.HP)
		}
	})

	t.Run("lethal hit marks the corpse", func(t *testing.T) {
		w := newTestWorld(5, 5)
		attacker := spawnCreature(w, "Wolf", 1, 1)
		attacker.Stats.Strength = 10
		target := spawnPlayer(w, "Wanderer", 2, 1)
		target.Stats.HP = 5
		target.Render = &domain.RenderComponent{Symbol: "@"}

		msg := ApplyAttack(attacker, target)
		if !target.Stats.IsDead {
			t.Fatal("Expected the target to die")
		}
		if target.Render.Symbol != "%" {
			t.Errorf("Expected corpse symbol, got %q", target.Render.Symbol)
		}
		if !strings.Contains(msg, "погибает") {
			t.Errorf("Expected a death notice in %q", msg)
		}
	})

	t.Run("minimum damage is one", func(t *testing.T) {
		w := newTestWorld(5, 5)
		attacker := spawnCreature(w, "Rat", 1, 1)
		attacker.Stats.Strength = 0
		target := spawnPlayer(w, "Wanderer", 2, 1)

		ApplyAttack(attacker, target)
		if target.Stats.HP != 99 {
			t.Errorf("Expected at least 1 damage, HP %d", target.Stats.HP)
		}
	})
}

func TestApplySpellDamage(t *testing.T) {
	t.Run("hits the occupant of the tile", func(t *testing.T) {
		w := newTestWorld(5, 5)
		caster := spawnCreature(w, "Shaman", 1, 1)
		target := spawnPlayer(w, "Wanderer", 3, 3)

		ApplySpellDamage(w, caster, target.Pos, 15)
		if target.Stats.HP != 85 {
			t.Errorf("Expected 85 HP, got %d", target.Stats.HP)
		}
	})

	t.Run("empty tile wastes the spell", func(t *testing.T) {
		w := newTestWorld(5, 5)
		caster := spawnCreature(w, "Shaman", 1, 1)

		msg := ApplySpellDamage(w, caster, domain.Position{X: 3, Y: 3}, 15)
		if !strings.Contains(msg, "пустоту") {
			t.Errorf("Expected a miss message, got %q", msg)
		}
	})
}

func TestAutoEquipMeleeWeapon(t *testing.T) {
	t.Run("bow without arrows is dropped for a sword", func(t *testing.T) {
		w := newTestWorld(5, 5)
		e := spawnCreature(w, "Hunter", 1, 1)

		bow := spawnItem("Bow", domain.ItemCategoryWeapon, &domain.ItemComponent{
			Damage: 6, IsRanged: true, AmmoType: "arrow",
		})
		sword := spawnItem("Sword", domain.ItemCategoryWeapon, &domain.ItemComponent{Damage: 4})
		e.Inventory.AddItem(bow)
		e.Inventory.AddItem(sword)
		e.Equipment.Weapon = bow

		AutoEquipMeleeWeapon(e)
		if e.Equipment.Weapon != sword {
			t.Errorf("Expected the sword in hand, got %v", e.Equipment.Weapon)
		}
	})

	t.Run("bow with arrows stays equipped", func(t *testing.T) {
		w := newTestWorld(5, 5)
		e := spawnCreature(w, "Hunter", 1, 1)

		bow := spawnItem("Bow", domain.ItemCategoryWeapon, &domain.ItemComponent{
			Damage: 6, IsRanged: true, AmmoType: "arrow",
		})
		arrows := spawnItem("Arrows", domain.ItemCategoryAmmo, &domain.ItemComponent{
			AmmoType: "arrow", IsStackable: true, StackSize: 10,
		})
		e.Inventory.AddItem(bow)
		e.Inventory.AddItem(arrows)
		e.Equipment.Weapon = bow

		AutoEquipMeleeWeapon(e)
		if e.Equipment.Weapon != bow {
			t.Error("A bow with ammo must stay equipped")
		}
	})

	t.Run("thrown weapon needs no ammo", func(t *testing.T) {
		w := newTestWorld(5, 5)
		e := spawnCreature(w, "Hunter", 1, 1)

		axe := spawnItem("Throwing Axe", domain.ItemCategoryWeapon, &domain.ItemComponent{
			Damage: 5, IsRanged: true, IsThrown: true,
		})
		e.Inventory.AddItem(axe)
		e.Equipment.Weapon = axe

		AutoEquipMeleeWeapon(e)
		if e.Equipment.Weapon != axe {
			t.Error("A thrown weapon must stay equipped")
		}
	})

	t.Run("bare hands when nothing fits", func(t *testing.T) {
		w := newTestWorld(5, 5)
		e := spawnCreature(w, "Wolf", 1, 1)

		AutoEquipMeleeWeapon(e)
		if e.Equipment.Weapon != nil {
			t.Errorf("Expected bare hands, got %v", e.Equipment.Weapon)
		}
	})
}
