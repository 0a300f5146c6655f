package worldgen

import (
	"math/rand"

	"creature-server/internal/domain"
)

// CreatePlayer создает сущность странника со стартовым снаряжением.
// Странник - наблюдаемая цель для мозгов существ; своего мозга у него нет.
func CreatePlayer(id string, rng *rand.Rand) *domain.Entity {
	p := &domain.Entity{
		ID:      id,
		Type:    domain.EntityTypePlayer,
		Name:    "Странник",
		Species: "human",
		Render:  &domain.RenderComponent{Symbol: "@", Color: "#22D3EE"},
		Narrative: &domain.NarrativeComponent{
			Description: "Одинокий путник, забредший на арену.",
		},
		Stats: &domain.StatsComponent{
			HP: 100, MaxHP: 100, Strength: 8, Charisma: 10, Intelligence: 10,
		},
		Status:    &domain.StatusComponent{},
		Inventory: &domain.InventoryComponent{Items: []*domain.Entity{}, MaxSlots: 20},
		Equipment: &domain.EquipmentComponent{},
	}

	p.Inventory.AddItem(IronSword.SpawnItem(rng))
	p.Inventory.AddItem(HealingDraught.SpawnItem(rng))

	return p
}
