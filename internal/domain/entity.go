package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	rand.Read(b)
	return hex.EncodeToString(b)
}

type Entity struct {
	// Идентификация
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Species string `json:"species,omitempty"` // вид существа (wolf, human, goblin...)

	Pos Position `json:"pos"`

	// Компоненты (Если nil - значит свойство отсутствует)
	Render    *RenderComponent    `json:"render,omitempty"`
	Stats     *StatsComponent     `json:"stats,omitempty"`
	Status    *StatusComponent    `json:"status,omitempty"`
	Brain     *BrainComponent     `json:"brain,omitempty"`
	Factions  []FactionMembership `json:"factions,omitempty"`
	Magic     *MagicComponent     `json:"magic,omitempty"`
	Narrative *NarrativeComponent `json:"narrative,omitempty"`
	Inventory *InventoryComponent `json:"inventory,omitempty"`
	Equipment *EquipmentComponent `json:"equipment,omitempty"`
	Item      *ItemComponent      `json:"item,omitempty"`
}

// InFaction проверяет членство сущности во фракции
func (e *Entity) InFaction(name string) bool {
	for _, f := range e.Factions {
		if f.Name == name {
			return true
		}
	}
	return false
}
