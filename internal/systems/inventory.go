package systems

import (
	"creature-server/internal/domain"
	"fmt"
)

// --- АВТОЭКИПИРОВКА ---

// AutoEquipMeleeWeapon готовит существо к ближнему бою:
// стрелковое оружие без боеприпасов снимается (метательное остается),
// после чего экипируется любое свободное оружие ближнего боя.
func AutoEquipMeleeWeapon(self *domain.Entity) {
	if self.Equipment == nil {
		return
	}

	current := self.Equipment.Weapon
	if current != nil && current.Item != nil &&
		current.Item.IsRanged && !current.Item.IsThrown &&
		!self.Inventory.HasAmmo(current.Item.AmmoType) {
		// Лук без стрел в ближнем бою бесполезен
		self.Equipment.Weapon = nil
	}

	if self.Equipment.Weapon == nil && self.Inventory != nil {
		for _, it := range self.Inventory.Items {
			if it.Item != nil && it.Item.Category == domain.ItemCategoryWeapon && !it.Item.IsRanged {
				self.Equipment.Weapon = it
				break
			}
		}
	}
}

// --- ЯВНАЯ ЭКИПИРОВКА ---

// TryEquip экипирует оружие из инвентаря по ID
func TryEquip(actor *domain.Entity, itemID string) (string, error) {
	if actor.Inventory == nil || actor.Equipment == nil {
		return "", fmt.Errorf("невозможно экипировать")
	}

	item := actor.Inventory.FindItem(itemID)
	if item == nil {
		return "", fmt.Errorf("предмет не найден")
	}
	if item.Item == nil || item.Item.Category != domain.ItemCategoryWeapon {
		return "", fmt.Errorf("этот предмет нельзя взять в руки")
	}

	old := actor.Equipment.Weapon
	actor.Equipment.Weapon = item

	msg := fmt.Sprintf("%s берет %s.", actor.Name, item.Name)
	if old != nil {
		msg = fmt.Sprintf("%s убирает %s и берет %s.", actor.Name, old.Name, item.Name)
	}
	return msg, nil
}

// --- РАСХОДОВАНИЕ ---

// ConsumeItem списывает один заряд предмета (уменьшает стак или удаляет)
func ConsumeItem(actor *domain.Entity, item *domain.Entity) {
	if actor.Inventory == nil || item.Item == nil {
		return
	}
	if item.Item.IsStackable && item.Item.StackSize > 1 {
		item.Item.StackSize--
		return
	}
	actor.Inventory.RemoveItem(item.ID)
}
