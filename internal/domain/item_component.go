package domain

// Категории предметов
const (
	ItemCategoryWeapon = "weapon"
	ItemCategoryPotion = "potion"
	ItemCategoryScroll = "scroll"
	ItemCategoryAmmo   = "ammo"
	ItemCategoryKey    = "key"
	ItemCategoryMisc   = "misc"
)

// ItemComponent описывает предмет в игре.
// Любая Entity с этим компонентом становится предметом.
type ItemComponent struct {
	// Базовые характеристики
	Category    string `json:"category"` // "weapon", "potion", "scroll", "ammo", "key", "misc"
	IsStackable bool   `json:"isStackable"`
	StackSize   int    `json:"stackSize"`

	// Характеристики оружия
	Damage   int    `json:"damage,omitempty"`
	IsRanged bool   `json:"isRanged,omitempty"` // стреляет (нужны боеприпасы, если не метательное)
	IsThrown bool   `json:"isThrown,omitempty"` // метательное: боеприпасы не нужны
	AmmoType string `json:"ammoType,omitempty"` // какой категорией боеприпасов стреляет ("arrow", "bolt")

	// Эффект расходуемых предметов (зелья, свитки)
	Effect       EffectType `json:"effect,omitempty"`
	EffectValue  int        `json:"effectValue,omitempty"`
	EffectRange  int        `json:"effectRange,omitempty"`  // 0 = только на себя
	IsConsumable bool       `json:"isConsumable,omitempty"` // исчезает после использования

	// Для ключей
	LockID string `json:"lockId,omitempty"` // какой замок открывает
}

// InventoryComponent хранит предметы у сущности.
type InventoryComponent struct {
	Items    []*Entity `json:"items"` // ссылки на Entity с ItemComponent
	MaxSlots int       `json:"maxSlots"`
}

// EquipmentComponent хранит экипированные предметы.
// Экипированный предмет ВСЕ ЕЩЕ находится в списке Inventory.Items:
// Equipment просто хранит ссылку на активный.
type EquipmentComponent struct {
	Weapon *Entity `json:"weapon,omitempty"`
}

// AddItem добавляет предмет в инвентарь с проверкой места.
func (inv *InventoryComponent) AddItem(item *Entity) bool {
	if inv == nil || item == nil || item.Item == nil {
		return false
	}

	// Проверка на переполнение слотов
	if inv.MaxSlots > 0 && len(inv.Items) >= inv.MaxSlots {
		return false
	}

	// Попытка стакирования
	if item.Item.IsStackable {
		for _, existing := range inv.Items {
			if existing.Item != nil &&
				existing.Name == item.Name &&
				existing.Item.Category == item.Item.Category {
				// Объединяем стаки
				existing.Item.StackSize += item.Item.StackSize
				return true
			}
		}
	}

	inv.Items = append(inv.Items, item)
	return true
}

// RemoveItem удаляет предмет из инвентаря.
func (inv *InventoryComponent) RemoveItem(itemID string) *Entity {
	if inv == nil {
		return nil
	}

	for i, item := range inv.Items {
		if item.ID == itemID {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return item
		}
	}
	return nil
}

// FindItem ищет предмет по ID.
func (inv *InventoryComponent) FindItem(itemID string) *Entity {
	if inv == nil {
		return nil
	}

	for _, item := range inv.Items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}

// HasKeyFor проверяет, есть ли в инвентаре ключ к замку
func (inv *InventoryComponent) HasKeyFor(lockID string) bool {
	if inv == nil || lockID == "" {
		return false
	}
	for _, item := range inv.Items {
		if item.Item != nil && item.Item.Category == ItemCategoryKey && item.Item.LockID == lockID {
			return true
		}
	}
	return false
}

// HasAmmo проверяет наличие боеприпасов нужной категории
func (inv *InventoryComponent) HasAmmo(ammoType string) bool {
	if inv == nil || ammoType == "" {
		return false
	}
	for _, item := range inv.Items {
		if item.Item != nil && item.Item.Category == ItemCategoryAmmo &&
			item.Item.AmmoType == ammoType && item.Item.StackSize > 0 {
			return true
		}
	}
	return false
}
