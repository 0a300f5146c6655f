package worldgen

import (
	"math/rand"

	"creature-server/internal/domain"
	"creature-server/pkg/utils"
)

// CreatureTemplate определяет шаблон для создания существа
type CreatureTemplate struct {
	Name      string
	Species   string
	Render    domain.RenderComponent
	Stats     domain.StatsComponent
	Brain     domain.BrainComponent
	Narrative domain.NarrativeComponent

	// Магия шаблона копируется в каждую особь (перезарядки индивидуальны)
	Powers []domain.PowerDef
	Spells []domain.SpellDef
}

// SpawnCreature создает существо из шаблона на заданной позиции
func (t CreatureTemplate) SpawnCreature(pos domain.Position, rng *rand.Rand) *domain.Entity {
	e := &domain.Entity{
		ID:      utils.GenerateDeterministicID(rng, "c_"),
		Type:    domain.EntityTypeCreature,
		Name:    t.Name,
		Species: t.Species,
		Pos:     pos,
		Render: &domain.RenderComponent{
			Symbol: t.Render.Symbol,
			Color:  t.Render.Color,
		},
		Narrative: &domain.NarrativeComponent{
			Description: t.Narrative.Description,
		},
		Stats: &domain.StatsComponent{
			HP:           t.Stats.HP,
			MaxHP:        t.Stats.HP,
			Strength:     t.Stats.Strength,
			Charisma:     t.Stats.Charisma,
			Intelligence: t.Stats.Intelligence,
			SwimSkill:    t.Stats.SwimSkill,
			ClimbSkill:   t.Stats.ClimbSkill,
		},
		Brain: &domain.BrainComponent{
			Aggression: t.Brain.Aggression,
			Confidence: t.Brain.Confidence,
			Mode:       t.Brain.Mode,
		},
		Status:    &domain.StatusComponent{},
		Inventory: &domain.InventoryComponent{Items: []*domain.Entity{}, MaxSlots: 10},
		Equipment: &domain.EquipmentComponent{},
	}

	if len(t.Powers) > 0 || len(t.Spells) > 0 {
		e.Magic = &domain.MagicComponent{
			Powers: append([]domain.PowerDef(nil), t.Powers...),
			Spells: append([]domain.SpellDef(nil), t.Spells...),
		}
	}

	return e
}

// --- СУЩЕСТВА ---

var Wolf = CreatureTemplate{
	Name:    "Серый волк",
	Species: "wolf",
	Render:  domain.RenderComponent{Symbol: "w", Color: "#9CA3AF"},
	Narrative: domain.NarrativeComponent{
		Description: "Матерый волк, кружит неподалеку.",
	},
	Stats: domain.StatsComponent{
		HP: 30, Strength: 4, Intelligence: 6, SwimSkill: 40,
	},
	Brain: domain.BrainComponent{
		Aggression: 60, Confidence: 30,
	},
}

var Boar = CreatureTemplate{
	Name:    "Дикий кабан",
	Species: "boar",
	Render:  domain.RenderComponent{Symbol: "b", Color: "#92400E"},
	Narrative: domain.NarrativeComponent{
		Description: "Кабан роет землю, не замечая ничего вокруг.",
	},
	Stats: domain.StatsComponent{
		// Глупое существо: прет напролом, не обходя препятствия
		HP: 40, Strength: 6, Intelligence: 2,
	},
	Brain: domain.BrainComponent{
		Aggression: 50, Confidence: 15,
	},
}

var Sentry = CreatureTemplate{
	Name:    "Часовой",
	Species: "human",
	Render:  domain.RenderComponent{Symbol: "S", Color: "#FCD34D"},
	Narrative: domain.NarrativeComponent{
		Description: "Вооруженный часовой у хижины.",
	},
	Stats: domain.StatsComponent{
		HP: 60, Strength: 7, Charisma: 5, Intelligence: 10,
	},
	Brain: domain.BrainComponent{
		Aggression: 20, Confidence: 40, Mode: domain.ModeGuard, PatrolRadius: 3,
	},
}

var Patrol = CreatureTemplate{
	Name:    "Дозорный",
	Species: "human",
	Render:  domain.RenderComponent{Symbol: "P", Color: "#FDE68A"},
	Narrative: domain.NarrativeComponent{
		Description: "Дозорный обходит окрестности по заведенному маршруту.",
	},
	Stats: domain.StatsComponent{
		HP: 55, Strength: 6, Charisma: 5, Intelligence: 12, ClimbSkill: 60,
	},
	Brain: domain.BrainComponent{
		Aggression: 20, Confidence: 45, Mode: domain.ModeSchedule,
	},
}

var Shaman = CreatureTemplate{
	Name:    "Болотный шаман",
	Species: "lizard",
	Render:  domain.RenderComponent{Symbol: "s", Color: "#16A34A"},
	Narrative: domain.NarrativeComponent{
		Description: "Сгорбленная фигура в перьях, бормочет заклинания.",
	},
	Stats: domain.StatsComponent{
		HP: 45, Strength: 3, Intelligence: 14, SwimSkill: 90,
	},
	Brain: domain.BrainComponent{
		Aggression: 70, Confidence: 50,
	},
	Powers: []domain.PowerDef{
		{
			Name: "Болотный огонь", School: domain.SchoolDestruction,
			Effect: domain.EffectDamage, EffectValue: 8, Range: 6, Cooldown: 5,
		},
		{
			Name: "Очищение", School: domain.SchoolRestoration,
			Effect: domain.EffectCurePoison, Cooldown: 10,
		},
	},
	Spells: []domain.SpellDef{
		{
			Name: "Искра", School: domain.SchoolDestruction,
			Effect: domain.EffectDamage, EffectValue: 4, Range: 5,
		},
		{
			Name: "Малое исцеление", School: domain.SchoolRestoration,
			Effect: domain.EffectRestoreHealth, EffectValue: 15,
		},
	},
}

var Troll = CreatureTemplate{
	Name:    "Горный тролль",
	Species: "troll",
	Render:  domain.RenderComponent{Symbol: "T", Color: "#78716C"},
	Narrative: domain.NarrativeComponent{
		Description: "Массивное существо с каменной кожей.",
	},
	Stats: domain.StatsComponent{
		HP: 90, Strength: 10, Intelligence: 4, ClimbSkill: 100,
	},
	Brain: domain.BrainComponent{
		Aggression: 80, Confidence: 20,
	},
}

// CreatureTemplates - карта всех доступных существ
var CreatureTemplates = map[string]CreatureTemplate{
	"wolf":   Wolf,
	"boar":   Boar,
	"sentry": Sentry,
	"patrol": Patrol,
	"shaman": Shaman,
	"troll":  Troll,
}

// --- ПРЕДМЕТЫ ---

// ItemTemplate определяет шаблон для создания предмета-сущности
type ItemTemplate struct {
	Name       string
	Render     domain.RenderComponent
	Properties domain.ItemComponent
}

// SpawnItem создает Entity-предмет из шаблона
func (t ItemTemplate) SpawnItem(rng *rand.Rand) *domain.Entity {
	props := t.Properties
	if props.IsStackable && props.StackSize == 0 {
		props.StackSize = 1
	}

	return &domain.Entity{
		ID:   utils.GenerateDeterministicID(rng, "i_"),
		Type: domain.EntityTypeItem,
		Name: t.Name,
		Render: &domain.RenderComponent{
			Symbol: t.Render.Symbol,
			Color:  t.Render.Color,
		},
		Item: &props,
	}
}

var IronSword = ItemTemplate{
	Name:   "Железный меч",
	Render: domain.RenderComponent{Symbol: ")", Color: "#C0C0C0"},
	Properties: domain.ItemComponent{
		Category: domain.ItemCategoryWeapon,
		Damage:   5,
	},
}

var HuntingBow = ItemTemplate{
	Name:   "Охотничий лук",
	Render: domain.RenderComponent{Symbol: "}", Color: "#78350F"},
	Properties: domain.ItemComponent{
		Category: domain.ItemCategoryWeapon,
		Damage:   4, IsRanged: true, AmmoType: "arrow",
	},
}

var Arrows = ItemTemplate{
	Name:   "Стрелы",
	Render: domain.RenderComponent{Symbol: "/", Color: "#D6D3D1"},
	Properties: domain.ItemComponent{
		Category: domain.ItemCategoryAmmo,
		AmmoType: "arrow", IsStackable: true, StackSize: 12,
	},
}

var HealingDraught = ItemTemplate{
	Name:   "Зелье лечения",
	Render: domain.RenderComponent{Symbol: "!", Color: "#DC2626"},
	Properties: domain.ItemComponent{
		Category: domain.ItemCategoryPotion,
		Effect:   domain.EffectRestoreHealth, EffectValue: 30, IsConsumable: true,
	},
}

var Antidote = ItemTemplate{
	Name:   "Противоядие",
	Render: domain.RenderComponent{Symbol: "!", Color: "#16A34A"},
	Properties: domain.ItemComponent{
		Category: domain.ItemCategoryPotion,
		Effect:   domain.EffectCurePoison, IsConsumable: true,
	},
}

var CureScroll = ItemTemplate{
	Name:   "Свиток снятия проклятия",
	Render: domain.RenderComponent{Symbol: "?", Color: "#FCD34D"},
	Properties: domain.ItemComponent{
		Category: domain.ItemCategoryScroll,
		Effect:   domain.EffectCureCurse, IsConsumable: true,
	},
}

// HutKey отпирает заднюю дверь хижины (LockID совпадает с замком на тайле)
var HutKey = ItemTemplate{
	Name:   "Ключ от хижины",
	Render: domain.RenderComponent{Symbol: "-", Color: "#FBBF24"},
	Properties: domain.ItemComponent{
		Category: domain.ItemCategoryKey,
		LockID:   HutLockID,
	},
}

// ItemTemplates - карта всех доступных предметов
var ItemTemplates = map[string]ItemTemplate{
	"iron_sword":      IronSword,
	"hunting_bow":     HuntingBow,
	"arrows":          Arrows,
	"healing_draught": HealingDraught,
	"antidote":        Antidote,
	"cure_scroll":     CureScroll,
	"hut_key":         HutKey,
}
