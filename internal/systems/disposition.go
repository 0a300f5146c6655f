package systems

import (
	"creature-server/internal/domain"
)

// Базовое расположение: нейтральная точка отсчета
const dispositionBase = 40

// Disposition вычисляет расположение self к other.
// Формула: 40 + харизма цели
//          +5, если тот же вид
//          +10 за каждую общую фракцию, в которой self состоит АКТИВНО
//          + накопленная поправка charm для этой упорядоченной пары.
func Disposition(self, other *domain.Entity) int {
	score := dispositionBase

	if other.Stats != nil {
		score += other.Stats.Charisma
	}

	if self.Species != "" && self.Species == other.Species {
		score += 5
	}

	for _, f := range self.Factions {
		if f.Active && other.InFaction(f.Name) {
			score += 10
		}
	}

	if self.Brain != nil {
		score += self.Brain.CharmTotal(other.ID)
	}

	return score
}

// IsHostile решает, враждебно ли self к other.
// Умиротворенное существо (Calm) никогда не враждебно,
// какой бы ни была агрессия.
func IsHostile(self, other *domain.Entity) bool {
	if self.Brain == nil {
		return false
	}
	if self.Status != nil && self.Status.Calm {
		return false
	}
	return self.Brain.Aggression > Disposition(self, other)
}

// ForceHostile - принудительная провокация: агрессия поднимается
// выше текущего расположения, существо немедленно становится враждебным.
func ForceHostile(self, other *domain.Entity) {
	if self.Brain == nil {
		return
	}
	self.Brain.Aggression = Disposition(self, other) + 10
}
