package systems

import (
	"creature-server/internal/domain"
	"creature-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Фиксированный приоритет лечения состояний
var curePriority = []domain.Condition{
	domain.ConditionCursed,
	domain.ConditionDiseased,
	domain.ConditionPoisoned,
	domain.ConditionParalyzed,
	domain.ConditionBlind,
}

// TryCure ищет средство от ПЕРВОГО активного состояния по приоритету:
// сначала расходники (свитки, зелья), затем врожденные способности,
// затем известные заклинания. За тик лечится максимум одно состояние.
// Возвращает true, если средство найдено и применено.
func TryCure(ctx *BrainContext, self *domain.Entity) bool {
	if self.Status == nil {
		return false
	}

	for _, cond := range curePriority {
		if !self.Status.Has(cond) {
			continue
		}
		// Нашли первое активное состояние: либо лечим его, либо сдаемся
		return applyRemedy(ctx, self, domain.CureEffectFor(cond))
	}

	return false
}

// TryHeal ищет средство восстановления здоровья той же цепочкой поиска.
// Вызывается, когда лечить нечего или лечение не нашлось.
func TryHeal(ctx *BrainContext, self *domain.Entity) bool {
	return applyRemedy(ctx, self, domain.EffectRestoreHealth)
}

// applyRemedy - общая цепочка поиска средства с нужным эффектом.
// Отсутствие средства - не ошибка, просто отрицательный результат
// (питающий откат к бегству).
func applyRemedy(ctx *BrainContext, self *domain.Entity, effect domain.EffectType) bool {
	remedyLogger := logger.Log.WithFields(logrus.Fields{
		"component": "remedy_system",
		"creature":  self.Name,
		"effect":    effect.String(),
	})

	// 1. Расходники: свитки и зелья с совпадающим эффектом нулевой дальности
	if self.Inventory != nil {
		for _, it := range self.Inventory.Items {
			if it.Item == nil || it.Item.Effect != effect || it.Item.EffectRange != 0 {
				continue
			}
			if it.Item.Category != domain.ItemCategoryScroll && it.Item.Category != domain.ItemCategoryPotion {
				continue
			}

			applyEffect(self, effect, it.Item.EffectValue)
			if it.Item.IsConsumable {
				ConsumeItem(self, it)
			}
			remedyLogger.WithField("item", it.Name).Debug("Remedy found in inventory.")
			return true
		}
	}

	if self.Magic != nil {
		// 2. Врожденные способности: эффект, нулевая дальность, перезарядка прошла
		for i := range self.Magic.Powers {
			p := &self.Magic.Powers[i]
			if p.Effect != effect || p.Range != 0 || !p.IsReady(ctx.World.GlobalTick) {
				continue
			}

			p.Use(ctx.World.GlobalTick)
			applyEffect(self, effect, p.EffectValue)
			remedyLogger.WithField("power", p.Name).Debug("Remedy found among innate powers.")
			return true
		}

		// 3. Известные заклинания: каст на себя уходит внешнему обработчику
		for _, sp := range self.Magic.Spells {
			if sp.Effect != effect || sp.Range != 0 {
				continue
			}

			self.Magic.EquippedSpell = sp.Name
			ctx.Sink.EmitCastSelf(self, sp.Name)
			remedyLogger.WithField("spell", sp.Name).Debug("Remedy found among known spells.")
			return true
		}
	}

	remedyLogger.Debug("No applicable remedy.")
	return false
}

// applyEffect применяет эффект средства к самому существу
func applyEffect(self *domain.Entity, effect domain.EffectType, value int) {
	if effect == domain.EffectRestoreHealth {
		if self.Stats != nil {
			self.Stats.Heal(value)
		}
		return
	}

	if cond := domain.ConditionCuredBy(effect); cond != domain.ConditionNone {
		self.Status.Clear(cond)
	}
}
