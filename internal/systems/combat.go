package systems

import (
	"creature-server/internal/domain"
	"creature-server/pkg/logger"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ApplyAttack разрешает рукопашную атаку. Возвращает сообщение для лога.
func ApplyAttack(attacker, target *domain.Entity) string {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	// --- Проверка граничных условий ---

	if target.Stats == nil {
		combatLogger.Warn("Attack failed: target has no StatsComponent.")
		return fmt.Sprintf("%s атакует %s, но это бесполезно.", attacker.Name, target.Name)
	}
	if target.Stats.IsDead {
		combatLogger.Info("Attack ineffective: target is already dead.")
		return fmt.Sprintf("%s пинает труп %s.", attacker.Name, target.Name)
	}

	// --- Расчёт урона ---

	// Базовый урон = Strength атакующего
	baseDamage := 1
	if attacker.Stats != nil {
		baseDamage = attacker.Stats.Strength
	}

	// Бонус от экипированного оружия
	weaponDamage := 0
	if attacker.Equipment != nil && attacker.Equipment.Weapon != nil {
		if attacker.Equipment.Weapon.Item != nil {
			weaponDamage = attacker.Equipment.Weapon.Item.Damage
		}
	}

	// Финальный урон (минимум 1)
	finalDamage := baseDamage + weaponDamage
	if finalDamage < 1 {
		finalDamage = 1
	}

	hpBefore := target.Stats.HP
	died := target.Stats.TakeDamage(finalDamage)

	combatLogger.WithFields(logrus.Fields{
		"base_damage":   baseDamage,
		"weapon_damage": weaponDamage,
		"final_damage":  finalDamage,
		"hp_before":     hpBefore,
		"hp_after":      target.Stats.HP,
		"target_died":   died,
	}).Info("Attack resolved.")

	logMsg := fmt.Sprintf("%s наносит %d урона по %s.", attacker.Name, finalDamage, target.Name)

	if died {
		// Визуально меняем труп
		if target.Render != nil {
			target.Render.Symbol = "%"
			target.Render.Color = "text-gray-500"
		}
		logMsg += fmt.Sprintf(" %s погибает.", target.Name)
	}

	return logMsg
}

// ApplySpellDamage разрешает попадание боевого заклинания в точку:
// урон получают все живые существа на клетке
func ApplySpellDamage(w *domain.GameWorld, caster *domain.Entity, at domain.Position, damage int) string {
	target := w.OccupantAt(at)
	if target == nil {
		return fmt.Sprintf("Заклинание %s бьет в пустоту.", caster.Name)
	}

	died := target.Stats.TakeDamage(damage)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"caster":    caster.Name,
		"target":    target.Name,
		"damage":    damage,
		"died":      died,
	}).Info("Spell damage resolved.")

	msg := fmt.Sprintf("%s поражает %s заклинанием (%d урона).", caster.Name, target.Name, damage)
	if died {
		if target.Render != nil {
			target.Render.Symbol = "%"
			target.Render.Color = "text-gray-500"
		}
		msg += fmt.Sprintf(" %s погибает.", target.Name)
	}
	return msg
}
