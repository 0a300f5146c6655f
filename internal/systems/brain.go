package systems

import (
	"math/rand"

	"creature-server/internal/domain"
	"creature-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// BrainContext - все, что нужно мозгу для одного тика:
// мир, инъецированный генератор случайностей (для детерминированных тестов),
// исполнитель перемещений, приемник боевых намерений и поиск пути.
type BrainContext struct {
	World       *domain.GameWorld
	Rng         *rand.Rand
	Motion      MotionExecutor
	Sink        EventSink
	Finder      PathFinder
	SightRadius float64
}

// RunBrain решает, что делает существо в этот тик, и исполняет решение
// через Motion/Sink. Вызывается планировщиком строго один раз за тик.
// Возвращает выбранное поведение (для журнала решений).
func RunBrain(ctx *BrainContext, self, target *domain.Entity) domain.Behavior {
	if self.Brain == nil || self.Stats == nil || self.Stats.IsDead {
		return domain.BehaviorIdle
	}

	brainLogger := logger.Log.WithFields(logrus.Fields{
		"component": "brain",
		"creature":  self.Name,
		"mode":      self.Brain.Mode.String(),
	})

	// 1. Враждебность + видимость цели
	if target != nil && IsHostile(self, target) && CanSee(ctx.World, self, target, ctx.SightRadius) {
		// 1a. Здоровье ниже порога уверенности: отступление или лечение
		if self.Stats.HealthPercent() < self.Brain.Confidence {
			if ctx.Rng.Intn(100) < domain.FleePercent {
				brainLogger.Debug("Low health: fleeing.")
				return flee(ctx, self, target)
			}

			if TryCure(ctx, self) {
				brainLogger.Debug("Low health: cured a condition.")
				return domain.BehaviorCure
			}
			if TryHeal(ctx, self) {
				brainLogger.Debug("Low health: restored health.")
				return domain.BehaviorHeal
			}

			// Ни лечения, ни восстановления - остается бегство
			brainLogger.Debug("Low health, no remedy: fleeing.")
			return flee(ctx, self, target)
		}

		// 1b. Уверенность в порядке: охота
		return hunt(ctx, self, target)
	}

	// 2. Мирное состояние: вариант блуждания по режиму мозга
	switch self.Brain.Mode {
	case domain.ModeGuard:
		return guardWander(ctx, self, target)
	case domain.ModeSchedule:
		return scheduleWander(ctx, self, target)
	default:
		wander(ctx, self, target)
		return domain.BehaviorWander
	}
}

// --- ОХОТА ---

func hunt(ctx *BrainContext, self, target *domain.Entity) domain.Behavior {
	dist := self.Pos.DistanceTo(target.Pos)

	// 1. Бросок двусторонней кости: попытка дальнего каста
	if ctx.Rng.Intn(2) == 0 && self.Magic != nil {
		// Сначала врожденные способности (с учетом перезарядки),
		// затем известные заклинания - только школа разрушения
		for i := range self.Magic.Powers {
			p := &self.Magic.Powers[i]
			if p.School != domain.SchoolDestruction || float64(p.Range) < dist {
				continue
			}
			if !p.IsReady(ctx.World.GlobalTick) {
				continue
			}

			p.Use(ctx.World.GlobalTick)
			self.Magic.EquippedSpell = p.Name
			ctx.Sink.EmitCastAt(self, p.Name, target.Pos)
			return domain.BehaviorHunt
		}

		for _, sp := range self.Magic.Spells {
			if sp.School != domain.SchoolDestruction || float64(sp.Range) < dist {
				continue
			}

			self.Magic.EquippedSpell = sp.Name
			ctx.Sink.EmitCastAt(self, sp.Name, target.Pos)
			return domain.BehaviorHunt
		}
	}

	// 2. Шаг к цели
	var step domain.Position
	if self.Stats.Intelligence < domain.LowIntelligence {
		// Глупое существо идет напролом, не замечая препятствий
		dx, dy := self.Pos.DirectionTo(target.Pos)
		step = self.Pos.Shift(dx, dy)
	} else {
		path := ctx.Finder.FindPath(ctx.World, self, self.Pos, target.Pos)
		if len(path) == 0 {
			wander(ctx, self, target)
			return domain.BehaviorWander
		}
		step = path[0]
	}

	// 3. Шаг выводит вплотную к цели: готовим оружие и атакуем
	if step == target.Pos || step.IsAdjacent(target.Pos) {
		AutoEquipMeleeWeapon(self)
		ctx.Sink.EmitAttack(self, target)
		return domain.BehaviorHunt
	}

	// 4. Клетка занята другим существом: в этот тик просто блуждаем
	if occ := ctx.World.OccupantAt(step); occ != nil && occ.ID != self.ID {
		wander(ctx, self, target)
		return domain.BehaviorWander
	}

	// 5. Сам шаг. Уперлись в дверь - пробуем открыть
	if ctx.Motion.Move(self, step) == MoveDoor {
		ctx.Motion.OpenDoor(self, step)
	}
	return domain.BehaviorHunt
}

// --- БЕГСТВО ---

func flee(ctx *BrainContext, self, target *domain.Entity) domain.Behavior {
	// Шаг строго ОТ угрозы: инвертированные знаки смещения
	dx, dy := self.Pos.DirectionTo(target.Pos)
	away := self.Pos.Shift(-dx, -dy)

	res := CalculateMove(self, away, ctx.World)
	switch {
	case res.HasMoved:
		ctx.Motion.Move(self, away)

	case res.IsDoor:
		if !ctx.Motion.OpenDoor(self, away) {
			wander(ctx, self, target)
		}

	default:
		// Рельеф или чужое тело: отступать некуда, мечемся
		wander(ctx, self, target)
	}

	return domain.BehaviorFlee
}

// --- ВАРИАНТЫ БЛУЖДАНИЯ ---

// wander - случайный шаг на соседнюю клетку.
// Возвращает true, если существо сдвинулось.
func wander(ctx *BrainContext, self, target *domain.Entity) bool {
	dx := ctx.Rng.Intn(3) - 1
	dy := ctx.Rng.Intn(3) - 1

	np := self.Pos.Shift(dx, dy)
	if np == self.Pos {
		return false
	}
	// На клетку цели и на занятые клетки не встаем
	if target != nil && np == target.Pos {
		return false
	}
	if ctx.World.OccupantAt(np) != nil {
		return false
	}

	return ctx.Motion.Move(self, np) == MoveOK
}

// guardWander - блуждание, привязанное к домашней точке.
// Если шаг увел за радиус патруля И дальше, чем было, - возврат домой.
func guardWander(ctx *BrainContext, self, target *domain.Entity) domain.Behavior {
	home := self.Brain.Home
	before := self.Pos.DistanceTo(home)

	wander(ctx, self, target)

	after := self.Pos.DistanceTo(home)
	if after > float64(self.Brain.PatrolRadius) && after > before {
		// Шаг блуждания отменяется: существо возвращается на пост
		ctx.Motion.Move(self, home)
	}

	return domain.BehaviorGuard
}

// scheduleWander - обход путевых точек по кругу
func scheduleWander(ctx *BrainContext, self, target *domain.Entity) domain.Behavior {
	wp, ok := self.Brain.ActiveWaypoint()
	if !ok {
		// Расписание пустое - ведем себя как обычный бродяга
		wander(ctx, self, target)
		return domain.BehaviorWander
	}

	// Дошли до активной точки: переключаемся на следующую (с заворотом)
	if self.Pos == wp {
		self.Brain.AdvanceWaypoint()
		wp, _ = self.Brain.ActiveWaypoint()
	}

	path := ctx.Finder.FindPath(ctx.World, self, self.Pos, wp)
	if len(path) == 0 {
		return domain.BehaviorSchedule
	}

	step := path[0]
	// На клетку наблюдаемой цели не наступаем
	if target != nil && step == target.Pos {
		return domain.BehaviorSchedule
	}

	ctx.Motion.Move(self, step)
	return domain.BehaviorSchedule
}
