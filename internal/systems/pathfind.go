package systems

import (
	"container/heap"

	"creature-server/internal/domain"
	"creature-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DefaultSearchBudget - лимит раскрытий узлов за один вызов.
// Поиск намеренно "близорукий": он перезапускается каждый тик
// против возможно изменившегося мира, поэтому кэшировать длинные
// маршруты бессмысленно.
const DefaultSearchBudget = 10

// PathFinder - ограниченный жадный поиск маршрута по сетке.
// Состояние поиска живет только внутри вызова FindPath:
// никаких разделяемых полей между вызовами.
type PathFinder struct {
	Budget int // максимум раскрытий узлов (0 = DefaultSearchBudget)
}

// 8 направлений раскрытия: ортогонали + диагонали, стоимость шага одинаковая
var neighborDeltas = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// FindPath возвращает упорядоченную последовательность точек от origin к dest,
// НЕ включая origin. Если origin == dest, возвращает пустой путь.
// Поиск никогда не "падает": при недостижимой цели возвращается
// лучший частичный маршрут к узлу с минимальной F на фронтире.
func (pf PathFinder) FindPath(w *domain.GameWorld, mover *domain.Entity, origin, dest domain.Position) []domain.Position {
	if origin == dest {
		return nil
	}

	budget := pf.Budget
	if budget <= 0 {
		budget = DefaultSearchBudget
	}

	// Контекст поиска - локальный для вызова
	nodes := make(map[int]*pathNode)
	open := &frontier{}
	heap.Init(open)

	start := &pathNode{Pos: origin, G: 0, F: origin.ManhattanTo(dest)}
	nodes[w.GetIndex(origin.X, origin.Y)] = start
	heap.Push(open, start)

	expansions := 0

	for open.Len() > 0 && expansions < budget {
		cur := heap.Pop(open).(*pathNode)
		cur.Closed = true
		expansions++

		for _, d := range neighborDeltas {
			np := cur.Pos.Shift(d[0], d[1])
			if !w.InBounds(np) {
				continue
			}

			tile := w.TileAt(np)

			// Непроходимый рельеф не раскрываем никогда
			if tile.Terrain == domain.TerrainBlock {
				continue
			}

			// Сосед оказался целью: немедленно завершаем поиск
			if np == dest {
				goal := &pathNode{Pos: np, Parent: cur}
				return reconstruct(goal)
			}

			stepCost := 1 + terrainPenalty(mover, tile) + doorPenalty(mover, tile)
			g := cur.G + stepCost
			f := g + np.ManhattanTo(dest)

			idx := w.GetIndex(np.X, np.Y)
			existing, seen := nodes[idx]

			if !seen {
				node := &pathNode{Pos: np, G: g, F: f, Parent: cur}
				nodes[idx] = node
				heap.Push(open, node)
				continue
			}

			// Релаксация: нашли более дешевый заход в уже известный узел
			if g < existing.G {
				if existing.Open {
					// Узел в очереди: обновляем стоимость на месте
					open.Update(existing, g, f, cur)
				} else {
					// Узел уже финализирован: возвращаем в очередь с лучшей ценой
					existing.Closed = false
					existing.G = g
					existing.F = f
					existing.Parent = cur
					heap.Push(open, existing)
				}
			}
		}
	}

	// Бюджет исчерпан (или фронтир пуст): идем к лучшему из оставшихся узлов
	best := open.PeekBest()
	if best == nil {
		// Фронтир пуст - берем лучший финализированный узел кроме старта
		for _, n := range nodes {
			if n.Pos == origin {
				continue
			}
			if best == nil || n.F < best.F {
				best = n
			}
		}
	}

	if best == nil {
		// Двинуться вообще некуда
		logger.Log.WithFields(logrus.Fields{
			"component": "pathfinder",
			"origin":    origin,
			"dest":      dest,
		}).Debug("Search space exhausted: no reachable neighbor at all.")
		return nil
	}

	return reconstruct(best)
}

// reconstruct собирает путь по ссылкам Parent, исключая стартовый узел
func reconstruct(goal *pathNode) []domain.Position {
	var rev []domain.Position
	for n := goal; n.Parent != nil; n = n.Parent {
		rev = append(rev, n.Pos)
	}

	// Разворачиваем: путь должен идти от старта к цели
	path := make([]domain.Position, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}
	return path
}

// terrainPenalty - штраф рельефа: вода и скалы дороже,
// но хороший навык снижает цену вплоть до нуля
func terrainPenalty(mover *domain.Entity, tile *domain.Tile) int {
	skill := 0
	switch tile.Terrain {
	case domain.TerrainSwim:
		if mover.Stats != nil {
			skill = mover.Stats.SwimSkill
		}
	case domain.TerrainClimb:
		if mover.Stats != nil {
			skill = mover.Stats.ClimbSkill
		}
	default:
		return 0
	}

	if skill > 100 {
		skill = 100
	}
	return (100 - skill) / 5
}

// doorPenalty - штраф дверей: открытая бесплатна, закрытая почти бесплатна,
// запертая с ключом чуть дороже, запертая без ключа - фактически стена
func doorPenalty(mover *domain.Entity, tile *domain.Tile) int {
	switch tile.Door {
	case domain.DoorClosed:
		return domain.DoorPenaltyClosed
	case domain.DoorLocked:
		if mover.Inventory.HasKeyFor(tile.LockID) {
			return domain.DoorPenaltyKeyed
		}
		return domain.DoorPenaltyLocked
	}
	return 0
}
