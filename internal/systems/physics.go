package systems

import (
	"creature-server/internal/domain"
)

// HasLineOfSight проверяет прямую видимость между двумя точками.
// Использует оптимизированный алгоритм Брезенхэма (только целочисленная арифметика).
func HasLineOfSight(w *domain.GameWorld, p1, p2 domain.Position) bool {
	if p1.X == p2.X && p1.Y == p2.Y {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := p1.DirectionTo(p2)

	err := dx - dy

	for {
		// Проверяем препятствия, ИСКЛЮЧАЯ стартовую и конечную точки.
		isStartPoint := x0 == p1.X && y0 == p1.Y
		isEndPoint := x0 == p2.X && y0 == p2.Y

		if !isStartPoint && !isEndPoint {
			// 1. Проверка границ карты
			if x0 < 0 || x0 >= w.Width || y0 < 0 || y0 >= w.Height {
				return false
			}
			// 2. Непроходимый рельеф блокирует и взгляд
			if w.Map[y0][x0].Terrain == domain.TerrainBlock {
				return false
			}
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}

// CanSee решает, видит ли наблюдатель цель:
// не слеп, цель в радиусе зрения и есть прямая видимость.
func CanSee(w *domain.GameWorld, observer, target *domain.Entity, sightRadius float64) bool {
	if observer.Status != nil && observer.Status.Blind {
		return false
	}
	if observer.Pos.DistanceTo(target.Pos) >= sightRadius {
		return false
	}
	return HasLineOfSight(w, observer.Pos, target.Pos)
}
