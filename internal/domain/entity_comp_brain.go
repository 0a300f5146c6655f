package domain

// BrainMode - вариант поведения в мирном состоянии.
// Вместо иерархии классов используем тег + данные конкретного режима.
type BrainMode uint8

const (
	ModeBasic    BrainMode = iota // обычное блуждание
	ModeGuard                     // патруль вокруг домашней точки
	ModeSchedule                  // обход фиксированных путевых точек
)

var brainModeToString = map[BrainMode]string{
	ModeBasic:    "BASIC",
	ModeGuard:    "GUARD",
	ModeSchedule: "SCHEDULE",
}

func (m BrainMode) String() string {
	if val, ok := brainModeToString[m]; ok {
		return val
	}
	return "BASIC"
}

// BrainComponent - Мозги существа.
// Aggression и Confidence - небольшие неотрицательные целые.
// Disposition хранит НАКОПЛЕННЫЕ поправки расположения к конкретным существам;
// записи появляются только после явного charm/провокации.
type BrainComponent struct {
	Aggression int `json:"aggression"`
	Confidence int `json:"confidence"` // порог процента здоровья, ниже которого существо предпочитает отступать

	Disposition map[string]int `json:"disposition,omitempty"`

	// Данные режимов
	Mode          BrainMode  `json:"mode"`
	Home          Position   `json:"home,omitempty"`          // ModeGuard
	PatrolRadius  int        `json:"patrolRadius,omitempty"`  // ModeGuard
	Waypoints     []Position `json:"waypoints,omitempty"`     // ModeSchedule
	WaypointIndex int        `json:"waypointIndex,omitempty"` // ModeSchedule
}

// Charm добавляет magnitude к накопленному расположению к other.
// Повторные вызовы суммируются, предела нет.
func (b *BrainComponent) Charm(otherID string, magnitude int) {
	if b.Disposition == nil {
		b.Disposition = make(map[string]int)
	}
	b.Disposition[otherID] += magnitude
}

// CharmTotal возвращает накопленную поправку для пары (0, если пары не было)
func (b *BrainComponent) CharmTotal(otherID string) int {
	if b.Disposition == nil {
		return 0
	}
	return b.Disposition[otherID]
}

// CalmDown снижает агрессию на четверть. Внутри тика необратимо.
func (b *BrainComponent) CalmDown() {
	b.Aggression -= b.Aggression / 4
}

// ActiveWaypoint возвращает текущую путевую точку режима расписания
func (b *BrainComponent) ActiveWaypoint() (Position, bool) {
	if len(b.Waypoints) == 0 {
		return Position{}, false
	}
	return b.Waypoints[b.WaypointIndex], true
}

// AdvanceWaypoint переводит индекс на следующую точку (с заворотом на 0)
func (b *BrainComponent) AdvanceWaypoint() {
	if len(b.Waypoints) == 0 {
		return
	}
	b.WaypointIndex = (b.WaypointIndex + 1) % len(b.Waypoints)
}
