package domain

// --- КОМПОНЕНТЫ ---

// RenderComponent - Визуализация (Клиент)
type RenderComponent struct {
	Symbol string `json:"symbol"` // Символ отображения (w-волк, @-странник)
	Color  string `json:"color"`
}

// StatsComponent - Характеристики и Ресурсы
type StatsComponent struct {
	HP           int  `json:"hp"`
	MaxHP        int  `json:"maxHp"`
	Strength     int  `json:"strength"`
	Charisma     int  `json:"charisma"`
	Intelligence int  `json:"intelligence"`
	SwimSkill    int  `json:"swimSkill"`  // 0..100, снижает штраф воды
	ClimbSkill   int  `json:"climbSkill"` // 0..100, снижает штраф скал
	IsDead       bool `json:"isDead"`
}

// StatusComponent - Статусные состояния существа
type StatusComponent struct {
	Calm      bool `json:"calm,omitempty"`      // умиротворен: никогда не враждебен
	Blind     bool `json:"blind,omitempty"`     // слеп: не видит цели
	Cursed    bool `json:"cursed,omitempty"`
	Diseased  bool `json:"diseased,omitempty"`
	Poisoned  bool `json:"poisoned,omitempty"`
	Paralyzed bool `json:"paralyzed,omitempty"`
}

// Condition - идентификатор статусного состояния (для приоритета лечения)
type Condition uint8

const (
	ConditionNone Condition = iota
	ConditionCursed
	ConditionDiseased
	ConditionPoisoned
	ConditionParalyzed
	ConditionBlind
)

// Has проверяет, активно ли состояние
func (s *StatusComponent) Has(c Condition) bool {
	if s == nil {
		return false
	}
	switch c {
	case ConditionCursed:
		return s.Cursed
	case ConditionDiseased:
		return s.Diseased
	case ConditionPoisoned:
		return s.Poisoned
	case ConditionParalyzed:
		return s.Paralyzed
	case ConditionBlind:
		return s.Blind
	}
	return false
}

// Clear снимает состояние
func (s *StatusComponent) Clear(c Condition) {
	if s == nil {
		return
	}
	switch c {
	case ConditionCursed:
		s.Cursed = false
	case ConditionDiseased:
		s.Diseased = false
	case ConditionPoisoned:
		s.Poisoned = false
	case ConditionParalyzed:
		s.Paralyzed = false
	case ConditionBlind:
		s.Blind = false
	}
}

// FactionMembership - членство во фракции.
// Active означает, что существо АКТИВНО состоит во фракции
// (спящее членство не дает бонуса к расположению).
type FactionMembership struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// NarrativeComponent - Данные для Осмотра
type NarrativeComponent struct {
	Description string `json:"description"` // "Матерый волк со шрамом на морде"
}
