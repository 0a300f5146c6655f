package domain

import "strings"

// EffectType - что именно делает заклинание/способность/предмет
type EffectType uint8

const (
	EffectNone EffectType = iota
	EffectCureCurse
	EffectCureDisease
	EffectCurePoison
	EffectCureParalysis
	EffectCureBlindness
	EffectRestoreHealth
	EffectDamage // боевые заклинания школы разрушения
)

var effectTypeToString = map[EffectType]string{
	EffectNone:          "NONE",
	EffectCureCurse:     "CURE_CURSE",
	EffectCureDisease:   "CURE_DISEASE",
	EffectCurePoison:    "CURE_POISON",
	EffectCureParalysis: "CURE_PARALYSIS",
	EffectCureBlindness: "CURE_BLINDNESS",
	EffectRestoreHealth: "RESTORE_HEALTH",
	EffectDamage:        "DAMAGE",
}

func (e EffectType) String() string {
	if val, ok := effectTypeToString[e]; ok {
		return val
	}
	return "NONE"
}

// SpellSchool - школа магии
type SpellSchool uint8

const (
	SchoolNone SpellSchool = iota
	SchoolDestruction
	SchoolRestoration
	SchoolAlteration
)

var spellSchoolToString = map[SpellSchool]string{
	SchoolNone:        "NONE",
	SchoolDestruction: "DESTRUCTION",
	SchoolRestoration: "RESTORATION",
	SchoolAlteration:  "ALTERATION",
}

var stringToSpellSchool = map[string]SpellSchool{
	"DESTRUCTION": SchoolDestruction,
	"RESTORATION": SchoolRestoration,
	"ALTERATION":  SchoolAlteration,
}

func (s SpellSchool) String() string {
	if val, ok := spellSchoolToString[s]; ok {
		return val
	}
	return "NONE"
}

// ParseSpellSchool конвертирует строку из JSON в SpellSchool
func ParseSpellSchool(s string) SpellSchool {
	if val, ok := stringToSpellSchool[strings.ToUpper(s)]; ok {
		return val
	}
	return SchoolNone
}

// SpellDef - известное заклинание
type SpellDef struct {
	Name        string      `json:"name"`
	School      SpellSchool `json:"school"`
	Effect      EffectType  `json:"effect"`
	EffectValue int         `json:"effectValue"`
	Range       int         `json:"range"` // 0 = только на себя
}

// PowerDef - врожденная способность. В отличие от заклинаний имеет перезарядку.
type PowerDef struct {
	Name        string      `json:"name"`
	School      SpellSchool `json:"school"`
	Effect      EffectType  `json:"effect"`
	EffectValue int         `json:"effectValue"`
	Range       int         `json:"range"`
	Cooldown    int         `json:"cooldown"` // тиков между применениями
	ReadyAt     int         `json:"readyAt"`  // глобальный тик, с которого способность доступна
}

// IsReady проверяет, перезарядилась ли способность
func (p *PowerDef) IsReady(globalTick int) bool {
	return p.ReadyAt <= globalTick
}

// Use отмечает применение: способность уйдет на перезарядку
func (p *PowerDef) Use(globalTick int) {
	p.ReadyAt = globalTick + p.Cooldown
}

// MagicComponent - магическое состояние существа
type MagicComponent struct {
	Powers []PowerDef `json:"powers,omitempty"`
	Spells []SpellDef `json:"spells,omitempty"`

	// EquippedSpell - "взятое в руки" заклинание (последнее выбранное для каста)
	EquippedSpell string `json:"equippedSpell,omitempty"`
}

// CureEffectFor возвращает эффект, снимающий указанное состояние
func CureEffectFor(c Condition) EffectType {
	switch c {
	case ConditionCursed:
		return EffectCureCurse
	case ConditionDiseased:
		return EffectCureDisease
	case ConditionPoisoned:
		return EffectCurePoison
	case ConditionParalyzed:
		return EffectCureParalysis
	case ConditionBlind:
		return EffectCureBlindness
	}
	return EffectNone
}

// ConditionCuredBy - обратное соответствие (что снимает данный эффект)
func ConditionCuredBy(e EffectType) Condition {
	switch e {
	case EffectCureCurse:
		return ConditionCursed
	case EffectCureDisease:
		return ConditionDiseased
	case EffectCurePoison:
		return ConditionPoisoned
	case EffectCureParalysis:
		return ConditionParalyzed
	case EffectCureBlindness:
		return ConditionBlind
	}
	return ConditionNone
}
