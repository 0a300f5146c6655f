package domain

// Типы сущностей
const (
	EntityTypePlayer   = "PLAYER"
	EntityTypeCreature = "CREATURE"
	EntityTypeItem     = "ITEM"
)

// Параметры восприятия и принятия решений
const (
	// SightRadius - фиксированный радиус зрения (евклидово расстояние)
	SightRadius = 10.0

	// LowIntelligence - порог интеллекта: глупые существа ходят напролом,
	// не запрашивая поиск пути
	LowIntelligence = 5

	// FleePercent - вероятность (в процентах) выбрать бегство вместо
	// попытки лечения при здоровье ниже порога уверенности
	FleePercent = 80
)

// Штрафы поиска пути
const (
	// DoorPenaltyClosed - закрытая (не запертая) дверь
	DoorPenaltyClosed = 1
	// DoorPenaltyKeyed - заперта, но у существа есть подходящий ключ
	DoorPenaltyKeyed = 2
	// DoorPenaltyLocked - заперта без ключа: практически непроходима
	DoorPenaltyLocked = 100
)
