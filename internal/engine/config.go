package engine

import (
	"time"

	"creature-server/internal/domain"
	"creature-server/internal/systems"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят рельеф арены, население
	// и все случайные решения мозгов.
	Seed int64

	// SearchBudget - лимит раскрытий узлов поиска пути за вызов
	SearchBudget int

	// SightRadius - радиус зрения существ (в клетках)
	SightRadius float64

	// TickInterval - реальное время между тиками симуляции
	TickInterval time.Duration

	// TickLimit - остановка после N тиков (0 = без лимита)
	TickLimit int

	// JournalPath - путь к SQLite-журналу решений (":memory:" для тестов)
	JournalPath string
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		SearchBudget: systems.DefaultSearchBudget,
		SightRadius:  domain.SightRadius,
		TickInterval: 500 * time.Millisecond,
		JournalPath:  "decisions.db",
	}
}
