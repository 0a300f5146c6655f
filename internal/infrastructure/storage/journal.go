package storage

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"creature-server/internal/domain"
	"creature-server/pkg/logger"
)

// Journal - журнал решений ИИ на SQLite.
// Каждый тик каждое существо оставляет одну строку: что оно решило и почему
// это можно воспроизвести (позиции свои и цели на момент решения).
type Journal struct {
	conn *sqlx.DB
}

// Decision - одна запись журнала
type Decision struct {
	ID         int64  `db:"id" json:"id"`
	Tick       int    `db:"tick" json:"tick"`
	CreatureID string `db:"creature_id" json:"creatureId"`
	Name       string `db:"name" json:"name"`
	Behavior   string `db:"behavior" json:"behavior"`
	X          int    `db:"x" json:"x"`
	Y          int    `db:"y" json:"y"`
	TargetID   string `db:"target_id" json:"targetId,omitempty"`
	HP         int    `db:"hp" json:"hp"`
	Aggression int    `db:"aggression" json:"aggression"`
}

// OpenJournal открывает (или создает) журнал по указанному пути.
// Путь ":memory:" дает эфемерный журнал для тестов.
func OpenJournal(path string) (*Journal, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть журнал: %w", err)
	}

	j := &Journal{conn: conn}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("миграция журнала: %w", err)
	}

	logger.Log.WithField("path", path).Info("Decision journal opened.")
	return j, nil
}

func (j *Journal) Close() error {
	return j.conn.Close()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS decisions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tick INTEGER NOT NULL,
		creature_id TEXT NOT NULL,
		name TEXT NOT NULL,
		behavior TEXT NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		target_id TEXT NOT NULL DEFAULT '',
		hp INTEGER NOT NULL,
		aggression INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_decisions_tick ON decisions(tick);
	CREATE INDEX IF NOT EXISTS idx_decisions_creature ON decisions(creature_id);
	`
	_, err := j.conn.Exec(schema)
	return err
}

// RecordTick пишет решения одного тика одной транзакцией
func (j *Journal) RecordTick(decisions []Decision) error {
	if len(decisions) == 0 {
		return nil
	}

	tx, err := j.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO decisions
		(tick, creature_id, name, behavior, x, y, target_id, hp, aggression)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range decisions {
		if _, err := stmt.Exec(
			d.Tick, d.CreatureID, d.Name, d.Behavior,
			d.X, d.Y, d.TargetID, d.HP, d.Aggression,
		); err != nil {
			return fmt.Errorf("запись решения %s@%d: %w", d.CreatureID, d.Tick, err)
		}
	}

	return tx.Commit()
}

// NewDecision собирает запись журнала из состояния существа на момент решения
func NewDecision(tick int, self *domain.Entity, behavior domain.Behavior, target *domain.Entity) Decision {
	d := Decision{
		Tick:       tick,
		CreatureID: self.ID,
		Name:       self.Name,
		Behavior:   behavior.String(),
		X:          self.Pos.X,
		Y:          self.Pos.Y,
	}
	if self.Stats != nil {
		d.HP = self.Stats.HP
	}
	if self.Brain != nil {
		d.Aggression = self.Brain.Aggression
	}
	if target != nil {
		d.TargetID = target.ID
	}
	return d
}

// RecentDecisions возвращает последние N решений (свежие первыми)
func (j *Journal) RecentDecisions(limit int) ([]Decision, error) {
	var out []Decision
	err := j.conn.Select(&out,
		"SELECT * FROM decisions ORDER BY id DESC LIMIT ?", limit)
	return out, err
}

// CreatureDecisions возвращает историю решений конкретного существа
func (j *Journal) CreatureDecisions(creatureID string, limit int) ([]Decision, error) {
	var out []Decision
	err := j.conn.Select(&out,
		"SELECT * FROM decisions WHERE creature_id = ? ORDER BY id DESC LIMIT ?",
		creatureID, limit)
	return out, err
}
