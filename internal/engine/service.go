package engine

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"creature-server/internal/domain"
	"creature-server/internal/infrastructure/storage"
	"creature-server/internal/network"
	"creature-server/internal/systems"
	"creature-server/pkg/api"
	"creature-server/pkg/logger"
	"creature-server/pkg/worldgen"
)

// GameService - сердце симуляции. Владеет миром, гоняет тики,
// исполняет решения мозгов и рассылает снимки наблюдателям.
// Вся работа с миром идет из одной горутины (Run): никаких локов на мир.
type GameService struct {
	World *domain.GameWorld

	// Entities хранит указатели на ВСЕ сущности (странник, существа)
	Entities []*domain.Entity

	// Player - наблюдаемая цель для мозгов существ
	Player *domain.Entity

	Config Config
	Rng    *rand.Rand

	Logs []api.LogEntry

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	journal  *storage.Journal
	brainCtx *systems.BrainContext

	// Поведение, выбранное каждым существом на последнем тике (для снимков)
	lastBehavior map[string]domain.Behavior
}

func NewService(cfg Config) (*GameService, error) {
	// 1. Генерация арены (существа уже в индексах мира)
	world, creatures, startPos := worldgen.Generate(cfg.Seed)

	rng := rand.New(rand.NewSource(cfg.Seed))

	// 2. Странник появляется на стартовой точке
	player := worldgen.CreatePlayer("hero_1", rng)
	player.Pos = startPos
	world.AddEntity(player)
	world.RegisterEntity(player)

	allEntities := append([]*domain.Entity{player}, creatures...)

	// 3. Журнал решений
	journal, err := storage.OpenJournal(cfg.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("инициализация журнала: %w", err)
	}

	s := &GameService{
		World:        world,
		Entities:     allEntities,
		Player:       player,
		Config:       cfg,
		Rng:          rng,
		Logs:         []api.LogEntry{},
		CommandChan:  make(chan domain.InternalCommand, 100),
		Hub:          network.NewBroadcaster(),
		journal:      journal,
		lastBehavior: make(map[string]domain.Behavior),
	}

	// Мозги ходят через сам сервис: он и исполнитель движения, и приемник намерений
	s.brainCtx = &systems.BrainContext{
		World:       world,
		Rng:         rng,
		Motion:      s,
		Sink:        s,
		Finder:      systems.PathFinder{Budget: cfg.SearchBudget},
		SightRadius: cfg.SightRadius,
	}

	return s, nil
}

// Close освобождает ресурсы сервиса
func (s *GameService) Close() error {
	return s.journal.Close()
}

// Journal открывает доступ к журналу решений (только чтение)
func (s *GameService) Journal() *storage.Journal {
	return s.journal
}

// GetEntity ищет сущность по ID
func (s *GameService) GetEntity(id string) *domain.Entity {
	return s.World.GetEntity(id)
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Команда попадет в мир строго в начале следующего тика.
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithField("action", externalCmd.Action).Warn("Unknown action dropped.")
		return
	}

	s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}
}

// --- ЦИКЛ СИМУЛЯЦИИ ---

// Run гоняет тики до отмены контекста или исчерпания TickLimit
func (s *GameService) Run(ctx context.Context) {
	logger.Log.WithFields(logrus.Fields{
		"seed":          s.Config.Seed,
		"tick_interval": s.Config.TickInterval,
	}).Info("Simulation loop started.")

	ticker := time.NewTicker(s.Config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Simulation loop stopped.")
			return
		case <-ticker.C:
			s.Step()
			if s.Config.TickLimit > 0 && s.World.GlobalTick >= s.Config.TickLimit {
				logger.Log.WithField("tick", s.World.GlobalTick).Info("Tick limit reached.")
				return
			}
		}
	}
}

// Step выполняет один тик: команды наблюдателей, затем мозги ВСЕХ существ
// строго по одному разу, затем журнал и рассылка снимка.
func (s *GameService) Step() {
	s.drainCommands()

	s.World.GlobalTick++

	var decisions []storage.Decision

	for _, e := range s.Entities {
		if e.Brain == nil || e.Stats == nil || e.Stats.IsDead {
			continue
		}

		target := s.observedTarget(e)
		behavior := systems.RunBrain(s.brainCtx, e, target)
		s.lastBehavior[e.ID] = behavior

		decisions = append(decisions, storage.NewDecision(s.World.GlobalTick, e, behavior, target))
	}

	if err := s.journal.RecordTick(decisions); err != nil {
		logger.Log.WithError(err).Error("Failed to record decisions.")
	}

	s.publishUpdate()
}

// observedTarget возвращает ближайшего живого странника.
// Видимость и враждебность мозг проверяет сам.
func (s *GameService) observedTarget(npc *domain.Entity) *domain.Entity {
	var target *domain.Entity
	minDist := 999.0

	for _, other := range s.Entities {
		if other.ID == npc.ID || other.Type != domain.EntityTypePlayer {
			continue
		}
		if other.Stats != nil && other.Stats.IsDead {
			continue
		}

		dist := npc.Pos.DistanceTo(other.Pos)
		if dist < minDist {
			minDist = dist
			target = other
		}
	}

	return target
}

// drainCommands забирает все накопившиеся команды без блокировки
func (s *GameService) drainCommands() {
	for {
		select {
		case cmd := <-s.CommandChan:
			s.executeCommand(cmd)
		default:
			return
		}
	}
}

// publishUpdate рассылает снимок мира всем наблюдателям
func (s *GameService) publishUpdate() {
	s.Hub.Broadcast(*s.BuildState())

	// Логи ушли в снимок - очищаем буфер
	s.Logs = []api.LogEntry{}
}

// --- ИСПОЛНИТЕЛЬ ДВИЖЕНИЯ (systems.MotionExecutor) ---

func (s *GameService) Move(e *domain.Entity, to domain.Position) systems.MoveStatus {
	res := systems.CalculateMove(e, to, s.World)
	switch {
	case res.HasMoved:
		if err := s.World.UpdateEntityPos(e, to.X, to.Y); err != nil {
			return systems.MoveBlocked
		}
		return systems.MoveOK
	case res.IsDoor:
		return systems.MoveDoor
	default:
		return systems.MoveBlocked
	}
}

func (s *GameService) OpenDoor(e *domain.Entity, at domain.Position) bool {
	opened := systems.OpenDoorAt(e, at, s.World)
	if opened {
		s.AddLog(fmt.Sprintf("%s открывает дверь.", e.Name), "INFO")
	}
	return opened
}

// --- ПРИЕМНИК НАМЕРЕНИЙ (systems.EventSink) ---

func (s *GameService) EmitAttack(attacker, target *domain.Entity) {
	msg := systems.ApplyAttack(attacker, target)
	s.AddLog(msg, "COMBAT")
}

func (s *GameService) EmitCastAt(caster *domain.Entity, spell string, at domain.Position) {
	_, damage := s.lookupSpell(caster, spell)
	msg := systems.ApplySpellDamage(s.World, caster, at, damage)
	s.AddLog(msg, "MAGIC")
}

func (s *GameService) EmitCastSelf(caster *domain.Entity, spell string) {
	effect, value := s.lookupSpell(caster, spell)

	if effect == domain.EffectRestoreHealth {
		if caster.Stats != nil {
			caster.Stats.Heal(value)
		}
	} else if cond := domain.ConditionCuredBy(effect); cond != domain.ConditionNone && caster.Status != nil {
		caster.Status.Clear(cond)
	}

	s.AddLog(fmt.Sprintf("%s произносит \"%s\".", caster.Name, spell), "MAGIC")
}

// lookupSpell ищет эффект и силу заклинания/способности по имени
func (s *GameService) lookupSpell(caster *domain.Entity, spell string) (domain.EffectType, int) {
	if caster.Magic == nil {
		return domain.EffectNone, 0
	}
	for i := range caster.Magic.Powers {
		if caster.Magic.Powers[i].Name == spell {
			return caster.Magic.Powers[i].Effect, caster.Magic.Powers[i].EffectValue
		}
	}
	for _, sp := range caster.Magic.Spells {
		if sp.Name == spell {
			return sp.Effect, sp.EffectValue
		}
	}
	return domain.EffectNone, 0
}

func (s *GameService) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}
