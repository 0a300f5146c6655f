package agent

import (
	"io"
	"os"
	"testing"

	"creature-server/internal/domain"
	"creature-server/internal/engine"
	"creature-server/pkg/api"
	"creature-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestBot(t *testing.T) (*Bot, *engine.GameService) {
	t.Helper()

	cfg := engine.NewConfig()
	cfg.Seed = 5
	cfg.JournalPath = ":memory:"

	s, err := engine.NewService(cfg)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	bot := NewBot(s)
	bot.CalmAfter = 3
	return bot, s
}

func snapshot(behavior string) api.ServerResponse {
	return api.ServerResponse{
		Entities: []api.EntityView{
			{ID: "hero_1", Type: domain.EntityTypePlayer},
			{ID: "wolf_1", Name: "Серый волк", Brain: &api.BrainView{LastBehavior: behavior}},
		},
	}
}

func drainCommand(s *engine.GameService) (domain.InternalCommand, bool) {
	select {
	case cmd := <-s.CommandChan:
		return cmd, true
	default:
		return domain.InternalCommand{}, false
	}
}

func TestKeeperCalmsLongHunt(t *testing.T) {
	bot, s := newTestBot(t)

	// Две охоты подряд - еще рано вмешиваться
	bot.review(snapshot("HUNT"))
	bot.review(snapshot("HUNT"))
	if _, ok := drainCommand(s); ok {
		t.Fatal("Keeper must not intervene before the streak is full")
	}

	// Третья - пора
	bot.review(snapshot("HUNT"))
	cmd, ok := drainCommand(s)
	if !ok {
		t.Fatal("Expected a CALM command after three hunts in a row")
	}
	if cmd.Action != domain.ActionCalm {
		t.Errorf("Expected CALM, got %s", cmd.Action)
	}

	// Счетчик сброшен: следующая охота не триггерит сразу
	bot.review(snapshot("HUNT"))
	if _, ok := drainCommand(s); ok {
		t.Error("Streak must reset after intervention")
	}
}

func TestKeeperStreakResetsOnPeace(t *testing.T) {
	bot, s := newTestBot(t)

	bot.review(snapshot("HUNT"))
	bot.review(snapshot("HUNT"))
	bot.review(snapshot("WANDER"))
	bot.review(snapshot("HUNT"))

	if _, ok := drainCommand(s); ok {
		t.Error("A peaceful tick must reset the hunt streak")
	}
}
