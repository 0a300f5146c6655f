package agent

import (
	"encoding/json"
	"log"

	"creature-server/internal/domain"
	"creature-server/internal/engine"
	"creature-server/pkg/api"
	"creature-server/pkg/utils"
)

// Bot - "Смотритель арены" (Headless Agent).
// Этот код является примером ВНЕШНЕГО клиента, который подключается к серверу
// так же, как и обычный наблюдатель через WebSocket. Он получает снимки мира
// и на их основе принимает решение, какую команду отправить обратно.
//
// Жизненный цикл:
//  1. NewBot -> Регистрация в хабе сервера, получение личного канала (Inbox).
//  2. Run -> Запуск в отдельной горутине, слушает свой Inbox.
//  3. На каждом снимке review ищет существ, которые слишком долго охотятся
//     на странника, и отправляет им CALM.
type Bot struct {
	ObserverID string
	Service    *engine.GameService // Прямая ссылка на движок (для простоты в этом проекте)
	Inbox      chan api.ServerResponse

	// CalmAfter - сколько подряд тиков охоты смотритель терпит
	CalmAfter int

	huntStreak map[string]int
}

func NewBot(service *engine.GameService) *Bot {
	observerID := utils.GenerateID()
	log.Printf("[BOT] Creating keeper agent %s", observerID)
	return &Bot{
		ObserverID: observerID,
		Service:    service,
		// Бот регистрируется в хабе как обычный наблюдатель
		Inbox:      service.Hub.Register(observerID),
		CalmAfter:  5,
		huntStreak: make(map[string]int),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run() {
	defer b.Service.Hub.Unregister(b.ObserverID)

	for snapshot := range b.Inbox {
		b.review(snapshot)
	}
	log.Printf("[BOT] Keeper %s shut down.", b.ObserverID)
}

// review анализирует снимок и вмешивается, если охота затянулась
func (b *Bot) review(state api.ServerResponse) {
	wandererID := ""
	for _, ev := range state.Entities {
		if ev.Type == domain.EntityTypePlayer && (ev.Stats == nil || !ev.Stats.IsDead) {
			wandererID = ev.ID
			break
		}
	}
	if wandererID == "" {
		return // Некого защищать
	}

	for _, ev := range state.Entities {
		if ev.Brain == nil {
			continue
		}

		if ev.Brain.LastBehavior == domain.BehaviorHunt.String() {
			b.huntStreak[ev.ID]++
		} else {
			delete(b.huntStreak, ev.ID)
		}

		if b.huntStreak[ev.ID] >= b.CalmAfter {
			log.Printf("[BOT %s] %s hunts too long, calming down", b.ObserverID, ev.Name)
			b.sendCalm(ev.ID, wandererID)
			b.huntStreak[ev.ID] = 0
		}
	}
}

// sendCalm отправляет команду CALM через обычный командный канал движка
func (b *Bot) sendCalm(creatureID, targetID string) {
	payload, err := json.Marshal(api.CreaturePayload{CreatureID: creatureID, TargetID: targetID})
	if err != nil {
		log.Printf("[BOT %s] Error marshalling payload: %v", b.ObserverID, err)
		return
	}

	b.Service.ProcessCommand(api.ClientCommand{
		Action:  domain.ActionCalm.String(),
		Payload: payload,
	})
}
