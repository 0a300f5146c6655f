package network

import (
	"creature-server/pkg/api"
	"sync"
)

// Broadcaster занимается только рассылкой снимков мира наблюдателям
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ObserverID -> Личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для наблюдателя
func (b *Broadcaster) Register(observerID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[observerID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[observerID] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(observerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[observerID]; ok {
		close(ch)
		delete(b.subscribers, observerID)
	}
}

// Broadcast отправляет снимок всем наблюдателям.
// Переполненный канал пропускается: отставший клиент получит следующий тик.
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
