package hub

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Типы событий широковещательного канала
const (
	EventIncidentUpdate    = "incident_update"
	EventIncidentsCleared  = "incidents_cleared"
	EventSocialMediaTriage = "social_media_triage"
	EventChatMessage       = "chat_message"
	EventShelterUpdate     = "shelter_update"
	EventResourceAlert     = "resource_alert"
	EventWeatherWarning    = "weather_warning"
)

// Event - конверт события, уходящий каждому подключенному клиенту как JSON {type, data}
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Publisher - интерфейс для публикации событий подписчикам
type Publisher interface {
	Broadcast(eventType string, data any)
}

// Subscriber - один подключенный клиент. Канал буферизован: подписчик,
// не успевающий читать, молча пропускает события (доставка at-most-once,
// без очередей и повторов).
type Subscriber struct {
	Events chan Event
}

// Hub хранит множество открытых каналов уведомлений и рассылает событие каждому.
// Подписчики регистрируются при подключении и снимаются при закрытии соединения,
// сам хаб ничего не чистит.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*Subscriber]struct{}
	logger *logrus.Logger
}

const subscriberBuffer = 16

func New(logger *logrus.Logger) *Hub {
	return &Hub{
		subs:   make(map[*Subscriber]struct{}),
		logger: logger,
	}
}

// Subscribe регистрирует нового подписчика. История не доигрывается:
// подписчик видит только события после момента подключения.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{
		Events: make(chan Event, subscriberBuffer),
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	h.logger.WithField("subscribers", h.Count()).Debug("Subscriber connected")
	return sub
}

// Unsubscribe снимает подписчика с рассылки и закрывает его канал
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.Events)
	}
	h.mu.Unlock()

	h.logger.WithField("subscribers", h.Count()).Debug("Subscriber disconnected")
}

// Broadcast рассылает событие всем живым подписчикам. Подписчик с заполненным
// буфером пропускается, подтверждений доставки нет.
func (h *Hub) Broadcast(eventType string, data any) {
	event := Event{Type: eventType, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		select {
		case sub.Events <- event:
		default:
			h.logger.WithField("event_type", eventType).Warn("Subscriber buffer full, event dropped")
		}
	}
}

// Count возвращает число подключенных подписчиков
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
