package hub

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return New(logger)
}

func TestBroadcast_AllSubscribersReceive(t *testing.T) {
	h := newTestHub()
	first := h.Subscribe()
	second := h.Subscribe()

	h.Broadcast(EventIncidentUpdate, map[string]string{"id": "abc"})

	for _, sub := range []*Subscriber{first, second} {
		select {
		case event := <-sub.Events:
			assert.Equal(t, EventIncidentUpdate, event.Type)
		default:
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestBroadcast_PreservesOrder(t *testing.T) {
	h := newTestHub()
	sub := h.Subscribe()

	h.Broadcast(EventIncidentUpdate, "first")
	h.Broadcast(EventIncidentsCleared, "second")

	event := <-sub.Events
	assert.Equal(t, EventIncidentUpdate, event.Type)
	event = <-sub.Events
	assert.Equal(t, EventIncidentsCleared, event.Type)
}

func TestBroadcast_SkipsFullSubscriber(t *testing.T) {
	h := newTestHub()
	slow := h.Subscribe()

	// Заполняем буфер медленного подписчика до отказа
	for i := 0; i < subscriberBuffer+5; i++ {
		h.Broadcast(EventIncidentUpdate, i)
	}

	// Лишние события сброшены, в буфере ровно его емкость
	assert.Equal(t, subscriberBuffer, len(slow.Events))
}

func TestUnsubscribe_RemovesAndCloses(t *testing.T) {
	h := newTestHub()
	sub := h.Subscribe()
	require.Equal(t, 1, h.Count())

	h.Unsubscribe(sub)

	assert.Equal(t, 0, h.Count())
	_, open := <-sub.Events
	assert.False(t, open)

	// Повторная отписка безопасна
	h.Unsubscribe(sub)
}

func TestBroadcast_NoSubscribers(t *testing.T) {
	h := newTestHub()

	// Не должно паниковать и блокироваться
	h.Broadcast(EventWeatherWarning, nil)
}
