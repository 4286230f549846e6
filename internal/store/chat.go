package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vipulsharma05/disaster_response_hub/internal/hub"
	"github.com/vipulsharma05/disaster_response_hub/internal/models"
)

// chatEventPayload - данные события chat_message, клиенты фильтруют по chatId
type chatEventPayload struct {
	ChatID  string             `json:"chatId"`
	Message models.ChatMessage `json:"message"`
}

// ChatStore - упорядоченные по поступлению списки сообщений по каналам.
// Редактирования и удаления нет.
type ChatStore struct {
	mu        sync.RWMutex
	messages  map[string][]models.ChatMessage
	publisher hub.Publisher
}

func NewChatStore(publisher hub.Publisher) *ChatStore {
	return &ChatStore{
		messages:  make(map[string][]models.ChatMessage),
		publisher: publisher,
	}
}

// Messages возвращает сообщения канала в порядке поступления
func (s *ChatStore) Messages(ctx context.Context, chatID string) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ChatMessage, len(s.messages[chatID]))
	copy(out, s.messages[chatID])
	return out
}

// Append добавляет сообщение в канал и рассылает chat_message
func (s *ChatStore) Append(ctx context.Context, chatID, senderID, text string) models.ChatMessage {
	message := models.ChatMessage{
		ID:        uuid.NewString(),
		SenderID:  senderID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages[chatID] = append(s.messages[chatID], message)
	s.publisher.Broadcast(hub.EventChatMessage, chatEventPayload{ChatID: chatID, Message: message})
	return message
}
