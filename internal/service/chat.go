package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vipulsharma05/disaster_response_hub/internal/models"
)

// ChatStore определяет контракт хранилища сообщений чата
type ChatStore interface {
	Messages(ctx context.Context, chatID string) []models.ChatMessage
	Append(ctx context.Context, chatID, senderID, text string) models.ChatMessage
}

// ChatService определяет контракт для чатов с волонтерами
type ChatService interface {
	Messages(ctx context.Context, chatID string) ([]models.ChatMessage, error)
	PostMessage(ctx context.Context, chatID, senderID, text string) (models.ChatMessage, error)
}

type chatService struct {
	store  ChatStore
	logger *logrus.Logger
}

func NewChatService(store ChatStore, logger *logrus.Logger) ChatService {
	return &chatService{
		store:  store,
		logger: logger,
	}
}

// Messages возвращает сообщения канала в порядке поступления
func (s *chatService) Messages(ctx context.Context, chatID string) ([]models.ChatMessage, error) {
	return s.store.Messages(ctx, chatID), nil
}

// PostMessage добавляет сообщение в канал, хранилище рассылает chat_message
func (s *chatService) PostMessage(ctx context.Context, chatID, senderID, text string) (models.ChatMessage, error) {
	message := s.store.Append(ctx, chatID, senderID, text)

	s.logger.WithFields(logrus.Fields{
		"service":    "chat",
		"method":     "PostMessage",
		"chat_id":    chatID,
		"message_id": message.ID,
	}).Info("Chat message posted")
	return message, nil
}
