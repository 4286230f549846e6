package models

import (
	"time"
)

// ChatMessage - сообщение в канале чата, упорядочено по времени поступления
type ChatMessage struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
