package v1

import (
	"time"
)

// CreateIncidentRequest DTO для прямой отправки инцидента
// @Description DTO для прямой отправки инцидента
type CreateIncidentRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=255"`
	Coords      [2]float64 `json:"coords"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status" validate:"omitempty,oneof=active investigating resolved escalated"`
	Source      string     `json:"source,omitempty"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента.
// Неизвестные ключи JSON молча отбрасываются, обновляются только перечисленные поля.
// @Description DTO для частичного обновления инцидента
type UpdateIncidentRequest struct {
	Name        *string     `json:"name" validate:"omitempty,min=2,max=255"`
	Coords      *[2]float64 `json:"coords"`
	Priority    *string     `json:"priority" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	Description *string     `json:"description"`
	Status      *string     `json:"status" validate:"omitempty,oneof=active investigating resolved escalated"`
	Source      *string     `json:"source"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Coords         [2]float64 `json:"coords"`
	Priority       string     `json:"priority"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Time           time.Time  `json:"time"`
	Source         string     `json:"source,omitempty"`
	RelevanceScore int        `json:"relevanceScore,omitempty"`
}

// TriageRequest DTO для триажа текста из социальных сетей
// @Description DTO для триажа текста из социальных сетей
type TriageRequest struct {
	PostText string `json:"postText" validate:"required"`
}

// TriageResponse DTO для результата триажа. Incident равен null,
// если текст отфильтрован по порогу релевантности.
// @Description DTO для результата триажа
type TriageResponse struct {
	Message  string            `json:"message"`
	Incident *IncidentResponse `json:"incident"`
}

// ChatMessageRequest DTO для отправки сообщения в чат
// @Description DTO для отправки сообщения в чат
type ChatMessageRequest struct {
	Text     string `json:"text" validate:"required"`
	SenderID string `json:"senderId" validate:"required"`
}

// MessageResponse DTO со статусным сообщением
// @Description DTO со статусным сообщением
type MessageResponse struct {
	Message string `json:"message"`
}
