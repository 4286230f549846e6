package models

import (
	"time"
)

// Приоритеты инцидентов
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

// Статусы жизненного цикла инцидента
const (
	StatusActive        = "active"
	StatusInvestigating = "investigating"
	StatusResolved      = "resolved"
	StatusEscalated     = "escalated"
)

// Источники происхождения инцидента
const (
	SourceManual      = "manual"
	SourceGPSReport   = "gps_report"
	SourceMapClick    = "map_click"
	SourceSimulation  = "simulation"
	SourceSocialMedia = "social_media"
	SourceNewsAPI     = "news_api"
)

type Incident struct {
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

// IncidentUpdate описывает частичное обновление инцидента.
// Обновляются только перечисленные здесь поля, nil означает "не трогать".
type IncidentUpdate struct {
	Name        *string     `json:"name"`
	Coords      *[2]float64 `json:"coords"`
	Priority    *string     `json:"priority"`
	Description *string     `json:"description"`
	Status      *string     `json:"status"`
	Source      *string     `json:"source"`
}

// Apply накладывает заполненные поля обновления поверх существующей записи
func (u IncidentUpdate) Apply(inc *Incident) {
	if u.Name != nil {
		inc.Name = *u.Name
	}
	if u.Coords != nil {
		inc.Coords = *u.Coords
	}
	if u.Priority != nil {
		inc.Priority = *u.Priority
	}
	if u.Description != nil {
		inc.Description = *u.Description
	}
	if u.Status != nil {
		inc.Status = *u.Status
	}
	if u.Source != nil {
		inc.Source = *u.Source
	}
}
