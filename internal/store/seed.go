package store

import (
	"time"

	"github.com/vipulsharma05/disaster_response_hub/internal/models"
)

// SeedIncidents - стартовые инциденты демо-дашборда
func SeedIncidents() []models.Incident {
	now := time.Now()
	return []models.Incident{
		{
			ID:          "1",
			Name:        "Family Trapped",
			Coords:      [2]float64{19.115, 72.855},
			Priority:    models.PriorityHigh,
			Description: "Family of 4 trapped in flooded building",
			Status:      models.StatusActive,
			Time:        now,
		},
		{
			ID:          "2",
			Name:        "Medical Emergency",
			Coords:      [2]float64{19.055, 72.820},
			Priority:    models.PriorityHigh,
			Description: "Elderly person needs evacuation",
			Status:      models.StatusActive,
			Time:        now,
		},
		{
			ID:          "3",
			Name:        "Bridge Damage",
			Coords:      [2]float64{19.075, 72.835},
			Priority:    models.PriorityMedium,
			Description: "Bridge reported unsafe",
			Status:      models.StatusInvestigating,
			Time:        now,
		},
	}
}
