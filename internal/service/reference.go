package service

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/vipulsharma05/disaster_response_hub/internal/models"
)

// ReferenceService определяет контракт для статических справочных данных дашборда
type ReferenceService interface {
	Shelters(ctx context.Context) ([]models.Shelter, error)
	Resources(ctx context.Context) ([]models.Resource, error)
	Volunteers(ctx context.Context) ([]models.Volunteer, error)
	Weather(ctx context.Context) (models.Weather, error)
}

type referenceService struct {
	logger *logrus.Logger

	shelters   []models.Shelter
	resources  []models.Resource
	volunteers []models.Volunteer
}

func NewReferenceService(logger *logrus.Logger) ReferenceService {
	return &referenceService{
		logger: logger,
		shelters: []models.Shelter{
			{ID: 1, Name: "Andheri Community Center", Coords: [2]float64{19.115, 72.855}, Capacity: 200, Current: 45, Supplies: []string{"food", "water", "medical"}},
			{ID: 2, Name: "Bandra Relief Camp", Coords: [2]float64{19.055, 72.820}, Capacity: 150, Current: 23, Supplies: []string{"food", "blankets"}},
			{ID: 3, Name: "Colaba Safe House", Coords: [2]float64{18.945, 72.825}, Capacity: 100, Current: 12, Supplies: []string{"food", "water", "medical", "blankets"}},
		},
		resources: []models.Resource{
			{Name: "Medical Supplies", Total: 500, Distributed: 234, Location: "Central Warehouse"},
			{Name: "Food Packages", Total: 1000, Distributed: 456, Location: "Multiple Shelters"},
			{Name: "Water Bottles", Total: 2000, Distributed: 789, Location: "Distribution Centers"},
			{Name: "Blankets", Total: 300, Distributed: 123, Location: "Shelters"},
		},
		volunteers: []models.Volunteer{
			{ID: "volunteer-1", Name: "Asha Patel", Status: "available"},
			{ID: "volunteer-2", Name: "Ravi Kumar", Status: "on-site"},
			{ID: "volunteer-3", Name: "Meera Singh", Status: "available"},
		},
	}
}

func (s *referenceService) Shelters(ctx context.Context) ([]models.Shelter, error) {
	return s.shelters, nil
}

func (s *referenceService) Resources(ctx context.Context) ([]models.Resource, error) {
	return s.resources, nil
}

func (s *referenceService) Volunteers(ctx context.Context) ([]models.Volunteer, error) {
	return s.volunteers, nil
}

// Weather возвращает рандомизированный снимок погоды, данные демонстрационные
func (s *referenceService) Weather(ctx context.Context) (models.Weather, error) {
	weather := models.Weather{
		Temperature: rand.Intn(15) + 20,
		Humidity:    rand.Intn(30) + 60,
		WindSpeed:   rand.Intn(20) + 5,
		Condition:   []string{"Sunny", "Cloudy", "Rainy", "Stormy"}[rand.Intn(4)],
		Alerts:      []string{},
	}
	if rand.Float64() > 0.7 {
		weather.Alerts = append(weather.Alerts, "Heavy rainfall expected")
	}
	return weather, nil
}
