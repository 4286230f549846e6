package simulation

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vipulsharma05/disaster_response_hub/internal/config"
	"github.com/vipulsharma05/disaster_response_hub/internal/hub"
	"github.com/vipulsharma05/disaster_response_hub/internal/models"
)

// IncidentLister - доступ на чтение к инцидентам для синтеза событий
type IncidentLister interface {
	List(ctx context.Context) []models.Incident
}

// Simulator - опциональный демо-воркер: с дрожащим интервалом рассылает
// псевдослучайное синтетическое событие для оживления дашборда.
// Данные фиктивные, на хранилище воркер никогда не пишет.
type Simulator struct {
	incidents IncidentLister
	publisher hub.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func New(incidents IncidentLister, publisher hub.Publisher, logger *logrus.Logger, cfg *config.Config) *Simulator {
	return &Simulator{
		incidents: incidents,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// Start запускает горутину симуляции, если она включена в конфигурации
func (s *Simulator) Start(ctx context.Context) {
	if !s.cfg.SimulationEnabled {
		return
	}

	s.logger.Info("Starting event simulator...")
	go func() {
		for {
			timer := time.NewTimer(s.nextInterval())
			select {
			case <-ctx.Done():
				timer.Stop()
				s.logger.Info("Stopping event simulator.")
				return
			case <-timer.C:
				s.emitOne(ctx)
			}
		}
	}()
}

func (s *Simulator) nextInterval() time.Duration {
	spread := s.cfg.SimulationMaxInterval - s.cfg.SimulationMinInterval
	if spread <= 0 {
		return s.cfg.SimulationMinInterval
	}
	return s.cfg.SimulationMinInterval + time.Duration(rand.Int63n(int64(spread)))
}

func (s *Simulator) emitOne(ctx context.Context) {
	eventTypes := []string{
		hub.EventIncidentUpdate,
		hub.EventShelterUpdate,
		hub.EventResourceAlert,
		hub.EventWeatherWarning,
	}
	eventType := eventTypes[rand.Intn(len(eventTypes))]

	var data any
	switch eventType {
	case hub.EventIncidentUpdate:
		incidents := s.incidents.List(ctx)
		if len(incidents) == 0 {
			return
		}
		data = map[string]any{"id": incidents[0].ID, "status": models.StatusEscalated}
	case hub.EventShelterUpdate:
		data = map[string]any{"id": 1, "occupancy_change": 10}
	case hub.EventResourceAlert:
		data = map[string]any{"resource": "Water Bottles", "level": "low", "location": "Distribution Center"}
	case hub.EventWeatherWarning:
		data = map[string]any{"type": "heavy_rain", "severity": "high", "area": "Downtown District"}
	}

	s.publisher.Broadcast(eventType, data)
	s.logger.WithField("event_type", eventType).Debug("Simulated event broadcast")
}
