package simulation

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/vipulsharma05/disaster_response_hub/internal/config"
	"github.com/vipulsharma05/disaster_response_hub/internal/hub"
	"github.com/vipulsharma05/disaster_response_hub/internal/models"
)

type staticLister struct {
	incidents []models.Incident
}

func (l *staticLister) List(ctx context.Context) []models.Incident {
	return l.incidents
}

type recordingPublisher struct {
	events []hub.Event
}

func (p *recordingPublisher) Broadcast(eventType string, data any) {
	p.events = append(p.events, hub.Event{Type: eventType, Data: data})
}

func newTestSimulator(incidents []models.Incident) (*Simulator, *recordingPublisher) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	pub := &recordingPublisher{}

	cfg := &config.Config{
		SimulationEnabled:     true,
		SimulationMinInterval: 10 * time.Second,
		SimulationMaxInterval: 30 * time.Second,
	}
	return New(&staticLister{incidents: incidents}, pub, logger, cfg), pub
}

func TestEmitOne_KnownEventType(t *testing.T) {
	sim, pub := newTestSimulator([]models.Incident{{ID: "1", Name: "Family Trapped"}})

	sim.emitOne(context.Background())

	assert.Len(t, pub.events, 1)
	assert.Contains(t, []string{
		hub.EventIncidentUpdate,
		hub.EventShelterUpdate,
		hub.EventResourceAlert,
		hub.EventWeatherWarning,
	}, pub.events[0].Type)
}

func TestEmitOne_EmptyStoreNeverPanics(t *testing.T) {
	sim, _ := newTestSimulator(nil)

	// Эскалация без инцидентов просто пропускается
	for i := 0; i < 20; i++ {
		sim.emitOne(context.Background())
	}
}

func TestNextInterval_WithinBounds(t *testing.T) {
	sim, _ := newTestSimulator(nil)

	for i := 0; i < 100; i++ {
		interval := sim.nextInterval()
		assert.GreaterOrEqual(t, interval, sim.cfg.SimulationMinInterval)
		assert.Less(t, interval, sim.cfg.SimulationMaxInterval)
	}
}

func TestStart_DisabledByConfig(t *testing.T) {
	sim, pub := newTestSimulator(nil)
	sim.cfg.SimulationEnabled = false

	sim.Start(context.Background())

	assert.Empty(t, pub.events)
}
