package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vipulsharma05/disaster_response_hub/internal/classifier"
	"github.com/vipulsharma05/disaster_response_hub/internal/config"
	"github.com/vipulsharma05/disaster_response_hub/internal/hub"
	"github.com/vipulsharma05/disaster_response_hub/internal/models"
	"github.com/vipulsharma05/disaster_response_hub/internal/store"
)

// recordingPublisher записывает разосланные события для проверок
type recordingPublisher struct {
	events []hub.Event
}

func (p *recordingPublisher) Broadcast(eventType string, data any) {
	p.events = append(p.events, hub.Event{Type: eventType, Data: data})
}

func (p *recordingPublisher) countByType(eventType string) int {
	count := 0
	for _, event := range p.events {
		if event.Type == eventType {
			count++
		}
	}
	return count
}

// newTestIncidentService - вспомогательная функция для создания сервиса
// с настоящим in-memory хранилищем и записывающим издателем
func newTestIncidentService(t *testing.T) (IncidentService, *store.IncidentStore, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	incidentStore := store.NewIncidentStore(pub)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		TriageMinRelevance: 1,
		FeedMinRelevance:   2,
	}

	return NewIncidentService(incidentStore, logger, cfg, pub), incidentStore, pub
}

func TestReportIncident_Success(t *testing.T) {
	// Подготовка
	service, incidentStore, pub := newTestIncidentService(t)
	ctx := context.Background()

	// Действие
	created, err := service.ReportIncident(ctx, models.Incident{
		Name:     "Flood Emergency",
		Coords:   [2]float64{19.1, 72.85},
		Priority: models.PriorityHigh,
		Source:   models.SourceGPSReport,
	})

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusActive, created.Status)
	assert.Len(t, incidentStore.List(ctx), 1)
	assert.Equal(t, 1, pub.countByType(hub.EventIncidentUpdate))
}

func TestUpdateIncident_NotFound(t *testing.T) {
	// Подготовка
	service, _, pub := newTestIncidentService(t)

	// Действие
	_, err := service.UpdateIncident(context.Background(), "missing", models.IncidentUpdate{})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, pub.events)
}

func TestUpdateIncident_MergesFields(t *testing.T) {
	// Подготовка
	service, _, pub := newTestIncidentService(t)
	ctx := context.Background()
	created, err := service.ReportIncident(ctx, models.Incident{
		Name:     "Bridge Damage",
		Priority: models.PriorityMedium,
	})
	require.NoError(t, err)
	pub.events = nil

	// Действие
	status := models.StatusResolved
	merged, err := service.UpdateIncident(ctx, created.ID, models.IncidentUpdate{Status: &status})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, merged.Status)
	assert.Equal(t, "Bridge Damage", merged.Name)
	assert.Equal(t, 1, pub.countByType(hub.EventIncidentUpdate))
}

func TestClearIncidents(t *testing.T) {
	// Подготовка
	service, incidentStore, pub := newTestIncidentService(t)
	ctx := context.Background()
	_, err := service.ReportIncident(ctx, models.Incident{Name: "one"})
	require.NoError(t, err)
	pub.events = nil

	// Действие
	require.NoError(t, service.ClearIncidents(ctx))

	// Проверки
	assert.Empty(t, incidentStore.List(ctx))
	assert.Equal(t, 1, pub.countByType(hub.EventIncidentsCleared))
}

func TestTriageSocialPost_Promoted(t *testing.T) {
	// Подготовка
	service, incidentStore, pub := newTestIncidentService(t)
	ctx := context.Background()

	// Действие
	triage, err := service.TriageSocialPost(ctx, "We are trapped, please send help")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, triage.Incident)
	assert.Equal(t, classifier.CategoryRescue, triage.Result.Category)
	assert.Equal(t, models.PriorityHigh, triage.Incident.Priority)
	assert.Equal(t, models.SourceSocialMedia, triage.Incident.Source)
	assert.Equal(t, 3, triage.Incident.RelevanceScore)
	assert.Len(t, incidentStore.List(ctx), 1)
	// Оба события: общий incident_update и дополнительный social_media_triage
	assert.Equal(t, 1, pub.countByType(hub.EventIncidentUpdate))
	assert.Equal(t, 1, pub.countByType(hub.EventSocialMediaTriage))
}

func TestTriageSocialPost_Filtered(t *testing.T) {
	// Подготовка
	service, incidentStore, pub := newTestIncidentService(t)
	ctx := context.Background()

	// Действие
	triage, err := service.TriageSocialPost(ctx, "hello, I am trapped")

	// Проверки: отфильтровано, без вставки и без широковещания
	require.NoError(t, err)
	assert.Nil(t, triage.Incident)
	assert.Equal(t, 0, triage.Result.RelevanceScore)
	assert.Empty(t, incidentStore.List(ctx))
	assert.Empty(t, pub.events)
}

func TestThresholdAsymmetry(t *testing.T) {
	// Подготовка: текст с релевантностью ровно на интерактивном пороге (1)
	service, incidentStore, _ := newTestIncidentService(t)
	ctx := context.Background()
	text := "We are safe"

	// Действие: интерактивный триаж вставляет
	triage, err := service.TriageSocialPost(ctx, text)
	require.NoError(t, err)
	require.NotNil(t, triage.Incident)
	assert.Equal(t, 1, triage.Result.RelevanceScore)

	// Действие: тот же текст через ленту не проходит более строгий порог (2)
	incident, inserted := service.IngestFeedArticle(ctx, "https://news.example/safe", text, "")

	// Проверки
	assert.False(t, inserted)
	assert.Nil(t, incident)
	assert.Len(t, incidentStore.List(ctx), 1)
}

func TestIngestFeedArticle_Admitted(t *testing.T) {
	// Подготовка
	service, _, pub := newTestIncidentService(t)
	ctx := context.Background()

	// Действие
	incident, inserted := service.IngestFeedArticle(ctx,
		"https://news.example/articles/9",
		"Families stranded on rooftops",
		"Rescue boats dispatched to the flooded district")

	// Проверки
	require.True(t, inserted)
	require.NotNil(t, incident)
	assert.Equal(t, "https://news.example/articles/9", incident.ID)
	assert.Equal(t, models.SourceNewsAPI, incident.Source)
	assert.Equal(t, models.PriorityHigh, incident.Priority)
	assert.Equal(t, 1, pub.countByType(hub.EventIncidentUpdate))
}

func TestIngestFeedArticle_DeduplicatedAcrossPolls(t *testing.T) {
	// Подготовка
	service, incidentStore, pub := newTestIncidentService(t)
	ctx := context.Background()
	locator := "https://news.example/articles/9"

	// Действие: одна и та же статья в двух последовательных опросах
	_, first := service.IngestFeedArticle(ctx, locator, "Families stranded on rooftops", "")
	_, second := service.IngestFeedArticle(ctx, locator, "Families stranded on rooftops", "")

	// Проверки: ровно одна запись и ровно одно широковещание
	assert.True(t, first)
	assert.False(t, second)
	assert.Len(t, incidentStore.List(ctx), 1)
	assert.Equal(t, 1, pub.countByType(hub.EventIncidentUpdate))
}

func TestTriageSocialPost_CoordsNearCityCenter(t *testing.T) {
	// Подготовка
	service, _, _ := newTestIncidentService(t)

	// Действие
	triage, err := service.TriageSocialPost(context.Background(), "trapped on the roof")

	// Проверки: координаты-заглушка в окрестности центра города
	require.NoError(t, err)
	require.NotNil(t, triage.Incident)
	assert.InDelta(t, cityCenterLat, triage.Incident.Coords[0], coordJitter)
	assert.InDelta(t, cityCenterLng, triage.Incident.Coords[1], coordJitter)
}
