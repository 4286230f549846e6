package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/vipulsharma05/disaster_response_hub/internal/classifier"
	"github.com/vipulsharma05/disaster_response_hub/internal/config"
	"github.com/vipulsharma05/disaster_response_hub/internal/hub"
	"github.com/vipulsharma05/disaster_response_hub/internal/models"
)

// Центр города, вокруг которого синтезируются координаты для текстовых сообщений
// (заглушка вместо настоящей геопривязки по тексту)
const (
	cityCenterLat = 19.0760
	cityCenterLng = 72.8777
	coordJitter   = 0.05
)

// IncidentStore определяет контракт хранилища инцидентов
type IncidentStore interface {
	List(ctx context.Context) []models.Incident
	Insert(ctx context.Context, inc models.Incident) models.Incident
	InsertUnique(ctx context.Context, inc models.Incident) (models.Incident, bool)
	Update(ctx context.Context, id string, update models.IncidentUpdate) (models.Incident, error)
	Clear(ctx context.Context)
}

// TriageResult - итог триажа текста из социальных сетей.
// Incident равен nil, если текст отфильтрован по порогу релевантности.
type TriageResult struct {
	Result   classifier.Result `json:"result"`
	Incident *models.Incident  `json:"incident"`
}

// IncidentService определяет контракт бизнес-логики управления инцидентами
type IncidentService interface {
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	ReportIncident(ctx context.Context, inc models.Incident) (models.Incident, error)
	UpdateIncident(ctx context.Context, id string, update models.IncidentUpdate) (models.Incident, error)
	ClearIncidents(ctx context.Context) error
	TriageSocialPost(ctx context.Context, postText string) (TriageResult, error)
	IngestFeedArticle(ctx context.Context, locator, title, description string) (*models.Incident, bool)
}

type incidentService struct {
	store     IncidentStore
	logger    *logrus.Logger
	cfg       *config.Config
	publisher hub.Publisher
}

func NewIncidentService(store IncidentStore, logger *logrus.Logger, cfg *config.Config, publisher hub.Publisher) IncidentService {
	return &incidentService{
		store:     store,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

// ListIncidents возвращает все инциденты в порядке вставки
func (s *incidentService) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	return s.store.List(ctx), nil
}

// ReportIncident принимает прямую отправку инцидента (форма, GPS, клик по карте)
func (s *incidentService) ReportIncident(ctx context.Context, inc models.Incident) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ReportIncident",
		"source":  inc.Source,
	})

	created := s.store.Insert(ctx, inc)

	log.WithField("incident_id", created.ID).Info("Incident reported")
	return created, nil
}

// UpdateIncident накладывает частичное обновление на существующий инцидент
func (s *incidentService) UpdateIncident(ctx context.Context, id string, update models.IncidentUpdate) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})

	merged, err := s.store.Update(ctx, id, update)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return models.Incident{}, fmt.Errorf("service: could not update incident: %w", err)
	}

	log.Info("Incident updated successfully")
	return merged, nil
}

// ClearIncidents опустошает коллекцию инцидентов
func (s *incidentService) ClearIncidents(ctx context.Context) error {
	s.store.Clear(ctx)

	s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ClearIncidents",
	}).Info("All incidents cleared")
	return nil
}

// TriageSocialPost прогоняет текст через классификатор. Текст ниже
// интерактивного порога фильтруется без вставки и без широковещания,
// иначе синтезируется инцидент и дополнительно рассылается событие
// social_media_triage.
func (s *incidentService) TriageSocialPost(ctx context.Context, postText string) (TriageResult, error) {
	result := classifier.Classify(postText)
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "TriageSocialPost",
		"category": result.Category,
		"score":    result.RelevanceScore,
	})

	if result.RelevanceScore < s.cfg.TriageMinRelevance {
		log.Info("Social media post filtered as irrelevant")
		return TriageResult{Result: result}, nil
	}

	created := s.store.Insert(ctx, models.Incident{
		Name:           fmt.Sprintf("Social Media: %s", result.Category),
		Coords:         randomCoordsNearCity(),
		Priority:       result.Priority,
		Description:    postText,
		Source:         models.SourceSocialMedia,
		RelevanceScore: result.RelevanceScore,
	})

	s.publisher.Broadcast(hub.EventSocialMediaTriage, TriageResult{Result: result, Incident: &created})

	log.WithField("incident_id", created.ID).Info("Social media post promoted to incident")
	return TriageResult{Result: result, Incident: &created}, nil
}

// IngestFeedArticle классифицирует статью внешней ленты и вставляет ее как
// инцидент, если релевантность не ниже порога ленты. Порог ленты строже
// интерактивного, чтобы автоматический опрос не зашумлял дашборд.
// Локатор статьи становится ID инцидента и обеспечивает дедупликацию между опросами.
func (s *incidentService) IngestFeedArticle(ctx context.Context, locator, title, description string) (*models.Incident, bool) {
	result := classifier.Classify(title + " " + description)
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "IngestFeedArticle",
		"locator":  locator,
		"category": result.Category,
		"score":    result.RelevanceScore,
	})

	if result.RelevanceScore < s.cfg.FeedMinRelevance {
		log.Debug("Feed article below relevance threshold, skipped")
		return nil, false
	}

	created, inserted := s.store.InsertUnique(ctx, models.Incident{
		ID:             locator,
		Name:           title,
		Coords:         randomCoordsNearCity(),
		Priority:       result.Priority,
		Description:    description,
		Source:         models.SourceNewsAPI,
		RelevanceScore: result.RelevanceScore,
	})
	if !inserted {
		log.Debug("Feed article already ingested, skipped")
		return nil, false
	}

	log.WithField("incident_id", created.ID).Info("Feed article promoted to incident")
	return &created, true
}

func randomCoordsNearCity() [2]float64 {
	return [2]float64{
		cityCenterLat + (rand.Float64()-0.5)*2*coordJitter,
		cityCenterLng + (rand.Float64()-0.5)*2*coordJitter,
	}
}
