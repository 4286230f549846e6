package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vipulsharma05/disaster_response_hub/internal/hub"
	"github.com/vipulsharma05/disaster_response_hub/internal/models"
)

// ErrNotFound возвращается при обращении к отсутствующему инциденту
var ErrNotFound = errors.New("incident not found")

// IncidentStore - канонические данные об инцидентах, живут только в памяти процесса.
// Мутации сериализуются мьютексом, широковещание выполняется под тем же замком,
// поэтому порядок событий совпадает с порядком мутаций.
type IncidentStore struct {
	mu        sync.RWMutex
	incidents []models.Incident
	publisher hub.Publisher
}

func NewIncidentStore(publisher hub.Publisher) *IncidentStore {
	return &IncidentStore{
		incidents: make([]models.Incident, 0),
		publisher: publisher,
	}
}

// Bootstrap загружает стартовые записи без широковещания
func (s *IncidentStore) Bootstrap(incidents []models.Incident) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents = append(s.incidents, incidents...)
}

// List возвращает все инциденты в порядке вставки
func (s *IncidentStore) List(ctx context.Context) []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Incident, len(s.incidents))
	copy(out, s.incidents)
	return out
}

// Insert добавляет инцидент: присваивает ID (если вызывающий не задал свой),
// выставляет серверное время создания и статус по умолчанию, затем рассылает
// событие incident_update с полной новой записью.
func (s *IncidentStore) Insert(ctx context.Context, inc models.Incident) models.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(inc)
}

// InsertUnique добавляет инцидент только если записи с таким ID еще нет.
// Для записей из внешних лент ID - это стабильный локатор источника,
// повторная вставка (и ее широковещание) молча пропускается.
func (s *IncidentStore) InsertUnique(ctx context.Context, inc models.Incident) (models.Incident, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.incidents {
		if s.incidents[i].ID == inc.ID {
			return s.incidents[i], false
		}
	}
	return s.insertLocked(inc), true
}

func (s *IncidentStore) insertLocked(inc models.Incident) models.Incident {
	if inc.ID == "" {
		inc.ID = uuid.NewString()
	}
	inc.Time = time.Now()
	if inc.Status == "" {
		inc.Status = models.StatusActive
	}

	s.incidents = append(s.incidents, inc)
	s.publisher.Broadcast(hub.EventIncidentUpdate, inc)
	return inc
}

// Update накладывает частичное обновление на существующий инцидент и рассылает
// incident_update с объединенной записью. Отсутствующий ID - ErrNotFound, без широковещания.
func (s *IncidentStore) Update(ctx context.Context, id string, update models.IncidentUpdate) (models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.incidents {
		if s.incidents[i].ID == id {
			update.Apply(&s.incidents[i])
			merged := s.incidents[i]
			s.publisher.Broadcast(hub.EventIncidentUpdate, merged)
			return merged, nil
		}
	}
	return models.Incident{}, fmt.Errorf("incident with id %s: %w", id, ErrNotFound)
}

// Clear опустошает коллекцию и рассылает incidents_cleared со статусным сообщением
func (s *IncidentStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.incidents = s.incidents[:0]
	s.publisher.Broadcast(hub.EventIncidentsCleared, map[string]string{"message": "All incidents cleared"})
}
