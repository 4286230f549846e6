package feed

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/vipulsharma05/disaster_response_hub/internal/config"
	"github.com/vipulsharma05/disaster_response_hub/internal/models"
)

// fakeIngestor записывает допущенные статьи
type fakeIngestor struct {
	calls []string
}

func (f *fakeIngestor) IngestFeedArticle(ctx context.Context, locator, title, description string) (*models.Incident, bool) {
	f.calls = append(f.calls, locator)
	return &models.Incident{ID: locator}, true
}

func newTestPoller(ingestor Ingestor, feedURL string) *Poller {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		FeedURL:          feedURL,
		FeedPollInterval: time.Minute,
		FeedTimeout:      time.Second,
	}
	return NewPoller(ingestor, logger, cfg)
}

func TestPollOnce_IngestsArticles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"articles": [
			{"url": "https://news.example/a", "title": "Families trapped", "description": "rescue underway"},
			{"url": "https://news.example/b", "title": "Water shortage", "description": ""},
			{"url": "", "title": "no locator, skipped", "description": ""}
		]}`))
	}))
	defer server.Close()

	ingestor := &fakeIngestor{}
	p := newTestPoller(ingestor, server.URL)

	p.pollOnce(context.Background())

	// Статья без локатора отброшена до классификации
	assert.Equal(t, []string{"https://news.example/a", "https://news.example/b"}, ingestor.calls)
}

func TestPollOnce_UpstreamFailureSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	ingestor := &fakeIngestor{}
	p := newTestPoller(ingestor, server.URL)

	// Не должно паниковать, статьи не допускаются
	p.pollOnce(context.Background())

	assert.Empty(t, ingestor.calls)
}

func TestPollOnce_MalformedBodySwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"articles": [`))
	}))
	defer server.Close()

	ingestor := &fakeIngestor{}
	p := newTestPoller(ingestor, server.URL)

	p.pollOnce(context.Background())

	assert.Empty(t, ingestor.calls)
}

func TestFetch_SendsAPIKey(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("apikey")
		w.Write([]byte(`{"articles": []}`))
	}))
	defer server.Close()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	p := NewPoller(&fakeIngestor{}, logger, &config.Config{
		FeedURL:     server.URL,
		FeedAPIKey:  "secret-key",
		FeedTimeout: time.Second,
	})

	_, err := p.fetch(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "secret-key", gotKey)
}

func TestStart_DisabledWithoutURL(t *testing.T) {
	p := newTestPoller(&fakeIngestor{}, "")

	// Просто не должен стартовать горутину и паниковать
	p.Start(context.Background())
}
