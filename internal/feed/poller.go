package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vipulsharma05/disaster_response_hub/internal/config"
	"github.com/vipulsharma05/disaster_response_hub/internal/models"
)

// Article - элемент внешней новостной ленты. URL статьи служит стабильным
// локатором и становится ID инцидента.
type Article struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type feedResponse struct {
	Articles []Article `json:"articles"`
}

// Ingestor - интерфейс для допуска статей ленты в хранилище инцидентов
type Ingestor interface {
	IngestFeedArticle(ctx context.Context, locator, title, description string) (*models.Incident, bool)
}

// Poller - фоновый воркер периодического опроса внешней ленты.
// Сетевые ошибки логируются и проглатываются, следующий опрос идет по расписанию
// (без бэкоффа и circuit breaker - осознанное упрощение).
type Poller struct {
	ingestor   Ingestor
	logger     *logrus.Logger
	cfg        *config.Config
	httpClient *http.Client
}

func NewPoller(ingestor Ingestor, logger *logrus.Logger, cfg *config.Config) *Poller {
	return &Poller{
		ingestor: ingestor,
		logger:   logger,
		cfg:      cfg,
		httpClient: &http.Client{
			Timeout: cfg.FeedTimeout,
		},
	}
}

// Start запускает горутину опроса ленты. Без настроенного FEED_URL воркер не стартует.
func (p *Poller) Start(ctx context.Context) {
	if p.cfg.FeedURL == "" {
		p.logger.Info("Feed URL is not configured, feed polling disabled")
		return
	}

	p.logger.WithField("interval", p.cfg.FeedPollInterval.String()).Info("Starting feed poller...")
	go func() {
		ticker := time.NewTicker(p.cfg.FeedPollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.logger.Info("Stopping feed poller.")
				return
			case <-ticker.C:
				p.pollOnce(ctx)
			}
		}
	}()
}

func (p *Poller) pollOnce(ctx context.Context) {
	articles, err := p.fetch(ctx)
	if err != nil {
		p.logger.WithError(err).Error("Failed to fetch news feed")
		return
	}

	admitted := 0
	for _, article := range articles {
		if article.URL == "" {
			continue
		}
		if _, inserted := p.ingestor.IngestFeedArticle(ctx, article.URL, article.Title, article.Description); inserted {
			admitted++
		}
	}

	p.logger.WithFields(logrus.Fields{
		"fetched":  len(articles),
		"admitted": admitted,
	}).Debug("Feed poll completed")
}

func (p *Poller) fetch(ctx context.Context) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.FeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}

	if p.cfg.FeedAPIKey != "" {
		q := req.URL.Query()
		q.Set("apikey", p.cfg.FeedAPIKey)
		req.URL.RawQuery = q.Encode()
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}
	return payload.Articles, nil
}
