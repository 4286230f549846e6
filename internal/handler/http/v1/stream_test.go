package v1

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vipulsharma05/disaster_response_hub/internal/hub"
	"github.com/vipulsharma05/disaster_response_hub/internal/service/mocks"
)

func TestStream_DeliversFramesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	eventHub := hub.New(logger)
	handler := NewHandler(
		mocks.NewMockIncidentService(ctrl),
		mocks.NewMockReferenceService(ctrl),
		mocks.NewMockChatService(ctrl),
		eventHub,
		logger,
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest("GET", "/api/stream", nil).WithContext(ctx)
	w := &closeNotifyRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool)}

	done := make(chan struct{})
	go func() {
		router.ServeHTTP(w, req)
		close(done)
	}()

	// Ждем регистрации подписчика, затем рассылаем два события
	waitFor(t, func() bool { return eventHub.Count() == 1 })
	eventHub.Broadcast(hub.EventIncidentUpdate, map[string]string{"id": "1"})
	eventHub.Broadcast(hub.EventIncidentsCleared, map[string]string{"message": "All incidents cleared"})

	// Даем хендлеру дописать кадры и закрываем соединение
	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	body := w.Body.String()
	assert.Contains(t, body, `"type":"incident_update"`)
	assert.Contains(t, body, `"type":"incidents_cleared"`)
	// Порядок кадров совпадает с порядком мутаций
	assert.Less(t,
		bytes.Index(w.Body.Bytes(), []byte("incident_update")),
		bytes.Index(w.Body.Bytes(), []byte("incidents_cleared")))

	// Подписчик снят после закрытия соединения
	waitFor(t, func() bool { return eventHub.Count() == 0 })
}

// closeNotifyRecorder добавляет CloseNotify, который gin требует от writer'а в c.Stream
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool { return r.closed }

// waitFor опрашивает условие с коротким таймаутом
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within timeout")
}
