package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vipulsharma05/disaster_response_hub/internal/config"
	"github.com/vipulsharma05/disaster_response_hub/internal/feed"
	v1 "github.com/vipulsharma05/disaster_response_hub/internal/handler/http/v1"
	"github.com/vipulsharma05/disaster_response_hub/internal/hub"
	"github.com/vipulsharma05/disaster_response_hub/internal/service"
	"github.com/vipulsharma05/disaster_response_hub/internal/simulation"
	"github.com/vipulsharma05/disaster_response_hub/internal/store"
	"github.com/vipulsharma05/disaster_response_hub/pkg/logger"

	_ "github.com/vipulsharma05/disaster_response_hub/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Disaster Response Hub API
// @version 1.0
// @description Demo dashboard backend: in-memory incident state, keyword triage and real-time fan-out.
// @host localhost:8080
// @BasePath /api
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Широковещательный хаб
	eventHub := hub.New(log)

	// Инициализация in-memory хранилищ
	incidentStore := store.NewIncidentStore(eventHub)
	incidentStore.Bootstrap(store.SeedIncidents())
	chatStore := store.NewChatStore(eventHub)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentStore, log, cfg, eventHub)
	referenceService := service.NewReferenceService(log)
	chatService := service.NewChatService(chatStore, log)

	// Запуск фоновых воркеров
	feedPoller := feed.NewPoller(incidentService, log, cfg)
	feedPoller.Start(ctx)

	simulator := simulation.New(incidentStore, eventHub, log, cfg)
	simulator.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, referenceService, chatService, eventHub, log)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
