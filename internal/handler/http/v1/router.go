package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления инцидентами
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("", h.clearIncidents)
	}

	// Справочные данные и погода
	api.GET("/shelters", h.listShelters)
	api.GET("/resources", h.listResources)
	api.GET("/weather", h.getWeather)
	api.GET("/volunteers", h.listVolunteers)

	// Триаж текста из социальных сетей
	api.POST("/triage-social-media", h.triageSocialMedia)

	// Чаты с волонтерами
	chats := api.Group("/chats")
	{
		chats.GET("/:chatId/messages", h.listChatMessages)
		chats.POST("/:chatId/messages", h.postChatMessage)
	}

	// Широковещательный канал (SSE)
	api.GET("/stream", h.stream)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
