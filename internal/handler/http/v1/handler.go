package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vipulsharma05/disaster_response_hub/internal/hub"
	"github.com/vipulsharma05/disaster_response_hub/internal/service"
	"github.com/vipulsharma05/disaster_response_hub/internal/store"
)

type Handler struct {
	incidentService  service.IncidentService
	referenceService service.ReferenceService
	chatService      service.ChatService
	hub              *hub.Hub
	logger           *logrus.Logger
	validate         *validator.Validate
}

func NewHandler(
	incidentService service.IncidentService,
	referenceService service.ReferenceService,
	chatService service.ChatService,
	eventHub *hub.Hub,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		incidentService:  incidentService,
		referenceService: referenceService,
		chatService:      chatService,
		hub:              eventHub,
		logger:           logger,
		validate:         validator.New(),
	}
}

// @Summary List incidents
// @Description Get all incidents in insertion order.
// @Tags Incidents
// @Accept json
// @Produce json
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Report a new incident
// @Description Report a new incident (manual form, GPS report, map click or simulation).
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.incidentService.ReportIncident(c.Request.Context(), CreateRequestToModel(input))
	if err != nil {
		log.WithError(err).Error("Failed to report incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(created))
}

// @Summary Update an existing incident
// @Description Apply a partial update to an incident by ID. Unknown fields are ignored.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merged, err := h.incidentService.UpdateIncident(c.Request.Context(), id, UpdateRequestToModel(input))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to update incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(merged))
}

// @Summary Clear all incidents
// @Description Remove every incident from the dashboard.
// @Tags Incidents
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [delete]
func (h *Handler) clearIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "clearIncidents")

	if err := h.incidentService.ClearIncidents(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to clear incidents in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "All incidents cleared"})
}

// @Summary Triage a social media post
// @Description Classify free text; relevant posts are promoted to incidents, irrelevant ones are filtered.
// @Tags Triage
// @Accept json
// @Produce json
// @Param post body TriageRequest true "Social media post"
// @Success 201 {object} TriageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /triage-social-media [post]
func (h *Handler) triageSocialMedia(c *gin.Context) {
	var input TriageRequest
	log := h.logger.WithField("method", "triageSocialMedia")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	triage, err := h.incidentService.TriageSocialPost(c.Request.Context(), input.PostText)
	if err != nil {
		log.WithError(err).Error("Failed to triage post in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if triage.Incident == nil {
		c.JSON(http.StatusCreated, TriageResponse{Message: "Post filtered as irrelevant, no incident created"})
		return
	}

	response := ModelToIncidentResponse(*triage.Incident)
	c.JSON(http.StatusCreated, TriageResponse{
		Message:  "Post triaged and promoted to incident",
		Incident: &response,
	})
}

// @Summary List shelters
// @Description Get the static shelter reference records.
// @Tags Reference
// @Accept json
// @Produce json
// @Success 200 {array} models.Shelter
// @Router /shelters [get]
func (h *Handler) listShelters(c *gin.Context) {
	shelters, err := h.referenceService.Shelters(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, shelters)
}

// @Summary List resources
// @Description Get the static resource reference records.
// @Tags Reference
// @Accept json
// @Produce json
// @Success 200 {array} models.Resource
// @Router /resources [get]
func (h *Handler) listResources(c *gin.Context) {
	resources, err := h.referenceService.Resources(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, resources)
}

// @Summary Get weather snapshot
// @Description Get a randomized demo weather snapshot.
// @Tags Reference
// @Accept json
// @Produce json
// @Success 200 {object} models.Weather
// @Router /weather [get]
func (h *Handler) getWeather(c *gin.Context) {
	weather, err := h.referenceService.Weather(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, weather)
}

// @Summary List volunteer channels
// @Description Get the volunteer chat channel descriptors.
// @Tags Chat
// @Accept json
// @Produce json
// @Success 200 {array} models.Volunteer
// @Router /volunteers [get]
func (h *Handler) listVolunteers(c *gin.Context) {
	volunteers, err := h.referenceService.Volunteers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, volunteers)
}

// @Summary List chat messages
// @Description Get chat messages for a channel in arrival order.
// @Tags Chat
// @Accept json
// @Produce json
// @Param chatId path string true "Chat channel ID"
// @Success 200 {array} models.ChatMessage
// @Router /chats/{chatId}/messages [get]
func (h *Handler) listChatMessages(c *gin.Context) {
	messages, err := h.chatService.Messages(c.Request.Context(), c.Param("chatId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// @Summary Post a chat message
// @Description Append a message to a channel and broadcast it to connected viewers.
// @Tags Chat
// @Accept json
// @Produce json
// @Param chatId path string true "Chat channel ID"
// @Param message body ChatMessageRequest true "Chat message"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /chats/{chatId}/messages [post]
func (h *Handler) postChatMessage(c *gin.Context) {
	var input ChatMessageRequest
	log := h.logger.WithField("method", "postChatMessage")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.chatService.PostMessage(c.Request.Context(), c.Param("chatId"), input.SenderID, input.Text)
	if err != nil {
		log.WithError(err).Error("Failed to post chat message in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, message)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
