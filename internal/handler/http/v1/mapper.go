package v1

import "github.com/vipulsharma05/disaster_response_hub/internal/models"

// CreateRequestToModel преобразует DTO создания в доменную модель
func CreateRequestToModel(dto CreateIncidentRequest) models.Incident {
	return models.Incident{
		Name:        dto.Name,
		Coords:      dto.Coords,
		Priority:    dto.Priority,
		Description: dto.Description,
		Status:      dto.Status,
		Source:      dto.Source,
	}
}

// UpdateRequestToModel преобразует DTO обновления в типизированное частичное обновление
func UpdateRequestToModel(dto UpdateIncidentRequest) models.IncidentUpdate {
	return models.IncidentUpdate{
		Name:        dto.Name,
		Coords:      dto.Coords,
		Priority:    dto.Priority,
		Description: dto.Description,
		Status:      dto.Status,
		Source:      dto.Source,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:             model.ID,
		Name:           model.Name,
		Coords:         model.Coords,
		Priority:       model.Priority,
		Description:    model.Description,
		Status:         model.Status,
		Time:           model.Time,
		Source:         model.Source,
		RelevanceScore: model.RelevanceScore,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}
