package classifier

import (
	"strings"

	"github.com/vipulsharma05/disaster_response_hub/internal/models"
)

// Категории триажа
const (
	CategoryRescue     = "Needs Rescue"
	CategoryFoodWater  = "Needs Food/Water"
	CategorySafe       = "Safe"
	CategoryIrrelevant = "Irrelevant"
)

// Result - результат триажа свободного текста
type Result struct {
	Priority       string `json:"priority"`
	Category       string `json:"category"`
	RelevanceScore int    `json:"relevanceScore"`
}

// Наборы ключевых слов. Порядок проверки фиксирован: сначала нерелевантные
// термины (перекрывают все остальные), затем спасение, еда/вода, безопасность.
var (
	irrelevantTerms = []string{"hello", "movie", "game", "party", "concert", "sale", "shopping", "birthday"}
	rescueTerms     = []string{"trapped", "rescue", "stuck", "drowning", "stranded", "roof", "evacuate us", "sos", "emergency"}
	foodWaterTerms  = []string{"food", "water", "hungry", "thirsty", "starving", "supplies", "ration"}
	safetyTerms     = []string{"safe", "okay", "fine", "evacuated", "shelter reached"}
)

// Classify сопоставляет свободный текст с тройкой (приоритет, категория, релевантность).
// Сопоставление по подстроке, без учета регистра, побеждает первая совпавшая категория.
func Classify(text string) Result {
	lowered := strings.ToLower(text)

	if containsAny(lowered, irrelevantTerms) {
		return Result{Priority: models.PriorityLow, Category: CategoryIrrelevant, RelevanceScore: 0}
	}
	if containsAny(lowered, rescueTerms) {
		return Result{Priority: models.PriorityHigh, Category: CategoryRescue, RelevanceScore: 3}
	}
	if containsAny(lowered, foodWaterTerms) {
		return Result{Priority: models.PriorityMedium, Category: CategoryFoodWater, RelevanceScore: 2}
	}
	if containsAny(lowered, safetyTerms) {
		return Result{Priority: models.PriorityLow, Category: CategorySafe, RelevanceScore: 1}
	}

	return Result{Priority: models.PriorityLow, Category: CategoryIrrelevant, RelevanceScore: 0}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
