package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vipulsharma05/disaster_response_hub/internal/models"
)

func TestClassify_RescueText(t *testing.T) {
	result := Classify("We are trapped, please send help")

	assert.Equal(t, models.PriorityHigh, result.Priority)
	assert.Equal(t, CategoryRescue, result.Category)
	assert.Equal(t, 3, result.RelevanceScore)
}

func TestClassify_FoodWaterText(t *testing.T) {
	result := Classify("We need food and water")

	assert.Equal(t, models.PriorityMedium, result.Priority)
	assert.Equal(t, CategoryFoodWater, result.Category)
	assert.Equal(t, 2, result.RelevanceScore)
}

func TestClassify_SafeText(t *testing.T) {
	result := Classify("We are safe")

	assert.Equal(t, models.PriorityLow, result.Priority)
	assert.Equal(t, CategorySafe, result.Category)
	assert.Equal(t, 1, result.RelevanceScore)
}

func TestClassify_IrrelevantWinsOverRescue(t *testing.T) {
	// Нерелевантный термин перекрывает даже слово из набора спасения
	result := Classify("hello, I am trapped")

	assert.Equal(t, models.PriorityLow, result.Priority)
	assert.Equal(t, CategoryIrrelevant, result.Category)
	assert.Equal(t, 0, result.RelevanceScore)
}

func TestClassify_NoMatchFallsThrough(t *testing.T) {
	result := Classify("the weather report was published yesterday")

	assert.Equal(t, models.PriorityLow, result.Priority)
	assert.Equal(t, CategoryIrrelevant, result.Category)
	assert.Equal(t, 0, result.RelevanceScore)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	result := Classify("TRAPPED ON THE ROOF")

	assert.Equal(t, models.PriorityHigh, result.Priority)
	assert.Equal(t, CategoryRescue, result.Category)
}

func TestClassify_RescueWinsOverFoodWater(t *testing.T) {
	// При совпадении по нескольким наборам побеждает первая категория
	result := Classify("trapped without food or water")

	assert.Equal(t, CategoryRescue, result.Category)
	assert.Equal(t, 3, result.RelevanceScore)
}
