package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("NUTRITION_API_URL", "")
	t.Setenv("CALORIE_NINJAS_API_KEY", "")
	t.Setenv("DAILY_CALORIES_GOAL", "")

	cfg := Load()
	assert.Equal(t, "data/palai.db", cfg.DBPath)
	assert.Equal(t, "https://api.calorieninjas.com/v1/nutrition", cfg.NutritionAPIURL)
	assert.Empty(t, cfg.NutritionAPIKey)
	assert.Equal(t, 2000.0, cfg.DailyCalGoal)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("CALORIE_NINJAS_API_KEY", "secret")
	t.Setenv("DAILY_CALORIES_GOAL", "1850")

	cfg := Load()
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, "secret", cfg.NutritionAPIKey)
	assert.Equal(t, 1850.0, cfg.DailyCalGoal)
}

func TestLoadIgnoresBadCalorieGoal(t *testing.T) {
	t.Setenv("DAILY_CALORIES_GOAL", "not-a-number")

	cfg := Load()
	assert.Equal(t, 2000.0, cfg.DailyCalGoal)
}
