package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultDBPath       = "data/palai.db"
	defaultNutritionURL = "https://api.calorieninjas.com/v1/nutrition"
	defaultDailyCalGoal = 2000.0
)

// Config carries everything the app reads from the environment. Components
// receive these values as explicit arguments and never touch os.Getenv
// themselves.
type Config struct {
	DBPath          string
	NutritionAPIURL string
	NutritionAPIKey string
	DailyCalGoal    float64
}

// Load reads .env if present, then the environment, falling back to defaults.
// A missing API key is not an error here; the nutrition client degrades to
// "no data" on its own.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DBPath:          getEnv("DB_PATH", defaultDBPath),
		NutritionAPIURL: getEnv("NUTRITION_API_URL", defaultNutritionURL),
		NutritionAPIKey: os.Getenv("CALORIE_NINJAS_API_KEY"),
		DailyCalGoal:    defaultDailyCalGoal,
	}
	if v := os.Getenv("DAILY_CALORIES_GOAL"); v != "" {
		if goal, err := strconv.ParseFloat(v, 64); err == nil && goal > 0 {
			cfg.DailyCalGoal = goal
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
