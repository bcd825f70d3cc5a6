package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Cyrus-spc-tech/Pal-Ai/utils"
)

// ErrNoAPIKey means the nutrition API key was never configured. Callers treat
// it like any other lookup failure and log the activity without macros.
var ErrNoAPIKey = errors.New("nutrition API key not configured")

// NutritionService wraps the CalorieNinjas nutrition endpoint. Each lookup is
// a single GET with no retries or caching.
type NutritionService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewNutritionService(baseURL, apiKey string) *NutritionService {
	return &NutritionService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FoodItem is one ingredient row as returned by the API.
type FoodItem struct {
	Name                string  `json:"name"`
	Calories            float64 `json:"calories"`
	ProteinG            float64 `json:"protein_g"`
	CarbohydratesTotalG float64 `json:"carbohydrates_total_g"`
	FatTotalG           float64 `json:"fat_total_g"`
}

type nutritionResponse struct {
	Items []FoodItem `json:"items"`
}

// Lookup resolves a free-text food description to per-ingredient macros.
// Every failure here is non-fatal for callers: they proceed without
// nutrition data.
func (s *NutritionService) Lookup(query string) ([]FoodItem, error) {
	if s.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	u := fmt.Sprintf("%s?query=%s", s.baseURL, url.QueryEscape(query))
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call nutrition API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutrition API error %d: %s", resp.StatusCode, string(body))
	}

	var nr nutritionResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}
	return nr.Items, nil
}

// SummarizeItems folds the per-ingredient rows into one macro summary,
// rounded to one decimal place.
func SummarizeItems(items []FoodItem) MacroSummary {
	var sum MacroSummary
	for _, it := range items {
		sum.Calories += it.Calories
		sum.ProteinG += it.ProteinG
		sum.CarbsG += it.CarbohydratesTotalG
		sum.FatG += it.FatTotalG
	}
	sum.Calories = utils.Round1(sum.Calories)
	sum.ProteinG = utils.Round1(sum.ProteinG)
	sum.CarbsG = utils.Round1(sum.CarbsG)
	sum.FatG = utils.Round1(sum.FatG)
	return sum
}
