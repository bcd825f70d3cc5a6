package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "chicken breast and rice", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[
			{"name":"chicken breast","calories":165,"protein_g":31,"carbohydrates_total_g":0,"fat_total_g":3.6},
			{"name":"rice","calories":130,"protein_g":2.7,"carbohydrates_total_g":28.2,"fat_total_g":0.3}
		]}`))
	}))
	defer srv.Close()

	svc := NewNutritionService(srv.URL, "test-key")
	items, err := svc.Lookup("chicken breast and rice")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "chicken breast", items[0].Name)
	assert.Equal(t, 165.0, items[0].Calories)
	assert.Equal(t, 28.2, items[1].CarbohydratesTotalG)
}

func TestLookupAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := NewNutritionService(srv.URL, "bad-key")
	items, err := svc.Lookup("apple")
	assert.Error(t, err)
	assert.Nil(t, items)
}

func TestLookupMissingAPIKey(t *testing.T) {
	// No server at all: the key check has to short-circuit before any call.
	svc := NewNutritionService("http://127.0.0.1:0", "")
	items, err := svc.Lookup("apple")
	assert.ErrorIs(t, err, ErrNoAPIKey)
	assert.Nil(t, items)
}

func TestLookupBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	svc := NewNutritionService(srv.URL, "test-key")
	_, err := svc.Lookup("apple")
	assert.Error(t, err)
}

func TestSummarizeItems(t *testing.T) {
	items := []FoodItem{
		{Name: "chicken breast", Calories: 165, ProteinG: 31, FatTotalG: 3.6},
		{Name: "rice", Calories: 130, ProteinG: 2.7, CarbohydratesTotalG: 28.2, FatTotalG: 0.3},
	}
	sum := SummarizeItems(items)
	assert.Equal(t, 295.0, sum.Calories)
	assert.Equal(t, 33.7, sum.ProteinG)
	assert.Equal(t, 28.2, sum.CarbsG)
	assert.Equal(t, 3.9, sum.FatG)
}

func TestSummarizeItemsEmpty(t *testing.T) {
	assert.Equal(t, MacroSummary{}, SummarizeItems(nil))
}
