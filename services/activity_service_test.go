package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyrus-spc-tech/Pal-Ai/models"
)

func TestLogActivityThenToday(t *testing.T) {
	st := newTestStore(t)
	svc := NewActivityService(st, newTestLogger())

	user, err := st.CreateUser("Alex", "student", "Ace exams", 2000)
	require.NoError(t, err)

	_, err = svc.LogActivity(user.ID, models.ActivityWorkout, "30 min run", nil)
	require.NoError(t, err)
	_, err = svc.LogActivity(user.ID, models.ActivityMood, "feeling pumped", nil)
	require.NoError(t, err)

	today, err := svc.TodayActivities(user.ID)
	require.NoError(t, err)
	require.Len(t, today, 2)
	assert.Equal(t, models.ActivityWorkout, today[0].Type)
	assert.Equal(t, "30 min run", today[0].Description)
	assert.Equal(t, models.ActivityMood, today[1].Type)
}

func TestLogActivityUnknownUser(t *testing.T) {
	svc := NewActivityService(newTestStore(t), newTestLogger())

	_, err := svc.LogActivity(999, models.ActivityFood, "ghost meal", nil)
	assert.Error(t, err)
}

func TestFoodLogsRoundTrip(t *testing.T) {
	st := newTestStore(t)
	svc := NewActivityService(st, newTestLogger())

	user, err := st.CreateUser("Alex", "student", "Ace exams", 2000)
	require.NoError(t, err)

	summary := MacroSummary{Calories: 300, CarbsG: 50}
	_, err = svc.LogActivity(user.ID, models.ActivityFood, "morning oatmeal", &summary)
	require.NoError(t, err)

	logs, err := svc.FoodLogs(user.ID, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "morning oatmeal", logs[0].Description)
	assert.Equal(t, summary, logs[0].Nutrition)
}

func TestFoodLogsSkipsOtherTypes(t *testing.T) {
	st := newTestStore(t)
	svc := NewActivityService(st, newTestLogger())

	user, err := st.CreateUser("Alex", "student", "Ace exams", 2000)
	require.NoError(t, err)

	_, err = svc.LogActivity(user.ID, models.ActivityWorkout, "30 min run", nil)
	require.NoError(t, err)
	_, err = svc.LogActivity(user.ID, models.ActivityFood, "apple", nil)
	require.NoError(t, err)

	logs, err := svc.FoodLogs(user.ID, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "apple", logs[0].Description)
	assert.Equal(t, MacroSummary{}, logs[0].Nutrition)
}

func TestFoodLogsMalformedPayload(t *testing.T) {
	st := newTestStore(t)
	svc := NewActivityService(st, newTestLogger())

	user, err := st.CreateUser("Alex", "student", "Ace exams", 2000)
	require.NoError(t, err)

	// Simulate corrupted stored data by writing the raw payload directly.
	_, err = st.InsertActivity(user.ID, models.ActivityFood, "mystery meal", "{not json")
	require.NoError(t, err)

	logs, err := svc.FoodLogs(user.ID, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, MacroSummary{}, logs[0].Nutrition)
}
