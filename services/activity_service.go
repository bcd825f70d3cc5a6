package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Cyrus-spc-tech/Pal-Ai/models"
	"github.com/Cyrus-spc-tech/Pal-Ai/store"
)

// ActivityService records daily logs (food, workouts, mood) and reads them
// back for summaries.
type ActivityService struct {
	store *store.Store
	log   *logrus.Logger
}

func NewActivityService(st *store.Store, log *logrus.Logger) *ActivityService {
	return &ActivityService{store: st, log: log}
}

// FoodLog is a food activity with its macro summary deserialized.
type FoodLog struct {
	Description string
	Nutrition   MacroSummary
}

// LogActivity appends one timestamped record. nutrition may be nil for
// entries without macro data.
func (s *ActivityService) LogActivity(userID uint, kind, description string, nutrition *MacroSummary) (*models.Activity, error) {
	var payload string
	if nutrition != nil {
		b, err := json.Marshal(nutrition)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize nutrition summary: %w", err)
		}
		payload = string(b)
	}

	activity, err := s.store.InsertActivity(userID, kind, description, payload)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"type":    kind,
	}).Debug("activity logged")
	return activity, nil
}

func dayStartUTC(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

// TodayActivities returns everything logged since UTC midnight, oldest first.
func (s *ActivityService) TodayActivities(userID uint) ([]models.Activity, error) {
	return s.store.ActivitiesSince(userID, dayStartUTC(time.Now()), "")
}

// FoodLogs returns food entries from the trailing daysBack days. A stored
// payload that no longer parses yields an empty summary instead of an error.
func (s *ActivityService) FoodLogs(userID uint, daysBack int) ([]FoodLog, error) {
	if daysBack < 1 {
		daysBack = 1
	}
	since := time.Now().UTC().AddDate(0, 0, -daysBack)

	activities, err := s.store.ActivitiesSince(userID, since, models.ActivityFood)
	if err != nil {
		return nil, err
	}

	logs := make([]FoodLog, 0, len(activities))
	for _, a := range activities {
		entry := FoodLog{Description: a.Description}
		if a.NutritionData != "" {
			if err := json.Unmarshal([]byte(a.NutritionData), &entry.Nutrition); err != nil {
				s.log.WithField("activity_id", a.ID).Warn("unreadable nutrition payload, treating as empty")
				entry.Nutrition = MacroSummary{}
			}
		}
		logs = append(logs, entry)
	}
	return logs, nil
}
