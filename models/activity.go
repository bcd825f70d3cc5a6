package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ActivityFood    = "food"
	ActivityWorkout = "workout"
	ActivityMood    = "mood"
)

// Activity is one logged event. NutritionData holds a JSON macro summary and
// stays empty for entries logged without a successful lookup.
type Activity struct {
	gorm.Model
	UserID        uint      `gorm:"index;not null"`
	Type          string    `gorm:"index"`
	Description   string    `gorm:"type:text"`
	NutritionData string    `gorm:"type:text"`
	Timestamp     time.Time `gorm:"index;not null"`
}
