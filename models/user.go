package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name         string  `gorm:"index;not null"` // display name, also the lookup key
	Role         string  // "student", "working" or "other"
	Goals        string  `gorm:"type:text"`
	DailyCalGoal float64 `gorm:"default:2000"`
}
