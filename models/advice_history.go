package models

import (
	"time"

	"gorm.io/gorm"
)

// AdviceHistory keeps past tips per user. Nothing writes it yet; the table is
// migrated so stored data keeps its shape once advice generation lands.
type AdviceHistory struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	AdviceText  string `gorm:"type:text"`
	TriggeredBy string // e.g. "low_protein", "stress_mood"
	Timestamp   time.Time
}
