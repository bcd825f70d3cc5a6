package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Cyrus-spc-tech/Pal-Ai/models"
)

// ErrUserNotFound reports an id or name that does not resolve to a stored
// user. Callers treat it as a negative result, not a fault.
var ErrUserNotFound = errors.New("user not found")

// Store wraps the embedded database. Each operation acquires its own session
// or transaction and releases it on every exit path; nothing holds a session
// across calls.
type Store struct {
	db *gorm.DB
}

// New opens (or creates) the SQLite file at path and migrates the schema.
// Migration is idempotent, so reopening an existing file is safe.
func New(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Activity{}, &models.AdviceHistory{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) CreateUser(name, role, goals string, dailyCalGoal float64) (*models.User, error) {
	user := models.User{
		Name:         name,
		Role:         role,
		Goals:        goals,
		DailyCalGoal: dailyCalGoal,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// FindUserByName returns (nil, nil) when no user matches. Display name is the
// de-facto identity key; two users sharing a name would collide, which is a
// known simplification.
func (s *Store) FindUserByName(name string) (*models.User, error) {
	var user models.User
	err := s.db.Where("name = ?", name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

func (s *Store) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// UpdateUserGoals overwrites the goals text. An unknown id yields
// ErrUserNotFound and leaves the table untouched.
func (s *Store) UpdateUserGoals(id uint, goals string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to load user: %w", err)
		}
		user.Goals = goals
		return tx.Save(&user).Error
	})
}

// InsertActivity stamps the record with the current UTC time. The referenced
// user is checked inside the same transaction, so a dangling user_id is
// rejected even if the driver's foreign key pragma is off.
func (s *Store) InsertActivity(userID uint, kind, description, nutritionJSON string) (*models.Activity, error) {
	activity := models.Activity{
		UserID:        userID,
		Type:          kind,
		Description:   description,
		NutritionData: nutritionJSON,
		Timestamp:     time.Now().UTC(),
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("activity references unknown user %d", userID)
		}
		return tx.Create(&activity).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert activity: %w", err)
	}
	return &activity, nil
}

// ActivitiesSince returns the user's activities logged at or after since,
// oldest first. kind narrows by activity type when non-empty.
func (s *Store) ActivitiesSince(userID uint, since time.Time, kind string) ([]models.Activity, error) {
	q := s.db.Where("user_id = ? AND timestamp >= ?", userID, since)
	if kind != "" {
		q = q.Where("type = ?", kind)
	}
	var activities []models.Activity
	if err := q.Order("timestamp asc, id asc").Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	return activities, nil
}
