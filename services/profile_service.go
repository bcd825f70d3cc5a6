package services

import (
	"github.com/sirupsen/logrus"

	"github.com/Cyrus-spc-tech/Pal-Ai/models"
	"github.com/Cyrus-spc-tech/Pal-Ai/store"
)

// ProfileService handles onboarding and goal updates.
type ProfileService struct {
	store          *store.Store
	defaultCalGoal float64
	log            *logrus.Logger
}

func NewProfileService(st *store.Store, defaultCalGoal float64, log *logrus.Logger) *ProfileService {
	return &ProfileService{store: st, defaultCalGoal: defaultCalGoal, log: log}
}

// CreateOrGetUser looks the user up by display name and creates one when
// absent. An existing user is returned unchanged: role, goals and calorie
// goal arguments are discarded on that path. A non-positive calorie goal
// falls back to the configured default.
func (s *ProfileService) CreateOrGetUser(name, role, goals string, dailyCalGoal float64) (*models.User, error) {
	user, err := s.store.FindUserByName(name)
	if err != nil {
		return nil, err
	}
	if user != nil {
		s.log.WithField("user_id", user.ID).Debug("existing user found")
		return user, nil
	}

	if dailyCalGoal <= 0 {
		dailyCalGoal = s.defaultCalGoal
	}
	created, err := s.store.CreateUser(name, role, goals, dailyCalGoal)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"user_id": created.ID,
		"role":    role,
	}).Info("registered new user")
	return created, nil
}

// UpdateGoals overwrites the stored goals text. A missing id surfaces as
// store.ErrUserNotFound, not a crash.
func (s *ProfileService) UpdateGoals(userID uint, newGoals string) error {
	return s.store.UpdateUserGoals(userID, newGoals)
}
