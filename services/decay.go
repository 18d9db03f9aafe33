package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gogumaworld/goguma/models"
)

// DecayService applies the inactivity penalty on session-establishing
// requests: HP drops by a fixed amount per whole day since the user's last
// recorded visit.
type DecayService struct {
	db          *gorm.DB
	decayPerDay int
}

// NewDecayService creates a decay service around an injected store handle.
func NewDecayService(db *gorm.DB, decayPerDay int) *DecayService {
	return &DecayService{db: db, decayPerDay: decayPerDay}
}

// Apply evaluates decay for the user once for the given calendar date.
// Reading the marker, applying the penalty, and advancing the marker all
// happen in one transaction, so two concurrent calls for the same user
// cannot both read the stale marker and double-apply the penalty.
//
// No marker yet: one is created at today, no penalty. Marker at or after
// today: clamped forward if strictly after, no penalty. Marker N days back:
// every goguma of the user loses decayPerDay*N HP, floored at zero.
//
// The returned bool reports whether a penalty was applied, so callers can
// drop caches derived from goguma HP.
func (s *DecayService) Apply(userID uint, today string) (bool, error) {
	applied := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var activity models.UserActivity
		err := tx.Where("user_id = ?", userID).First(&activity).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.UserActivity{UserID: userID, LastVisitDate: today}).Error
		}
		if err != nil {
			return err
		}

		if activity.LastVisitDate == "" {
			return s.advanceMarker(tx, userID, today)
		}

		days := DiffDays(today, activity.LastVisitDate)
		if days <= 0 {
			// Wall clock appears to have moved backward; clamp forward.
			if days < 0 {
				return s.advanceMarker(tx, userID, today)
			}
			return nil
		}

		penalty := s.decayPerDay * days
		if err := tx.Model(&models.Goguma{}).
			Where("user_id = ?", userID).
			Update("hp", gorm.Expr("CASE WHEN hp - ? < ? THEN ? ELSE hp - ? END",
				penalty, models.MinHP, models.MinHP, penalty)).Error; err != nil {
			return err
		}
		applied = true
		return s.advanceMarker(tx, userID, today)
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

func (s *DecayService) advanceMarker(tx *gorm.DB, userID uint, today string) error {
	return tx.Model(&models.UserActivity{}).
		Where("user_id = ?", userID).
		Update("last_visit_date", today).Error
}
