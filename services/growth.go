package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gogumaworld/goguma/models"
)

// ActionPoints maps each recognized action type to the HP it grants.
var ActionPoints = map[string]int{
	"bible":   1,
	"prayer":  1,
	"contact": 3,
	"meeting": 5,
	"invite":  8,
}

var (
	// ErrUnknownAction is returned for an unrecognized action type.
	ErrUnknownAction = errors.New("unknown action type")
	// ErrGogumaNotFound is returned when the goguma does not exist or is not
	// owned by the caller.
	ErrGogumaNotFound = errors.New("goguma not found")
	// ErrAlreadyUsedToday is returned when the same action was already
	// granted for this goguma today.
	ErrAlreadyUsedToday = errors.New("action already used today")
)

// GrowthService grants HP for daily bounded actions. The exempt user may
// repeat actions without limit; no record is kept for them.
type GrowthService struct {
	db         *gorm.DB
	exemptUser string
}

// NewGrowthService creates a growth service around an injected store handle.
func NewGrowthService(db *gorm.DB, exemptUser string) *GrowthService {
	return &GrowthService{db: db, exemptUser: exemptUser}
}

// Grow attempts to grant the action's point value to the goguma's HP, capped
// at MaxHP. For non-exempt users the action record insert and the HP update
// run in one transaction: a duplicate grant is rejected by the unique index,
// and a crash can never leave a used record alongside stale HP.
func (s *GrowthService) Grow(userID, gogumaID uint, actionType, today string) (int, error) {
	points, ok := ActionPoints[actionType]
	if !ok {
		return 0, ErrUnknownAction
	}

	var hp int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var goguma models.Goguma
		if err := tx.Where("id = ? AND user_id = ?", gogumaID, userID).First(&goguma).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGogumaNotFound
			}
			return err
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if user.Name != s.exemptUser {
			record := models.Action{
				UserID:     userID,
				GogumaID:   gogumaID,
				ActionType: actionType,
				ActionDate: today,
			}
			if err := tx.Create(&record).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrAlreadyUsedToday
				}
				return err
			}
		}

		if err := tx.Model(&models.Goguma{}).
			Where("id = ?", gogumaID).
			Update("hp", gorm.Expr("CASE WHEN hp + ? > ? THEN ? ELSE hp + ? END",
				points, models.MaxHP, models.MaxHP, points)).Error; err != nil {
			return err
		}

		if err := tx.First(&goguma, gogumaID).Error; err != nil {
			return err
		}
		hp = goguma.HP
		return nil
	})
	if err != nil {
		return 0, err
	}
	return hp, nil
}
