package models

import "time"

// HP bounds for a goguma. Every write path clamps into this range.
const (
	MinHP     = 0
	MaxHP     = 100
	DefaultHP = 10
)

// MaxGogumasPerUser caps how many gogumas a single user may grow.
const MaxGogumasPerUser = 10

// Goguma is a virtual plant owned by exactly one user and tracked by HP.
type Goguma struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	HP        int       `gorm:"column:hp;not null;default:10" json:"hp"`
	CreatedAt time.Time `json:"created_at"`
}
