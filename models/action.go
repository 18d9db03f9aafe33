package models

import "time"

// Action records that a user performed an action type on a goguma on a
// calendar date (UTC, YYYY-MM-DD). The composite unique index is the daily
// rate limit: insert-or-reject closes the double-credit race.
type Action struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_action_daily" json:"user_id"`
	GogumaID   uint      `gorm:"not null;uniqueIndex:idx_action_daily" json:"goguma_id"`
	ActionType string    `gorm:"size:16;not null;uniqueIndex:idx_action_daily" json:"action_type"`
	ActionDate string    `gorm:"size:10;not null;uniqueIndex:idx_action_daily" json:"action_date"`
	CreatedAt  time.Time `json:"created_at"`
}
