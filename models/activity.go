package models

// UserActivity holds the most recent calendar date (UTC, YYYY-MM-DD) on
// which inactivity decay was evaluated for a user. One row per user.
type UserActivity struct {
	UserID        uint   `gorm:"primaryKey" json:"user_id"`
	LastVisitDate string `gorm:"size:10;not null" json:"last_visit_date"`
}

// TableName keeps the historical singular-ish table name.
func (UserActivity) TableName() string {
	return "user_activity"
}
