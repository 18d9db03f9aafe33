package models

import "time"

// User is a player identified only by a display name. There are no
// credentials; the name string is trusted as-is.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Gogumas   []Goguma  `json:"-"`
	Posts     []Post    `json:"-"`
}
