package model

import "time"

// User is a plain identity record. The core only ever reads ID and Username;
// credentials are owned by the auth service.
type User struct {
	ID           string    `gorm:"primaryKey;size:20" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
