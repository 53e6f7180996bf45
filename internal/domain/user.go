package domain

import "time"

type User struct {
	ID                  int64      `json:"id" gorm:"primaryKey"`
	Email               string     `json:"email" gorm:"uniqueIndex;size:255"`
	PasswordHash        string     `json:"-"`
	Name                string     `json:"name"`
	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
}
