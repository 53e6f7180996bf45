package domain

import "time"

// DailyNote is one free-text note per tenant per calendar day.
type DailyNote struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    *int64    `json:"user_id,omitempty" gorm:"uniqueIndex:idx_daily_notes_user_date"`
	Date      string    `json:"date" gorm:"size:10;uniqueIndex:idx_daily_notes_user_date"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
