package domain

import "time"

type FollowUpStatus string

const (
	FollowUpPending FollowUpStatus = "pending"
	FollowUpDone    FollowUpStatus = "done"
	FollowUpLate    FollowUpStatus = "late"
)

// FollowUp is a reminder to re-contact a customer by a due date. A pending
// follow-up whose due date has passed is promoted to late lazily on read.
type FollowUp struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	UserID      *int64         `json:"user_id,omitempty" gorm:"index"`
	CustomerID  int64          `json:"customer_id" gorm:"index"`
	DueDate     string         `json:"due_date" gorm:"size:10;index"`
	DueTime     *string        `json:"due_time,omitempty" gorm:"size:5"`
	Status      FollowUpStatus `json:"status" gorm:"size:16;default:pending"`
	Reason      string         `json:"reason"`
	Note        string         `json:"note,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
