package domain

import "time"

type VisitStatus string

const (
	VisitPending    VisitStatus = "pending"
	VisitVisited    VisitStatus = "visited"
	VisitNotVisited VisitStatus = "not_visited"
)

type PaymentType string

const (
	PaymentCash     PaymentType = "Cash"
	PaymentCard     PaymentType = "Card"
	PaymentTransfer PaymentType = "Transfer"
	PaymentCheck    PaymentType = "Check"
)

func IsValidPaymentType(t PaymentType) bool {
	switch t {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentCheck:
		return true
	}
	return false
}

// Visit is the record of a planned or actual contact with a customer on one
// calendar date. Exactly one visit exists per (customer, date); rows written
// before the status column existed carry only the legacy completed flag.
type Visit struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	UserID     *int64 `json:"user_id,omitempty" gorm:"index"`
	CustomerID int64  `json:"customer_id" gorm:"uniqueIndex:idx_visits_customer_date"`
	// Date is the calendar day in YYYY-MM-DD form, no time component.
	Date   string      `json:"date" gorm:"size:10;uniqueIndex:idx_visits_customer_date;index"`
	Status VisitStatus `json:"status" gorm:"size:16"`

	// Completed mirrors Status for pre-status clients; Status is the source
	// of truth on every write.
	Completed       bool    `json:"completed"`
	VisitSkipReason *string `json:"visit_skip_reason,omitempty"`

	PaymentCollected  bool         `json:"payment_collected"`
	PaymentType       *PaymentType `json:"payment_type,omitempty" gorm:"size:16"`
	PaymentAmount     *float64     `json:"payment_amount,omitempty"`
	PaymentSkipReason *string      `json:"payment_skip_reason,omitempty"`

	CustomerRequest *string `json:"customer_request,omitempty"`
	Note            *string `json:"note,omitempty"`

	StartedAt       *time.Time `json:"started_at,omitempty"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`

	// QualityRating is intended to be 1-5 but is not enforced server-side.
	QualityRating *int       `json:"quality_rating,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ReconcileStatus back-fills the canonical three-state status on rows written
// before the status model existed. An explicit status always wins and is never
// re-derived. The stored legacy fields are left untouched.
func (v *Visit) ReconcileStatus() {
	if v.Status != "" {
		return
	}
	switch {
	case v.Completed:
		v.Status = VisitVisited
	case v.VisitSkipReason != nil && *v.VisitSkipReason != "":
		v.Status = VisitNotVisited
	default:
		v.Status = VisitPending
	}
}
