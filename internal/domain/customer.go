package domain

import "time"

type PriceTier string

const (
	PriceTierStandard   PriceTier = "standard"
	PriceTierDiscounted PriceTier = "discounted"
)

// WeekdayNames is the accepted value set for Customer.VisitDays.
var WeekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// AlertOptions is the fixed catalog a customer's alerts must come from.
var AlertOptions = []string{
	"payment_overdue",
	"price_complaint",
	"stock_return",
	"call_before_visit",
	"cash_only",
	"new_owner",
}

type Customer struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    *int64    `json:"user_id,omitempty" gorm:"index"`
	Name      string    `json:"name"`
	Region    string    `json:"region" gorm:"index;size:255"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	PriceTier PriceTier `json:"price_tier" gorm:"size:16;default:standard"`
	VisitDays []string  `json:"visit_days" gorm:"serializer:json"`
	Alerts    []string  `json:"alerts" gorm:"serializer:json"`
	CreatedAt time.Time `json:"created_at"`
}

func IsValidWeekday(day string) bool {
	for _, d := range WeekdayNames {
		if d == day {
			return true
		}
	}
	return false
}

func IsValidAlert(alert string) bool {
	for _, a := range AlertOptions {
		if a == alert {
			return true
		}
	}
	return false
}
