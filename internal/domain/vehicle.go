package domain

import "time"

type Vehicle struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    *int64    `json:"user_id,omitempty" gorm:"index"`
	Name      string    `json:"name"`
	Plate     string    `json:"plate"`
	CreatedAt time.Time `json:"created_at"`
}

// FuelEntry records one refuelling together with the distance driven since
// the previous entry; the period report sums cost and distance over a window.
type FuelEntry struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	UserID     *int64    `json:"user_id,omitempty" gorm:"index"`
	VehicleID  int64     `json:"vehicle_id" gorm:"index"`
	Date       string    `json:"date" gorm:"size:10;index"`
	Liters     float64   `json:"liters"`
	TotalCost  float64   `json:"total_cost"`
	DistanceKM float64   `json:"distance_km"`
	CreatedAt  time.Time `json:"created_at"`
}
