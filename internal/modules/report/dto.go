package report

// DailyRow is one calendar day of the period table, counted by actual visit
// status rather than follow-up activity.
type DailyRow struct {
	Date       string  `json:"date"`
	Weekday    string  `json:"weekday"`
	Visited    int     `json:"visited"`
	NotVisited int     `json:"not_visited"`
	Pending    int     `json:"pending"`
	Payment    float64 `json:"payment"`
}

type PeriodReport struct {
	Period    string `json:"period"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	TotalVisits     int     `json:"total_visits"`
	VisitedCount    int     `json:"visited_count"`
	NotVisitedCount int     `json:"not_visited_count"`
	PendingCount    int     `json:"pending_count"`
	VisitRate       float64 `json:"visit_rate"`

	TotalPayment   float64            `json:"total_payment"`
	PaymentsByType map[string]float64 `json:"payments_by_type"`

	WorkingDays      int     `json:"working_days"`
	AvgVisitsPerDay  float64 `json:"avg_visits_per_day"`
	AvgPaymentPerDay float64 `json:"avg_payment_per_day"`
	TotalDistanceKM  float64 `json:"total_distance_km"`
	TotalFuelCost    float64 `json:"total_fuel_cost"`

	DailyRows []DailyRow `json:"daily_rows"`
}

// DailyVisitRow is one customer line of the single-day report.
type DailyVisitRow struct {
	CustomerName  string  `json:"customer_name"`
	Region        string  `json:"region"`
	Status        string  `json:"status"`
	PaymentAmount float64 `json:"payment_amount"`
	Note          string  `json:"note"`
}

type DailyReport struct {
	Day   string          `json:"day"`
	Date  string          `json:"date"`
	Rows  []DailyVisitRow `json:"rows"`
	Total float64         `json:"total_payment"`
}
