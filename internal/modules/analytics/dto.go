package analytics

type VisitPerformance struct {
	TotalPlanned   int            `json:"total_planned"`
	TotalCompleted int            `json:"total_completed"`
	VisitRate      float64        `json:"visit_rate"`
	SkipReasons    map[string]int `json:"skip_reasons"`
}

type PaymentPerformance struct {
	TotalAmount   float64        `json:"total_amount"`
	CustomerCount int            `json:"customer_count"`
	PaymentRate   float64        `json:"payment_rate"`
	SkipReasons   map[string]int `json:"skip_reasons"`
}

type CustomerAcquisition struct {
	NewCustomers int `json:"new_customers"`
}

type TierStats struct {
	CustomerCount  int     `json:"customer_count"`
	VisitCount     int     `json:"visit_count"`
	CompletedCount int     `json:"completed_count"`
	VisitRate      float64 `json:"visit_rate"`
	TotalPayment   float64 `json:"total_payment"`
}

type VisitQuality struct {
	AvgDurationMinutes     float64         `json:"avg_duration_minutes"`
	VisitsUnder5Min        int             `json:"visits_under_5_min"`
	VisitsOver60Min        int             `json:"visits_over_60_min"`
	AvgRating              float64         `json:"avg_rating"`
	RatingHistogram        map[int]int     `json:"rating_histogram"`
	QualityPaymentRelation map[int]float64 `json:"quality_payment_relation"`
}

type DailyStat struct {
	Date      string  `json:"date"`
	Weekday   string  `json:"weekday"`
	Planned   int     `json:"planned"`
	Completed int     `json:"completed"`
	Payment   float64 `json:"payment"`
}

type Summary struct {
	Period              string               `json:"period"`
	StartDate           string               `json:"start_date"`
	EndDate             string               `json:"end_date"`
	VisitPerformance    VisitPerformance     `json:"visit_performance"`
	PaymentPerformance  PaymentPerformance   `json:"payment_performance"`
	CustomerAcquisition CustomerAcquisition  `json:"customer_acquisition"`
	PriceTierBreakdown  map[string]TierStats `json:"price_tier_breakdown"`
	VisitQuality        VisitQuality         `json:"visit_quality"`
	DailyBreakdown      []DailyStat          `json:"daily_breakdown"`
}
