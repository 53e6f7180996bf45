package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fieldcrm/internal/domain"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestCompute_VisitRateTwoOfThree(t *testing.T) {
	followUps := []domain.FollowUp{
		{ID: 1, DueDate: "2024-01-05", Status: domain.FollowUpDone},
		{ID: 2, DueDate: "2024-01-10", Status: domain.FollowUpDone},
		{ID: 3, DueDate: "2024-01-15", Status: domain.FollowUpPending},
	}

	s := Compute("2024-01-01", "2024-01-31", nil, followUps, nil)
	assert.Equal(t, 3, s.VisitPerformance.TotalPlanned)
	assert.Equal(t, 2, s.VisitPerformance.TotalCompleted)
	assert.Equal(t, 66.7, s.VisitPerformance.VisitRate)
}

func TestCompute_VisitRateZeroWhenNothingPlanned(t *testing.T) {
	s := Compute("2024-01-01", "2024-01-31", nil, nil, nil)
	assert.Equal(t, 0.0, s.VisitPerformance.VisitRate)
	assert.GreaterOrEqual(t, s.VisitPerformance.VisitRate, 0.0)
	assert.LessOrEqual(t, s.VisitPerformance.VisitRate, 100.0)
}

func TestCompute_PaymentTotalsAndSkipReasons(t *testing.T) {
	visits := []domain.Visit{
		{Date: "2024-01-05", Completed: true, PaymentCollected: true, PaymentAmount: floatPtr(150.5)},
		{Date: "2024-01-06", Completed: true, PaymentSkipReason: strPtr("no cash")},
		{Date: "2024-01-07", Completed: true},
	}

	s := Compute("2024-01-01", "2024-01-31", visits, nil, nil)
	assert.Equal(t, 150.5, s.PaymentPerformance.TotalAmount)
	assert.Equal(t, 1, s.PaymentPerformance.CustomerCount)
	assert.Equal(t, 1, s.PaymentPerformance.SkipReasons["no cash"])
}

func TestCompute_PaymentRateUsesLegacyCompletedDenominator(t *testing.T) {
	visits := []domain.Visit{
		{Date: "2024-01-05", Completed: true, PaymentCollected: true, PaymentAmount: floatPtr(100)},
		{Date: "2024-01-06", Completed: true},
		{Date: "2024-01-07", Status: domain.VisitVisited}, // visited but legacy flag unset
	}

	s := Compute("2024-01-01", "2024-01-31", visits, nil, nil)
	// one collecting visit over two legacy-completed visits
	assert.Equal(t, 50.0, s.PaymentPerformance.PaymentRate)
}

func TestCompute_CustomerAcquisitionWindow(t *testing.T) {
	customers := []domain.Customer{
		{ID: 1, CreatedAt: time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)},
		{ID: 2, CreatedAt: time.Date(2023, 12, 20, 9, 0, 0, 0, time.UTC)},
	}

	in := Compute("2024-01-01", "2024-01-31", nil, nil, customers)
	assert.Equal(t, 1, in.CustomerAcquisition.NewCustomers)

	out := Compute("2024-02-01", "2024-02-28", nil, nil, customers)
	assert.Equal(t, 0, out.CustomerAcquisition.NewCustomers)
}

func TestCompute_PriceTierBreakdown(t *testing.T) {
	customers := []domain.Customer{
		{ID: 1, PriceTier: domain.PriceTierStandard},
		{ID: 2, PriceTier: domain.PriceTierDiscounted},
	}
	visits := []domain.Visit{
		{CustomerID: 1, Date: "2024-01-05", Status: domain.VisitVisited, PaymentCollected: true, PaymentAmount: floatPtr(200)},
		{CustomerID: 1, Date: "2024-01-06", Status: domain.VisitPending},
		{CustomerID: 2, Date: "2024-01-05", Status: domain.VisitVisited, PaymentCollected: true, PaymentAmount: floatPtr(80)},
	}

	s := Compute("2024-01-01", "2024-01-31", visits, nil, customers)

	standard := s.PriceTierBreakdown["standard"]
	assert.Equal(t, 1, standard.CustomerCount)
	assert.Equal(t, 2, standard.VisitCount)
	assert.Equal(t, 1, standard.CompletedCount)
	assert.Equal(t, 50.0, standard.VisitRate)
	assert.Equal(t, 200.0, standard.TotalPayment)

	discounted := s.PriceTierBreakdown["discounted"]
	assert.Equal(t, 100.0, discounted.VisitRate)
	assert.Equal(t, 80.0, discounted.TotalPayment)
}

func TestCompute_VisitQuality(t *testing.T) {
	visits := []domain.Visit{
		{Date: "2024-01-05", DurationMinutes: intPtr(3), QualityRating: intPtr(2)},
		{Date: "2024-01-06", DurationMinutes: intPtr(70), QualityRating: intPtr(5)},
		{Date: "2024-01-07", DurationMinutes: intPtr(20)},
	}

	s := Compute("2024-01-01", "2024-01-31", visits, nil, nil)
	assert.Equal(t, 31.0, s.VisitQuality.AvgDurationMinutes)
	assert.Equal(t, 1, s.VisitQuality.VisitsUnder5Min)
	assert.Equal(t, 1, s.VisitQuality.VisitsOver60Min)
	assert.Equal(t, 3.5, s.VisitQuality.AvgRating)
	assert.Equal(t, 1, s.VisitQuality.RatingHistogram[2])
	assert.Equal(t, 1, s.VisitQuality.RatingHistogram[5])
	assert.Equal(t, 0, s.VisitQuality.RatingHistogram[1])
}

func TestCompute_QualityPaymentRelation(t *testing.T) {
	visits := []domain.Visit{
		{Date: "2024-01-05", QualityRating: intPtr(4), PaymentCollected: true, PaymentAmount: floatPtr(200)},
		{Date: "2024-01-06", QualityRating: intPtr(4), PaymentCollected: true, PaymentAmount: floatPtr(300)},
		{Date: "2024-01-07", QualityRating: intPtr(2)}, // rated but no payment
	}

	s := Compute("2024-01-01", "2024-01-31", visits, nil, nil)
	assert.Equal(t, 250.0, s.VisitQuality.QualityPaymentRelation[4])
	_, hasTwo := s.VisitQuality.QualityPaymentRelation[2]
	assert.False(t, hasTwo)
}

func TestCompute_DailyBreakdownIsDense(t *testing.T) {
	followUps := []domain.FollowUp{
		{DueDate: "2024-01-02", Status: domain.FollowUpDone},
		{DueDate: "2024-01-02", Status: domain.FollowUpPending},
	}
	visits := []domain.Visit{
		{Date: "2024-01-03", PaymentCollected: true, PaymentAmount: floatPtr(75)},
	}

	s := Compute("2024-01-01", "2024-01-04", visits, followUps, nil)
	assert.Len(t, s.DailyBreakdown, 4)

	assert.Equal(t, "2024-01-01", s.DailyBreakdown[0].Date)
	assert.Equal(t, "Mon", s.DailyBreakdown[0].Weekday)
	assert.Equal(t, 0, s.DailyBreakdown[0].Planned)

	assert.Equal(t, 2, s.DailyBreakdown[1].Planned)
	assert.Equal(t, 1, s.DailyBreakdown[1].Completed)
	assert.Equal(t, 75.0, s.DailyBreakdown[2].Payment)
}

func TestCompute_DailyCompletedSumsToTotal(t *testing.T) {
	followUps := []domain.FollowUp{
		{DueDate: "2024-01-02", Status: domain.FollowUpDone},
		{DueDate: "2024-01-05", Status: domain.FollowUpDone},
		{DueDate: "2024-01-07", Status: domain.FollowUpPending},
	}

	s := Compute("2024-01-01", "2024-01-10", nil, followUps, nil)
	sum := 0
	for _, d := range s.DailyBreakdown {
		sum += d.Completed
	}
	assert.Equal(t, s.VisitPerformance.TotalCompleted, sum)
}

func TestCompute_SkipReasonsOverUncompletedVisits(t *testing.T) {
	visits := []domain.Visit{
		{Date: "2024-01-05", VisitSkipReason: strPtr("closed")},
		{Date: "2024-01-06", VisitSkipReason: strPtr("closed")},
		{Date: "2024-01-07", Completed: true, VisitSkipReason: strPtr("closed")},
	}

	s := Compute("2024-01-01", "2024-01-31", visits, nil, nil)
	assert.Equal(t, 2, s.VisitPerformance.SkipReasons["closed"])
}
