package analytics

import (
	"math"
	"time"

	"fieldcrm/internal/domain"
)

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Compute reduces the raw records for a window into the performance summary.
// It is pure: callers fetch and reconcile the inputs first. Every divide is
// guarded, so empty input yields zeroes instead of an error.
func Compute(start, end string, visits []domain.Visit, followUps []domain.FollowUp, customers []domain.Customer) Summary {
	s := Summary{
		StartDate: start,
		EndDate:   end,
		VisitPerformance: VisitPerformance{
			SkipReasons: map[string]int{},
		},
		PaymentPerformance: PaymentPerformance{
			SkipReasons: map[string]int{},
		},
		PriceTierBreakdown: map[string]TierStats{},
		VisitQuality: VisitQuality{
			RatingHistogram:        map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
			QualityPaymentRelation: map[int]float64{},
		},
	}

	// Planned contact is modeled by follow-ups, not visits.
	s.VisitPerformance.TotalPlanned = len(followUps)
	for _, f := range followUps {
		if f.Status == domain.FollowUpDone {
			s.VisitPerformance.TotalCompleted++
		}
	}
	if s.VisitPerformance.TotalPlanned > 0 {
		s.VisitPerformance.VisitRate = round1(
			float64(s.VisitPerformance.TotalCompleted) / float64(s.VisitPerformance.TotalPlanned) * 100)
	}

	visitCompletedCount := 0
	for _, v := range visits {
		if !v.Completed && v.VisitSkipReason != nil && *v.VisitSkipReason != "" {
			s.VisitPerformance.SkipReasons[*v.VisitSkipReason]++
		}

		if v.Completed {
			visitCompletedCount++
		}
		if v.PaymentCollected {
			if v.PaymentAmount != nil {
				s.PaymentPerformance.TotalAmount += *v.PaymentAmount
			}
			s.PaymentPerformance.CustomerCount++
		} else if v.PaymentSkipReason != nil && *v.PaymentSkipReason != "" {
			s.PaymentPerformance.SkipReasons[*v.PaymentSkipReason]++
		}
	}
	// The payment rate denominator is visits with the legacy completed flag,
	// not the follow-up denominator used by the visit rate.
	if visitCompletedCount > 0 {
		s.PaymentPerformance.PaymentRate = round1(
			float64(s.PaymentPerformance.CustomerCount) / float64(visitCompletedCount) * 100)
	}

	tierOf := map[int64]domain.PriceTier{}
	for _, c := range customers {
		created := c.CreatedAt.UTC().Format(dateLayout)
		if created >= start && created <= end {
			s.CustomerAcquisition.NewCustomers++
		}

		tier := c.PriceTier
		if tier == "" {
			tier = domain.PriceTierStandard
		}
		tierOf[c.ID] = tier
		stats := s.PriceTierBreakdown[string(tier)]
		stats.CustomerCount++
		s.PriceTierBreakdown[string(tier)] = stats
	}
	for _, v := range visits {
		tier, ok := tierOf[v.CustomerID]
		if !ok {
			continue
		}
		stats := s.PriceTierBreakdown[string(tier)]
		stats.VisitCount++
		if v.Status == domain.VisitVisited {
			stats.CompletedCount++
		}
		if v.PaymentCollected && v.PaymentAmount != nil {
			stats.TotalPayment += *v.PaymentAmount
		}
		s.PriceTierBreakdown[string(tier)] = stats
	}
	for tier, stats := range s.PriceTierBreakdown {
		if stats.VisitCount > 0 {
			stats.VisitRate = round1(float64(stats.CompletedCount) / float64(stats.VisitCount) * 100)
			s.PriceTierBreakdown[tier] = stats
		}
	}

	durationSum, durationCount := 0, 0
	ratingSum, ratingCount := 0, 0
	paySumByRating := map[int]float64{}
	payCountByRating := map[int]int{}
	for _, v := range visits {
		if v.DurationMinutes != nil {
			durationSum += *v.DurationMinutes
			durationCount++
			if *v.DurationMinutes < 5 {
				s.VisitQuality.VisitsUnder5Min++
			}
			if *v.DurationMinutes > 60 {
				s.VisitQuality.VisitsOver60Min++
			}
		}
		if v.QualityRating != nil {
			ratingSum += *v.QualityRating
			ratingCount++
			s.VisitQuality.RatingHistogram[*v.QualityRating]++
			if v.PaymentCollected && v.PaymentAmount != nil {
				paySumByRating[*v.QualityRating] += *v.PaymentAmount
				payCountByRating[*v.QualityRating]++
			}
		}
	}
	if durationCount > 0 {
		s.VisitQuality.AvgDurationMinutes = round1(float64(durationSum) / float64(durationCount))
	}
	if ratingCount > 0 {
		s.VisitQuality.AvgRating = round1(float64(ratingSum) / float64(ratingCount))
	}
	for rating, count := range payCountByRating {
		s.VisitQuality.QualityPaymentRelation[rating] = round1(paySumByRating[rating] / float64(count))
	}

	s.DailyBreakdown = dailyBreakdown(start, end, visits, followUps)
	return s
}

// dailyBreakdown emits one row per calendar day in [start, end], zero-filled
// for days with no activity.
func dailyBreakdown(start, end string, visits []domain.Visit, followUps []domain.FollowUp) []DailyStat {
	startDay, err := time.Parse(dateLayout, start)
	if err != nil {
		return []DailyStat{}
	}
	endDay, err := time.Parse(dateLayout, end)
	if err != nil {
		return []DailyStat{}
	}

	plannedByDay := map[string]int{}
	completedByDay := map[string]int{}
	for _, f := range followUps {
		plannedByDay[f.DueDate]++
		if f.Status == domain.FollowUpDone {
			completedByDay[f.DueDate]++
		}
	}
	paymentByDay := map[string]float64{}
	for _, v := range visits {
		if v.PaymentCollected && v.PaymentAmount != nil {
			paymentByDay[v.Date] += *v.PaymentAmount
		}
	}

	var days []DailyStat
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		days = append(days, DailyStat{
			Date:      key,
			Weekday:   d.Weekday().String()[:3],
			Planned:   plannedByDay[key],
			Completed: completedByDay[key],
			Payment:   paymentByDay[key],
		})
	}
	return days
}
