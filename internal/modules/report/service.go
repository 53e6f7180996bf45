package report

import (
	"context"
	"math"
	"time"

	"fieldcrm/internal/domain"
	"fieldcrm/internal/modules/analytics"
)

type Service struct {
	visits    VisitRepository
	fuel      FuelRepository
	customers CustomerRepository
	now       func() time.Time
}

func NewService(visits VisitRepository, fuel FuelRepository, customers CustomerRepository) *Service {
	return &Service{
		visits:    visits,
		fuel:      fuel,
		customers: customers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// BuildPeriodReport assembles the window's visit, payment, and fuel figures
// into the structure the PDF and spreadsheet renderers consume.
func (s *Service) BuildPeriodReport(ctx context.Context, userID int64, period, start, end string) (*PeriodReport, error) {
	resolvedStart, resolvedEnd, err := analytics.ResolveWindow(period, start, end, s.now())
	if err != nil {
		return nil, ErrValidation
	}

	visits, err := s.visits.ListInRange(ctx, userID, resolvedStart, resolvedEnd)
	if err != nil {
		return nil, err
	}
	for i := range visits {
		visits[i].ReconcileStatus()
	}

	r := &PeriodReport{
		Period:         periodLabel(period),
		StartDate:      resolvedStart,
		EndDate:        resolvedEnd,
		TotalVisits:    len(visits),
		PaymentsByType: map[string]float64{},
	}

	workingDays := map[string]bool{}
	for _, v := range visits {
		workingDays[v.Date] = true
		switch v.Status {
		case domain.VisitVisited:
			r.VisitedCount++
		case domain.VisitNotVisited:
			r.NotVisitedCount++
		default:
			r.PendingCount++
		}
		if v.PaymentCollected && v.PaymentAmount != nil {
			r.TotalPayment += *v.PaymentAmount
			typ := "Cash"
			if v.PaymentType != nil {
				typ = string(*v.PaymentType)
			}
			r.PaymentsByType[typ] += *v.PaymentAmount
		}
	}
	if r.TotalVisits > 0 {
		r.VisitRate = round1(float64(r.VisitedCount) / float64(r.TotalVisits) * 100)
	}
	r.WorkingDays = len(workingDays)
	if r.WorkingDays > 0 {
		r.AvgVisitsPerDay = round1(float64(r.TotalVisits) / float64(r.WorkingDays))
		r.AvgPaymentPerDay = round1(r.TotalPayment / float64(r.WorkingDays))
	}

	fuelEntries, err := s.fuel.ListInRange(ctx, userID, resolvedStart, resolvedEnd)
	if err != nil {
		return nil, err
	}
	for _, e := range fuelEntries {
		r.TotalDistanceKM += e.DistanceKM
		r.TotalFuelCost += e.TotalCost
	}

	r.DailyRows = dailyRows(resolvedStart, resolvedEnd, visits)
	return r, nil
}

// BuildDailyReport lists the customers scheduled for the weekday joined with
// that date's visit records; a scheduled customer without a visit row shows as
// pending.
func (s *Service) BuildDailyReport(ctx context.Context, userID int64, day, date string) (*DailyReport, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrValidation
	}
	if !domain.IsValidWeekday(day) {
		return nil, ErrValidation
	}

	visits, err := s.visits.ListInRange(ctx, userID, date, date)
	if err != nil {
		return nil, err
	}
	visitOf := map[int64]*domain.Visit{}
	for i := range visits {
		visits[i].ReconcileStatus()
		visitOf[visits[i].CustomerID] = &visits[i]
	}

	customers, err := s.customers.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	r := &DailyReport{Day: day, Date: date, Rows: []DailyVisitRow{}}
	for _, c := range customers {
		if !scheduledFor(c, day) {
			continue
		}
		row := DailyVisitRow{
			CustomerName: c.Name,
			Region:       c.Region,
			Status:       string(domain.VisitPending),
		}
		if v, ok := visitOf[c.ID]; ok {
			row.Status = string(v.Status)
			if v.PaymentCollected && v.PaymentAmount != nil {
				row.PaymentAmount = *v.PaymentAmount
				r.Total += *v.PaymentAmount
			}
			if v.Note != nil {
				row.Note = *v.Note
			}
		}
		r.Rows = append(r.Rows, row)
	}
	return r, nil
}

func scheduledFor(c domain.Customer, day string) bool {
	for _, d := range c.VisitDays {
		if d == day {
			return true
		}
	}
	return false
}

func dailyRows(start, end string, visits []domain.Visit) []DailyRow {
	startDay, err := time.Parse("2006-01-02", start)
	if err != nil {
		return []DailyRow{}
	}
	endDay, err := time.Parse("2006-01-02", end)
	if err != nil {
		return []DailyRow{}
	}

	var rows []DailyRow
	byDay := map[string]int{}
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		byDay[key] = len(rows)
		rows = append(rows, DailyRow{Date: key, Weekday: d.Weekday().String()[:3]})
	}
	for _, v := range visits {
		i, ok := byDay[v.Date]
		if !ok {
			continue
		}
		row := &rows[i]
		switch v.Status {
		case domain.VisitVisited:
			row.Visited++
		case domain.VisitNotVisited:
			row.NotVisited++
		default:
			row.Pending++
		}
		if v.PaymentCollected && v.PaymentAmount != nil {
			row.Payment += *v.PaymentAmount
		}
	}
	return rows
}

func periodLabel(period string) string {
	if period == "weekly" {
		return "weekly"
	}
	return "monthly"
}
