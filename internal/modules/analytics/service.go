package analytics

import (
	"context"
	"time"
)

type Service struct {
	visits    VisitRepository
	followUps FollowUpRepository
	customers CustomerRepository
	now       func() time.Time
}

func NewService(visits VisitRepository, followUps FollowUpRepository, customers CustomerRepository) *Service {
	return &Service{
		visits:    visits,
		followUps: followUps,
		customers: customers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Performance resolves the window, pulls every record in range for the
// tenant, reconciles visit statuses, and reduces to a summary.
func (s *Service) Performance(ctx context.Context, userID int64, period, start, end string) (*Summary, error) {
	resolvedStart, resolvedEnd, err := ResolveWindow(period, start, end, s.now())
	if err != nil {
		return nil, err
	}

	visits, err := s.visits.ListInRange(ctx, userID, resolvedStart, resolvedEnd)
	if err != nil {
		return nil, err
	}
	for i := range visits {
		visits[i].ReconcileStatus()
	}

	followUps, err := s.followUps.ListInRange(ctx, userID, resolvedStart, resolvedEnd)
	if err != nil {
		return nil, err
	}

	customers, err := s.customers.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := Compute(resolvedStart, resolvedEnd, visits, followUps, customers)
	summary.Period = periodLabel(period)
	return &summary, nil
}

func periodLabel(period string) string {
	if period == "weekly" {
		return "weekly"
	}
	return "monthly"
}
