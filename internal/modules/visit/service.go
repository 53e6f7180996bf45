package visit

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fieldcrm/internal/domain"
	"fieldcrm/internal/repository"
)

type Service struct {
	visits    VisitRepository
	customers CustomerRepository
	now       func() time.Time
}

func NewService(visits VisitRepository, customers CustomerRepository) *Service {
	return &Service{
		visits:    visits,
		customers: customers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrFetch returns the visit for (customer, date), creating a pending one
// on first call. The unique (customer_id, date) index is authoritative: when a
// concurrent caller wins the insert race, the winner's row is re-fetched and
// returned instead of failing.
func (s *Service) CreateOrFetch(ctx context.Context, userID, customerID int64, date string) (*domain.Visit, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrValidation
	}

	if _, err := s.customers.GetByID(ctx, userID, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing, err := s.visits.FindByCustomerAndDate(ctx, userID, customerID, date)
	if err == nil {
		existing.ReconcileStatus()
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	uid := userID
	v := &domain.Visit{
		UserID:     &uid,
		CustomerID: customerID,
		Date:       date,
		Status:     domain.VisitPending,
	}
	if err := s.visits.Create(ctx, v); err != nil {
		if repository.IsUniqueViolation(err) {
			winner, ferr := s.visits.FindByCustomerAndDate(ctx, userID, customerID, date)
			if ferr != nil {
				return nil, ferr
			}
			winner.ReconcileStatus()
			return winner, nil
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Visit, error) {
	v, err := s.visits.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v.ReconcileStatus()
	return v, nil
}

func (s *Service) List(ctx context.Context, userID int64, date string, customerID int64) ([]domain.Visit, error) {
	visits, err := s.visits.List(ctx, userID, date, customerID)
	if err != nil {
		return nil, err
	}
	for i := range visits {
		visits[i].ReconcileStatus()
	}
	return visits, nil
}

// Update applies a partial patch through the update policy and returns the
// reconciled post-update record.
func (s *Service) Update(ctx context.Context, userID, id int64, p Patch) (*domain.Visit, error) {
	current, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	writes, err := BuildUpdate(current, p, s.now())
	if err != nil {
		return nil, err
	}

	if len(writes) > 0 {
		if err := s.visits.UpdateFields(ctx, userID, id, writes); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, userID, id)
}

// StartTimer stamps started_at once; a second start is a conflict.
func (s *Service) StartTimer(ctx context.Context, userID, id int64) (*domain.Visit, error) {
	v, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if v.StartedAt != nil {
		return nil, ErrTimerAlreadyStarted
	}

	if err := s.visits.UpdateFields(ctx, userID, id, map[string]any{"started_at": s.now()}); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

// EndTimer stamps ended_at and derives duration_minutes, floored to whole
// minutes. Ending before starting is a failed precondition; ending twice is a
// conflict.
func (s *Service) EndTimer(ctx context.Context, userID, id int64) (*domain.Visit, error) {
	v, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if v.StartedAt == nil {
		return nil, ErrTimerNotStarted
	}
	if v.EndedAt != nil {
		return nil, ErrTimerAlreadyEnded
	}

	now := s.now()
	duration := int(now.Sub(*v.StartedAt).Minutes())
	if duration < 0 {
		duration = 0
	}

	err = s.visits.UpdateFields(ctx, userID, id, map[string]any{
		"ended_at":         now,
		"duration_minutes": duration,
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}
