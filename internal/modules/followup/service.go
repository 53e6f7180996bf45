package followup

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fieldcrm/internal/domain"
)

type Service struct {
	followUps FollowUpRepository
	customers CustomerRepository
	now       func() time.Time
}

func NewService(followUps FollowUpRepository, customers CustomerRepository) *Service {
	return &Service{
		followUps: followUps,
		customers: customers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateFollowUpRequest) (*domain.FollowUp, error) {
	if _, err := time.Parse("2006-01-02", req.DueDate); err != nil {
		return nil, ErrValidation
	}
	if req.DueTime != nil {
		if _, err := time.Parse("15:04", *req.DueTime); err != nil {
			return nil, ErrValidation
		}
	}

	if _, err := s.customers.GetByID(ctx, userID, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	uid := userID
	f := &domain.FollowUp{
		UserID:     &uid,
		CustomerID: req.CustomerID,
		DueDate:    req.DueDate,
		DueTime:    req.DueTime,
		Status:     domain.FollowUpPending,
		Reason:     req.Reason,
		Note:       req.Note,
	}
	if err := s.followUps.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.FollowUp, error) {
	f, err := s.followUps.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.promoteIfLate(ctx, userID, f)
	return f, nil
}

func (s *Service) List(ctx context.Context, userID int64, dueDate string, customerID int64) ([]domain.FollowUp, error) {
	followUps, err := s.followUps.List(ctx, userID, dueDate, customerID)
	if err != nil {
		return nil, err
	}
	for i := range followUps {
		s.promoteIfLate(ctx, userID, &followUps[i])
	}
	return followUps, nil
}

func (s *Service) ListDueToday(ctx context.Context, userID int64) ([]domain.FollowUp, error) {
	return s.List(ctx, userID, s.now().Format("2006-01-02"), 0)
}

func (s *Service) Update(ctx context.Context, userID, id int64, req UpdateFollowUpRequest) (*domain.FollowUp, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.DueDate != nil {
		if _, err := time.Parse("2006-01-02", *req.DueDate); err != nil {
			return nil, ErrValidation
		}
		fields["due_date"] = *req.DueDate
	}
	if req.DueTime != nil {
		if _, err := time.Parse("15:04", *req.DueTime); err != nil {
			return nil, ErrValidation
		}
		fields["due_time"] = *req.DueTime
	}
	if req.Reason != nil {
		fields["reason"] = *req.Reason
	}
	if req.Note != nil {
		fields["note"] = *req.Note
	}

	if len(fields) > 0 {
		if err := s.followUps.UpdateFields(ctx, userID, id, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, userID, id)
}

// Complete marks the follow-up done and stamps completed_at.
func (s *Service) Complete(ctx context.Context, userID, id int64) (*domain.FollowUp, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}

	err := s.followUps.UpdateFields(ctx, userID, id, map[string]any{
		"status":       string(domain.FollowUpDone),
		"completed_at": s.now(),
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	affected, err := s.followUps.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// promoteIfLate lazily flips an overdue pending follow-up to late. The write
// is idempotent, so concurrent readers promoting the same row are harmless.
func (s *Service) promoteIfLate(ctx context.Context, userID int64, f *domain.FollowUp) {
	if f.Status != domain.FollowUpPending {
		return
	}
	today := s.now().Format("2006-01-02")
	if f.DueDate >= today {
		return
	}
	f.Status = domain.FollowUpLate
	_ = s.followUps.UpdateFields(ctx, userID, f.ID, map[string]any{
		"status": string(domain.FollowUpLate),
	})
}
