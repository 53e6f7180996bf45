package note

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fieldcrm/internal/domain"
)

type Service struct {
	notes NoteRepository
}

func NewService(notes NoteRepository) *Service {
	return &Service{notes: notes}
}

// Get returns the note for a date. A missing note is not an error; callers
// get an empty-content note for the requested date.
func (s *Service) Get(ctx context.Context, userID int64, date string) (*domain.DailyNote, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrValidation
	}

	n, err := s.notes.GetByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uid := userID
			return &domain.DailyNote{UserID: &uid, Date: date, Content: ""}, nil
		}
		return nil, err
	}
	return n, nil
}

func (s *Service) Put(ctx context.Context, userID int64, date, content string) (*domain.DailyNote, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrValidation
	}
	return s.notes.Upsert(ctx, userID, date, content)
}
