package note

import (
	"context"

	"fieldcrm/internal/domain"
)

type NoteRepository interface {
	GetByDate(ctx context.Context, userID int64, date string) (*domain.DailyNote, error)
	Upsert(ctx context.Context, userID int64, date, content string) (*domain.DailyNote, error)
}
