package repository

import (
	"context"

	"gorm.io/gorm"

	"fieldcrm/internal/domain"
)

type DailyNoteRepository struct {
	db *gorm.DB
}

func NewDailyNoteRepository(db *gorm.DB) *DailyNoteRepository {
	return &DailyNoteRepository{db: db}
}

func (r *DailyNoteRepository) GetByDate(ctx context.Context, userID int64, date string) (*domain.DailyNote, error) {
	var n domain.DailyNote
	if err := tenantScope(r.db.WithContext(ctx), userID).Where("date = ?", date).First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// Upsert writes the one note a tenant has for a date, creating it on first save.
func (r *DailyNoteRepository) Upsert(ctx context.Context, userID int64, date, content string) (*domain.DailyNote, error) {
	existing, err := r.GetByDate(ctx, userID, date)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		uid := userID
		n := &domain.DailyNote{UserID: &uid, Date: date, Content: content}
		if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
			return nil, err
		}
		return n, nil
	}

	err = r.db.WithContext(ctx).Model(&domain.DailyNote{}).
		Where("id = ?", existing.ID).
		Update("content", content).Error
	if err != nil {
		return nil, err
	}
	existing.Content = content
	return existing, nil
}
