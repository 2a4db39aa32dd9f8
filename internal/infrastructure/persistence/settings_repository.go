package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/settings"
)

// GormSettingsRepository implements settings.Repository on the
// singleton row.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates the repository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.SiteSettings, error) {
	var s settings.SiteSettings
	err := r.db.WithContext(ctx).First(&s, "id = ?", settings.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &s, nil
}

func (r *GormSettingsRepository) Save(ctx context.Context, s *settings.SiteSettings) error {
	s.ID = settings.SingletonID
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(s).Error
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
