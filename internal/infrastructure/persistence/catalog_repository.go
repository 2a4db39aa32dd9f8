package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/catalog"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
)

// GormFrontRepository implements catalog.FrontRepository.
type GormFrontRepository struct {
	db *gorm.DB
}

// NewGormFrontRepository creates the repository
func NewGormFrontRepository(db *gorm.DB) *GormFrontRepository {
	return &GormFrontRepository{db: db}
}

func (r *GormFrontRepository) Save(ctx context.Context, front *catalog.Front) error {
	if err := r.db.WithContext(ctx).Save(front).Error; err != nil {
		return fmt.Errorf("save front: %w", err)
	}
	return nil
}

func (r *GormFrontRepository) FindByID(ctx context.Context, id string) (*catalog.Front, error) {
	var front catalog.Front
	err := r.db.WithContext(ctx).First(&front, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewNotFoundError("front", id)
	}
	if err != nil {
		return nil, fmt.Errorf("find front: %w", err)
	}
	return &front, nil
}

func (r *GormFrontRepository) FindAll(ctx context.Context) ([]catalog.Front, error) {
	var fronts []catalog.Front
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&fronts).Error; err != nil {
		return nil, fmt.Errorf("list fronts: %w", err)
	}
	return fronts, nil
}

func (r *GormFrontRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&catalog.Front{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete front: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.NewNotFoundError("front", id)
	}
	return nil
}

// GormBandanaRepository implements catalog.BandanaRepository.
type GormBandanaRepository struct {
	db *gorm.DB
}

// NewGormBandanaRepository creates the repository
func NewGormBandanaRepository(db *gorm.DB) *GormBandanaRepository {
	return &GormBandanaRepository{db: db}
}

func (r *GormBandanaRepository) Save(ctx context.Context, bandana *catalog.Bandana) error {
	if err := r.db.WithContext(ctx).Save(bandana).Error; err != nil {
		return fmt.Errorf("save bandana: %w", err)
	}
	return nil
}

func (r *GormBandanaRepository) FindByID(ctx context.Context, id string) (*catalog.Bandana, error) {
	var bandana catalog.Bandana
	err := r.db.WithContext(ctx).First(&bandana, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewNotFoundError("bandana", id)
	}
	if err != nil {
		return nil, fmt.Errorf("find bandana: %w", err)
	}
	return &bandana, nil
}

func (r *GormBandanaRepository) FindAll(ctx context.Context) ([]catalog.Bandana, error) {
	var bandanas []catalog.Bandana
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&bandanas).Error; err != nil {
		return nil, fmt.Errorf("list bandanas: %w", err)
	}
	return bandanas, nil
}

func (r *GormBandanaRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&catalog.Bandana{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete bandana: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.NewNotFoundError("bandana", id)
	}
	return nil
}

// GormReadyCapdanaRepository implements catalog.ReadyCapdanaRepository.
type GormReadyCapdanaRepository struct {
	db *gorm.DB
}

// NewGormReadyCapdanaRepository creates the repository
func NewGormReadyCapdanaRepository(db *gorm.DB) *GormReadyCapdanaRepository {
	return &GormReadyCapdanaRepository{db: db}
}

func (r *GormReadyCapdanaRepository) Save(ctx context.Context, rc *catalog.ReadyCapdana) error {
	if err := r.db.WithContext(ctx).Save(rc).Error; err != nil {
		return fmt.Errorf("save ready capdana: %w", err)
	}
	return nil
}

func (r *GormReadyCapdanaRepository) FindByID(ctx context.Context, id string) (*catalog.ReadyCapdana, error) {
	var rc catalog.ReadyCapdana
	err := r.db.WithContext(ctx).First(&rc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewNotFoundError("ready capdana", id)
	}
	if err != nil {
		return nil, fmt.Errorf("find ready capdana: %w", err)
	}
	return &rc, nil
}

func (r *GormReadyCapdanaRepository) FindAll(ctx context.Context) ([]catalog.ReadyCapdana, error) {
	var rcs []catalog.ReadyCapdana
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&rcs).Error; err != nil {
		return nil, fmt.Errorf("list ready capdanas: %w", err)
	}
	return rcs, nil
}

func (r *GormReadyCapdanaRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&catalog.ReadyCapdana{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete ready capdana: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.NewNotFoundError("ready capdana", id)
	}
	return nil
}
