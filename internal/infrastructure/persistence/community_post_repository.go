package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/community"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
)

// GormPostRepository implements community.PostRepository.
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates the repository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) Save(ctx context.Context, post *community.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("save community post: %w", err)
	}
	return nil
}

func (r *GormPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*community.Post, error) {
	var post community.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewNotFoundError("community post", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("find community post: %w", err)
	}
	return &post, nil
}

func (r *GormPostRepository) FindApproved(ctx context.Context) ([]community.Post, error) {
	var posts []community.Post
	err := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list approved posts: %w", err)
	}
	return posts, nil
}

func (r *GormPostRepository) FindAll(ctx context.Context) ([]community.Post, error) {
	var posts []community.Post
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *GormPostRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&community.Post{}).
		Where("approved = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count pending posts: %w", err)
	}
	return count, nil
}

func (r *GormPostRepository) Update(ctx context.Context, post *community.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return fmt.Errorf("update community post: %w", err)
	}
	return nil
}

func (r *GormPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&community.Post{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete community post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.NewNotFoundError("community post", id.String())
	}
	return nil
}
