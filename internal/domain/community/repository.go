package community

import (
	"context"

	"github.com/google/uuid"
)

// PostRepository persists community submissions.
type PostRepository interface {
	Save(ctx context.Context, post *Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	// FindApproved returns the public wall, newest first.
	FindApproved(ctx context.Context) ([]Post, error)
	// FindAll returns every submission newest first, for moderation.
	FindAll(ctx context.Context) ([]Post, error)
	CountPending(ctx context.Context) (int64, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
}
