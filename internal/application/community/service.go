// Package community handles photo submissions and their moderation.
package community

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/community"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/ordering"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/storage"
)

// Service manages the community wall.
type Service struct {
	posts   community.PostRepository
	orders  ordering.OrderRepository
	storage storage.ObjectStorage
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates the community service
func NewService(
	posts community.PostRepository,
	orders ordering.OrderRepository,
	objectStorage storage.ObjectStorage,
	logger *zap.Logger,
) *Service {
	return &Service{
		posts:   posts,
		orders:  orders,
		storage: objectStorage,
		logger:  logger.Named("community"),
		now:     time.Now,
	}
}

// ListApproved returns the public wall, newest first
func (s *Service) ListApproved(ctx context.Context) ([]community.Post, error) {
	return s.posts.FindApproved(ctx)
}

// Moderation bundles everything the admin list needs.
type Moderation struct {
	Posts        []community.Post `json:"posts"`
	PendingCount int64            `json:"pending_count"`
}

// ListForModeration returns all posts with the pending counter
func (s *Service) ListForModeration(ctx context.Context) (*Moderation, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.posts.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	return &Moderation{Posts: posts, PendingCount: pending}, nil
}

// SubmitInput carries a photo submission.
type SubmitInput struct {
	Filename    string
	ContentType string
	Body        io.Reader
	Caption     string
	Combo       string
}

// Submit stores the photo and creates an unapproved post. Only
// customers with at least one placed order may submit.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, in SubmitInput) (*community.Post, error) {
	count, err := s.orders.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, shared.NewDomainError(shared.ErrCodeOrderRequired,
			"community submissions require a placed order")
	}

	key := fmt.Sprintf("community/%d-%s", s.now().UnixMilli(), sanitizeFilename(in.Filename))
	url, err := s.storage.Put(ctx, key, in.Body, in.ContentType)
	if err != nil {
		return nil, err
	}

	post, err := community.NewPost(userID, url, in.Caption, in.Combo)
	if err != nil {
		return nil, err
	}
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("community post submitted",
		zap.String("post_id", post.ID.String()),
		zap.String("user_id", userID.String()),
	)
	return post, nil
}

// Moderate records an approve or reject decision
func (s *Service) Moderate(ctx context.Context, id uuid.UUID, approved bool) (*community.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.SetApproved(approved)
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.posts.Delete(ctx, id)
}

// sanitizeFilename keeps object keys flat and predictable.
func sanitizeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "upload"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
