package community

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/community"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/ordering"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/storage"
)

type mockPostRepo struct{ mock.Mock }

func (m *mockPostRepo) Save(ctx context.Context, post *community.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *mockPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*community.Post, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*community.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) FindApproved(ctx context.Context) ([]community.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]community.Post), args.Error(1)
}

func (m *mockPostRepo) FindAll(ctx context.Context) ([]community.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]community.Post), args.Error(1)
}

func (m *mockPostRepo) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostRepo) Update(ctx context.Context, post *community.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *mockPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockOrderCounter struct{ mock.Mock }

func (m *mockOrderCounter) Save(ctx context.Context, order *ordering.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderCounter) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

func (m *mockOrderCounter) FindByUser(ctx context.Context, userID uuid.UUID) ([]ordering.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *mockOrderCounter) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *mockOrderCounter) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderCounter) Update(ctx context.Context, order *ordering.Order) error {
	return m.Called(ctx, order).Error(0)
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the photo under a timestamped key", func(t *testing.T) {
		posts := &mockPostRepo{}
		orders := &mockOrderCounter{}
		stub := storage.NewStubStorage()
		svc := NewService(posts, orders, stub, zap.NewNop())
		svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
		userID := uuid.New()

		orders.On("CountByUser", mock.Anything, userID).Return(int64(2), nil)
		posts.On("Save", mock.Anything, mock.AnythingOfType("*community.Post")).Return(nil)

		post, err := svc.Submit(ctx, userID, SubmitInput{
			Filename:    "Benim Fotoğrafım.JPG",
			ContentType: "image/jpeg",
			Body:        strings.NewReader("jpeg-bytes"),
			Caption:     "İlk kombinim",
		})
		require.NoError(t, err)

		assert.False(t, post.Approved)
		assert.Contains(t, post.ImageURL, "community/1700000000000-")
		_, stored := stub.Object("community/1700000000000-benim-foto-raf-m.jpg")
		assert.True(t, stored)
	})

	t.Run("requires at least one placed order", func(t *testing.T) {
		posts := &mockPostRepo{}
		orders := &mockOrderCounter{}
		svc := NewService(posts, orders, storage.NewStubStorage(), zap.NewNop())
		userID := uuid.New()

		orders.On("CountByUser", mock.Anything, userID).Return(int64(0), nil)

		_, err := svc.Submit(ctx, userID, SubmitInput{Filename: "x.jpg", Body: strings.NewReader("b")})
		var derr shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.ErrCodeOrderRequired, derr.Code)
		posts.AssertNotCalled(t, "Save")
	})
}

func TestService_Moderate(t *testing.T) {
	ctx := context.Background()
	posts := &mockPostRepo{}
	svc := NewService(posts, &mockOrderCounter{}, storage.NewStubStorage(), zap.NewNop())

	post, err := community.NewPost(uuid.New(), "https://cdn.example/x.jpg", "", "")
	require.NoError(t, err)

	posts.On("FindByID", mock.Anything, post.ID).Return(post, nil)
	posts.On("Update", mock.Anything, post).Return(nil)

	got, err := svc.Moderate(ctx, post.ID, true)
	require.NoError(t, err)
	assert.True(t, got.Approved)
}

func TestService_ListForModeration(t *testing.T) {
	ctx := context.Background()
	posts := &mockPostRepo{}
	svc := NewService(posts, &mockOrderCounter{}, storage.NewStubStorage(), zap.NewNop())

	posts.On("FindAll", mock.Anything).Return([]community.Post{}, nil)
	posts.On("CountPending", mock.Anything).Return(int64(3), nil)

	mod, err := svc.ListForModeration(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, mod.PendingCount)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "foto.jpg", sanitizeFilename("FOTO.JPG"))
	assert.Equal(t, "upload", sanitizeFilename("  "))
	assert.Equal(t, "a-b_c-1.png", sanitizeFilename("a b_c?1.png"))
}
