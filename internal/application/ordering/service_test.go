package ordering

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/ordering"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared/valueobject"
)

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Save(ctx context.Context, order *ordering.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*ordering.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]ordering.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *mockOrderRepo) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *mockOrderRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepo) Update(ctx context.Context, order *ordering.Order) error {
	return m.Called(ctx, order).Error(0)
}

func newOrder(t *testing.T) *ordering.Order {
	t.Helper()
	o, err := ordering.NewOrder("CPD-X-001", uuid.New(), `[{"id":"capdana-01"}]`, `{}`, valueobject.NewMoneyFromInt(333))
	require.NoError(t, err)
	return o
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes a status condition through", func(t *testing.T) {
		repo := &mockOrderRepo{}
		svc := NewService(repo, zap.NewNop())

		repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Conditions["status"] == "PENDING" && f.Limit == 20
		})).Return([]ordering.Order{*newOrder(t)}, nil)

		out, err := svc.List(ctx, "PENDING", 20, 0)
		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("rejects an unknown status filter", func(t *testing.T) {
		svc := NewService(&mockOrderRepo{}, zap.NewNop())
		_, err := svc.List(ctx, "LOST", 0, 0)
		assert.Error(t, err)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a legal transition", func(t *testing.T) {
		repo := &mockOrderRepo{}
		svc := NewService(repo, zap.NewNop())
		order := newOrder(t)

		repo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		repo.On("Update", mock.Anything, order).Return(nil)

		got, err := svc.UpdateStatus(ctx, order.ID, "PROCESSING")
		require.NoError(t, err)
		assert.Equal(t, ordering.StatusProcessing, got.Status)
	})

	t.Run("illegal transition is not persisted", func(t *testing.T) {
		repo := &mockOrderRepo{}
		svc := NewService(repo, zap.NewNop())
		order := newOrder(t)

		repo.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		_, err := svc.UpdateStatus(ctx, order.ID, "DELIVERED")
		require.Error(t, err)
		repo.AssertNotCalled(t, "Update")
	})
}
