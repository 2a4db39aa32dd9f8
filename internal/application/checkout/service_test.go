package checkout

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domaincart "github.com/ozercanmutlu-ship-it/capdana/internal/domain/cart"
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
	if o := args.Get(0); o != nil {
		return o.([]ordering.Order), args.Error(1)
	}
	return nil, args.Error(1)
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

type fakeCartGateway struct {
	snapshot domaincart.Snapshot
	cleared  []string
}

func (f *fakeCartGateway) Snapshot(_ context.Context, _ string) domaincart.Snapshot {
	return f.snapshot
}

func (f *fakeCartGateway) Clear(_ context.Context, cartID string) {
	f.cleared = append(f.cleared, cartID)
}

func filledSnapshot() domaincart.Snapshot {
	return domaincart.Snapshot{
		Items: []domaincart.LineItem{{
			ID:          "capdana-01",
			Kind:        domaincart.KindCatalog,
			DisplayName: "Retro Wave",
			UnitPrice:   decimal.NewFromInt(333),
			Quantity:    2,
		}},
		TotalQuantity: 2,
		TotalAmount:   decimal.NewFromInt(666),
	}
}

func validForm() ShippingForm {
	return ShippingForm{
		FullName: "Ayşe Yılmaz",
		Phone:    "+90 555 000 00 00",
		Address:  "Kadıköy, İstanbul",
	}
}

func TestService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("saves the order and then clears the cart", func(t *testing.T) {
		repo := &mockOrderRepo{}
		gateway := &fakeCartGateway{snapshot: filledSnapshot()}
		svc := NewService(repo, gateway, zap.NewNop())
		userID := uuid.New()

		var saved *ordering.Order
		repo.On("Save", mock.Anything, mock.AnythingOfType("*ordering.Order")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*ordering.Order) }).
			Return(nil)

		resp, err := svc.CreateOrder(ctx, userID, "c1", validForm())
		require.NoError(t, err)

		assert.Equal(t, []string{"c1"}, gateway.cleared)
		assert.Equal(t, "PENDING", resp.Status)
		assert.Equal(t, "666", resp.TotalAmount)
		assert.Regexp(t, regexp.MustCompile(`^CPD-[0-9A-Z]+-\d{3}$`), resp.Number)
		require.NotNil(t, saved)
		assert.Equal(t, userID, saved.UserID)
		assert.Contains(t, saved.Items, "capdana-01")
		assert.Contains(t, saved.Shipping, "Ayşe Yılmaz")
	})

	t.Run("failed save leaves the cart intact", func(t *testing.T) {
		repo := &mockOrderRepo{}
		gateway := &fakeCartGateway{snapshot: filledSnapshot()}
		svc := NewService(repo, gateway, zap.NewNop())

		repo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := svc.CreateOrder(ctx, uuid.New(), "c1", validForm())
		require.Error(t, err)
		assert.Empty(t, gateway.cleared)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		repo := &mockOrderRepo{}
		gateway := &fakeCartGateway{}
		svc := NewService(repo, gateway, zap.NewNop())

		_, err := svc.CreateOrder(ctx, uuid.New(), "c1", validForm())
		var derr shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.ErrCodeEmptyCart, derr.Code)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("incomplete shipping form is rejected", func(t *testing.T) {
		repo := &mockOrderRepo{}
		gateway := &fakeCartGateway{snapshot: filledSnapshot()}
		svc := NewService(repo, gateway, zap.NewNop())

		form := validForm()
		form.Address = "  "
		_, err := svc.CreateOrder(ctx, uuid.New(), "c1", form)
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
		assert.Empty(t, gateway.cleared)
	})
}

func TestService_ListMyOrders(t *testing.T) {
	ctx := context.Background()
	repo := &mockOrderRepo{}
	svc := NewService(repo, &fakeCartGateway{}, zap.NewNop())
	userID := uuid.New()

	order, err := ordering.NewOrder("CPD-X-001", userID, `[{"id":"capdana-01"}]`, `{}`,
		valueobject.NewMoneyFromInt(333))
	require.NoError(t, err)
	repo.On("FindByUser", mock.Anything, userID).Return([]ordering.Order{*order}, nil)

	out, err := svc.ListMyOrders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "CPD-X-001", out[0].Number)
	assert.Equal(t, "333", out[0].TotalAmount)
}

func TestNewOrderNumber(t *testing.T) {
	at := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	number := NewOrderNumber(at)
	assert.Regexp(t, regexp.MustCompile(`^CPD-[0-9A-Z]+-\d{3}$`), number)
}
