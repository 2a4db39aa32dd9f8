// Package checkout turns a cart snapshot into a pending bank-transfer
// order.
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domaincart "github.com/ozercanmutlu-ship-it/capdana/internal/domain/cart"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/ordering"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared/valueobject"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/telemetry"
)

// CartGateway is the slice of the cart service checkout needs. Clear
// is fire-and-forget; cart persistence failures never fail an order.
type CartGateway interface {
	Snapshot(ctx context.Context, cartID string) domaincart.Snapshot
	Clear(ctx context.Context, cartID string)
}

// ShippingForm is the address block submitted with an order.
type ShippingForm struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Address  string `json:"address" binding:"required"`
	Note     string `json:"note"`
}

// OrderResponse is an order as returned to clients.
type OrderResponse struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"number"`
	Status      string          `json:"status"`
	Items       json.RawMessage `json:"items"`
	Shipping    json.RawMessage `json:"shipping"`
	TotalAmount string          `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Service submits and lists orders.
type Service struct {
	orders ordering.OrderRepository
	carts  CartGateway
	logger *zap.Logger
}

// NewService creates the checkout service
func NewService(orders ordering.OrderRepository, carts CartGateway, logger *zap.Logger) *Service {
	return &Service{orders: orders, carts: carts, logger: logger.Named("checkout")}
}

// CreateOrder reads one consistent cart snapshot, persists the order,
// and clears the cart only after the save succeeded. A failed save
// leaves the cart intact for retry.
func (s *Service) CreateOrder(ctx context.Context, userID uuid.UUID, cartID string, form ShippingForm) (*OrderResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "checkout", "create_order")
	defer span.End()

	snap := s.carts.Snapshot(ctx, cartID)
	if len(snap.Items) == 0 {
		return nil, shared.NewDomainError(shared.ErrCodeEmptyCart, "cart is empty")
	}
	if err := validateShipping(form); err != nil {
		return nil, err
	}

	itemsJSON, err := json.Marshal(snap.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal cart items: %w", err)
	}
	shippingJSON, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("marshal shipping form: %w", err)
	}

	order, err := ordering.NewOrder(
		NewOrderNumber(time.Now()),
		userID,
		string(itemsJSON),
		string(shippingJSON),
		valueobject.NewMoney(snap.TotalAmount, valueobject.DefaultCurrency),
	)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, order); err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("order save failed", zap.String("cart_id", cartID), zap.Error(err))
		return nil, err
	}

	// Cart clearing is best effort once the order exists.
	s.carts.Clear(ctx, cartID)

	s.logger.Info("order placed",
		zap.String("number", order.Number),
		zap.String("user_id", userID.String()),
		zap.Int("lines", len(snap.Items)),
	)
	return toOrderResponse(order), nil
}

// ListMyOrders returns the caller's orders, newest first
func (s *Service) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]OrderResponse, error) {
	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *toOrderResponse(&orders[i]))
	}
	return out, nil
}

func validateShipping(form ShippingForm) error {
	if strings.TrimSpace(form.FullName) == "" {
		return shared.NewInvalidInputError("shipping name is required")
	}
	if strings.TrimSpace(form.Phone) == "" {
		return shared.NewInvalidInputError("shipping phone is required")
	}
	if strings.TrimSpace(form.Address) == "" {
		return shared.NewInvalidInputError("shipping address is required")
	}
	return nil
}

// NewOrderNumber builds a customer-facing order number from the
// submission time and a random suffix, e.g. CPD-MBXK2J1C-042.
func NewOrderNumber(at time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))
	return fmt.Sprintf("CPD-%s-%03d", ts, rand.IntN(1000))
}

func toOrderResponse(order *ordering.Order) *OrderResponse {
	return &OrderResponse{
		ID:          order.ID,
		Number:      order.Number,
		Status:      string(order.Status),
		Items:       json.RawMessage(order.Items),
		Shipping:    json.RawMessage(order.Shipping),
		TotalAmount: order.TotalAmount.Amount().String(),
		CreatedAt:   order.CreatedAt,
	}
}
