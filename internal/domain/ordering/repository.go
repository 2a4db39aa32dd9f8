package ordering

import (
	"context"

	"github.com/google/uuid"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
)

// OrderRepository persists orders.
type OrderRepository interface {
	Save(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindByUser returns the user's orders, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	// FindAll returns all orders newest first, honoring filter limits.
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, order *Order) error
}
