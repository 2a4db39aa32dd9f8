// Package ordering serves the admin order workflow.
package ordering

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/ordering"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
)

// Service lists orders and moves them along the lifecycle.
type Service struct {
	orders ordering.OrderRepository
	logger *zap.Logger
}

// NewService creates the admin ordering service
func NewService(orders ordering.OrderRepository, logger *zap.Logger) *Service {
	return &Service{orders: orders, logger: logger.Named("ordering")}
}

// List returns all orders newest first, optionally filtered by status
func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]ordering.Order, error) {
	filter := shared.NewFilter().WithPagination(limit, offset)
	if status != "" {
		if !ordering.Status(status).Valid() {
			return nil, shared.NewInvalidInputError("unknown order status: " + status)
		}
		filter = filter.WithCondition("status", status)
	}
	return s.orders.FindAll(ctx, filter)
}

// UpdateStatus transitions one order
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*ordering.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.ChangeStatus(ordering.Status(status)); err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	s.logger.Info("order status changed",
		zap.String("number", order.Number),
		zap.String("status", status),
	)
	return order, nil
}
