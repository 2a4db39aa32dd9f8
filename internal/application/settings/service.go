// Package settings serves the admin pricing surface.
package settings

import (
	"context"

	"go.uber.org/zap"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/settings"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared/valueobject"
)

// Service reads and updates the singleton pricing row.
type Service struct {
	repo   settings.Repository
	logger *zap.Logger
}

// NewService creates the settings service
func NewService(repo settings.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger.Named("settings")}
}

// Get returns the stored settings, falling back to the defaults
func (s *Service) Get(ctx context.Context) (*settings.SiteSettings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return settings.Defaults(), nil
	}
	return stored, nil
}

// UpdateInput carries the new prices as decimal strings
type UpdateInput struct {
	ReadyPrice  string `json:"ready_price" binding:"required"`
	CustomPrice string `json:"custom_price" binding:"required"`
}

// Update validates and upserts the prices
func (s *Service) Update(ctx context.Context, in UpdateInput) (*settings.SiteSettings, error) {
	ready, err := valueobject.NewMoneyFromString(in.ReadyPrice)
	if err != nil {
		return nil, shared.NewInvalidInputError("invalid ready price: " + in.ReadyPrice)
	}
	custom, err := valueobject.NewMoneyFromString(in.CustomPrice)
	if err != nil {
		return nil, shared.NewInvalidInputError("invalid custom price: " + in.CustomPrice)
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := current.UpdatePrices(ready, custom); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}

	s.logger.Info("site prices updated",
		zap.String("ready_price", in.ReadyPrice),
		zap.String("custom_price", in.CustomPrice),
	)
	return current, nil
}
