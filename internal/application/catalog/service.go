// Package catalog orchestrates the public catalog and its admin CRUD.
package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/catalog"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared/valueobject"
)

// Service serves catalog reads and admin writes.
type Service struct {
	fronts   catalog.FrontRepository
	bandanas catalog.BandanaRepository
	ready    catalog.ReadyCapdanaRepository
	logger   *zap.Logger
}

// NewService creates the catalog service
func NewService(
	fronts catalog.FrontRepository,
	bandanas catalog.BandanaRepository,
	ready catalog.ReadyCapdanaRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		fronts:   fronts,
		bandanas: bandanas,
		ready:    ready,
		logger:   logger.Named("catalog"),
	}
}

// ListFronts returns the curated fronts, oldest first
func (s *Service) ListFronts(ctx context.Context) ([]catalog.Front, error) {
	return s.fronts.FindAll(ctx)
}

// ListBandanas returns all bandanas
func (s *Service) ListBandanas(ctx context.Context) ([]catalog.Bandana, error) {
	return s.bandanas.FindAll(ctx)
}

// ListReadyCapdanas returns curated combinations, newest first
func (s *Service) ListReadyCapdanas(ctx context.Context) ([]catalog.ReadyCapdana, error) {
	return s.ready.FindAll(ctx)
}

// CreateFrontInput carries the admin create/update payload
type CreateFrontInput struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

// CreateFront adds a front panel
func (s *Service) CreateFront(ctx context.Context, in CreateFrontInput) (*catalog.Front, error) {
	if existing, err := s.fronts.FindByID(ctx, in.ID); err == nil && existing != nil {
		return nil, shared.NewAlreadyExistsError("front", in.ID)
	}
	front, err := catalog.NewFront(in.ID, in.Name, in.Image)
	if err != nil {
		return nil, err
	}
	if err := s.fronts.Save(ctx, front); err != nil {
		return nil, err
	}
	s.logger.Info("front created", zap.String("id", front.ID))
	return front, nil
}

// UpdateFront renames a front and refreshes its image
func (s *Service) UpdateFront(ctx context.Context, id string, in CreateFrontInput) (*catalog.Front, error) {
	front, err := s.fronts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := front.Rename(in.Name); err != nil {
		return nil, err
	}
	if in.Image != "" {
		front.Image = in.Image
	}
	if err := s.fronts.Save(ctx, front); err != nil {
		return nil, err
	}
	return front, nil
}

// DeleteFront removes a front
func (s *Service) DeleteFront(ctx context.Context, id string) error {
	return s.fronts.Delete(ctx, id)
}

// CreateBandanaInput carries the admin payload
type CreateBandanaInput struct {
	ID     string `json:"id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Image  string `json:"image"`
	Rarity string `json:"rarity" binding:"required,rarity"`
	Color  string `json:"color"`
}

// CreateBandana adds a bandana
func (s *Service) CreateBandana(ctx context.Context, in CreateBandanaInput) (*catalog.Bandana, error) {
	if existing, err := s.bandanas.FindByID(ctx, in.ID); err == nil && existing != nil {
		return nil, shared.NewAlreadyExistsError("bandana", in.ID)
	}
	bandana, err := catalog.NewBandana(in.ID, in.Name, in.Image, catalog.Rarity(in.Rarity), in.Color)
	if err != nil {
		return nil, err
	}
	if err := s.bandanas.Save(ctx, bandana); err != nil {
		return nil, err
	}
	s.logger.Info("bandana created", zap.String("id", bandana.ID))
	return bandana, nil
}

// UpdateBandana renames a bandana and refreshes its grade and look
func (s *Service) UpdateBandana(ctx context.Context, id string, in CreateBandanaInput) (*catalog.Bandana, error) {
	bandana, err := s.bandanas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := bandana.Rename(in.Name); err != nil {
		return nil, err
	}
	rarity := catalog.Rarity(in.Rarity)
	if !rarity.Valid() {
		return nil, shared.NewInvalidInputError("unknown rarity: " + in.Rarity)
	}
	bandana.Rarity = rarity
	if in.Image != "" {
		bandana.Image = in.Image
	}
	if in.Color != "" {
		bandana.Color = in.Color
	}
	if err := s.bandanas.Save(ctx, bandana); err != nil {
		return nil, err
	}
	return bandana, nil
}

// DeleteBandana removes a bandana
func (s *Service) DeleteBandana(ctx context.Context, id string) error {
	return s.bandanas.Delete(ctx, id)
}

// CreateReadyCapdanaInput carries the admin payload. Price is an
// optional decimal string; empty falls back to the site-wide price.
type CreateReadyCapdanaInput struct {
	ID        string   `json:"id" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Image     string   `json:"image"`
	FrontID   string   `json:"front_id" binding:"required"`
	BandanaID string   `json:"bandana_id" binding:"required"`
	Rarity    string   `json:"rarity" binding:"required,rarity"`
	Price     string   `json:"price"`
	Tags      []string `json:"tags"`
}

// CreateReadyCapdana adds a curated combination after checking that the
// referenced components exist.
func (s *Service) CreateReadyCapdana(ctx context.Context, in CreateReadyCapdanaInput) (*catalog.ReadyCapdana, error) {
	if existing, err := s.ready.FindByID(ctx, in.ID); err == nil && existing != nil {
		return nil, shared.NewAlreadyExistsError("ready capdana", in.ID)
	}
	if _, err := s.fronts.FindByID(ctx, in.FrontID); err != nil {
		return nil, err
	}
	if _, err := s.bandanas.FindByID(ctx, in.BandanaID); err != nil {
		return nil, err
	}

	var price *valueobject.Money
	if in.Price != "" {
		p, err := valueobject.NewMoneyFromString(in.Price)
		if err != nil {
			return nil, shared.NewInvalidInputError("invalid price: " + in.Price)
		}
		price = &p
	}

	rc, err := catalog.NewReadyCapdana(in.ID, in.Name, in.Image, in.FrontID, in.BandanaID, catalog.Rarity(in.Rarity), price, catalog.Tags(in.Tags))
	if err != nil {
		return nil, err
	}
	if err := s.ready.Save(ctx, rc); err != nil {
		return nil, err
	}
	s.logger.Info("ready capdana created", zap.String("id", rc.ID))
	return rc, nil
}

// UpdateReadyCapdana reworks a curated combination. Changed component
// references are checked the same way as on create; an empty price
// clears the override back to the site-wide ready price.
func (s *Service) UpdateReadyCapdana(ctx context.Context, id string, in CreateReadyCapdanaInput) (*catalog.ReadyCapdana, error) {
	rc, err := s.ready.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := rc.Rename(in.Name); err != nil {
		return nil, err
	}
	if in.FrontID != rc.FrontID {
		if _, err := s.fronts.FindByID(ctx, in.FrontID); err != nil {
			return nil, err
		}
		rc.FrontID = in.FrontID
	}
	if in.BandanaID != rc.BandanaID {
		if _, err := s.bandanas.FindByID(ctx, in.BandanaID); err != nil {
			return nil, err
		}
		rc.BandanaID = in.BandanaID
	}
	rarity := catalog.Rarity(in.Rarity)
	if !rarity.Valid() {
		return nil, shared.NewInvalidInputError("unknown rarity: " + in.Rarity)
	}
	rc.Rarity = rarity
	if in.Image != "" {
		rc.Image = in.Image
	}
	rc.Tags = catalog.Tags(in.Tags)

	if in.Price == "" {
		rc.Price = nil
	} else {
		p, err := valueobject.NewMoneyFromString(in.Price)
		if err != nil {
			return nil, shared.NewInvalidInputError("invalid price: " + in.Price)
		}
		rc.Price = &p
	}

	if err := s.ready.Save(ctx, rc); err != nil {
		return nil, err
	}
	return rc, nil
}

// DeleteReadyCapdana removes a curated combination
func (s *Service) DeleteReadyCapdana(ctx context.Context, id string) error {
	return s.ready.Delete(ctx, id)
}
