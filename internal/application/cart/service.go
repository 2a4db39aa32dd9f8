// Package cart binds the cart store to catalog pricing and the
// per-request cart key.
package cart

import (
	"context"

	"go.uber.org/zap"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/cart"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/catalog"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/settings"
)

// CustomDisplayName labels customer-built configurations in the cart.
const CustomDisplayName = "Özel Tasarım Capdana"

// Service constructs a hydrated cart store per request and applies one
// operation against it. Prices are locked into the line at add time.
type Service struct {
	backing   cart.BackingStore
	sink      cart.Sink
	ready     catalog.ReadyCapdanaRepository
	fronts    catalog.FrontRepository
	bandanas  catalog.BandanaRepository
	settings  settings.Repository
	keyPrefix string
	logger    *zap.Logger
}

// NewService creates the cart service
func NewService(
	backing cart.BackingStore,
	sink cart.Sink,
	ready catalog.ReadyCapdanaRepository,
	fronts catalog.FrontRepository,
	bandanas catalog.BandanaRepository,
	settingsRepo settings.Repository,
	keyPrefix string,
	logger *zap.Logger,
) *Service {
	return &Service{
		backing:   backing,
		sink:      sink,
		ready:     ready,
		fronts:    fronts,
		bandanas:  bandanas,
		settings:  settingsRepo,
		keyPrefix: keyPrefix,
		logger:    logger.Named("cart"),
	}
}

// load builds and hydrates the store for one cart key.
func (s *Service) load(ctx context.Context, cartID string) *cart.Store {
	store := cart.NewStore(s.keyPrefix+cartID, s.backing, s.sink)
	store.Hydrate(ctx)
	return store
}

func (s *Service) pricing(ctx context.Context) (*settings.SiteSettings, error) {
	stored, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return settings.Defaults(), nil
	}
	return stored, nil
}

// Get returns the current snapshot for the cart
func (s *Service) Get(ctx context.Context, cartID string) *Response {
	return toResponse(cartID, s.load(ctx, cartID).Snapshot())
}

// AddReadyItem quotes a curated capdana at its current price and adds
// it to the cart.
func (s *Service) AddReadyItem(ctx context.Context, cartID, readyID string, quantity int) (*Response, error) {
	rc, err := s.ready.FindByID(ctx, readyID)
	if err != nil {
		return nil, err
	}
	pricing, err := s.pricing(ctx)
	if err != nil {
		return nil, err
	}

	price := pricing.ReadyPrice
	if rc.Price != nil {
		price = *rc.Price
	}

	store := s.load(ctx, cartID)
	store.AddItem(ctx, cart.LineItem{
		ID:          rc.ID,
		Kind:        cart.KindCatalog,
		DisplayName: rc.Name,
		UnitPrice:   price.Amount(),
		Quantity:    quantity,
		ImageRef:    rc.Image,
	})
	return toResponse(cartID, store.Snapshot()), nil
}

// AddCustomItem quotes a front+bandana configuration at the current
// custom price and adds it. The line id derives from the components,
// so the same combination merges.
func (s *Service) AddCustomItem(ctx context.Context, cartID, frontID, bandanaID string, quantity int) (*Response, error) {
	front, err := s.fronts.FindByID(ctx, frontID)
	if err != nil {
		return nil, err
	}
	bandana, err := s.bandanas.FindByID(ctx, bandanaID)
	if err != nil {
		return nil, err
	}
	pricing, err := s.pricing(ctx)
	if err != nil {
		return nil, err
	}

	store := s.load(ctx, cartID)
	store.AddItem(ctx, cart.LineItem{
		ID:          cart.CustomItemID(front.ID, bandana.ID),
		Kind:        cart.KindCustom,
		DisplayName: CustomDisplayName,
		UnitPrice:   pricing.CustomPrice.Amount(),
		Quantity:    quantity,
		Components:  &cart.ComponentRefs{FrontID: front.ID, BandanaID: bandana.ID},
		ImageRef:    front.Image,
	})
	return toResponse(cartID, store.Snapshot()), nil
}

// UpdateQuantity replaces a line's quantity. Unknown lines and
// quantities below 1 leave the cart unchanged.
func (s *Service) UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) *Response {
	store := s.load(ctx, cartID)
	store.UpdateItemQuantity(ctx, itemID, quantity)
	return toResponse(cartID, store.Snapshot())
}

// Remove drops a line
func (s *Service) Remove(ctx context.Context, cartID, itemID string) *Response {
	store := s.load(ctx, cartID)
	store.RemoveItem(ctx, itemID)
	return toResponse(cartID, store.Snapshot())
}

// Clear empties the cart
func (s *Service) Clear(ctx context.Context, cartID string) {
	s.load(ctx, cartID).Clear(ctx)
}

// Snapshot exposes the raw domain snapshot for checkout
func (s *Service) Snapshot(ctx context.Context, cartID string) cart.Snapshot {
	return s.load(ctx, cartID).Snapshot()
}
