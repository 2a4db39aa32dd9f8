package catalog

import "context"

// FrontRepository persists cap front panels.
type FrontRepository interface {
	Save(ctx context.Context, front *Front) error
	FindByID(ctx context.Context, id string) (*Front, error)
	// FindAll returns fronts oldest first, matching the curated order.
	FindAll(ctx context.Context) ([]Front, error)
	Delete(ctx context.Context, id string) error
}

// BandanaRepository persists bandanas.
type BandanaRepository interface {
	Save(ctx context.Context, bandana *Bandana) error
	FindByID(ctx context.Context, id string) (*Bandana, error)
	FindAll(ctx context.Context) ([]Bandana, error)
	Delete(ctx context.Context, id string) error
}

// ReadyCapdanaRepository persists curated combinations.
type ReadyCapdanaRepository interface {
	Save(ctx context.Context, rc *ReadyCapdana) error
	FindByID(ctx context.Context, id string) (*ReadyCapdana, error)
	// FindAll returns newest first, matching the storefront listing.
	FindAll(ctx context.Context) ([]ReadyCapdana, error)
	Delete(ctx context.Context, id string) error
}
