package settings

import "context"

// Repository persists the singleton settings row.
type Repository interface {
	// Get returns the stored settings, or (nil, nil) when the row has
	// never been written. Callers fall back to Defaults.
	Get(ctx context.Context) (*SiteSettings, error)
	Save(ctx context.Context, s *SiteSettings) error
}
