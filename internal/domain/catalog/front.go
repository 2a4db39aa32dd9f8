package catalog

import (
	"time"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
)

// Front is a cap front panel customers combine with a bandana. Catalog
// entities keep human-readable string IDs from the source data
// ("front-01") rather than uuids.
type Front struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Image     string    `gorm:"size:1024" json:"image"`
	Slug      string    `gorm:"size:255;uniqueIndex" json:"slug"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName implements gorm's Tabler
func (Front) TableName() string { return "fronts" }

// NewFront validates and creates a front panel
func NewFront(id, name, image string) (*Front, error) {
	if id == "" {
		return nil, shared.NewInvalidInputError("front id is required")
	}
	if name == "" {
		return nil, shared.NewInvalidInputError("front name is required")
	}
	now := time.Now()
	return &Front{
		ID:        id,
		Name:      name,
		Image:     image,
		Slug:      Slugify(name),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename updates the name and regenerates the slug
func (f *Front) Rename(name string) error {
	if name == "" {
		return shared.NewInvalidInputError("front name is required")
	}
	f.Name = name
	f.Slug = Slugify(name)
	f.UpdatedAt = time.Now()
	return nil
}
