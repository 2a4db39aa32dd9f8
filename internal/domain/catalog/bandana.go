package catalog

import (
	"time"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
)

// Bandana is the fabric half of a configuration.
type Bandana struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Image     string    `gorm:"size:1024" json:"image"`
	Slug      string    `gorm:"size:255;uniqueIndex" json:"slug"`
	Rarity    Rarity    `gorm:"size:16;not null" json:"rarity"`
	Color     string    `gorm:"size:64" json:"color"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName implements gorm's Tabler
func (Bandana) TableName() string { return "bandanas" }

// NewBandana validates and creates a bandana
func NewBandana(id, name, image string, rarity Rarity, color string) (*Bandana, error) {
	if id == "" {
		return nil, shared.NewInvalidInputError("bandana id is required")
	}
	if name == "" {
		return nil, shared.NewInvalidInputError("bandana name is required")
	}
	if !rarity.Valid() {
		return nil, shared.NewInvalidInputError("unknown rarity: " + string(rarity))
	}
	now := time.Now()
	return &Bandana{
		ID:        id,
		Name:      name,
		Image:     image,
		Slug:      Slugify(name),
		Rarity:    rarity,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename updates the name and regenerates the slug
func (b *Bandana) Rename(name string) error {
	if name == "" {
		return shared.NewInvalidInputError("bandana name is required")
	}
	b.Name = name
	b.Slug = Slugify(name)
	b.UpdatedAt = time.Now()
	return nil
}
