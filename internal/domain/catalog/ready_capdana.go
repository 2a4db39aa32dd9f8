package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared/valueobject"
)

// Tags is a string list persisted as a JSON column.
type Tags []string

// Value implements driver.Valuer
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (t *Tags) Scan(value any) error {
	if value == nil {
		*t = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("cannot scan %T into Tags", value)
	}
}

// ReadyCapdana is a curated front+bandana combination sold as-is. Price
// is optional; nil falls back to the site-wide ready price.
type ReadyCapdana struct {
	ID        string             `gorm:"primaryKey;size:64" json:"id"`
	Name      string             `gorm:"size:255;not null" json:"name"`
	Image     string             `gorm:"size:1024" json:"image"`
	Slug      string             `gorm:"size:255;uniqueIndex" json:"slug"`
	FrontID   string             `gorm:"size:64;not null" json:"front_id"`
	BandanaID string             `gorm:"size:64;not null" json:"bandana_id"`
	Rarity    Rarity             `gorm:"size:16;not null" json:"rarity"`
	Price     *valueobject.Money `gorm:"type:decimal(12,2)" json:"price,omitempty"`
	Tags      Tags               `gorm:"type:text" json:"tags"`
	CreatedAt time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName implements gorm's Tabler
func (ReadyCapdana) TableName() string { return "ready_capdanas" }

// NewReadyCapdana validates and creates a curated combination. The
// referenced front and bandana IDs are checked against the catalog by
// the application layer.
func NewReadyCapdana(id, name, image, frontID, bandanaID string, rarity Rarity, price *valueobject.Money, tags Tags) (*ReadyCapdana, error) {
	if id == "" {
		return nil, shared.NewInvalidInputError("ready capdana id is required")
	}
	if name == "" {
		return nil, shared.NewInvalidInputError("ready capdana name is required")
	}
	if frontID == "" || bandanaID == "" {
		return nil, shared.NewInvalidInputError("ready capdana needs front and bandana references")
	}
	if !rarity.Valid() {
		return nil, shared.NewInvalidInputError("unknown rarity: " + string(rarity))
	}
	if price != nil && price.IsNegative() {
		return nil, shared.NewInvalidInputError("price must not be negative")
	}
	now := time.Now()
	return &ReadyCapdana{
		ID:        id,
		Name:      name,
		Image:     image,
		Slug:      Slugify(name),
		FrontID:   frontID,
		BandanaID: bandanaID,
		Rarity:    rarity,
		Price:     price,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename updates the name and regenerates the slug
func (rc *ReadyCapdana) Rename(name string) error {
	if name == "" {
		return shared.NewInvalidInputError("ready capdana name is required")
	}
	rc.Name = name
	rc.Slug = Slugify(name)
	rc.UpdatedAt = time.Now()
	return nil
}
