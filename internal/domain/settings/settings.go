package settings

import (
	"time"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared/valueobject"
)

// SingletonID keys the one site settings row.
const SingletonID = "default"

// Default prices in TRY, used until staff override them.
const (
	DefaultReadyPrice  = 333
	DefaultCustomPrice = 444
)

// SiteSettings is the singleton pricing row. Changing a price only
// affects future cart adds; quoted lines keep their locked price.
type SiteSettings struct {
	ID          string            `gorm:"primaryKey;size:32" json:"id"`
	ReadyPrice  valueobject.Money `gorm:"type:decimal(12,2)" json:"ready_price"`
	CustomPrice valueobject.Money `gorm:"type:decimal(12,2)" json:"custom_price"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName implements gorm's Tabler
func (SiteSettings) TableName() string { return "site_settings" }

// Defaults returns the built-in pricing
func Defaults() *SiteSettings {
	return &SiteSettings{
		ID:          SingletonID,
		ReadyPrice:  valueobject.NewMoneyFromInt(DefaultReadyPrice),
		CustomPrice: valueobject.NewMoneyFromInt(DefaultCustomPrice),
		UpdatedAt:   time.Now(),
	}
}

// UpdatePrices validates and replaces both prices
func (s *SiteSettings) UpdatePrices(ready, custom valueobject.Money) error {
	if ready.IsNegative() || custom.IsNegative() {
		return shared.NewInvalidInputError("prices must not be negative")
	}
	s.ReadyPrice = ready
	s.CustomPrice = custom
	s.UpdatedAt = time.Now()
	return nil
}
