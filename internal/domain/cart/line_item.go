package cart

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemKind distinguishes curated catalog products from customer-built
// configurations.
type ItemKind string

const (
	KindCatalog ItemKind = "catalog"
	KindCustom  ItemKind = "custom"
)

// ComponentRefs identifies the parts a custom configuration was built
// from. Present on custom items only.
type ComponentRefs struct {
	FrontID   string `json:"front_id"`
	BandanaID string `json:"bandana_id"`
}

// LineItem is a single cart line. The unit price is locked at add time;
// later price changes never touch items already in a cart.
type LineItem struct {
	ID          string          `json:"id"`
	Kind        ItemKind        `json:"kind"`
	DisplayName string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Components  *ComponentRefs  `json:"components,omitempty"`
	ImageRef    string          `json:"image,omitempty"`
}

// CustomItemID derives the deterministic line id for a front+bandana
// configuration, so re-adding the same combination merges.
func CustomItemID(frontID, bandanaID string) string {
	return fmt.Sprintf("custom-%s-%s", frontID, bandanaID)
}

// Validate checks the invariants a line must satisfy before it may
// enter a cart.
func (li LineItem) Validate() error {
	if li.ID == "" {
		return fmt.Errorf("line item id is empty")
	}
	if li.Quantity < 1 {
		return fmt.Errorf("line item quantity must be at least 1, got %d", li.Quantity)
	}
	if li.UnitPrice.IsNegative() {
		return fmt.Errorf("line item unit price must not be negative, got %s", li.UnitPrice)
	}
	if li.Kind != KindCatalog && li.Kind != KindCustom {
		return fmt.Errorf("unknown line item kind %q", li.Kind)
	}
	return nil
}

// Subtotal returns unit price times quantity
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (li LineItem) clone() LineItem {
	out := li
	if li.Components != nil {
		refs := *li.Components
		out.Components = &refs
	}
	return out
}
