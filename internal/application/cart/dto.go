package cart

import (
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/cart"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared/valueobject"
)

// ComponentRefs mirrors the domain component references.
type ComponentRefs struct {
	FrontID   string `json:"front_id"`
	BandanaID string `json:"bandana_id"`
}

// ItemResponse is one cart line as returned to clients.
type ItemResponse struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind"`
	Name       string         `json:"name"`
	UnitPrice  string         `json:"unit_price"`
	Quantity   int            `json:"quantity"`
	Subtotal   string         `json:"subtotal"`
	Components *ComponentRefs `json:"components,omitempty"`
	Image      string         `json:"image,omitempty"`
}

// Response is the cart snapshot returned by every cart endpoint.
type Response struct {
	CartID        string         `json:"cart_id"`
	Items         []ItemResponse `json:"items"`
	TotalQuantity int            `json:"total_quantity"`
	TotalAmount   string         `json:"total_amount"`
	Currency      string         `json:"currency"`
}

func toResponse(cartID string, snap cart.Snapshot) *Response {
	items := make([]ItemResponse, 0, len(snap.Items))
	for _, li := range snap.Items {
		item := ItemResponse{
			ID:        li.ID,
			Kind:      string(li.Kind),
			Name:      li.DisplayName,
			UnitPrice: li.UnitPrice.String(),
			Quantity:  li.Quantity,
			Subtotal:  li.Subtotal().String(),
			Image:     li.ImageRef,
		}
		if li.Components != nil {
			item.Components = &ComponentRefs{
				FrontID:   li.Components.FrontID,
				BandanaID: li.Components.BandanaID,
			}
		}
		items = append(items, item)
	}
	return &Response{
		CartID:        cartID,
		Items:         items,
		TotalQuantity: snap.TotalQuantity,
		TotalAmount:   snap.TotalAmount.String(),
		Currency:      valueobject.DefaultCurrency,
	}
}
