package ordering

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared/valueobject"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// transitions lists the allowed moves. DELIVERED and CANCELLED are
// terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

// CanTransition reports whether from may move to to
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is a bank-transfer order. Items and shipping details are
// snapshotted as JSON at submission time, so later catalog or price
// changes never rewrite order history.
type Order struct {
	shared.BaseEntity
	Number      string            `gorm:"size:32;uniqueIndex;not null" json:"number"`
	UserID      uuid.UUID         `gorm:"type:uuid;index;not null" json:"user_id"`
	Items       string            `gorm:"type:text;not null" json:"items"`
	Shipping    string            `gorm:"type:text;not null" json:"shipping"`
	TotalAmount valueobject.Money `gorm:"type:decimal(12,2)" json:"total_amount"`
	Status      Status            `gorm:"size:16;not null;default:PENDING" json:"status"`
}

// TableName implements gorm's Tabler
func (Order) TableName() string { return "orders" }

// NewOrder creates a pending order from a submitted cart snapshot.
func NewOrder(number string, userID uuid.UUID, itemsJSON, shippingJSON string, total valueobject.Money) (*Order, error) {
	if number == "" {
		return nil, shared.NewInvalidInputError("order number is required")
	}
	if userID == uuid.Nil {
		return nil, shared.NewInvalidInputError("order user is required")
	}
	if itemsJSON == "" || itemsJSON == "[]" {
		return nil, shared.NewDomainError(shared.ErrCodeEmptyCart, "cannot place an order with an empty cart")
	}
	if total.IsNegative() {
		return nil, shared.NewInvalidInputError("order total must not be negative")
	}
	return &Order{
		BaseEntity:  shared.NewBaseEntity(),
		Number:      number,
		UserID:      userID,
		Items:       itemsJSON,
		Shipping:    shippingJSON,
		TotalAmount: total,
		Status:      StatusPending,
	}, nil
}

// ChangeStatus moves the order along the lifecycle. Terminal states
// cannot be left.
func (o *Order) ChangeStatus(to Status) error {
	if !to.Valid() {
		return shared.NewInvalidInputError("unknown order status: " + string(to))
	}
	if !CanTransition(o.Status, to) {
		return shared.NewInvalidStateError(
			fmt.Sprintf("order %s cannot move from %s to %s", o.Number, o.Status, to))
	}
	o.Status = to
	o.Touch()
	return nil
}
