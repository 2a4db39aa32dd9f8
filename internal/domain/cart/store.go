package cart

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// BackingStore is the key-value persistence behind a cart. The bool on
// Get reports whether a value exists for the key.
//
// The cart treats the backing store as best effort: read failures fall
// back to an empty cart and write failures leave the in-memory state
// authoritative. Implementations are expected to log their own errors.
type BackingStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// Sink receives cart analytics events. Implementations must be
// fire-and-forget; the store additionally shields itself from panics so
// a misbehaving sink can never break a mutation.
type Sink interface {
	Track(ctx context.Context, event string, props map[string]any)
}

// Snapshot is a consistent value copy of a cart's state.
type Snapshot struct {
	Items         []LineItem
	TotalQuantity int
	TotalAmount   decimal.Decimal
}

// Store holds the line items of one cart, keyed into the backing store.
// Construct one per cart key per request and hydrate before mutating.
// A Store is not safe for concurrent use.
type Store struct {
	key      string
	backing  BackingStore
	sink     Sink
	items    []LineItem
	hydrated bool
}

// NewStore creates an unhydrated store bound to a cart key. sink may be
// nil when no analytics are wanted.
func NewStore(key string, backing BackingStore, sink Sink) *Store {
	return &Store{key: key, backing: backing, sink: sink}
}

// Key returns the backing store key this cart is bound to
func (s *Store) Key() string { return s.key }

// Hydrated reports whether Hydrate has run
func (s *Store) Hydrated() bool { return s.hydrated }

// Hydrate loads the persisted line items once. Missing or unparsable
// persisted data silently yields an empty cart. Calling Hydrate again
// is a no-op; the transition to hydrated is one-way.
func (s *Store) Hydrate(ctx context.Context) {
	if s.hydrated {
		return
	}
	s.hydrated = true

	raw, ok, err := s.backing.Get(ctx, s.key)
	if err != nil || !ok {
		return
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Corrupt persisted value. Start over with an empty cart.
		return
	}
	for _, li := range items {
		if li.Validate() != nil {
			// One bad line poisons the payload as a whole.
			return
		}
	}
	s.items = items
}

// AddItem validates and adds a line. An item whose ID already exists in
// the cart merges by quantity increment; all other fields keep the
// values from the first add. New IDs append at the end. Invalid input
// is dropped without mutating the cart.
func (s *Store) AddItem(ctx context.Context, item LineItem) {
	if item.Validate() != nil {
		return
	}

	merged := false
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, item.clone())
	}

	s.emit(ctx, "add_to_cart", map[string]any{
		"item_id":  item.ID,
		"kind":     string(item.Kind),
		"quantity": item.Quantity,
	})
	s.persist(ctx)
}

// UpdateItemQuantity replaces the quantity of an existing line. Unknown
// IDs and quantities below 1 leave the cart untouched; removal goes
// through RemoveItem.
func (s *Store) UpdateItemQuantity(ctx context.Context, id string, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// RemoveItem drops the line with the given ID. Removing an absent ID is
// a no-op, so removal is idempotent.
func (s *Store) RemoveItem(ctx context.Context, id string) {
	kept := s.items[:0]
	removed := false
	for _, li := range s.items {
		if li.ID == id {
			removed = true
			continue
		}
		kept = append(kept, li)
	}
	s.items = kept
	if removed {
		s.persist(ctx)
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) {
	s.items = nil
	s.persist(ctx)
}

// Items returns a value copy of the lines in insertion order
func (s *Store) Items() []LineItem {
	out := make([]LineItem, 0, len(s.items))
	for _, li := range s.items {
		out = append(out, li.clone())
	}
	return out
}

// TotalQuantity sums the quantities across all lines
func (s *Store) TotalQuantity() int {
	total := 0
	for _, li := range s.items {
		total += li.Quantity
	}
	return total
}

// TotalAmount sums unit price times quantity across all lines. An empty
// cart totals zero.
func (s *Store) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, li := range s.items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// Snapshot returns items and totals as one consistent value copy
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Items:         s.Items(),
		TotalQuantity: s.TotalQuantity(),
		TotalAmount:   s.TotalAmount(),
	}
}

// persist mirrors the full line list to the backing store. Before
// hydration nothing is written, so a half-initialized store can never
// clobber previously persisted state. Write errors are swallowed; the
// in-memory cart stays authoritative.
func (s *Store) persist(ctx context.Context) {
	if !s.hydrated {
		return
	}
	items := s.items
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = s.backing.Set(ctx, s.key, string(data))
}

func (s *Store) emit(ctx context.Context, event string, props map[string]any) {
	if s.sink == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	s.sink.Track(ctx, event, props)
}
