package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/emberandoak/storefront-core/internal/catalog"
	"github.com/emberandoak/storefront-core/pkg/enums"
	pkgerrors "github.com/emberandoak/storefront-core/pkg/errors"
	"github.com/emberandoak/storefront-core/pkg/events"
	"github.com/emberandoak/storefront-core/pkg/localstore"
	"github.com/emberandoak/storefront-core/pkg/logger"
	"github.com/emberandoak/storefront-core/pkg/metrics"
	"github.com/emberandoak/storefront-core/pkg/types"
	"github.com/shopspring/decimal"
)

const storeName = "cart"

// DefaultShippingAddress is synthesized onto a delivery line that has no
// address of its own, e.g. after a pickup line is switched back to
// delivery.
var DefaultShippingAddress = types.Address{
	Line1:      "100 Market Street",
	City:       "Portland",
	State:      "OR",
	PostalCode: "97201",
	Country:    "US",
}

// Params groups dependencies for the cart store.
type Params struct {
	Storage         localstore.Storage
	Logger          *logger.Logger
	Metrics         *metrics.StoreMetrics
	RecordKey       string
	DefaultShipping *types.Address
}

// Store owns exclusive read-modify-write access to the persisted cart
// record. Public operations never fail: storage errors are logged,
// counted and absorbed into no-ops, leaving the prior state in place.
type Store struct {
	mu sync.Mutex

	storage         localstore.Storage
	logg            *logger.Logger
	metrics         *metrics.StoreMetrics
	key             string
	defaultShipping types.Address

	changes   *events.Broker[[]LineItem]
	additions *events.Broker[AddResult]
}

// NewStore builds a cart store bound to one storage record.
func NewStore(params Params) (*Store, error) {
	if params.Storage == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "storage capability is required")
	}
	key := params.RecordKey
	if key == "" {
		key = storeName
	}
	shipping := DefaultShippingAddress
	if params.DefaultShipping != nil {
		shipping = *params.DefaultShipping
	}
	return &Store{
		storage:         params.Storage,
		logg:            params.Logger,
		metrics:         params.Metrics,
		key:             key,
		defaultShipping: shipping,
		changes:         events.NewBroker[[]LineItem](),
		additions:       events.NewBroker[AddResult](),
	}, nil
}

// SubscribeChanges registers a listener for post-mutation snapshots.
func (s *Store) SubscribeChanges(fn func([]LineItem)) events.Subscription {
	return s.changes.Subscribe(fn)
}

// SubscribeAdditions registers a listener for item-added events.
func (s *Store) SubscribeAdditions(fn func(AddResult)) events.Subscription {
	return s.additions.Subscribe(fn)
}

// Add merges the product into an existing line with the same composite
// key, or appends a new line. Quantity is unbounded; no stock cross-check
// is applied. The returned AddResult is the zero value when the operation
// was absorbed as a no-op.
func (s *Store) Add(ctx context.Context, product catalog.Product, opts AddOptions) AddResult {
	s.metrics.IncOperation(storeName, "add")

	quantity := opts.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	lineID := LineID(product.ID, opts.Size, opts.Color, opts.Pickup, opts.SurpriseGift)

	var result AddResult
	ok := s.mutate(ctx, "add", func(items []LineItem) []LineItem {
		for i := range items {
			if items[i].ID == lineID {
				items[i].Quantity += quantity
				result = AddResult{Line: items[i], Merged: true}
				return items
			}
		}

		line := LineItem{
			ID:             lineID,
			Product:        product,
			Quantity:       quantity,
			Size:           opts.Size,
			Color:          opts.Color,
			Price:          product.Price,
			OriginalPrice:  product.OriginalPrice,
			IsSurpriseGift: opts.SurpriseGift,
		}
		if opts.SurpriseGift {
			line.Price = decimal.Zero
		}
		if opts.Pickup != nil {
			line.Fulfillment = enums.FulfillmentMethodPickup
			line.StoreID = opts.Pickup.StoreID
			line.StoreName = opts.Pickup.StoreName
			line.StoreAddress = opts.Pickup.StoreAddress
		} else {
			line.Fulfillment = enums.FulfillmentMethodDelivery
		}
		result = AddResult{Line: line, Merged: false}
		return append(items, line)
	})

	if !ok {
		return AddResult{}
	}
	s.additions.Publish(result)
	return result
}

// Remove filters out the matching line; absent lines are a no-op.
func (s *Store) Remove(ctx context.Context, lineID string) {
	s.metrics.IncOperation(storeName, "remove")
	s.mutate(ctx, "remove", func(items []LineItem) []LineItem {
		return removeLine(items, lineID)
	})
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// less removes the line instead.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, lineID)
		return
	}

	s.metrics.IncOperation(storeName, "update_quantity")
	s.mutate(ctx, "update_quantity", func(items []LineItem) []LineItem {
		for i := range items {
			if items[i].ID == lineID {
				items[i].Quantity = quantity
				break
			}
		}
		return items
	})
}

// UpdateFulfillment switches one line between pickup and delivery.
func (s *Store) UpdateFulfillment(ctx context.Context, lineID string, method enums.FulfillmentMethod, store *PickupOptions) {
	s.metrics.IncOperation(storeName, "update_fulfillment")
	s.mutate(ctx, "update_fulfillment", func(items []LineItem) []LineItem {
		for i := range items {
			if items[i].ID == lineID {
				s.applyFulfillment(&items[i], method, store)
				break
			}
		}
		return items
	})
}

// UpdateAllFulfillment switches every line to the given method.
func (s *Store) UpdateAllFulfillment(ctx context.Context, method enums.FulfillmentMethod, store *PickupOptions) {
	s.metrics.IncOperation(storeName, "update_all_fulfillment")
	s.mutate(ctx, "update_all_fulfillment", func(items []LineItem) []LineItem {
		for i := range items {
			s.applyFulfillment(&items[i], method, store)
		}
		return items
	})
}

// Clear empties the collection.
func (s *Store) Clear(ctx context.Context) {
	s.metrics.IncOperation(storeName, "clear")
	s.mutate(ctx, "clear", func([]LineItem) []LineItem {
		return []LineItem{}
	})
}

// Items returns the current collection. Failures yield an empty slice.
func (s *Store) Items(ctx context.Context) []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		s.absorb(ctx, "items", err)
		return nil
	}
	return items
}

// Subtotal sums price * quantity over all lines, excluding surprise
// gifts.
func (s *Store) Subtotal(ctx context.Context) decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items(ctx) {
		if item.IsSurpriseGift {
			continue
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Count sums quantities over all lines, surprise gifts included.
func (s *Store) Count(ctx context.Context) int {
	count := 0
	for _, item := range s.Items(ctx) {
		count += item.Quantity
	}
	return count
}

func (s *Store) applyFulfillment(line *LineItem, method enums.FulfillmentMethod, store *PickupOptions) {
	switch method {
	case enums.FulfillmentMethodPickup:
		line.Fulfillment = enums.FulfillmentMethodPickup
		line.ShippingAddress = nil
		if store != nil {
			line.StoreID = store.StoreID
			line.StoreName = store.StoreName
			line.StoreAddress = store.StoreAddress
		}
	case enums.FulfillmentMethodDelivery:
		line.Fulfillment = enums.FulfillmentMethodDelivery
		line.StoreID = ""
		line.StoreName = ""
		line.StoreAddress = ""
		// An existing delivery address is preserved, never overwritten.
		if line.ShippingAddress == nil {
			address := s.defaultShipping
			line.ShippingAddress = &address
		}
	}
}

// mutate runs one serialized read-modify-write cycle and publishes the
// new snapshot. Storage failures leave the record untouched and are
// reported as false so callers do not signal success for an absorbed
// operation.
func (s *Store) mutate(ctx context.Context, op string, fn func([]LineItem) []LineItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		s.absorb(ctx, op, err)
		return false
	}

	updated := fn(items)

	if err := s.save(ctx, updated); err != nil {
		s.absorb(ctx, op, err)
		return false
	}

	s.metrics.SetItems(storeName, len(updated))
	s.changes.Publish(updated)
	return true
}

func (s *Store) load(ctx context.Context) ([]LineItem, error) {
	data, err := s.storage.Read(ctx, s.key)
	if err != nil {
		if errors.Is(err, localstore.ErrNotFound) {
			return []LineItem{}, nil
		}
		if pkgerrors.HasCode(err, pkgerrors.CodeStorageUnavailable) {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorageRead, err, "read cart record")
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Malformed persisted data degrades to an empty collection.
		if s.logg != nil {
			s.logg.Warn(s.logg.WithRecordKey(ctx, s.key), "cart.record_malformed")
		}
		return []LineItem{}, nil
	}
	return items, nil
}

func (s *Store) save(ctx context.Context, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart record")
	}
	if err := s.storage.Write(ctx, s.key, data); err != nil {
		if pkgerrors.HasCode(err, pkgerrors.CodeStorageUnavailable) {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeStorageWrite, err, "write cart record")
	}
	return nil
}

func (s *Store) absorb(ctx context.Context, op string, err error) {
	s.metrics.IncFailure(storeName, op)
	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{"op": op, "record_key": s.key})
		s.logg.Error(ctx, "cart.operation_absorbed", err)
	}
}

func removeLine(items []LineItem, lineID string) []LineItem {
	filtered := items[:0]
	for _, item := range items {
		if item.ID != lineID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
