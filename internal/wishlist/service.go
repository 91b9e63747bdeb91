package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/emberandoak/storefront-core/internal/catalog"
	"github.com/emberandoak/storefront-core/pkg/enums"
	pkgerrors "github.com/emberandoak/storefront-core/pkg/errors"
	"github.com/emberandoak/storefront-core/pkg/events"
	"github.com/emberandoak/storefront-core/pkg/localstore"
	"github.com/emberandoak/storefront-core/pkg/logger"
	"github.com/emberandoak/storefront-core/pkg/metrics"
)

const storeName = "wishlist"

// Params groups dependencies for the wishlist store.
type Params struct {
	Storage   localstore.Storage
	Logger    *logger.Logger
	Metrics   *metrics.StoreMetrics
	RecordKey string
	Now       func() time.Time
}

// Store owns exclusive read-modify-write access to the persisted
// wishlist record. Public operations never fail: storage errors are
// logged, counted and absorbed into no-ops.
type Store struct {
	mu sync.Mutex

	storage localstore.Storage
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
	key     string
	now     func() time.Time

	changes *events.Broker[[]Entry]
}

// NewStore builds a wishlist store bound to one storage record.
func NewStore(params Params) (*Store, error) {
	if params.Storage == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "storage capability is required")
	}
	key := params.RecordKey
	if key == "" {
		key = storeName
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		storage: params.Storage,
		logg:    params.Logger,
		metrics: params.Metrics,
		key:     key,
		now:     now,
		changes: events.NewBroker[[]Entry](),
	}, nil
}

// SubscribeChanges registers a listener for post-mutation snapshots.
func (s *Store) SubscribeChanges(fn func([]Entry)) events.Subscription {
	return s.changes.Subscribe(fn)
}

// Add appends the product unless an entry with the same product id
// already exists, in which case the existing entry is kept unchanged.
func (s *Store) Add(ctx context.Context, product catalog.Product, opts AddOptions) {
	s.metrics.IncOperation(storeName, "add")
	s.mutate(ctx, "add", func(entries []Entry) []Entry {
		for _, entry := range entries {
			if entry.Product.ID == product.ID {
				return entries
			}
		}
		return append(entries, s.newEntry(product, opts))
	})
}

// Remove filters out the entry for the product id; absent ids are a
// no-op.
func (s *Store) Remove(ctx context.Context, productID string) {
	s.metrics.IncOperation(storeName, "remove")
	s.mutate(ctx, "remove", func(entries []Entry) []Entry {
		return removeEntry(entries, productID)
	})
}

// Toggle flips membership for the product and reports whether the
// product is present after the call. An absorbed storage failure leaves
// the collection unchanged and reports absent.
func (s *Store) Toggle(ctx context.Context, product catalog.Product, opts AddOptions) bool {
	s.metrics.IncOperation(storeName, "toggle")

	added := false
	ok := s.mutate(ctx, "toggle", func(entries []Entry) []Entry {
		for _, entry := range entries {
			if entry.Product.ID == product.ID {
				return removeEntry(entries, product.ID)
			}
		}
		added = true
		return append(entries, s.newEntry(product, opts))
	})
	return ok && added
}

// newEntry stamps a fresh entry. An unset source defaults to the product
// card surface.
func (s *Store) newEntry(product catalog.Product, opts AddOptions) Entry {
	source := opts.Source
	if source == "" {
		source = enums.WishlistSourceCard
	}
	return Entry{
		Product:       product,
		SelectedSize:  opts.Size,
		SelectedColor: opts.Color,
		AddedFrom:     source,
		AddedAt:       s.now().UTC(),
	}
}

// Contains reports membership by product id.
func (s *Store) Contains(ctx context.Context, productID string) bool {
	for _, entry := range s.Entries(ctx) {
		if entry.Product.ID == productID {
			return true
		}
	}
	return false
}

// IDs returns the member product ids in insertion order.
func (s *Store) IDs(ctx context.Context) []string {
	entries := s.Entries(ctx)
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.Product.ID)
	}
	return ids
}

// Count returns the number of entries.
func (s *Store) Count(ctx context.Context) int {
	return len(s.Entries(ctx))
}

// Clear empties the collection.
func (s *Store) Clear(ctx context.Context) {
	s.metrics.IncOperation(storeName, "clear")
	s.mutate(ctx, "clear", func([]Entry) []Entry {
		return []Entry{}
	})
}

// Entries returns the current collection. Failures yield an empty slice.
func (s *Store) Entries(ctx context.Context) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		s.absorb(ctx, "entries", err)
		return nil
	}
	return entries
}

// mutate runs one serialized read-modify-write cycle and publishes the
// new snapshot. Storage failures leave the record untouched and are
// reported as false so callers do not signal success for an absorbed
// operation.
func (s *Store) mutate(ctx context.Context, op string, fn func([]Entry) []Entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		s.absorb(ctx, op, err)
		return false
	}

	updated := fn(entries)

	if err := s.save(ctx, updated); err != nil {
		s.absorb(ctx, op, err)
		return false
	}

	s.metrics.SetItems(storeName, len(updated))
	s.changes.Publish(updated)
	return true
}

func (s *Store) load(ctx context.Context) ([]Entry, error) {
	data, err := s.storage.Read(ctx, s.key)
	if err != nil {
		if errors.Is(err, localstore.ErrNotFound) {
			return []Entry{}, nil
		}
		if pkgerrors.HasCode(err, pkgerrors.CodeStorageUnavailable) {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorageRead, err, "read wishlist record")
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Malformed persisted data degrades to an empty collection.
		if s.logg != nil {
			s.logg.Warn(s.logg.WithRecordKey(ctx, s.key), "wishlist.record_malformed")
		}
		return []Entry{}, nil
	}
	return entries, nil
}

func (s *Store) save(ctx context.Context, entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode wishlist record")
	}
	if err := s.storage.Write(ctx, s.key, data); err != nil {
		if pkgerrors.HasCode(err, pkgerrors.CodeStorageUnavailable) {
			return err
		}
		return pkgerrors.Wrap(pkgerrors.CodeStorageWrite, err, "write wishlist record")
	}
	return nil
}

func (s *Store) absorb(ctx context.Context, op string, err error) {
	s.metrics.IncFailure(storeName, op)
	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{"op": op, "record_key": s.key})
		s.logg.Error(ctx, "wishlist.operation_absorbed", err)
	}
}

func removeEntry(entries []Entry, productID string) []Entry {
	filtered := entries[:0]
	for _, entry := range entries {
		if entry.Product.ID != productID {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
