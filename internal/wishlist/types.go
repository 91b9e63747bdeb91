package wishlist

import (
	"time"

	"github.com/emberandoak/storefront-core/internal/catalog"
	"github.com/emberandoak/storefront-core/pkg/enums"
)

// Entry is one persisted wishlist member. Membership is keyed by product
// id alone; the selected size and color are remembered but two entries
// for the same product never coexist.
type Entry struct {
	Product       catalog.Product      `json:"product"`
	SelectedSize  string               `json:"selected_size,omitempty"`
	SelectedColor string               `json:"selected_color,omitempty"`
	AddedFrom     enums.WishlistSource `json:"added_from"`
	AddedAt       time.Time            `json:"added_at"`
}

// AddOptions carries the variant selection and origin surface for an add.
type AddOptions struct {
	Size   string
	Color  string
	Source enums.WishlistSource
}

// NeedsVariantSelection reports whether moving the entry to a cart would
// require the shopper to pick an option first: more than one size with
// none selected, or more than one color with none selected.
func (e Entry) NeedsVariantSelection() bool {
	if len(e.Product.Sizes) > 1 && e.SelectedSize == "" {
		return true
	}
	if len(e.Product.Colors) > 1 && e.SelectedColor == "" {
		return true
	}
	return false
}
