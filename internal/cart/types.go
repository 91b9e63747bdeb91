package cart

import (
	"github.com/emberandoak/storefront-core/internal/catalog"
	"github.com/emberandoak/storefront-core/pkg/enums"
	"github.com/emberandoak/storefront-core/pkg/types"
	"github.com/shopspring/decimal"
)

// PickupOptions ties a line to a physical store for in-store pickup.
type PickupOptions struct {
	StoreID      string `json:"store_id" validate:"required"`
	StoreName    string `json:"store_name"`
	StoreAddress string `json:"store_address"`
}

// LineItem is one persisted cart line. ID is the composite key derived
// from product, variant selection, fulfillment mode and gift flag.
type LineItem struct {
	ID              string                  `json:"id"`
	Product         catalog.Product         `json:"product"`
	Quantity        int                     `json:"quantity"`
	Size            string                  `json:"size,omitempty"`
	Color           string                  `json:"color,omitempty"`
	Price           decimal.Decimal         `json:"price"`
	OriginalPrice   *decimal.Decimal        `json:"original_price,omitempty"`
	Fulfillment     enums.FulfillmentMethod `json:"fulfillment_method"`
	StoreID         string                  `json:"store_id,omitempty"`
	StoreName       string                  `json:"store_name,omitempty"`
	StoreAddress    string                  `json:"store_address,omitempty"`
	ShippingAddress *types.Address          `json:"shipping_address,omitempty"`
	IsSurpriseGift  bool                    `json:"is_surprise_gift"`
}

// AddOptions captures the variant selection and fulfillment choice for an
// add operation. A zero Quantity defaults to 1.
type AddOptions struct {
	Quantity     int
	Size         string
	Color        string
	Pickup       *PickupOptions
	SurpriseGift bool
}

// AddResult reports whether the add merged into an existing line or
// appended a new one, for UI feedback separate from the change event.
type AddResult struct {
	Line   LineItem `json:"line"`
	Merged bool     `json:"merged"`
}
