package catalog

import (
	"github.com/emberandoak/storefront-core/pkg/enums"
	"github.com/shopspring/decimal"
)

// Variant is one purchasable SKU within a product family.
type Variant struct {
	ID            string           `json:"id" validate:"required"`
	Color         string           `json:"color,omitempty"`
	Sizes         []string         `json:"sizes,omitempty"`
	Capacities    []string         `json:"capacities,omitempty"`
	Scents        []string         `json:"scents,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	InStock       bool             `json:"in_stock"`
	StockQuantity *int             `json:"stock_quantity,omitempty"`
	Images        []string         `json:"images,omitempty"`
}

// Product is the catalog snapshot carried on cart lines and wishlist
// entries. Presentation-only fields (images, 3D model) pass through
// untouched.
type Product struct {
	ID            string           `json:"id" validate:"required"`
	Title         string           `json:"title" validate:"required"`
	Brand         string           `json:"brand,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	InStock       bool             `json:"in_stock"`
	StockQuantity *int             `json:"stock_quantity,omitempty"`
	Sizes         []string         `json:"sizes,omitempty"`
	Colors        []string         `json:"colors,omitempty"`
	Images        []string         `json:"images,omitempty"`
	ModelURL      string           `json:"model_url,omitempty"`
}

// OptionGroup is one selectable axis with its available values.
type OptionGroup struct {
	Key     enums.OptionAxis `json:"key"`
	Label   string           `json:"label"`
	Options []Option         `json:"options"`
}

// Option maps one display value to its representative variant.
type Option struct {
	ID        string `json:"id"`
	Value     string `json:"value"`
	VariantID string `json:"variant_id"`
}
