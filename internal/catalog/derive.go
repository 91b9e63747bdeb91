package catalog

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// DiscountPercent returns the rounded percentage discount of the
// variant's price against its original price, or 0 when no real
// discount applies.
func DiscountPercent(v Variant) int {
	if v.OriginalPrice == nil || v.OriginalPrice.IsZero() {
		return 0
	}
	if v.OriginalPrice.LessThanOrEqual(v.Price) {
		return 0
	}
	percent := v.OriginalPrice.Sub(v.Price).
		Div(*v.OriginalPrice).
		Mul(oneHundred).
		Round(0)
	return int(percent.IntPart())
}

// IsOnSale reports whether the variant is sold below its original price.
func IsOnSale(v Variant) bool {
	return DiscountPercent(v) > 0
}

// StockPercent maps remaining stock to a 0-100 value for stock bars.
// Variants without a tracked quantity render as full when in stock.
func StockPercent(v Variant, capacity int) int {
	if !v.InStock {
		return 0
	}
	if v.StockQuantity == nil || capacity <= 0 {
		return 100
	}
	qty := *v.StockQuantity
	if qty <= 0 {
		return 0
	}
	if qty >= capacity {
		return 100
	}
	return qty * 100 / capacity
}

// IsLowStock reports whether the variant is in stock but at or below the
// low-stock threshold.
func IsLowStock(v Variant, threshold int) bool {
	if !v.InStock || v.StockQuantity == nil || threshold <= 0 {
		return false
	}
	qty := *v.StockQuantity
	return qty > 0 && qty <= threshold
}
