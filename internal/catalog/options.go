package catalog

import (
	"strings"

	"github.com/emberandoak/storefront-core/pkg/enums"
)

// Family returns the variant family for a product. An empty variant list
// falls back to a singleton family synthesized from the base product, so
// downstream code always has at least one variant to resolve against.
func Family(product Product, variants []Variant) []Variant {
	if len(variants) > 0 {
		return variants
	}
	return []Variant{variantFromProduct(product)}
}

func variantFromProduct(product Product) Variant {
	v := Variant{
		ID:            product.ID,
		Sizes:         product.Sizes,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		InStock:       product.InStock,
		StockQuantity: product.StockQuantity,
		Images:        product.Images,
	}
	if len(product.Colors) == 1 {
		v.Color = product.Colors[0]
	}
	return v
}

// BuildOptionGroups scans the variant family once per axis and emits one
// group per axis that has at least one value. Groups come out in fixed
// priority order (color, size, capacity, scent) and options in insertion
// order. The representative variant for a value is the first one seen,
// unless a later in-stock variant can replace an out-of-stock one.
func BuildOptionGroups(variants []Variant) []OptionGroup {
	groups := make([]OptionGroup, 0, len(enums.OptionAxisOrder))
	for _, axis := range enums.OptionAxisOrder {
		group := buildGroup(axis, variants)
		if len(group.Options) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

type optionEntry struct {
	value     string
	variantID string
	inStock   bool
}

func buildGroup(axis enums.OptionAxis, variants []Variant) OptionGroup {
	var order []string
	byKey := map[string]*optionEntry{}

	for _, variant := range variants {
		for _, raw := range axisValues(axis, variant) {
			key := normalizeOptionValue(axis, raw)
			if key == "" {
				continue
			}
			if existing, ok := byKey[key]; ok {
				// In-stock variants are preferred representatives;
				// otherwise the first-seen mapping wins.
				if variant.InStock && !existing.inStock {
					existing.variantID = variant.ID
					existing.inStock = true
				}
				continue
			}
			byKey[key] = &optionEntry{
				value:     raw,
				variantID: variant.ID,
				inStock:   variant.InStock,
			}
			order = append(order, key)
		}
	}

	options := make([]Option, 0, len(order))
	for _, key := range order {
		entry := byKey[key]
		options = append(options, Option{
			ID:        string(axis) + "-" + key,
			Value:     entry.value,
			VariantID: entry.variantID,
		})
	}

	return OptionGroup{Key: axis, Label: axis.Label(), Options: options}
}

func axisValues(axis enums.OptionAxis, variant Variant) []string {
	switch axis {
	case enums.OptionAxisColor:
		if variant.Color == "" {
			return nil
		}
		return []string{variant.Color}
	case enums.OptionAxisSize:
		return variant.Sizes
	case enums.OptionAxisCapacity:
		return variant.Capacities
	case enums.OptionAxisScent:
		return variant.Scents
	}
	return nil
}

// normalizeOptionValue produces the map key for deduplication. Display
// values keep their original casing and spacing.
func normalizeOptionValue(axis enums.OptionAxis, value string) string {
	key := strings.TrimSpace(value)
	if axis == enums.OptionAxisColor {
		key = strings.ToLower(key)
	}
	return key
}
