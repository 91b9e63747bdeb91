package catalog

import (
	"strings"

	"github.com/emberandoak/storefront-core/pkg/enums"
	pkgerrors "github.com/emberandoak/storefront-core/pkg/errors"
)

// Resolve looks up the option with the exact display value in the group
// for the axis and returns its variant id. The match is case-sensitive:
// option values are rendered pre-normalized, so fuzzy matching is never
// the primary path. A missing group or option yields an OPTION_NOT_FOUND
// error and the caller must leave its state unchanged.
func Resolve(groups []OptionGroup, axis enums.OptionAxis, value string) (string, error) {
	for _, group := range groups {
		if group.Key != axis {
			continue
		}
		for _, option := range group.Options {
			if option.Value == value {
				return option.VariantID, nil
			}
		}
		break
	}
	return "", pkgerrors.New(pkgerrors.CodeOptionNotFound, "option not found").
		WithDetails(map[string]string{"axis": string(axis), "value": value})
}

// ResolveVariant resolves through the option groups, falling back to a
// case-insensitive color scan only when a color option exists but carries
// no variant mapping.
func ResolveVariant(groups []OptionGroup, variants []Variant, axis enums.OptionAxis, value string) (string, error) {
	id, err := Resolve(groups, axis, value)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}
	if axis == enums.OptionAxisColor {
		if fallbackID, ok := ResolveColorFallback(variants, value); ok {
			return fallbackID, nil
		}
	}
	return "", pkgerrors.New(pkgerrors.CodeOptionNotFound, "option has no variant mapping").
		WithDetails(map[string]string{"axis": string(axis), "value": value})
}

// ResolveColorFallback scans the family for a case-insensitive color
// match and returns the first hit.
func ResolveColorFallback(variants []Variant, value string) (string, bool) {
	target := strings.ToLower(strings.TrimSpace(value))
	if target == "" {
		return "", false
	}
	for _, variant := range variants {
		if strings.ToLower(strings.TrimSpace(variant.Color)) == target {
			return variant.ID, true
		}
	}
	return "", false
}

// InitialVariantID is the variant shown before any option is selected:
// always the base product's own id, never an inferred "best" variant.
func InitialVariantID(product Product) string {
	return product.ID
}
