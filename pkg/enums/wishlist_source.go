package enums

import "fmt"

// WishlistSource records which surface an entry was wishlisted from.
type WishlistSource string

const (
	WishlistSourcePDP  WishlistSource = "pdp"
	WishlistSourceCard WishlistSource = "card"
)

var validWishlistSources = []WishlistSource{
	WishlistSourcePDP,
	WishlistSourceCard,
}

// String implements fmt.Stringer.
func (s WishlistSource) String() string {
	return string(s)
}

// IsValid reports whether the value is a known WishlistSource.
func (s WishlistSource) IsValid() bool {
	for _, candidate := range validWishlistSources {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseWishlistSource converts raw input into a WishlistSource.
func ParseWishlistSource(value string) (WishlistSource, error) {
	for _, candidate := range validWishlistSources {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid wishlist source %q", value)
}
