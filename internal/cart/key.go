package cart

import "strings"

const (
	defaultKeyPart    = "default"
	pickupKeyMarker   = "-bopis-"
	surpriseKeySuffix = "-surprise-gift"
)

// LineID builds the composite key identifying a unique cart line:
// product + variant selection, plus the pickup store when fulfilled in
// store, plus the surprise-gift marker. Lines sharing a key merge.
func LineID(productID, size, color string, pickup *PickupOptions, surpriseGift bool) string {
	var b strings.Builder
	b.WriteString(productID)
	b.WriteString("-")
	b.WriteString(keyPart(size))
	b.WriteString("-")
	b.WriteString(keyPart(color))
	if pickup != nil {
		b.WriteString(pickupKeyMarker)
		b.WriteString(pickup.StoreID)
	}
	if surpriseGift {
		b.WriteString(surpriseKeySuffix)
	}
	return b.String()
}

func keyPart(value string) string {
	if strings.TrimSpace(value) == "" {
		return defaultKeyPart
	}
	return value
}
