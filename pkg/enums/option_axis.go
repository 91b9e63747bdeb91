package enums

import "fmt"

// OptionAxis is one selectable axis of product variation.
type OptionAxis string

const (
	OptionAxisColor    OptionAxis = "color"
	OptionAxisSize     OptionAxis = "size"
	OptionAxisCapacity OptionAxis = "capacity"
	OptionAxisScent    OptionAxis = "scent"
)

// OptionAxisOrder is the fixed priority order option groups are emitted in.
var OptionAxisOrder = []OptionAxis{
	OptionAxisColor,
	OptionAxisSize,
	OptionAxisCapacity,
	OptionAxisScent,
}

var axisLabels = map[OptionAxis]string{
	OptionAxisColor:    "Color",
	OptionAxisSize:     "Size",
	OptionAxisCapacity: "Capacity",
	OptionAxisScent:    "Scent",
}

// String implements fmt.Stringer.
func (a OptionAxis) String() string {
	return string(a)
}

// Label returns the display label for the axis.
func (a OptionAxis) Label() string {
	if label, ok := axisLabels[a]; ok {
		return label
	}
	return string(a)
}

// IsValid reports whether the value is a known OptionAxis.
func (a OptionAxis) IsValid() bool {
	for _, candidate := range OptionAxisOrder {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseOptionAxis converts raw input into an OptionAxis.
func ParseOptionAxis(value string) (OptionAxis, error) {
	for _, candidate := range OptionAxisOrder {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid option axis %q", value)
}
