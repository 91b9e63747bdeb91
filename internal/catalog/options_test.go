package catalog

import (
	"testing"

	"github.com/emberandoak/storefront-core/pkg/enums"
	"github.com/shopspring/decimal"
)

func TestBuildOptionGroupsPrefersInStockRepresentative(t *testing.T) {
	t.Parallel()

	variants := []Variant{
		{ID: "a", Color: "Red", InStock: false},
		{ID: "b", Color: "red", InStock: true},
	}

	groups := BuildOptionGroups(variants)
	if len(groups) != 1 {
		t.Fatalf("expected one group, got %d", len(groups))
	}
	group := groups[0]
	if group.Key != enums.OptionAxisColor {
		t.Fatalf("unexpected group key %s", group.Key)
	}
	if len(group.Options) != 1 {
		t.Fatalf("expected one deduplicated option, got %d", len(group.Options))
	}
	option := group.Options[0]
	if option.Value != "Red" {
		t.Fatalf("display value should keep first-seen casing, got %q", option.Value)
	}
	if option.VariantID != "b" {
		t.Fatalf("in-stock variant should win the mapping, got %q", option.VariantID)
	}
	if option.ID != "color-red" {
		t.Fatalf("unexpected option id %q", option.ID)
	}
}

func TestBuildOptionGroupsKeepsFirstSeenWhenBothInStock(t *testing.T) {
	t.Parallel()

	variants := []Variant{
		{ID: "a", Color: "Sage", InStock: true},
		{ID: "b", Color: "sage", InStock: true},
	}

	groups := BuildOptionGroups(variants)
	if got := groups[0].Options[0].VariantID; got != "a" {
		t.Fatalf("first-seen variant should keep the mapping, got %q", got)
	}
}

func TestBuildOptionGroupsAxisOrderAndMultiValues(t *testing.T) {
	t.Parallel()

	variants := []Variant{
		{ID: "v1", Color: "Amber", Sizes: []string{"S", "M"}, Scents: []string{"Cedar", "Vanilla"}, InStock: true},
		{ID: "v2", Color: "Ivory", Sizes: []string{"L"}, Capacities: []string{"250ml"}, InStock: true},
	}

	groups := BuildOptionGroups(variants)
	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(groups))
	}

	wantOrder := []enums.OptionAxis{
		enums.OptionAxisColor,
		enums.OptionAxisSize,
		enums.OptionAxisCapacity,
		enums.OptionAxisScent,
	}
	for i, axis := range wantOrder {
		if groups[i].Key != axis {
			t.Fatalf("group %d: expected axis %s, got %s", i, axis, groups[i].Key)
		}
	}

	sizes := groups[1]
	if len(sizes.Options) != 3 {
		t.Fatalf("each size value should contribute independently, got %d", len(sizes.Options))
	}
	if sizes.Options[0].Value != "S" || sizes.Options[1].Value != "M" || sizes.Options[2].Value != "L" {
		t.Fatalf("sizes should keep insertion order: %+v", sizes.Options)
	}
	if sizes.Label != "Size" {
		t.Fatalf("unexpected label %q", sizes.Label)
	}
}

func TestBuildOptionGroupsOmitsEmptyAxes(t *testing.T) {
	t.Parallel()

	variants := []Variant{
		{ID: "v1", InStock: true},
		{ID: "v2", InStock: true},
	}

	if groups := BuildOptionGroups(variants); len(groups) != 0 {
		t.Fatalf("variants without option data should yield no groups, got %d", len(groups))
	}
}

func TestBuildOptionGroupsSkipsBlankValues(t *testing.T) {
	t.Parallel()

	variants := []Variant{
		{ID: "v1", Sizes: []string{"  ", "M"}, InStock: true},
	}

	groups := BuildOptionGroups(variants)
	if len(groups) != 1 || len(groups[0].Options) != 1 {
		t.Fatalf("blank values must be skipped: %+v", groups)
	}
}

func TestFamilyFallsBackToBaseProduct(t *testing.T) {
	t.Parallel()

	product := Product{
		ID:      "p1",
		Title:   "Amber Jar Candle",
		Price:   decimal.NewFromInt(24),
		InStock: true,
		Sizes:   []string{"8oz"},
		Colors:  []string{"Amber"},
	}

	family := Family(product, nil)
	if len(family) != 1 {
		t.Fatalf("expected singleton family, got %d", len(family))
	}
	base := family[0]
	if base.ID != "p1" || base.Color != "Amber" || !base.InStock {
		t.Fatalf("unexpected synthesized variant %+v", base)
	}

	variants := []Variant{{ID: "v1"}}
	if got := Family(product, variants); len(got) != 1 || got[0].ID != "v1" {
		t.Fatalf("non-empty families must pass through, got %+v", got)
	}
}
