package types

import (
	"math"
	"testing"
)

func TestPriceValue(t *testing.T) {
	cases := map[string]float64{
		"19.90": 19.90,
		" 5 ":   5,
		"":      0,
		"free":  0,
		"-10":   0,
		"0":     0,
	}
	for raw, want := range cases {
		p := Product{Price: raw}
		if got := p.PriceValue(); got != want {
			t.Errorf("PriceValue(%q) = %v, expected %v", raw, got, want)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Acme Store":    "acme-store",
		"  Acme  Store": "acme-store",
		"OUTERWEAR":     "outerwear",
		"":              "",
	}
	for raw, want := range cases {
		if got := Slugify(raw); got != want {
			t.Errorf("Slugify(%q) = %q, expected %q", raw, got, want)
		}
	}
}

func TestWithoutRemovesOneKind(t *testing.T) {
	state := NewFilterState()
	state.Query = "tee"
	state.MinPrice = 10
	state.MaxPrice = 100
	state.Brands = []string{"acme-store"}
	state.Sizes = []string{"M"}

	noSize := state.Without(KindSize)
	if noSize.Sizes != nil {
		t.Errorf("Expected sizes removed, got %v", noSize.Sizes)
	}
	if noSize.Query != "tee" || len(noSize.Brands) != 1 {
		t.Errorf("Expected other kinds untouched, got %+v", noSize)
	}
	if len(state.Sizes) != 1 {
		t.Errorf("Expected the original state untouched, got %+v", state)
	}

	noPrice := state.Without(KindPrice)
	if noPrice.MinPrice != 0 || !math.IsInf(noPrice.MaxPrice, 1) {
		t.Errorf("Expected neutral price bounds, got %v..%v", noPrice.MinPrice, noPrice.MaxPrice)
	}
}

func TestCacheKeyOmitsDefaults(t *testing.T) {
	state := NewFilterState()
	if key := state.CacheKey(); key != "" {
		t.Errorf("Expected empty key for default state, got %q", key)
	}

	state.Brands = []string{"acme-store"}
	state.Page = 2
	key := state.CacheKey()
	if key != "b=acme-store&page=2" {
		t.Errorf("Unexpected cache key %q", key)
	}
}
