package sorting

import (
	"testing"

	"github.com/shopmix/catalog/pkg/types"
)

func priced(id uint, name, price string) types.Product {
	return types.Product{Id: id, Name: name, Price: price}
}

func ids(products []types.Product) []uint {
	out := make([]uint, 0, len(products))
	for _, p := range products {
		out = append(out, p.Id)
	}
	return out
}

func TestApplyPriceAscending(t *testing.T) {
	products := []types.Product{
		priced(1, "A", "30"),
		priced(2, "B", "10"),
		priced(3, "C", "20"),
	}
	got := ids(Apply(products, KeyPrice, false))
	want := []uint{2, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestApplyPriceDescending(t *testing.T) {
	products := []types.Product{
		priced(1, "A", "30"),
		priced(2, "B", "10"),
		priced(3, "C", "20"),
	}
	got := ids(Apply(products, KeyPrice, true))
	want := []uint{1, 3, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestApplyTiesKeepFeedOrder(t *testing.T) {
	products := []types.Product{
		priced(1, "A", "10"),
		priced(2, "B", "10"),
		priced(3, "C", "10"),
	}
	// Equal prices must keep feed order in both directions, reverse negates
	// the comparison instead of flipping the slice.
	for _, reverse := range []bool{false, true} {
		got := ids(Apply(products, KeyPrice, reverse))
		want := []uint{1, 2, 3}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Expected stable ties %v (reverse=%v), got %v", want, reverse, got)
			}
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := []types.Product{
		priced(1, "A", "30"),
		priced(2, "B", "10"),
	}
	Apply(products, KeyPrice, false)
	if products[0].Id != 1 || products[1].Id != 2 {
		t.Errorf("Expected input untouched, got %v", ids(products))
	}
}

func TestApplyNameFallbackKeys(t *testing.T) {
	products := []types.Product{
		priced(1, "zebra", "1"),
		priced(2, "Apple", "2"),
	}
	for _, key := range []Key{KeyCreatedAt, KeyBestSelling, KeyRelevance} {
		got := ids(Apply(products, key, false))
		if got[0] != 2 {
			t.Errorf("Expected name order for key %s, got %v", key, got)
		}
	}
}

func TestApplyUnknownKeyKeepsFeedOrder(t *testing.T) {
	products := []types.Product{
		priced(3, "C", "30"),
		priced(1, "A", "10"),
		priced(2, "B", "20"),
	}
	got := ids(Apply(products, Key("POPULARITY"), false))
	want := []uint{3, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected feed order %v for unknown key, got %v", want, got)
		}
	}
}

func TestBySlugFallsBackToDefault(t *testing.T) {
	if opt := BySlug("price-desc"); opt.Key != KeyPrice || !opt.Reverse {
		t.Errorf("Expected price-desc option, got %+v", opt)
	}
	if opt := BySlug("nonsense"); opt.Slug != "relevance" {
		t.Errorf("Expected fallback to relevance, got %+v", opt)
	}
	if opt := BySlug(""); opt.Slug != "relevance" {
		t.Errorf("Expected empty slug fallback, got %+v", opt)
	}
}
