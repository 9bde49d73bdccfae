package catalog

import (
	"reflect"
	"testing"

	"github.com/shopmix/catalog/pkg/types"
)

func TestFacetsForExcludesOwnKind(t *testing.T) {
	products := testProducts()
	state := types.NewFilterState()
	state.Sizes = []string{"S"}

	unfiltered := FacetsFor(products, types.NewFilterState())
	filtered := FacetsFor(products, state)

	// The size facet must ignore the active size filter, so its counts match
	// the unfiltered sidebar.
	if !reflect.DeepEqual(filtered.Sizes, unfiltered.Sizes) {
		t.Errorf("Expected size facet to ignore size filter, got %v vs %v", filtered.Sizes, unfiltered.Sizes)
	}

	// Other facets do see the size filter. Only product 1 has size S, so the
	// vendor list narrows to its store.
	if len(filtered.Vendors) != 1 || filtered.Vendors[0].Label != "Acme Store" {
		t.Errorf("Expected vendors narrowed by size filter, got %v", filtered.Vendors)
	}
}

func TestFacetsForBrandScenario(t *testing.T) {
	products := []types.Product{
		{
			Id: 1, Name: "A Tee", Price: "10",
			Source: types.Source{StoreName: "Brand A", Collection: "Tops"},
			Variants: []types.Variant{
				{Id: 1, Size: "S", Available: true},
			},
		},
		{
			Id: 2, Name: "A Hoodie", Price: "20",
			Source: types.Source{StoreName: "Brand A", Collection: "Tops"},
			Variants: []types.Variant{
				{Id: 2, Size: "M", Available: true},
			},
		},
		{
			Id: 3, Name: "B Tee", Price: "30",
			Source: types.Source{StoreName: "Brand B", Collection: "Tops"},
			Variants: []types.Variant{
				{Id: 3, Size: "M", Available: true},
			},
		},
	}

	state := types.NewFilterState()
	state.Brands = []string{"brand-a"}
	facets := FacetsFor(products, state)

	sizes := map[string]int{}
	for _, v := range facets.Sizes {
		sizes[v.Label] = v.ProductCount
	}
	if sizes["S"] != 1 || sizes["M"] != 1 {
		t.Errorf("Expected sizes S:1 M:1 under brand filter, got %v", facets.Sizes)
	}

	// The brand facet itself still shows both brands with full counts.
	vendors := map[string]int{}
	for _, v := range facets.Vendors {
		vendors[v.Label] = v.ProductCount
	}
	if vendors["Brand A"] != 2 || vendors["Brand B"] != 1 {
		t.Errorf("Expected Brand A:2 Brand B:1, got %v", facets.Vendors)
	}
}

func TestFacetsForMaxPriceIgnoresPriceFilter(t *testing.T) {
	products := testProducts()
	state := types.NewFilterState()
	state.MaxPrice = 30

	facets := FacetsFor(products, state)
	if facets.MaxPrice != 89.00 {
		t.Errorf("Expected price ceiling 89.00 despite maxPrice filter, got %v", facets.MaxPrice)
	}
}
