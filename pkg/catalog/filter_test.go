package catalog

import (
	"testing"

	"github.com/shopmix/catalog/pkg/types"
)

func testProducts() []types.Product {
	return []types.Product{
		{
			Id: 1, Name: "Basic Tee", Handle: "basic-tee", Price: "19.90",
			Source: types.Source{StoreName: "Acme Store", Collection: "Tops"},
			Variants: []types.Variant{
				{Id: 11, Size: "S", Color: "Red", Available: true},
				{Id: 12, Size: "M", Color: "Red", Available: false},
			},
		},
		{
			Id: 2, Name: "Rain Jacket", Handle: "rain-jacket", Price: "89.00",
			Source: types.Source{StoreName: "Acme Store", Collection: "Outerwear"},
			Variants: []types.Variant{
				{Id: 21, Size: "M", Color: "Dark blue", Available: true},
			},
		},
		{
			Id: 3, Name: "Wool Beanie", Handle: "wool-beanie", Price: "25.00",
			Source: types.Source{StoreName: "Other Shop", Collection: "Accessories"},
			Variants: []types.Variant{
				{Id: 31, Color: "dark-blue", Available: true},
			},
		},
	}
}

func TestApplyNoFilters(t *testing.T) {
	state := types.NewFilterState()
	if got := Apply(testProducts(), state); len(got) != 3 {
		t.Errorf("Expected all 3 products, got %d", len(got))
	}
}

func TestApplyQueryMatchesNameAndStore(t *testing.T) {
	state := types.NewFilterState()
	state.Query = "tee"
	if got := Apply(testProducts(), state); len(got) != 1 || got[0].Id != 1 {
		t.Errorf("Expected product 1 for query tee, got %v", got)
	}

	state.Query = "acme"
	if got := Apply(testProducts(), state); len(got) != 2 {
		t.Errorf("Expected 2 products for store query, got %d", len(got))
	}
}

func TestApplyPriceBounds(t *testing.T) {
	state := types.NewFilterState()
	state.MinPrice = 20
	state.MaxPrice = 90
	got := Apply(testProducts(), state)
	if len(got) != 2 {
		t.Errorf("Expected 2 products in [20,90], got %d", len(got))
	}
}

func TestApplyBrandsAreOred(t *testing.T) {
	state := types.NewFilterState()
	state.Brands = []string{"acme-store", "other-shop"}
	if got := Apply(testProducts(), state); len(got) != 3 {
		t.Errorf("Expected brand OR to match all, got %d", len(got))
	}

	state.Brands = []string{"other-shop"}
	if got := Apply(testProducts(), state); len(got) != 1 || got[0].Id != 3 {
		t.Errorf("Expected only product 3, got %v", got)
	}
}

func TestApplyKindsAreAnded(t *testing.T) {
	state := types.NewFilterState()
	state.Brands = []string{"acme-store"}
	state.Sizes = []string{"M"}
	got := Apply(testProducts(), state)
	if len(got) != 2 {
		t.Errorf("Expected 2 products for brand AND size, got %d", len(got))
	}

	state.Colors = []string{"Dark Blue"}
	got = Apply(testProducts(), state)
	if len(got) != 1 || got[0].Id != 2 {
		t.Errorf("Expected only product 2, got %v", got)
	}
}

func TestApplyColorNormalizedMatch(t *testing.T) {
	// "dark-blue" on the variant matches the canonical "Dark Blue" filter.
	state := types.NewFilterState()
	state.Colors = []string{"Dark Blue"}
	got := Apply(testProducts(), state)
	if len(got) != 2 {
		t.Errorf("Expected 2 dark blue products, got %d", len(got))
	}
}

func TestApplyAddingFiltersNeverGrowsResult(t *testing.T) {
	products := testProducts()
	state := types.NewFilterState()
	base := len(Apply(products, state))

	state.Query = "a"
	withQuery := len(Apply(products, state))
	if withQuery > base {
		t.Errorf("Adding a query grew the result: %d > %d", withQuery, base)
	}

	state.Sizes = []string{"M"}
	withSize := len(Apply(products, state))
	if withSize > withQuery {
		t.Errorf("Adding a size grew the result: %d > %d", withSize, withQuery)
	}
}
