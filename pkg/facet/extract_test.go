package facet

import (
	"testing"

	"github.com/shopmix/catalog/pkg/types"
)

func makeProduct(id uint, name, store, collection, price string, variants ...types.Variant) types.Product {
	return types.Product{
		Id:       id,
		Name:     name,
		Price:    price,
		Source:   types.Source{StoreName: store, Collection: collection},
		Variants: variants,
	}
}

func TestSizesCountsPerProduct(t *testing.T) {
	// Two variants of the same product sharing size M must count once.
	products := []types.Product{
		makeProduct(1, "Tee", "Acme", "Tops", "10",
			types.Variant{Id: 1, Size: "M", Color: "Red"},
			types.Variant{Id: 2, Size: "M", Color: "Blue"},
			types.Variant{Id: 3, Size: "S", Color: "Red"},
		),
		makeProduct(2, "Hoodie", "Acme", "Tops", "20",
			types.Variant{Id: 4, Size: "M"},
		),
	}
	values := Sizes(products)
	counts := map[string]int{}
	for _, v := range values {
		counts[v.Label] = v.ProductCount
	}
	if counts["M"] != 2 {
		t.Errorf("Expected M count 2, got %d", counts["M"])
	}
	if counts["S"] != 1 {
		t.Errorf("Expected S count 1, got %d", counts["S"])
	}
}

func TestSizesPriorityOrder(t *testing.T) {
	products := []types.Product{
		makeProduct(1, "Tee", "Acme", "Tops", "10",
			types.Variant{Id: 1, Size: "ZZ"},
			types.Variant{Id: 2, Size: "XL"},
			types.Variant{Id: 3, Size: "AA"},
			types.Variant{Id: 4, Size: "S"},
			types.Variant{Id: 5, Size: "XS"},
		),
	}
	values := Sizes(products)
	got := make([]string, 0, len(values))
	for _, v := range values {
		got = append(got, v.Label)
	}
	want := []string{"XS", "S", "XL", "AA", "ZZ"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
}

func TestSizesDropNonAlphabetic(t *testing.T) {
	products := []types.Product{
		makeProduct(1, "Jeans", "Acme", "Bottoms", "50",
			types.Variant{Id: 1, Size: "32"},
			types.Variant{Id: 2, Size: "32W"},
		),
	}
	if values := Sizes(products); len(values) != 0 {
		t.Errorf("Expected numeric sizes to be dropped, got %v", values)
	}
}

func TestColorsNormalizedAndDeduped(t *testing.T) {
	products := []types.Product{
		makeProduct(1, "Tee", "Acme", "Tops", "10",
			types.Variant{Id: 1, Size: "S", Color: "dark-blue"},
			types.Variant{Id: 2, Size: "M", Color: "Dark blue"},
		),
		makeProduct(2, "Cap", "Acme", "Accessories", "15",
			types.Variant{Id: 3, Color: "DARK BLUE"},
		),
	}
	values := Colors(products)
	if len(values) != 1 {
		t.Fatalf("Expected one color value, got %v", values)
	}
	if values[0].Label != "Dark Blue" || values[0].ProductCount != 2 {
		t.Errorf("Expected Dark Blue with count 2, got %v", values[0])
	}
}

func TestVendorsSorted(t *testing.T) {
	products := []types.Product{
		makeProduct(1, "A", "zeta", "Tops", "10"),
		makeProduct(2, "B", "Alpha", "Tops", "10"),
		makeProduct(3, "C", "Alpha", "Tops", "10"),
	}
	values := Vendors(products)
	if len(values) != 2 {
		t.Fatalf("Expected two vendors, got %v", values)
	}
	if values[0].Label != "Alpha" || values[0].ProductCount != 2 {
		t.Errorf("Expected Alpha first with count 2, got %v", values[0])
	}
	if values[1].Label != "zeta" {
		t.Errorf("Expected case-insensitive order, got %v", values)
	}
}

func TestMaxPrice(t *testing.T) {
	products := []types.Product{
		makeProduct(1, "A", "Acme", "Tops", "10.50"),
		makeProduct(2, "B", "Acme", "Tops", "not-a-price"),
		makeProduct(3, "C", "Acme", "Tops", "99.90"),
	}
	if got := MaxPrice(products); got != 99.90 {
		t.Errorf("Expected 99.90, got %v", got)
	}
}
