package types

// FacetValue is one selectable value of a facet with the number of products
// carrying it. Counts are recomputed per query, never stored.
type FacetValue struct {
	Label        string `json:"label"`
	ProductCount int    `json:"productCount"`
}

// Facets is the sidebar payload: every filterable dimension with its values
// counted under the exclude-self rule.
type Facets struct {
	Categories []FacetValue `json:"categories"`
	Vendors    []FacetValue `json:"vendors"`
	Sizes      []FacetValue `json:"sizes"`
	Colors     []FacetValue `json:"colors"`
	MaxPrice   float64      `json:"maxPrice"`
}
