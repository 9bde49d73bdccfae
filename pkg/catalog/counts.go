package catalog

import (
	"github.com/shopmix/catalog/pkg/facet"
	"github.com/shopmix/catalog/pkg/types"
)

// FacetsFor computes the sidebar facets for a filter state. Each facet's
// counts come from the collection filtered by every active constraint except
// the one belonging to that facet's own kind, so every alternative choice
// shows the result count it would yield. The price ceiling ignores the price
// filter for the same reason.
func FacetsFor(products []types.Product, state types.FilterState) types.Facets {
	return types.Facets{
		Categories: facet.Categories(Apply(products, state.Without(types.KindCategory))),
		Vendors:    facet.Vendors(Apply(products, state.Without(types.KindBrand))),
		Sizes:      facet.Sizes(Apply(products, state.Without(types.KindSize))),
		Colors:     facet.Colors(Apply(products, state.Without(types.KindColor))),
		MaxPrice:   facet.MaxPrice(Apply(products, state.Without(types.KindPrice))),
	}
}
