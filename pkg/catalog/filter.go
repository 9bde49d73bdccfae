package catalog

import (
	"slices"
	"strings"

	"github.com/shopmix/catalog/pkg/facet"
	"github.com/shopmix/catalog/pkg/types"
)

// Apply returns the products matching every active constraint in the state.
// Kinds are ANDed together, values within a multi-valued kind (brands, sizes,
// colors) are ORed.
func Apply(products []types.Product, state types.FilterState) []types.Product {
	result := make([]types.Product, 0, len(products))
	for i := range products {
		if Matches(&products[i], state) {
			result = append(result, products[i])
		}
	}
	return result
}

func Matches(p *types.Product, state types.FilterState) bool {
	return matchesQuery(p, state.Query) &&
		matchesPrice(p, state.MinPrice, state.MaxPrice) &&
		matchesBrand(p, state.Brands) &&
		matchesCategory(p, state.Category) &&
		matchesSize(p, state.Sizes) &&
		matchesColor(p, state.Colors)
}

func matchesQuery(p *types.Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Source.StoreName), q)
}

func matchesPrice(p *types.Product, minPrice, maxPrice float64) bool {
	price := p.PriceValue()
	return price >= minPrice && price <= maxPrice
}

func matchesBrand(p *types.Product, brands []string) bool {
	if len(brands) == 0 {
		return true
	}
	return slices.Contains(brands, p.BrandSlug())
}

func matchesCategory(p *types.Product, category string) bool {
	if category == "" {
		return true
	}
	return p.CategorySlug() == category
}

func matchesSize(p *types.Product, sizes []string) bool {
	if len(sizes) == 0 {
		return true
	}
	for _, v := range p.Variants {
		if s := facet.NormalizeSize(v.Size); s != "" && slices.Contains(sizes, s) {
			return true
		}
	}
	return false
}

func matchesColor(p *types.Product, colors []string) bool {
	if len(colors) == 0 {
		return true
	}
	for _, v := range p.Variants {
		if v.Color == "" {
			continue
		}
		if slices.Contains(colors, facet.NormalizeColor(v.Color)) {
			return true
		}
	}
	return false
}
