package facet

import (
	"sort"
	"strings"

	"github.com/shopmix/catalog/pkg/types"
)

// sizePriority is the displayed order for known letter sizes. Labels outside
// this sequence sort after all known ones, lexicographically.
var sizePriority = map[string]int{
	"XS":   0,
	"S":    1,
	"M":    2,
	"L":    3,
	"XL":   4,
	"XXL":  5,
	"XXXL": 6,
}

// Categories lists the distinct collection labels with product counts,
// ordered case-insensitively.
func Categories(products []types.Product) []types.FacetValue {
	return countByLabel(products, func(p *types.Product) []string {
		if p.Source.Collection == "" {
			return nil
		}
		return []string{p.Source.Collection}
	})
}

// Vendors lists the distinct store names with product counts.
func Vendors(products []types.Product) []types.FacetValue {
	return countByLabel(products, func(p *types.Product) []string {
		if p.Source.StoreName == "" {
			return nil
		}
		return []string{p.Source.StoreName}
	})
}

// Sizes counts products (not variants) per normalized size and orders them
// by the fixed priority sequence, unknown sizes after.
func Sizes(products []types.Product) []types.FacetValue {
	values := countByLabel(products, func(p *types.Product) []string {
		labels := make([]string, 0, len(p.Variants))
		for _, v := range p.Variants {
			if s := NormalizeSize(v.Size); s != "" {
				labels = append(labels, s)
			}
		}
		return labels
	})
	sort.SliceStable(values, func(i, j int) bool {
		pi, iKnown := sizePriority[values[i].Label]
		pj, jKnown := sizePriority[values[j].Label]
		if iKnown && jKnown {
			return pi < pj
		}
		if iKnown != jKnown {
			return iKnown
		}
		return values[i].Label < values[j].Label
	})
	return values
}

// Colors counts products per normalized color, ordered case-insensitively.
func Colors(products []types.Product) []types.FacetValue {
	return countByLabel(products, func(p *types.Product) []string {
		labels := make([]string, 0, len(p.Variants))
		for _, v := range p.Variants {
			if v.Color == "" {
				continue
			}
			if c := NormalizeColor(v.Color); c != "" {
				labels = append(labels, c)
			}
		}
		return labels
	})
}

// MaxPrice is the highest parsed price in the collection, used as the upper
// bound of the price slider.
func MaxPrice(products []types.Product) float64 {
	high := 0.0
	for i := range products {
		if v := products[i].PriceValue(); v > high {
			high = v
		}
	}
	return high
}

// countByLabel counts at most one occurrence per product for each distinct
// label the extractor yields, even when several variants share it.
func countByLabel(products []types.Product, labelsOf func(*types.Product) []string) []types.FacetValue {
	counts := map[string]int{}
	for i := range products {
		seen := map[string]struct{}{}
		for _, label := range labelsOf(&products[i]) {
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}
			counts[label]++
		}
	}
	values := make([]types.FacetValue, 0, len(counts))
	for label, count := range counts {
		values = append(values, types.FacetValue{Label: label, ProductCount: count})
	}
	sort.Slice(values, func(i, j int) bool {
		li := strings.ToLower(values[i].Label)
		lj := strings.ToLower(values[j].Label)
		if li == lj {
			return values[i].Label < values[j].Label
		}
		return li < lj
	})
	return values
}
