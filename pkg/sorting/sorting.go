package sorting

import (
	"sort"
	"strings"

	"github.com/shopmix/catalog/pkg/types"
)

type Key string

const (
	KeyPrice       Key = "PRICE"
	KeyCreatedAt   Key = "CREATED_AT"
	KeyBestSelling Key = "BEST_SELLING"
	KeyRelevance   Key = "RELEVANCE"
)

// Option binds a URL sort slug to a key and direction.
type Option struct {
	Slug    string `json:"slug"`
	Label   string `json:"label"`
	Key     Key    `json:"-"`
	Reverse bool   `json:"-"`
}

var Options = []Option{
	{Slug: "relevance", Label: "Relevance", Key: KeyRelevance},
	{Slug: "best-selling", Label: "Best selling", Key: KeyBestSelling},
	{Slug: "latest", Label: "Latest arrivals", Key: KeyCreatedAt, Reverse: true},
	{Slug: "price-asc", Label: "Price: low to high", Key: KeyPrice},
	{Slug: "price-desc", Label: "Price: high to low", Key: KeyPrice, Reverse: true},
}

var defaultOption = Options[0]

// BySlug resolves a sort slug from the URL. Unknown or empty slugs fall back
// to the default ordering.
func BySlug(slug string) Option {
	for _, opt := range Options {
		if opt.Slug == slug {
			return opt
		}
	}
	return defaultOption
}

// Apply sorts a copy of the product list by the given key. The sort is
// stable: ties keep their original relative order, also when reversed, since
// reverse negates the comparison rather than flipping the slice.
//
// CREATED_AT, BEST_SELLING and RELEVANCE all compare by name. The feed
// carries no creation date or sales rank, so there is nothing better to
// order by, keep the fallback rather than inventing a heuristic.
func Apply(products []types.Product, key Key, reverse bool) []types.Product {
	result := make([]types.Product, len(products))
	copy(result, products)
	cmp := comparator(key)
	if cmp == nil {
		return result
	}
	sort.SliceStable(result, func(i, j int) bool {
		c := cmp(&result[i], &result[j])
		if reverse {
			return c > 0
		}
		return c < 0
	})
	return result
}

func comparator(key Key) func(a, b *types.Product) int {
	switch key {
	case KeyPrice:
		return func(a, b *types.Product) int {
			pa, pb := a.PriceValue(), b.PriceValue()
			switch {
			case pa < pb:
				return -1
			case pa > pb:
				return 1
			}
			return 0
		}
	case KeyCreatedAt, KeyBestSelling, KeyRelevance:
		return func(a, b *types.Product) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}
	return nil
}
