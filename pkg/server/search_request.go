package server

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/shopmix/catalog/pkg/facet"
	"github.com/shopmix/catalog/pkg/types"
	"github.com/shopmix/catalog/pkg/variant"
)

// searchRequest is the raw URL query surface. Price bounds stay strings
// here, unparseable numbers degrade to neutral bounds instead of rejecting
// the request.
type searchRequest struct {
	Query    string   `schema:"q"`
	MinPrice string   `schema:"minPrice"`
	MaxPrice string   `schema:"maxPrice"`
	Brands   []string `schema:"b"`
	Category string   `schema:"c"`
	Sizes    []string `schema:"size"`
	Colors   []string `schema:"color"`
	Sort     string   `schema:"sort"`
	Page     int      `schema:"page,default:1"`
	PerPage  int      `schema:"perPage,default:54"`
}

const maxPerPage = 200

// FilterStateFromQuery parses the storefront URL query into a canonical
// FilterState. Facet values are normalized on the way in so hand-edited
// URLs land on the same keys the extractor produces.
func FilterStateFromQuery(query url.Values) types.FilterState {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	sr := searchRequest{Page: 1, PerPage: types.DefaultPerPage}
	// Only malformed parameters degrade, the decoder leaves those at their
	// defaults and still fills the valid ones. A bad URL never errors the
	// page.
	_ = decoder.Decode(&sr, query)

	state := types.NewFilterState()
	state.Query = strings.TrimSpace(sr.Query)
	if v, err := strconv.ParseFloat(sr.MinPrice, 64); err == nil && v > 0 {
		state.MinPrice = v
	}
	if v, err := strconv.ParseFloat(sr.MaxPrice, 64); err == nil && v >= 0 {
		state.MaxPrice = v
	}
	for _, b := range sr.Brands {
		if slug := types.Slugify(b); slug != "" {
			state.Brands = append(state.Brands, slug)
		}
	}
	state.Category = types.Slugify(sr.Category)
	for _, s := range sr.Sizes {
		if n := facet.NormalizeSize(s); n != "" {
			state.Sizes = append(state.Sizes, n)
		}
	}
	for _, c := range sr.Colors {
		if n := facet.NormalizeColor(c); n != "" {
			state.Colors = append(state.Colors, n)
		}
	}
	state.Sort = sr.Sort
	if sr.Page > 0 {
		state.Page = sr.Page
	}
	if sr.PerPage > 0 {
		state.PerPage = min(sr.PerPage, maxPerPage)
	}
	return state
}

// SelectionFromQuery reads the variant picker parameters (color, size).
func SelectionFromQuery(query url.Values) variant.Selection {
	sel := variant.Selection{}
	if v := query.Get(variant.OptionColor); v != "" {
		sel[variant.OptionColor] = v
	}
	if v := query.Get(variant.OptionSize); v != "" {
		sel[variant.OptionSize] = v
	}
	return sel
}
