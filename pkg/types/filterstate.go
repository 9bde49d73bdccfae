package types

import (
	"math"
	"net/url"
	"strconv"
)

// FacetKind enumerates the filterable dimensions. Used by the exclude-self
// counting rule to drop a single kind from a FilterState.
type FacetKind uint

const (
	KindQuery FacetKind = iota
	KindPrice
	KindBrand
	KindCategory
	KindSize
	KindColor
)

// FilterState is the parsed canonical form of the storefront URL query.
// It is a value, derived fresh per request and never mutated, the URL is the
// only durable representation of it.
type FilterState struct {
	Query    string
	MinPrice float64
	MaxPrice float64
	Brands   []string
	Category string
	Sizes    []string
	Colors   []string
	Sort     string
	Page     int
	PerPage  int
}

const DefaultPerPage = 54

func NewFilterState() FilterState {
	return FilterState{
		MaxPrice: math.Inf(1),
		Page:     1,
		PerPage:  DefaultPerPage,
	}
}

func (s FilterState) HasPriceFilter() bool {
	return s.MinPrice > 0 || !math.IsInf(s.MaxPrice, 1)
}

// Without returns a copy of the state with every constraint of the given
// kind removed. Slices are shared, callers must not mutate them.
func (s FilterState) Without(kind FacetKind) FilterState {
	switch kind {
	case KindQuery:
		s.Query = ""
	case KindPrice:
		s.MinPrice = 0
		s.MaxPrice = math.Inf(1)
	case KindBrand:
		s.Brands = nil
	case KindCategory:
		s.Category = ""
	case KindSize:
		s.Sizes = nil
	case KindColor:
		s.Colors = nil
	}
	return s
}

// Values serializes the state back to the URL query surface consumed by the
// storefront: q, minPrice, maxPrice, b (repeatable), c, size (repeatable),
// color (repeatable), sort, page, perPage.
func (s FilterState) Values() url.Values {
	q := url.Values{}
	if s.Query != "" {
		q.Set("q", s.Query)
	}
	if s.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatFloat(s.MinPrice, 'f', -1, 64))
	}
	if !math.IsInf(s.MaxPrice, 1) {
		q.Set("maxPrice", strconv.FormatFloat(s.MaxPrice, 'f', -1, 64))
	}
	for _, b := range s.Brands {
		q.Add("b", b)
	}
	if s.Category != "" {
		q.Set("c", s.Category)
	}
	for _, v := range s.Sizes {
		q.Add("size", v)
	}
	for _, v := range s.Colors {
		q.Add("color", v)
	}
	if s.Sort != "" {
		q.Set("sort", s.Sort)
	}
	if s.Page > 1 {
		q.Set("page", strconv.Itoa(s.Page))
	}
	if s.PerPage > 0 && s.PerPage != DefaultPerPage {
		q.Set("perPage", strconv.Itoa(s.PerPage))
	}
	return q
}

// CacheKey is the canonical string form used to key cached query results.
func (s FilterState) CacheKey() string {
	return s.Values().Encode()
}
