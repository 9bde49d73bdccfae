package types

import (
	"strconv"
	"strings"
)

// Source identifies the store a product was aggregated from and the
// collection label it was listed under.
type Source struct {
	Id         int    `json:"id"`
	StoreName  string `json:"store_name"`
	BaseUrl    string `json:"base_url,omitempty"`
	Collection string `json:"collection"`
}

type Image struct {
	Url string `json:"image_url"`
	Alt string `json:"alt,omitempty"`
}

// Variant is one purchasable configuration of a product. Size and color are
// free-text as delivered by the feed and may be empty.
type Variant struct {
	Id            uint   `json:"id"`
	Size          string `json:"size,omitempty"`
	Color         string `json:"color,omitempty"`
	Available     bool   `json:"available"`
	FeaturedImage string `json:"featured_image,omitempty"`
}

type Product struct {
	Id             uint      `json:"id"`
	Name           string    `json:"name"`
	Handle         string    `json:"handle"`
	Price          string    `json:"price"`
	CompareAtPrice string    `json:"compare_at_price,omitempty"`
	Source         Source    `json:"source"`
	Tags           []string  `json:"tags,omitempty"`
	Images         []Image   `json:"images,omitempty"`
	Variants       []Variant `json:"variants"`
	SourceUrl      string    `json:"source_url,omitempty"`
}

// PriceValue parses the decimal price string. The feed occasionally carries
// empty or garbage prices, those are treated as 0 rather than rejected.
func (p *Product) PriceValue() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.Price), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func (p *Product) BrandSlug() string {
	return Slugify(p.Source.StoreName)
}

func (p *Product) CategorySlug() string {
	return Slugify(p.Source.Collection)
}

// Slugify lowercases a display label and replaces whitespace runs with
// hyphens, matching the slugs the storefront puts in the URL.
func Slugify(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(label))), "-")
}
