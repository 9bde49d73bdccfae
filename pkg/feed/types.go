package feed

import (
	"strings"

	"github.com/shopmix/catalog/pkg/types"
)

// The upstream feed is loosely shaped, fields come and go per store. The raw
// structs below mirror the wire format and are converted into catalog types
// exactly once, here at the boundary.

type rawImage struct {
	ImageUrl string `json:"image_url"`
	Alt      string `json:"alt"`
}

type rawVariant struct {
	Id            uint   `json:"id"`
	Size          string `json:"size"`
	Color         string `json:"color"`
	Available     bool   `json:"available"`
	FeaturedImage string `json:"featured_image"`
}

type rawFeaturedImage struct {
	Url string `json:"url"`
}

type rawProduct struct {
	Id             uint              `json:"id"`
	Name           string            `json:"name"`
	Handle         string            `json:"handle"`
	Price          string            `json:"price"`
	CompareAtPrice string            `json:"compare_at_price"`
	Source         types.Source      `json:"source"`
	FeaturedImage  *rawFeaturedImage `json:"featured_image"`
	Images         []rawImage        `json:"images"`
	Tags           []string          `json:"tags"`
	Variants       []rawVariant      `json:"variants"`
	SourceUrl      string            `json:"source_url"`
	BodyHtml       string            `json:"body_html"`
}

type listResponse struct {
	Data     []rawProduct `json:"data"`
	Count    int          `json:"count"`
	Next     string       `json:"next"`
	Previous string       `json:"previous"`
}

func (r *rawProduct) toProduct() types.Product {
	p := types.Product{
		Id:             r.Id,
		Name:           strings.TrimSpace(r.Name),
		Handle:         r.Handle,
		Price:          r.Price,
		CompareAtPrice: r.CompareAtPrice,
		Source:         r.Source,
		Tags:           r.Tags,
		SourceUrl:      r.SourceUrl,
		Variants:       make([]types.Variant, 0, len(r.Variants)),
	}
	if r.FeaturedImage != nil && r.FeaturedImage.Url != "" {
		p.Images = append(p.Images, types.Image{Url: r.FeaturedImage.Url, Alt: p.Name})
	}
	for _, img := range r.Images {
		if img.ImageUrl == "" {
			continue
		}
		p.Images = append(p.Images, types.Image{Url: img.ImageUrl, Alt: img.Alt})
	}
	for _, v := range r.Variants {
		p.Variants = append(p.Variants, types.Variant{
			Id:            v.Id,
			Size:          strings.TrimSpace(v.Size),
			Color:         strings.TrimSpace(v.Color),
			Available:     v.Available,
			FeaturedImage: v.FeaturedImage,
		})
	}
	return p
}

type Review struct {
	Id        uint   `json:"id"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Title     string `json:"title,omitempty"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at,omitempty"`
}

type NewReview struct {
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Title  string `json:"title,omitempty"`
	Body   string `json:"body"`
}
