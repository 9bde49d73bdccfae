package variant

import (
	"strings"

	"github.com/shopmix/catalog/pkg/facet"
	"github.com/shopmix/catalog/pkg/types"
)

// ColorImages builds the normalized-color to representative-image lookup the
// swatch buttons render from. Three tiers, first one yielding any mapping
// wins: the variants' own featured images, then a color-name substring match
// against the gallery URLs, then round-robin over the gallery.
func ColorImages(variants []types.Variant, images []types.Image) map[string]string {
	imageMap := map[string]string{}

	for _, v := range variants {
		if v.Color == "" || v.FeaturedImage == "" {
			continue
		}
		key := facet.NormalizeColor(v.Color)
		if _, ok := imageMap[key]; !ok {
			imageMap[key] = v.FeaturedImage
		}
	}
	if len(imageMap) > 0 {
		return imageMap
	}

	if len(images) == 0 {
		return imageMap
	}

	for _, v := range variants {
		if v.Color == "" {
			continue
		}
		key := facet.NormalizeColor(v.Color)
		if _, ok := imageMap[key]; ok {
			continue
		}
		needle := strings.ToLower(v.Color)
		joined := strings.ReplaceAll(needle, " ", "")
		for _, img := range images {
			u := strings.ToLower(img.Url)
			if strings.Contains(u, needle) || strings.Contains(u, joined) {
				imageMap[key] = img.Url
				break
			}
		}
	}
	if len(imageMap) > 0 {
		return imageMap
	}

	idx := 0
	for _, v := range variants {
		if v.Color == "" {
			continue
		}
		key := facet.NormalizeColor(v.Color)
		if _, ok := imageMap[key]; !ok {
			imageMap[key] = images[idx%len(images)].Url
		}
		idx++
	}
	return imageMap
}
