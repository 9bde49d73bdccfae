package variant

import (
	"github.com/shopmix/catalog/pkg/types"
)

const (
	OptionColor = "color"
	OptionSize  = "size"
)

// Selection maps a lowercase option name to the picked value, mirroring the
// color/size URL parameters. It is transient UI state, never persisted.
type Selection map[string]string

func (s Selection) Clone() Selection {
	c := make(Selection, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// With returns a copy with one option set, the update a swatch click makes.
func (s Selection) With(option, value string) Selection {
	c := s.Clone()
	c[option] = value
	return c
}

type Option struct {
	Id     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Result is everything the option picker needs: the resolved variant (if the
// selected combination exists), the selection the result was computed for,
// per-value availability flags and the color swatch images. Resolved stays
// false when no variant matches the combination, the purchase action is
// disabled instead of falling back silently.
type Result struct {
	VariantId    uint                       `json:"variantId,omitempty"`
	Resolved     bool                       `json:"resolved"`
	Selection    Selection                  `json:"selection"`
	Defaulted    bool                       `json:"defaulted"`
	Options      []Option                   `json:"options"`
	Availability map[string]map[string]bool `json:"availability"`
	ColorImages  map[string]string          `json:"colorImages,omitempty"`
	HasSelector  bool                       `json:"hasSelector"`
}

// Evaluate runs the whole resolver for one product: defaults an empty
// selection to the first available variant, resolves the active variant and
// computes per-value availability. Pure, all rendering decisions stay with
// the caller.
func Evaluate(p *types.Product, sel Selection) Result {
	options := OptionsOf(p.Variants)
	result := Result{
		Selection:   sel,
		Options:     options,
		HasSelector: hasSelector(options),
	}
	if len(p.Variants) == 0 {
		return result
	}
	if len(sel) == 0 {
		result.Selection = DefaultSelection(p.Variants)
		result.Defaulted = true
	}
	result.VariantId, result.Resolved = Resolve(p.Variants, result.Selection)
	if !result.Resolved && len(result.Selection) == 0 {
		// No options to select on, the default variant is the variant.
		result.VariantId = defaultVariant(p.Variants).Id
		result.Resolved = true
	}
	result.Availability = availability(p.Variants, result.Selection, options)
	result.ColorImages = ColorImages(p.Variants, p.Images)
	return result
}

// OptionsOf derives the selectable options from the variant list, values in
// first-seen order. Options every variant leaves empty are omitted.
func OptionsOf(variants []types.Variant) []Option {
	colors := make([]string, 0, len(variants))
	sizes := make([]string, 0, len(variants))
	seenColor := map[string]struct{}{}
	seenSize := map[string]struct{}{}
	for _, v := range variants {
		if v.Color != "" {
			if _, ok := seenColor[v.Color]; !ok {
				seenColor[v.Color] = struct{}{}
				colors = append(colors, v.Color)
			}
		}
		if v.Size != "" {
			if _, ok := seenSize[v.Size]; !ok {
				seenSize[v.Size] = struct{}{}
				sizes = append(sizes, v.Size)
			}
		}
	}
	options := make([]Option, 0, 2)
	if len(colors) > 0 {
		options = append(options, Option{Id: OptionColor, Name: "Color", Values: colors})
	}
	if len(sizes) > 0 {
		options = append(options, Option{Id: OptionSize, Name: "Size", Values: sizes})
	}
	return options
}

// defaultVariant is the first variant with stock, in feed order, or the first
// variant outright when everything is sold out.
func defaultVariant(variants []types.Variant) types.Variant {
	for _, v := range variants {
		if v.Available {
			return v
		}
	}
	return variants[0]
}

// DefaultSelection picks the options of the default variant.
func DefaultSelection(variants []types.Variant) Selection {
	picked := defaultVariant(variants)
	sel := Selection{}
	if picked.Color != "" {
		sel[OptionColor] = picked.Color
	}
	if picked.Size != "" {
		sel[OptionSize] = picked.Size
	}
	return sel
}

// Resolve finds the variant whose options match every set selection value.
// Stock is irrelevant here: picking a sold-out combination still resolves,
// only the buy affordance is disabled.
func Resolve(variants []types.Variant, sel Selection) (uint, bool) {
	for _, v := range variants {
		if matchesSelection(&v, sel) {
			return v.Id, true
		}
	}
	return 0, false
}

func matchesSelection(v *types.Variant, sel Selection) bool {
	for option, value := range sel {
		if optionValue(v, option) != value {
			return false
		}
	}
	return len(sel) > 0
}

func optionValue(v *types.Variant, option string) string {
	switch option {
	case OptionColor:
		return v.Color
	case OptionSize:
		return v.Size
	}
	return ""
}

// availability flags every option value: a candidate for one option is
// available when some in-stock variant carries it together with the current
// selection of the other options. Changing one option can therefore enable
// or disable values of the others.
func availability(variants []types.Variant, sel Selection, options []Option) map[string]map[string]bool {
	result := make(map[string]map[string]bool, len(options))
	for _, option := range options {
		flags := make(map[string]bool, len(option.Values))
		for _, value := range option.Values {
			flags[value] = valueAvailable(variants, sel, option.Id, value)
		}
		result[option.Id] = flags
	}
	return result
}

func valueAvailable(variants []types.Variant, sel Selection, option, value string) bool {
	candidate := sel.With(option, value)
	for _, v := range variants {
		if v.Available && matchesSelection(&v, candidate) {
			return true
		}
	}
	return false
}

func hasSelector(options []Option) bool {
	if len(options) == 0 {
		return false
	}
	if len(options) == 1 && len(options[0].Values) == 1 {
		return false
	}
	return true
}
