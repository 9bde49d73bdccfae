package facet

import "strings"

// NormalizeColor canonicalizes a raw color token for faceting: hyphens become
// spaces and each word is title-cased, so "dark-blue", "Dark blue" and
// "DARK BLUE" all land on "Dark Blue". Idempotent.
func NormalizeColor(raw string) string {
	cleaned := strings.ReplaceAll(raw, "-", " ")
	words := strings.Fields(strings.ToLower(cleaned))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// NormalizeSize upper-cases a size token if it is purely alphabetic.
// Numeric and mixed scales ("32", "32W") return empty, sizes are restricted
// to letter scales so shoe and waist numbers never pollute the facet.
func NormalizeSize(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	for _, r := range token {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return ""
		}
	}
	return strings.ToUpper(token)
}
