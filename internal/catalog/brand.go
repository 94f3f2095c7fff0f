package catalog

import (
	"regexp"
	"strings"
)

// knownBrands is the fixed vocabulary scanned in offer titles when no
// explicit brand is present. Matching is case-sensitive whole-word.
// This heuristic is best-effort cosmetic data and deliberately frozen:
// extend the vocabulary, not the algorithm.
var knownBrands = []string{
	"Apple", "Samsung", "Sony", "Google", "Microsoft", "Dell", "HP",
	"Lenovo", "Asus", "Acer", "Canon", "Nikon", "Bose", "JBL",
	"Logitech", "Xiaomi", "Huawei", "OnePlus", "Adobe", "Figma",
}

var capitalizedWordRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9]+$`)

// DeriveBrand picks the product brand: the explicit field wins, then
// the first tag, then a known-brand token in the title, then the first
// capitalized word of the title. Empty means no brand.
func DeriveBrand(explicit string, tags []string, title string) string {
	if brand := strings.TrimSpace(explicit); brand != "" {
		return brand
	}
	if len(tags) > 0 && tags[0] != "" {
		return tags[0]
	}

	words := strings.Fields(title)
	for _, brand := range knownBrands {
		for _, word := range words {
			if word == brand {
				return brand
			}
		}
	}
	for _, word := range words {
		if capitalizedWordRe.MatchString(word) {
			return word
		}
	}
	return ""
}
