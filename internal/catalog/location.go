package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

// countryByPlace maps normalized city and country names (diacritics
// stripped, whitespace removed, lower-cased) to ISO country codes. The
// offers feed carries a single free-text localisation field, so this
// table is how "Bruxelles" becomes BE.
var countryByPlace = map[string]models.Country{
	// France
	"paris":     models.CountryFR,
	"lyon":      models.CountryFR,
	"marseille": models.CountryFR,
	"toulouse":  models.CountryFR,
	"bordeaux":  models.CountryFR,
	"lille":     models.CountryFR,
	"nantes":    models.CountryFR,
	"france":    models.CountryFR,

	// Belgium
	"bruxelles": models.CountryBE,
	"brussels":  models.CountryBE,
	"anvers":    models.CountryBE,
	"antwerp":   models.CountryBE,
	"liege":     models.CountryBE,
	"gand":      models.CountryBE,
	"belgique":  models.CountryBE,
	"belgium":   models.CountryBE,

	// Switzerland
	"geneve":   models.CountryCH,
	"geneva":   models.CountryCH,
	"zurich":   models.CountryCH,
	"lausanne": models.CountryCH,
	"suisse":   models.CountryCH,

	// United Kingdom
	"london":     models.CountryGB,
	"londres":    models.CountryGB,
	"manchester": models.CountryGB,
	"royaumeuni": models.CountryGB,

	// United States
	"newyork":      models.CountryUS,
	"losangeles":   models.CountryUS,
	"sanfrancisco": models.CountryUS,
	"chicago":      models.CountryUS,
	"etatsunis":    models.CountryUS,

	// Germany
	"berlin":    models.CountryDE,
	"munich":    models.CountryDE,
	"hambourg":  models.CountryDE,
	"hamburg":   models.CountryDE,
	"allemagne": models.CountryDE,

	// Canada
	"toronto":   models.CountryCA,
	"montreal":  models.CountryCA,
	"vancouver": models.CountryCA,

	// Italy
	"rome":   models.CountryIT,
	"roma":   models.CountryIT,
	"milan":  models.CountryIT,
	"milano": models.CountryIT,
	"italie": models.CountryIT,

	// Spain
	"madrid":    models.CountryES,
	"barcelone": models.CountryES,
	"barcelona": models.CountryES,
	"espagne":   models.CountryES,

	// Netherlands
	"amsterdam": models.CountryNL,
	"rotterdam": models.CountryNL,
	"paysbas":   models.CountryNL,

	// Australia
	"sydney":    models.CountryAU,
	"melbourne": models.CountryAU,
	"australie": models.CountryAU,

	// Japan
	"tokyo": models.CountryJP,
	"osaka": models.CountryJP,
	"japon": models.CountryJP,

	// United Arab Emirates
	"dubai":    models.CountryAE,
	"abudhabi": models.CountryAE,
}

var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NormalizePlace reduces a free-text place name to its lookup form:
// diacritics stripped, whitespace and separators removed, lower-cased.
func NormalizePlace(place string) string {
	stripped, _, err := transform.String(diacriticStripper, place)
	if err != nil {
		stripped = place
	}

	var b strings.Builder
	for _, r := range stripped {
		if unicode.IsSpace(r) || r == '-' || r == '\'' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// LookupCountry resolves a free-text location or country value to a
// country code. Exact ISO codes are accepted before the place table is
// consulted.
func LookupCountry(place string) (models.Country, bool) {
	place = strings.TrimSpace(place)
	if place == "" {
		return "", false
	}

	if code, ok := knownCountryCode(place); ok {
		return code, true
	}
	if country, ok := countryByPlace[NormalizePlace(place)]; ok {
		return country, true
	}
	return "", false
}

func knownCountryCode(s string) (models.Country, bool) {
	switch models.Country(strings.ToUpper(s)) {
	case models.CountryFR, models.CountryUS, models.CountryGB, models.CountryDE,
		models.CountryCA, models.CountryIT, models.CountryES, models.CountryCH,
		models.CountryBE, models.CountryNL, models.CountryAU, models.CountryJP,
		models.CountryAE:
		return models.Country(strings.ToUpper(s)), true
	}
	return "", false
}
