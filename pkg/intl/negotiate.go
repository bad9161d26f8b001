package intl

import (
	"cmp"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// languageRange is one Accept-Language entry with its quality value.
type languageRange struct {
	tag     string
	quality float64
}

// Negotiate returns the available locales acceptable to the request, best
// first, based on its Accept-Language header. It returns nil when nothing
// matches.
func Negotiate(r *http.Request, available []string) []string {
	return MatchAcceptLanguage(r.Header.Get("Accept-Language"), available)
}

// MatchAcceptLanguage matches an Accept-Language header against the
// available locales. Entries are tried in quality order; each selects an
// exact match, otherwise the available locale equal to its base language,
// otherwise the first available locale sharing its base language. A "*"
// entry accepts every remaining available locale in order. Entries with
// q=0 and malformed tags are ignored.
//
// Example header: "fr-CA,fr;q=0.9,es;q=0.8"
// Available: ["es", "fr"]
// Returns: ["fr", "es"]
func MatchAcceptLanguage(header string, available []string) []string {
	if header == "" || len(available) == 0 {
		return nil
	}

	var matched []string
	seen := make(map[string]bool, len(available))
	add := func(locale string) {
		if !seen[locale] {
			seen[locale] = true
			matched = append(matched, locale)
		}
	}

	for _, r := range parseLanguageRanges(header) {
		if r.tag == "*" {
			for _, avail := range available {
				add(avail)
			}
			continue
		}
		if locale, ok := matchLocale(r.tag, available); ok {
			add(locale)
		}
	}
	return matched
}

// parseLanguageRanges parses the header into ranges sorted by quality,
// keeping header order among equal qualities.
func parseLanguageRanges(header string) []languageRange {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var ranges []languageRange
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		tag, params, hasParams := strings.Cut(part, ";")
		tag = strings.TrimSpace(tag)
		if hasParams {
			params = strings.TrimSpace(params)
			if q, ok := strings.CutPrefix(params, "q="); ok {
				v, err := strconv.ParseFloat(q, 64)
				if err != nil || v < 0 || v > 1 {
					continue
				}
				quality = v
			}
		}
		if quality == 0 || tag == "" {
			continue
		}

		if tag != "*" {
			parsed, err := language.Parse(tag)
			if err != nil {
				continue
			}
			tag = parsed.String()
		}
		ranges = append(ranges, languageRange{tag: tag, quality: quality})
	}

	slices.SortStableFunc(ranges, func(a, b languageRange) int {
		return cmp.Compare(b.quality, a.quality)
	})
	return ranges
}

func matchLocale(requested string, available []string) (string, bool) {
	for _, avail := range available {
		if strings.EqualFold(avail, requested) {
			return avail, true
		}
	}

	base := baseLanguage(requested)
	for _, avail := range available {
		if strings.EqualFold(avail, base) {
			return avail, true
		}
	}
	for _, avail := range available {
		if baseLanguage(avail) == base {
			return avail, true
		}
	}
	return "", false
}

func baseLanguage(locale string) string {
	locale = strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
	if i := strings.IndexByte(locale, '-'); i > 0 {
		return locale[:i]
	}
	return locale
}
