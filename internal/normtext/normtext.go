// Package normtext canonicalizes free-form schema names and normal-form
// labels before they touch the fact store or its queries.
package normtext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText trims surrounding whitespace and strips diacritical marks.
// Empty or whitespace-only input normalizes to "".
func NormalizeText(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(out)
}

var formSynonyms = map[string]string{
	"1FN":                "1FN",
	"1NF":                "1FN",
	"PRIMERAFORMANORMAL": "1FN",
	"PRIMERAFORMA":       "1FN",
	"FIRSTNORMALFORM":    "1FN",

	"2FN":                "2FN",
	"2NF":                "2FN",
	"SEGUNDAFORMANORMAL": "2FN",
	"SEGUNDAFORMA":       "2FN",
	"SECONDNORMALFORM":   "2FN",

	"3FN":                "3FN",
	"3NF":                "3FN",
	"TERCERAFORMANORMAL": "3FN",
	"TERCERAFORMA":       "3FN",
	"THIRDNORMALFORM":    "3FN",
}

// NormalizeFormLabel maps case-insensitive, space-stripped synonyms
// ("1nf", "primera forma normal") to the canonical labels 1FN/2FN/3FN.
// Unrecognized non-empty input passes through trimmed and upper-cased so
// callers can handle it downstream instead of losing it silently.
func NormalizeFormLabel(s string) string {
	t := NormalizeText(s)
	if t == "" {
		return ""
	}
	key := strings.ToUpper(strings.ReplaceAll(t, " ", ""))
	if canonical, ok := formSynonyms[key]; ok {
		return canonical
	}
	return strings.ToUpper(t)
}
