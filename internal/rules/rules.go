// Package rules holds the static requirement text for each normal form the
// engine evaluates. The explanation path reads it; nothing writes it.
package rules

import "fmt"

var requirements = map[string]string{
	"1FN": "1FN requires every cell of the table to be atomic: no repeating " +
		"groups and no multivalued attributes. Each attribute must hold a " +
		"single value per row.",
	"2FN": "2FN requires the schema to satisfy 1FN and to have no partial " +
		"dependencies: no non-key attribute may depend on only a proper part " +
		"of a composite primary key.",
	"3FN": "3FN requires the schema to satisfy 2FN and to have no transitive " +
		"dependencies: no non-key attribute may depend on another non-key " +
		"attribute through a dependency chain.",
}

// Requirements returns the stored requirement text for a canonical form
// label. The second return value reports whether the form is known.
func Requirements(form string) (string, bool) {
	text, ok := requirements[form]
	return text, ok
}

// Placeholder is the soft-failure message for forms with no stored rule.
func Placeholder(form string) string {
	return fmt.Sprintf("There are no stored requirements for %s.", form)
}
