// Package validate gates generative-model output: a suggestion is only
// presentable if everything factual in it already appears in the original
// draft. It is the sole barrier between the model and the caller.
package validate

import (
	"regexp"
	"strings"
)

var (
	// Two or more consecutive capitalized words, e.g. "Acme Corp",
	// "Jordan Smith". Single capitalized words are too noisy (sentence
	// starts) to treat as entities.
	capitalizedPhrase = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b`)

	// Numbers, percentages and currency amounts.
	numericToken = regexp.MustCompile(`(?:[$€£]\s?\d[\d,]*(?:\.\d+)?|\b\d[\d,]*(?:\.\d+)?%?)`)

	quotedString = regexp.MustCompile(`"([^"]{2,})"|'([^']{2,})'`)
)

// ExtractEntities pulls the factual tokens out of text: capitalized
// multi-word phrases, numeric/percent/currency tokens and quoted strings.
// Everything is lowercased so membership checks are case-insensitive.
func ExtractEntities(text string) map[string]bool {
	entities := make(map[string]bool)

	for _, m := range capitalizedPhrase.FindAllString(text, -1) {
		entities[strings.ToLower(m)] = true
	}
	for _, m := range numericToken.FindAllString(text, -1) {
		entities[strings.ToLower(strings.TrimSpace(m))] = true
	}
	for _, m := range quotedString.FindAllStringSubmatch(text, -1) {
		for _, g := range m[1:] {
			if g != "" {
				entities[strings.ToLower(g)] = true
			}
		}
	}

	return entities
}
