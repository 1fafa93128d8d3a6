package lexical

import (
	"regexp"
	"strings"
)

var wordToken = regexp.MustCompile(`[a-z0-9']+`)

// ToneResult reports sentiment, formality and urgency derived from word-list
// counting. Ties resolve to neutral.
type ToneResult struct {
	Sentiment    string `json:"sentiment"` // positive | neutral | negative
	Formality    string `json:"formality"` // formal | neutral | casual
	Urgency      string `json:"urgency"`   // low | medium | high
	PositiveHits int    `json:"positiveHits"`
	NegativeHits int    `json:"negativeHits"`
	CasualHits   int    `json:"casualHits"`
	FormalHits   int    `json:"formalHits"`
	UrgencyHits  int    `json:"urgencyHits"`
}

// AnalyzeTone counts positive/negative, casual/formal and urgency word-list
// hits over the lowercased text.
func AnalyzeTone(text string) ToneResult {
	lower := strings.ToLower(text)
	res := ToneResult{
		PositiveHits: countHits(lower, positiveWords),
		NegativeHits: countHits(lower, negativeWords),
		CasualHits:   countHits(lower, casualWords),
		FormalHits:   countHits(lower, formalWords),
		UrgencyHits:  countHits(lower, urgencyWords),
	}

	switch {
	case res.PositiveHits > res.NegativeHits:
		res.Sentiment = "positive"
	case res.NegativeHits > res.PositiveHits:
		res.Sentiment = "negative"
	default:
		res.Sentiment = "neutral"
	}

	switch {
	case res.FormalHits > res.CasualHits:
		res.Formality = "formal"
	case res.CasualHits > res.FormalHits:
		res.Formality = "casual"
	default:
		res.Formality = "neutral"
	}

	switch {
	case res.UrgencyHits >= 3:
		res.Urgency = "high"
	case res.UrgencyHits >= 1:
		res.Urgency = "medium"
	default:
		res.Urgency = "low"
	}

	return res
}

// countHits counts word-list occurrences. Single words match whole tokens
// only, so "win" does not fire inside "window"; multi-word phrases match as
// substrings.
func countHits(lower string, list []string) int {
	tokens := Tokenize(lower)
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	n := 0
	for _, w := range list {
		if strings.ContainsRune(w, ' ') {
			n += strings.Count(lower, w)
		} else {
			n += counts[w]
		}
	}
	return n
}

// Tokenize lowercases and splits text into alphanumeric word tokens.
func Tokenize(text string) []string {
	return wordToken.FindAllString(strings.ToLower(text), -1)
}
