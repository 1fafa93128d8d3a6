package lexical

import (
	"regexp"
	"strings"
	"unicode"
)

// Severity bands a spam score into an actionable tier.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SpamTriggerResult reports trigger-phrase matches and formatting penalties.
type SpamTriggerResult struct {
	Score          int      `json:"score"`
	Matches        []string `json:"matches"`
	Severity       Severity `json:"severity"`
	UppercaseRatio float64  `json:"uppercaseRatio"`
	ExcessiveMarks bool     `json:"excessivePunctuation"`
	DollarRun      bool     `json:"dollarRun"`
}

var (
	exclaimRun = regexp.MustCompile(`[!?]{3,}`)
	dollarRun  = regexp.MustCompile(`\${3,}`)
)

// DetectSpamTriggers scans text against the trigger-phrase table and adds
// formatting penalties for shouting and punctuation runs. Score is capped
// at 100.
func DetectSpamTriggers(text string) SpamTriggerResult {
	res := SpamTriggerResult{Matches: []string{}}
	lower := strings.ToLower(text)

	for _, phrase := range spamTriggerPhrases {
		if strings.Contains(lower, phrase) {
			res.Matches = append(res.Matches, phrase)
			res.Score += 5
		}
	}

	res.UppercaseRatio = uppercaseRatio(text)
	if res.UppercaseRatio > 0.30 {
		res.Score += 15
	}
	if exclaimRun.MatchString(text) {
		res.ExcessiveMarks = true
		res.Score += 10
	}
	if dollarRun.MatchString(text) {
		res.DollarRun = true
		res.Score += 8
	}

	if res.Score > 100 {
		res.Score = 100
	}

	switch {
	case res.Score < 15:
		res.Severity = SeverityLow
	case res.Score < 30:
		res.Severity = SeverityMedium
	case res.Score < 50:
		res.Severity = SeverityHigh
	default:
		res.Severity = SeverityCritical
	}

	return res
}

// uppercaseRatio returns the share of letters that are uppercase. Non-letter
// runes are ignored so punctuation-heavy text isn't misread as shouting.
func uppercaseRatio(text string) float64 {
	var letters, upper int
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}
