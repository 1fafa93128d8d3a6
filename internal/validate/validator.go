package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Verdict is the outcome of validating one suggestion.
type Verdict struct {
	IsValid        bool     `json:"isValid"`
	Warnings       []string `json:"warnings"`
	RejectedReason string   `json:"rejectedReason,omitempty"`
}

// stoplist holds common words that pattern-match as entities but carry no
// factual content; they never count as fabrication.
var stoplist = map[string]bool{
	"the": true, "and": true, "for": true, "you": true, "your": true,
	"our": true, "this": true, "that": true, "with": true, "from": true,
	"hi": true, "hello": true, "dear": true, "best": true, "regards": true,
	"thanks": true, "thank": true, "team": true, "email": true,
}

// allowlist covers generic-improvement vocabulary a rewrite may introduce
// without it counting as new information: temporal anchors, soft qualifiers
// and meeting mechanics.
var allowlist = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "tomorrow": true, "today": true, "next week": true,
	"this week": true, "quick": true, "brief": true, "short": true,
	"interested": true, "available": true, "minutes": true, "chat": true,
	"call": true, "meeting": true, "question": true, "15": true, "10": true,
	"20": true, "30": true, "15 minutes": true, "30 minutes": true,
}

// fabricationPatterns are personalization moves a model must never invent.
// Each is rejected when it appears in the suggestion but not in the original.
var fabricationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bi noticed your\b`),
	regexp.MustCompile(`(?i)\bnoticed (?:that )?your\b`),
	regexp.MustCompile(`(?i)\bcongratulations on\b`),
	regexp.MustCompile(`(?i)\bcongrats on\b`),
	regexp.MustCompile(`(?i)\bi(?:'ve| have) been following\b`),
	regexp.MustCompile(`(?i)\bi recently came across\b`),
	regexp.MustCompile(`(?i)\bimpressive\b`),
	regexp.MustCompile(`(?i)\bi saw your (?:post|article|talk|announcement)\b`),
	regexp.MustCompile(`(?i)\bas a fellow\b`),
	regexp.MustCompile(`(?i)\byour recent (?:funding|launch|acquisition|promotion)\b`),
}

// Suggestion validates one model-produced rewrite against the full original
// email. Every model suggestion must pass through here; there is no bypass.
func Suggestion(original, suggested, fullOriginal string) Verdict {
	v := Verdict{IsValid: true, Warnings: []string{}}
	lowerFull := strings.ToLower(fullOriginal)
	lowerOriginal := strings.ToLower(original)

	// Fabricated personalization rejects outright, before entity analysis.
	for _, p := range fabricationPatterns {
		if p.MatchString(suggested) && !p.MatchString(fullOriginal) {
			v.IsValid = false
			v.RejectedReason = fmt.Sprintf("suggestion introduces fabricated personalization (%q)", p.FindString(suggested))
			return v
		}
	}

	var newEntities []string
	for entity := range ExtractEntities(suggested) {
		if len(entity) < 3 {
			continue
		}
		if stoplist[entity] || allowlist[entity] {
			continue
		}
		if strings.Contains(lowerFull, entity) {
			continue
		}
		newEntities = append(newEntities, entity)
	}
	if len(newEntities) > 0 {
		sort.Strings(newEntities)
		v.IsValid = false
		v.RejectedReason = fmt.Sprintf("suggestion introduces content not in the original email: %s", strings.Join(newEntities, ", "))
		return v
	}

	if len(lowerOriginal) > 0 && len(suggested) > 3*len(original) {
		v.Warnings = append(v.Warnings, "suggested text is more than 3x the length of the original")
	}

	return v
}
