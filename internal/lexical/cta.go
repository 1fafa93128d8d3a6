package lexical

import "strings"

// CTAStrength classifies how direct the strongest call-to-action is.
type CTAStrength string

const (
	CTAWeak     CTAStrength = "weak"
	CTAModerate CTAStrength = "moderate"
	CTAStrong   CTAStrength = "strong"
)

// CTAResult reports call-to-action presence, strength and clarity.
type CTAResult struct {
	HasCTA        bool        `json:"hasCta"`
	Strength      CTAStrength `json:"strength"`
	ClarityScore  int         `json:"clarityScore"` // 0..100
	QuestionCount int         `json:"questionCount"`
	WeakHits      int         `json:"weakHits"`
	ModerateHits  int         `json:"moderateHits"`
	StrongHits    int         `json:"strongHits"`
}

// AnalyzeCTA counts question marks and hits across the three CTA-strength
// phrase tiers. Strength reflects the strongest tier hit; clarity scales
// with total hits plus a bonus for strong hits, capped at 100.
func AnalyzeCTA(text string) CTAResult {
	lower := strings.ToLower(text)
	res := CTAResult{
		QuestionCount: strings.Count(text, "?"),
		WeakHits:      countHits(lower, weakCTAPhrases),
		ModerateHits:  countHits(lower, moderateCTAPhrases),
		StrongHits:    countHits(lower, strongCTAPhrases),
	}

	total := res.WeakHits + res.ModerateHits + res.StrongHits + res.QuestionCount
	res.HasCTA = total > 0

	switch {
	case res.StrongHits > 0:
		res.Strength = CTAStrong
	case res.ModerateHits > 0:
		res.Strength = CTAModerate
	default:
		res.Strength = CTAWeak
	}

	res.ClarityScore = total*20 + res.StrongHits*15
	if res.ClarityScore > 100 {
		res.ClarityScore = 100
	}

	return res
}
