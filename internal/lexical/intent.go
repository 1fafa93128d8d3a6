package lexical

import (
	"sort"
	"strings"
)

// Intent is the closed taxonomy of outreach-email intents.
type Intent string

const (
	IntentColdOutreach     Intent = "cold_outreach"
	IntentFollowUp         Intent = "follow_up"
	IntentMeetingRequest   Intent = "meeting_request"
	IntentWarmIntroduction Intent = "warm_introduction"
	IntentReEngagement     Intent = "re_engagement"
	IntentBreakup          Intent = "breakup"
	IntentValueDelivery    Intent = "value_delivery"
	IntentReferralRequest  Intent = "referral_request"
	IntentTestimonialAsk   Intent = "testimonial_ask"
	IntentThankYou         Intent = "thank_you"
	IntentApology          Intent = "apology"
	IntentAnnouncement     Intent = "announcement"
	IntentSurveyRequest    Intent = "survey_request"
)

// IntentResult names the dominant intent plus any secondary intents scoring
// at least 20% of the primary.
type IntentResult struct {
	Primary    Intent         `json:"primary"`
	Secondary  []Intent       `json:"secondary"`
	Confidence int            `json:"confidence"` // 0..100
	Scores     map[Intent]int `json:"scores"`
}

// ClassifyIntent scores the subject+body against each intent's keyword
// patterns. Cold outreach is the default when nothing scores.
func ClassifyIntent(subject, body string) IntentResult {
	lower := strings.ToLower(subject + "\n" + body)

	res := IntentResult{
		Primary:   IntentColdOutreach,
		Secondary: []Intent{},
		Scores:    map[Intent]int{},
	}

	for intent, patterns := range intentPatterns {
		score := 0
		for _, p := range patterns {
			if strings.Contains(lower, p.phrase) {
				score += p.weight
			}
		}
		if score > 0 {
			res.Scores[intent] = score
		}
	}

	if len(res.Scores) == 0 {
		return res
	}

	// Deterministic ordering: score descending, then name ascending.
	type scored struct {
		intent Intent
		score  int
	}
	ranked := make([]scored, 0, len(res.Scores))
	for in, sc := range res.Scores {
		ranked = append(ranked, scored{in, sc})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].intent < ranked[j].intent
	})

	res.Primary = ranked[0].intent
	primaryScore := ranked[0].score
	for _, r := range ranked[1:] {
		if r.score*5 >= primaryScore { // >= 20% of primary
			res.Secondary = append(res.Secondary, r.intent)
		}
	}

	res.Confidence = primaryScore * 2
	if res.Confidence > 100 {
		res.Confidence = 100
	}

	return res
}
