package analyzer

import (
	"fmt"
	"strings"

	"github.com/ignite/outreach-engine/internal/lexical"
)

// SalesAnalysis scores a draft across the six sales-email dimensions.
type SalesAnalysis struct {
	IsSales         bool          `json:"isSales"`
	Confidence      int           `json:"confidence"`
	OverallScore    int           `json:"overallScore"`
	Opening         CategoryScore `json:"opening"`
	Personalization CategoryScore `json:"personalization"`
	ValueProp       CategoryScore `json:"valueProposition"`
	SocialProof     CategoryScore `json:"socialProof"`
	Urgency         CategoryScore `json:"urgency"`
	CTA             CategoryScore `json:"callToAction"`
	Improvements    []Improvement `json:"improvements"`
}

// salesWeights is the internal weighting of the six dimensions. Independent
// of the comprehensive aggregator's category weights; tuned separately.
var salesWeights = struct {
	opening, personalization, value, social, urgency, cta float64
}{0.20, 0.20, 0.20, 0.10, 0.05, 0.25}

// ClassifySalesEmail scores sales framing via weighted keyword categories.
// Confidence above 40 reads as a sales email.
func ClassifySalesEmail(subject, body string) (bool, int) {
	lower := strings.ToLower(subject + "\n" + body)
	confidence := 0
	for _, cat := range salesKeywordCategories {
		for _, w := range cat.words {
			if strings.Contains(lower, w) {
				confidence += cat.weight
				break
			}
		}
	}
	confidence = Clamp(confidence)
	return confidence > 40, confidence
}

// AnalyzeSalesEmail runs the six sub-dimension scorers and combines them
// with the sales weighting.
func AnalyzeSalesEmail(subject, body string, recipient *RecipientData) SalesAnalysis {
	isSales, confidence := ClassifySalesEmail(subject, body)

	res := SalesAnalysis{IsSales: isSales, Confidence: confidence, Improvements: []Improvement{}}

	var imps []Improvement
	res.Opening, imps = scoreOpening(body)
	res.Improvements = append(res.Improvements, imps...)

	res.Personalization, imps = scorePersonalization(body, recipient)
	res.Improvements = append(res.Improvements, imps...)

	res.ValueProp, imps = scoreValueProposition(body)
	res.Improvements = append(res.Improvements, imps...)

	res.SocialProof, imps = scoreSocialProof(body)
	res.Improvements = append(res.Improvements, imps...)

	res.Urgency, imps = scoreUrgency(body)
	res.Improvements = append(res.Improvements, imps...)

	res.CTA, imps = scoreSalesCTA(body)
	res.Improvements = append(res.Improvements, imps...)

	overall := float64(res.Opening.Score)*salesWeights.opening +
		float64(res.Personalization.Score)*salesWeights.personalization +
		float64(res.ValueProp.Score)*salesWeights.value +
		float64(res.SocialProof.Score)*salesWeights.social +
		float64(res.Urgency.Score)*salesWeights.urgency +
		float64(res.CTA.Score)*salesWeights.cta
	res.OverallScore = Clamp(int(overall + 0.5))

	return res
}

// scoreOpening judges the first line: generic openers are penalized, pattern
// interrupts and observations earn a bonus.
func scoreOpening(body string) (CategoryScore, []Improvement) {
	score := 50
	var issues []string
	var imps []Improvement

	firstLine := firstContentLine(body)
	lower := strings.ToLower(firstLine)

	for _, g := range genericOpeners {
		if strings.Contains(lower, g) {
			score -= 25
			issues = append(issues, fmt.Sprintf("opens with generic phrase %q", g))
			imps = append(imps, Improvement{
				ID:         "sales-opening-generic",
				Category:   "opening",
				Priority:   PriorityHigh,
				Issue:      "Opening line uses a generic cold-email phrase",
				Suggestion: "Lead with something specific to the recipient: an observation, a question, or a relevant detail",
				Impact:     "Generic openers are the fastest route to the archive button",
				Example:    "Noticed your team just shipped the v2 redesign. The onboarding flow is much tighter.",
			})
			break
		}
	}

	for _, p := range patternInterruptOpeners {
		if strings.Contains(lower, p) {
			score += 25
			break
		}
	}

	if strings.HasSuffix(strings.TrimSpace(firstLine), "?") {
		score += 10
	}

	if len(firstLine) > 200 {
		score -= 10
		issues = append(issues, "opening line is very long")
		imps = append(imps, Improvement{
			ID:         "sales-opening-long",
			Category:   "opening",
			Priority:   PriorityMedium,
			Issue:      "Opening line runs long",
			Suggestion: "Cut the first line to a single idea under ~25 words",
			Impact:     "A short first line earns the read for the second one",
		})
	}

	return NewCategoryScore("opening", score, issues), imps
}

// scorePersonalization rewards recipient-specific references and research
// markers. Missing RecipientData just skips those bonuses.
func scorePersonalization(body string, recipient *RecipientData) (CategoryScore, []Improvement) {
	score := 30
	var issues []string
	var imps []Improvement
	lower := strings.ToLower(body)

	researchHits := 0
	for _, m := range researchMarkers {
		if strings.Contains(lower, m) {
			researchHits++
		}
	}
	if researchHits > 0 {
		score += 20
	}
	if researchHits > 2 {
		score += 10
	}

	if recipient != nil {
		if recipient.Name != "" && strings.Contains(lower, strings.ToLower(recipient.Name)) {
			score += 15
		}
		if recipient.Company != "" && strings.Contains(lower, strings.ToLower(recipient.Company)) {
			score += 20
		}
		if recipient.PreviousEngagement {
			score += 5
		}
	}

	tmpl := lexical.DetectTemplateArtifacts(body)
	if tmpl.HasTokens {
		score -= 30
		issues = append(issues, "unmerged template tokens present")
		imps = append(imps, Improvement{
			ID:         "sales-personalization-tokens",
			Category:   "personalization",
			Priority:   PriorityCritical,
			Issue:      "Draft contains unmerged merge tokens",
			Suggestion: "Replace tokens like {{first_name}} with real values before sending",
			Impact:     "A visible merge token ends the conversation instantly",
		})
	}
	if tmpl.GenericSalutation {
		score -= 15
		issues = append(issues, "generic salutation")
	}

	if researchHits == 0 && score < 60 {
		imps = append(imps, Improvement{
			ID:         "sales-personalization-research",
			Category:   "personalization",
			Priority:   PriorityHigh,
			Issue:      "No sign the email was written for this specific recipient",
			Suggestion: "Reference something concrete: their company, role, a recent post or launch",
			Impact:     "Personalized first lines materially lift reply rates",
		})
	}

	return NewCategoryScore("personalization", score, issues), imps
}

// scoreValueProposition checks you/I focus, benefit verbs and explicit
// causal language.
func scoreValueProposition(body string) (CategoryScore, []Improvement) {
	score := 40
	var issues []string
	var imps []Improvement
	lower := strings.ToLower(body)
	tokens := lexical.Tokenize(lower)

	youCount, iCount := focusCounts(tokens)
	if youCount > iCount {
		score += 20
	} else if iCount > youCount*2 && iCount > 3 {
		score -= 15
		issues = append(issues, "heavily sender-focused (I/we outweighs you/your)")
		imps = append(imps, Improvement{
			ID:         "sales-value-focus",
			Category:   "value_proposition",
			Priority:   PriorityHigh,
			Issue:      "The email talks about the sender more than the recipient",
			Suggestion: `Rewrite sentences to start from the reader's problem ("you", "your team") instead of "I" and "we"`,
			Impact:     "Reader-focused copy keeps attention on what they get",
		})
	}

	benefitHits := 0
	for _, v := range benefitVerbs {
		if strings.Contains(lower, v) {
			benefitHits++
		}
	}
	if benefitHits > 0 {
		score += 15
	}

	for _, c := range causalMarkers {
		if strings.Contains(lower, c) {
			score += 15
			break
		}
	}

	if benefitHits == 0 {
		issues = append(issues, "no concrete benefit language")
		imps = append(imps, Improvement{
			ID:         "sales-value-benefit",
			Category:   "value_proposition",
			Priority:   PriorityMedium,
			Issue:      "No concrete benefit is stated",
			Suggestion: `Name the outcome with a verb and a number where possible ("cut onboarding time 30%")`,
			Impact:     "Specific outcomes are what justify a reply",
		})
	}

	return NewCategoryScore("value_proposition", score, issues), imps
}

// scoreSocialProof looks for metrics, named comparables and testimonials.
func scoreSocialProof(body string) (CategoryScore, []Improvement) {
	score := 40
	var issues []string
	var imps []Improvement
	lower := strings.ToLower(body)

	hits := 0
	for _, m := range socialProofMarkers {
		if strings.Contains(lower, m) {
			hits++
		}
	}
	if hits > 0 {
		score += 25
	}
	if hits > 2 {
		score += 15
	}

	for _, m := range testimonialMarkers {
		if strings.Contains(lower, m) {
			score += 10
			break
		}
	}

	if hits == 0 {
		issues = append(issues, "no social proof")
		imps = append(imps, Improvement{
			ID:         "sales-proof-missing",
			Category:   "social_proof",
			Priority:   PriorityLow,
			Issue:      "No evidence that others got results",
			Suggestion: "Add one line naming a comparable customer or a measurable result",
			Impact:     "A single credible proof point lowers perceived risk",
		})
	}

	return NewCategoryScore("social_proof", score, issues), imps
}

// scoreUrgency rewards natural deadlines and penalizes manufactured or
// aggressive pressure.
func scoreUrgency(body string) (CategoryScore, []Improvement) {
	score := 60
	var issues []string
	var imps []Improvement
	lower := strings.ToLower(body)

	for _, p := range naturalUrgencyPhrases {
		if strings.Contains(lower, p) {
			score += 20
			break
		}
	}
	for _, p := range artificialUrgencyPhrases {
		if strings.Contains(lower, p) {
			score -= 20
			issues = append(issues, fmt.Sprintf("artificial urgency: %q", p))
			imps = append(imps, Improvement{
				ID:         "sales-urgency-artificial",
				Category:   "urgency",
				Priority:   PriorityMedium,
				Issue:      "Urgency reads as manufactured",
				Suggestion: "Tie any deadline to something real (their planning cycle, quarter end) or drop it",
				Impact:     "Manufactured scarcity erodes trust and trips spam filters",
			})
			break
		}
	}
	for _, p := range aggressiveUrgencyPhrases {
		if strings.Contains(lower, p) {
			score -= 35
			issues = append(issues, fmt.Sprintf("aggressive pressure: %q", p))
			imps = append(imps, Improvement{
				ID:         "sales-urgency-aggressive",
				Category:   "urgency",
				Priority:   PriorityHigh,
				Issue:      "Pressure language is aggressive",
				Suggestion: "Remove demands and warnings; state the ask plainly once",
				Impact:     "Aggressive pressure gets emails reported, not answered",
			})
			break
		}
	}

	return NewCategoryScore("urgency", score, issues), imps
}

// scoreSalesCTA rewards time-boxed asks and penalizes stacking questions.
func scoreSalesCTA(body string) (CategoryScore, []Improvement) {
	var issues []string
	var imps []Improvement
	lower := strings.ToLower(body)

	cta := lexical.AnalyzeCTA(body)
	score := 30
	switch cta.Strength {
	case lexical.CTAStrong:
		score = 70
	case lexical.CTAModerate:
		score = 55
	}

	for _, t := range timeBoxedAsks {
		if strings.Contains(lower, t) {
			score += 20
			break
		}
	}

	if !cta.HasCTA {
		score = 15
		issues = append(issues, "no call to action")
		imps = append(imps, Improvement{
			ID:         "sales-cta-missing",
			Category:   "call_to_action",
			Priority:   PriorityCritical,
			Issue:      "No call to action found",
			Suggestion: `End with one concrete ask, ideally time-boxed ("open to 15 minutes Thursday?")`,
			Impact:     "Without an ask, even interested readers do nothing",
		})
	}

	if cta.QuestionCount > 2 {
		score -= 20
		issues = append(issues, "too many asks")
		imps = append(imps, Improvement{
			ID:         "sales-cta-many",
			Category:   "call_to_action",
			Priority:   PriorityMedium,
			Issue:      "Multiple questions compete for the reply",
			Suggestion: "Keep exactly one question; move the rest to the follow-up",
			Impact:     "One ask makes replying easy; three make it homework",
		})
	}

	return NewCategoryScore("call_to_action", score, issues), imps
}

// firstContentLine returns the first non-greeting, non-empty line of a body.
func firstContentLine(body string) string {
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		// Skip a short salutation line so the opener judgment lands on content.
		if i == 0 && len(l) < 40 && strings.HasSuffix(l, ",") {
			continue
		}
		return l
	}
	return ""
}

// focusCounts tallies second-person vs first-person tokens.
func focusCounts(tokens []string) (you, i int) {
	for _, tok := range tokens {
		for _, w := range secondPersonWords {
			if tok == w {
				you++
			}
		}
		for _, w := range firstPersonWords {
			if tok == w {
				i++
			}
		}
	}
	return you, i
}
