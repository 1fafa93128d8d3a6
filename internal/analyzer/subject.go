package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ignite/outreach-engine/internal/lexical"
)

// LengthStatus bands subject length for desktop and mobile clients.
type LengthStatus string

const (
	LengthTooShort      LengthStatus = "too_short"
	LengthMobileOptimal LengthStatus = "mobile_optimal"
	LengthOptimal       LengthStatus = "optimal"
	LengthTooLong       LengthStatus = "too_long"
)

// Hook is one detected subject-line hook with its historical boost note.
// The boost text is explanatory only; scoring uses presence, not the number.
type Hook struct {
	Kind  string `json:"kind"`
	Boost string `json:"boost"`
}

// SubjectAnalysis is the Subject-Line Optimizer output.
type SubjectAnalysis struct {
	Length          int           `json:"length"`
	LengthStatus    LengthStatus  `json:"lengthStatus"`
	Hooks           []Hook        `json:"hooks"`
	Triggers        []string      `json:"emotionalTriggers"`
	SpamRiskScore   int           `json:"spamRiskScore"`
	MobilePreview   string        `json:"mobilePreview"`
	MobileTruncated bool          `json:"mobileTruncated"`
	HasTokens       bool          `json:"hasPersonalizationTokens"`
	Score           int           `json:"score"`
	Improvements    []Improvement `json:"improvements"`
}

const mobilePreviewWidth = 35

var (
	startsWithNumber = regexp.MustCompile(`^\d`)
	containsNumber   = regexp.MustCompile(`\d`)
	numberedList     = regexp.MustCompile(`(?i)^\d+\s+(ways|things|reasons|steps|ideas|mistakes)`)
	howToPattern     = regexp.MustCompile(`(?i)\bhow to\b`)
	allCapsWord      = regexp.MustCompile(`\b[A-Z]{4,}\b`)
	punctRun         = regexp.MustCompile(`[!?]{2,}`)
)

// OptimizeSubjectLine scores a subject line across length, hooks, emotional
// triggers, spam risk, mobile truncation and personalization tokens.
func OptimizeSubjectLine(subject string) SubjectAnalysis {
	runes := []rune(subject)
	res := SubjectAnalysis{
		Length:       len(runes),
		Hooks:        []Hook{},
		Triggers:     []string{},
		Improvements: []Improvement{},
	}
	lower := strings.ToLower(subject)

	res.LengthStatus = lengthStatusFor(res.Length)
	switch res.LengthStatus {
	case LengthTooShort:
		res.Improvements = append(res.Improvements, Improvement{
			ID:         "subject-too-short",
			Category:   "subject_length",
			Priority:   PriorityMedium,
			Issue:      "Subject is too short to convey anything",
			Suggestion: "Aim for 20-60 characters that state the specific reason you're writing",
			Impact:     "Very short subjects read as low-effort or suspicious",
		})
	case LengthTooLong:
		res.Improvements = append(res.Improvements, Improvement{
			ID:         "subject-shorten",
			Category:   "subject_length",
			Priority:   PriorityHigh,
			Issue:      fmt.Sprintf("Subject is %d characters; most clients cut it off", res.Length),
			Suggestion: "Shorten the subject to under 60 characters, front-loading the key phrase",
			Impact:     "Truncated subjects lose their hook exactly where it matters",
		})
	}

	res.Hooks = detectHooks(subject, lower)

	for trigger, words := range emotionalTriggers {
		for _, w := range words {
			if strings.Contains(lower, w) {
				res.Triggers = append(res.Triggers, trigger)
				break
			}
		}
	}
	// Map iteration order is random; keep output deterministic.
	sort.Strings(res.Triggers)

	res.SpamRiskScore = subjectSpamRisk(subject, lower)
	if res.SpamRiskScore >= 30 {
		res.Improvements = append(res.Improvements, Improvement{
			ID:         "subject-spam-risk",
			Category:   "subject_spam",
			Priority:   PriorityCritical,
			Issue:      "Subject uses high-risk spam vocabulary or formatting",
			Suggestion: "Drop promotional words, all-caps and punctuation runs from the subject",
			Impact:     "Spam-flagged subjects never get the chance to be read",
		})
	}

	if res.Length > mobilePreviewWidth {
		res.MobilePreview = string(runes[:mobilePreviewWidth])
		// Flag when the cut drops substantive words, not just trailing filler.
		tail := strings.TrimSpace(string(runes[mobilePreviewWidth:]))
		res.MobileTruncated = len(strings.Fields(tail)) > 0
	} else {
		res.MobilePreview = subject
	}

	res.HasTokens = lexical.DetectTemplateArtifacts(subject).HasTokens

	res.Score = subjectScore(res)
	return res
}

func lengthStatusFor(n int) LengthStatus {
	switch {
	case n < 20:
		return LengthTooShort
	case n <= 35:
		return LengthMobileOptimal
	case n <= 60:
		return LengthOptimal
	default:
		return LengthTooLong
	}
}

// detectHooks finds recognized subject hook types. Boost annotations quote
// observed historical lift and feed explanatory text only.
func detectHooks(subject, lower string) []Hook {
	var hooks []Hook

	if strings.HasSuffix(strings.TrimSpace(subject), "?") {
		hooks = append(hooks, Hook{Kind: "question", Boost: "+10% opens"})
	}
	if startsWithNumber.MatchString(subject) {
		hooks = append(hooks, Hook{Kind: "number", Boost: "+13% opens"})
	}
	for _, w := range curiosityWords {
		if strings.Contains(lower, w) {
			hooks = append(hooks, Hook{Kind: "curiosity", Boost: "+8% opens"})
			break
		}
	}
	if lexical.DetectTemplateArtifacts(subject).HasTokens || strings.Contains(lower, "your ") {
		hooks = append(hooks, Hook{Kind: "personalization", Boost: "+17% opens"})
	}
	if howToPattern.MatchString(subject) {
		hooks = append(hooks, Hook{Kind: "how_to", Boost: "+7% opens"})
	}
	if numberedList.MatchString(subject) {
		hooks = append(hooks, Hook{Kind: "numbered_list", Boost: "+11% opens"})
	}
	for _, w := range []string{"today", "deadline", "closing", "ends"} {
		if strings.Contains(lower, w) {
			hooks = append(hooks, Hook{Kind: "urgency", Boost: "+5% opens"})
			break
		}
	}
	for _, w := range []string{"exclusive", "invite", "invitation", "private"} {
		if strings.Contains(lower, w) {
			hooks = append(hooks, Hook{Kind: "exclusivity", Boost: "+6% opens"})
			break
		}
	}

	return hooks
}

// subjectSpamRisk accumulates tiered word-list and formatting penalties.
func subjectSpamRisk(subject, lower string) int {
	risk := 0
	for _, w := range subjectSpamHighRisk {
		if strings.Contains(lower, w) {
			risk += 20
		}
	}
	for _, w := range subjectSpamMediumRisk {
		if strings.Contains(lower, w) {
			risk += 10
		}
	}
	if allCapsWord.MatchString(subject) {
		risk += 15
	}
	if punctRun.MatchString(subject) {
		risk += 15
	}
	return Clamp(risk)
}

// subjectScore is the composite formula: base 50, plus length band, hook
// presence, trigger count, spam penalty and token bonus.
func subjectScore(a SubjectAnalysis) int {
	score := 50

	switch a.LengthStatus {
	case LengthMobileOptimal:
		score += 15
	case LengthOptimal:
		score += 10
	case LengthTooLong, LengthTooShort:
		score -= 10
	}

	if len(a.Hooks) > 0 {
		score += 20
	}

	triggerBonus := 5 * len(a.Triggers)
	if triggerBonus > 15 {
		triggerBonus = 15
	}
	score += triggerBonus

	spamPenalty := a.SpamRiskScore / 3
	if spamPenalty > 30 {
		spamPenalty = 30
	}
	score -= spamPenalty

	if a.HasTokens {
		score += 10
	}

	return Clamp(score)
}
