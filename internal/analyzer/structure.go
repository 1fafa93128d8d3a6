package analyzer

import (
	"strings"

	"github.com/ignite/outreach-engine/internal/lexical"
)

// StructureAnalysis scores the narrative sections of a body plus its flow.
type StructureAnalysis struct {
	Introduction CategoryScore `json:"introduction"`
	Body         CategoryScore `json:"body"`
	CTA          CategoryScore `json:"callToAction"`
	Closing      CategoryScore `json:"closing"`
	Flow         CategoryScore `json:"flow"`
	OverallScore int           `json:"overallScore"`
	Improvements []Improvement `json:"improvements"`
}

// structureWeights is this analyzer's internal section weighting, independent
// of the comprehensive aggregator's weights.
var structureWeights = struct {
	intro, body, cta, closing, flow float64
}{0.25, 0.25, 0.30, 0.05, 0.15}

// AnalyzeBodyStructure splits the body into introduction/middle/closing and
// scores each section plus overall narrative flow.
func AnalyzeBodyStructure(body string) StructureAnalysis {
	res := StructureAnalysis{Improvements: []Improvement{}}

	intro, middle, closing := splitSections(body)

	var imps []Improvement
	res.Introduction, imps = scoreIntroSection(intro)
	res.Improvements = append(res.Improvements, imps...)

	res.Body, imps = scoreBodySection(middle)
	res.Improvements = append(res.Improvements, imps...)

	res.CTA, imps = scoreCTASection(body)
	res.Improvements = append(res.Improvements, imps...)

	res.Closing, imps = scoreClosingSection(closing)
	res.Improvements = append(res.Improvements, imps...)

	res.Flow, imps = scoreFlow(body)
	res.Improvements = append(res.Improvements, imps...)

	overall := float64(res.Introduction.Score)*structureWeights.intro +
		float64(res.Body.Score)*structureWeights.body +
		float64(res.CTA.Score)*structureWeights.cta +
		float64(res.Closing.Score)*structureWeights.closing +
		float64(res.Flow.Score)*structureWeights.flow
	res.OverallScore = Clamp(int(overall + 0.5))

	return res
}

// splitSections divides a body into intro/middle/closing. Multi-paragraph
// bodies split on paragraphs; single-paragraph bodies fall back to sentence
// position.
func splitSections(body string) (intro, middle, closing string) {
	var paras []string
	for _, p := range strings.Split(body, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paras = append(paras, strings.TrimSpace(p))
		}
	}

	switch len(paras) {
	case 0:
		return "", "", ""
	case 1:
		sentences := splitSentences(paras[0])
		if len(sentences) < 3 {
			return paras[0], paras[0], paras[0]
		}
		return sentences[0],
			strings.Join(sentences[1:len(sentences)-1], " "),
			sentences[len(sentences)-1]
	case 2:
		return paras[0], paras[1], paras[1]
	default:
		return paras[0],
			strings.Join(paras[1:len(paras)-1], "\n\n"),
			paras[len(paras)-1]
	}
}

func splitSentences(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			s := strings.TrimSpace(text[start : i+1])
			if s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	if tail := strings.TrimSpace(text[start:]); tail != "" {
		out = append(out, tail)
	}
	return out
}

func scoreIntroSection(intro string) (CategoryScore, []Improvement) {
	score := 50
	var issues []string
	var imps []Improvement
	lower := strings.ToLower(intro)

	if strings.TrimSpace(intro) == "" {
		return NewCategoryScore("introduction", 0, []string{"no introduction"}), nil
	}

	for _, g := range genericOpeners {
		if strings.Contains(lower, g) {
			score -= 20
			issues = append(issues, "generic introduction")
			imps = append(imps, Improvement{
				ID:         "structure-intro-generic",
				Category:   "structure",
				Priority:   PriorityHigh,
				Issue:      "Introduction leans on a stock phrase",
				Suggestion: "Open with a hook tied to the recipient, not to yourself",
				Impact:     "The first two lines decide whether the rest is read",
			})
			break
		}
	}
	for _, p := range researchMarkers {
		if strings.Contains(lower, p) {
			score += 25
			break
		}
	}

	words := len(strings.Fields(intro))
	if words > 60 {
		score -= 15
		issues = append(issues, "introduction runs long")
	} else if words > 0 && words <= 30 {
		score += 10
	}

	return NewCategoryScore("introduction", score, issues), imps
}

func scoreBodySection(middle string) (CategoryScore, []Improvement) {
	score := 50
	var issues []string
	var imps []Improvement
	lower := strings.ToLower(middle)

	if strings.TrimSpace(middle) == "" {
		return NewCategoryScore("body", 0, []string{"no body content"}), nil
	}

	for _, m := range socialProofMarkers {
		if strings.Contains(lower, m) {
			score += 15
			break
		}
	}
	for _, v := range benefitVerbs {
		if strings.Contains(lower, v) {
			score += 15
			break
		}
	}
	if containsNumber.MatchString(middle) {
		score += 10
	}

	for _, p := range strings.Split(middle, "\n\n") {
		if len(strings.Fields(p)) > 80 {
			score -= 15
			issues = append(issues, "paragraph exceeds 80 words")
			imps = append(imps, Improvement{
				ID:         "structure-body-wall",
				Category:   "structure",
				Priority:   PriorityMedium,
				Issue:      "A paragraph reads as a wall of text",
				Suggestion: "Break paragraphs at one idea each, 3-4 lines maximum",
				Impact:     "Skimmable emails get read on phones; walls of text don't",
			})
			break
		}
	}

	return NewCategoryScore("body", score, issues), imps
}

func scoreCTASection(body string) (CategoryScore, []Improvement) {
	score := 40
	var issues []string
	var imps []Improvement
	lower := strings.ToLower(body)

	cta := lexical.AnalyzeCTA(body)
	if !cta.HasCTA {
		issues = append(issues, "no call to action")
		imps = append(imps, Improvement{
			ID:         "structure-cta-missing",
			Category:   "call_to_action",
			Priority:   PriorityCritical,
			Issue:      "The email never asks for anything",
			Suggestion: "Close with one specific question the reader can answer in a sentence",
			Impact:     "Emails without an ask rarely get replies",
		})
		return NewCategoryScore("call_to_action", 15, issues), imps
	}

	if cta.QuestionCount > 0 {
		score += 20 // questions outperform statements
	}
	for _, p := range lowFrictionPhrases {
		if strings.Contains(lower, p) {
			score += 15
			break
		}
	}
	for _, t := range specificTimeMarkers {
		if strings.Contains(lower, t) {
			score += 15
			break
		}
	}
	if cta.Strength == lexical.CTAStrong {
		score += 10
	}

	return NewCategoryScore("call_to_action", score, issues), imps
}

func scoreClosingSection(closing string) (CategoryScore, []Improvement) {
	score := 40
	var issues []string
	var imps []Improvement
	lower := strings.ToLower(closing)

	found := false
	for _, s := range signOffs {
		if strings.Contains(lower, s) {
			found = true
			break
		}
	}
	if found {
		score += 40
	} else {
		issues = append(issues, "no sign-off")
		imps = append(imps, Improvement{
			ID:         "structure-closing-signoff",
			Category:   "structure",
			Priority:   PriorityLow,
			Issue:      "The email ends without a sign-off",
			Suggestion: `Close with a simple "Best," or "Thanks," plus your name`,
			Impact:     "An abrupt ending reads as unfinished",
		})
	}

	return NewCategoryScore("closing", score, issues), imps
}

func scoreFlow(body string) (CategoryScore, []Improvement) {
	score := 50
	var issues []string
	var imps []Improvement
	lower := strings.ToLower(body)

	paraCount := 0
	for _, p := range strings.Split(body, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paraCount++
		}
	}
	switch {
	case paraCount >= 2 && paraCount <= 4:
		score += 20
	case paraCount == 1:
		score -= 10
		issues = append(issues, "single block of text")
	case paraCount > 6:
		score -= 15
		issues = append(issues, "too many paragraphs")
	}

	for _, t := range transitionWords {
		if strings.Contains(lower, t) {
			score += 10
			break
		}
	}

	you, i := focusCounts(lexical.Tokenize(lower))
	if you > i {
		score += 15
	} else if i > you*2 && i > 3 {
		score -= 10
		issues = append(issues, "sender-focused narrative")
	}

	if paraCount == 1 && len(strings.Fields(body)) > 60 {
		imps = append(imps, Improvement{
			ID:         "structure-flow-blocks",
			Category:   "structure",
			Priority:   PriorityMedium,
			Issue:      "Everything is packed into one paragraph",
			Suggestion: "Split into 2-4 short paragraphs: hook, value, ask",
			Impact:     "Visual structure carries the reader to the CTA",
		})
	}

	return NewCategoryScore("flow", score, issues), imps
}
