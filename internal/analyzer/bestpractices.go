package analyzer

import (
	"fmt"

	"github.com/ignite/outreach-engine/internal/lexical"
)

// BestPracticesAnalysis scores general email hygiene independent of sales
// framing: readability, structure, tone, action clarity and length.
type BestPracticesAnalysis struct {
	Readability   CategoryScore `json:"readability"`
	Structure     CategoryScore `json:"structure"`
	Tone          CategoryScore `json:"tone"`
	ActionClarity CategoryScore `json:"actionClarity"`
	Length        CategoryScore `json:"length"`
	OverallScore  int           `json:"overallScore"`
	Improvements  []Improvement `json:"improvements"`
}

// lengthTargets gives the ideal body word-count range per email type.
var lengthTargets = map[EmailType][2]int{
	EmailTypeSales:          {50, 125},
	EmailTypeFollowUp:       {25, 75},
	EmailTypeMeetingRequest: {25, 100},
	EmailTypeGeneral:        {50, 200},
}

// AnalyzeBestPractices scores the five hygiene categories, with the length
// target adjusted to the email type.
func AnalyzeBestPractices(body string, emailType EmailType) BestPracticesAnalysis {
	res := BestPracticesAnalysis{Improvements: []Improvement{}}

	read := lexical.AnalyzeReadability(body)
	readScore := int(read.Score)
	var readIssues []string
	if read.GradeLevel > 10 {
		readIssues = append(readIssues, fmt.Sprintf("reads at grade level %.0f", read.GradeLevel))
		res.Improvements = append(res.Improvements, Improvement{
			ID:         "bp-readability",
			Category:   "readability",
			Priority:   PriorityMedium,
			Issue:      "The writing is harder to read than it needs to be",
			Suggestion: "Shorten sentences and swap long words for plain ones; aim for grade 6-8",
			Impact:     "Busy readers skim; simple prose survives skimming",
		})
	}
	res.Readability = NewCategoryScore("readability", readScore, readIssues)

	msg := lexical.AnalyzeMessageStructure(body)
	structScore := 40
	var structIssues []string
	if msg.Greeting.Present {
		structScore += 20
	} else {
		structIssues = append(structIssues, "no greeting")
	}
	if msg.Signature.Present {
		structScore += 20
	} else {
		structIssues = append(structIssues, "no signature")
		res.Improvements = append(res.Improvements, Improvement{
			ID:         "bp-signature",
			Category:   "structure",
			Priority:   PriorityLow,
			Issue:      "No signature block",
			Suggestion: "End with your name and one way to reach you",
			Impact:     "A real signature separates people from bots",
		})
	}
	if msg.ParagraphCount >= 2 && msg.ParagraphCount <= 5 {
		structScore += 20
	}
	if len(msg.SuspiciousLinks) > 0 {
		structScore -= 20
		structIssues = append(structIssues, "suspicious links present")
		res.Improvements = append(res.Improvements, Improvement{
			ID:         "bp-links",
			Category:   "structure",
			Priority:   PriorityHigh,
			Issue:      "Shortened or IP-based links look unsafe",
			Suggestion: "Use full https links on your own domain",
			Impact:     "Suspicious links hurt both trust and deliverability",
		})
	}
	res.Structure = NewCategoryScore("structure", structScore, structIssues)

	tone := lexical.AnalyzeTone(body)
	toneScore := 60
	var toneIssues []string
	if tone.Sentiment == "positive" {
		toneScore += 20
	}
	if tone.Sentiment == "negative" {
		toneScore -= 20
		toneIssues = append(toneIssues, "negative sentiment")
	}
	if tone.Urgency == "high" {
		toneScore -= 15
		toneIssues = append(toneIssues, "pushy urgency")
		res.Improvements = append(res.Improvements, Improvement{
			ID:         "bp-tone-urgency",
			Category:   "tone",
			Priority:   PriorityMedium,
			Issue:      "Stacked urgency language makes the email feel pushy",
			Suggestion: "Keep at most one time reference and drop pressure words",
			Impact:     "Calm emails get answered; pushy ones get filtered",
		})
	}
	res.Tone = NewCategoryScore("tone", toneScore, toneIssues)

	cta := lexical.AnalyzeCTA(body)
	actionScore := cta.ClarityScore
	var actionIssues []string
	if !cta.HasCTA {
		actionIssues = append(actionIssues, "no clear next step")
		res.Improvements = append(res.Improvements, Improvement{
			ID:         "bp-action",
			Category:   "call_to_action",
			Priority:   PriorityHigh,
			Issue:      "No clear next step for the reader",
			Suggestion: "State exactly one thing you want the reader to do",
			Impact:     "Clarity of ask is the strongest reply predictor",
		})
	}
	res.ActionClarity = NewCategoryScore("action_clarity", actionScore, actionIssues)

	words := len(lexical.Tokenize(body))
	target := lengthTargets[emailType]
	lengthScore := 80
	var lengthIssues []string
	switch {
	case words == 0:
		lengthScore = 0
		lengthIssues = append(lengthIssues, "empty body")
	case words < target[0]:
		lengthScore = 50
		lengthIssues = append(lengthIssues, fmt.Sprintf("%d words; %s emails land best at %d-%d", words, emailType, target[0], target[1]))
	case words > target[1]*2:
		lengthScore = 30
		lengthIssues = append(lengthIssues, fmt.Sprintf("%d words; far over the %d-%d target", words, target[0], target[1]))
		res.Improvements = append(res.Improvements, Improvement{
			ID:         "bp-length",
			Category:   "length",
			Priority:   PriorityHigh,
			Issue:      "The email is much longer than its type calls for",
			Suggestion: fmt.Sprintf("Cut to %d-%d words; park the detail for the follow-up", target[0], target[1]),
			Impact:     "Reply rate falls off sharply past the target range",
		})
	case words > target[1]:
		lengthScore = 55
		lengthIssues = append(lengthIssues, fmt.Sprintf("%d words; over the %d-%d target", words, target[0], target[1]))
	}
	res.Length = NewCategoryScore("length", lengthScore, lengthIssues)

	overall := (res.Readability.Score + res.Structure.Score + res.Tone.Score +
		res.ActionClarity.Score + res.Length.Score) / 5
	res.OverallScore = Clamp(overall)

	return res
}
