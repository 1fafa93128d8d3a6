package analyzer

import (
	"sort"
	"strings"
)

// followUpKeywords and meetingKeywords drive email-type detection. Checked
// before the sales classifier so an explicit follow-up always wins even when
// the body is full of sales vocabulary.
var followUpKeywords = []string{
	"following up", "follow up on", "follow-up", "circling back",
	"checking in", "bumping this", "wanted to check", "any update",
	"per my last email", "as promised", "touching base",
}

var meetingKeywords = []string{
	"schedule a meeting", "set up a meeting", "book a meeting",
	"calendar invite", "find a time", "grab some time", "meeting request",
	"schedule a call", "set up a call", "book some time", "available for a call",
}

// DetectEmailType classifies the draft. Follow-up and meeting-request
// language takes priority over sales framing.
func DetectEmailType(subject, body string) EmailType {
	lower := strings.ToLower(subject + "\n" + body)

	for _, k := range followUpKeywords {
		if strings.Contains(lower, k) {
			return EmailTypeFollowUp
		}
	}
	for _, k := range meetingKeywords {
		if strings.Contains(lower, k) {
			return EmailTypeMeetingRequest
		}
	}
	if _, confidence := ClassifySalesEmail(subject, body); confidence > 50 {
		return EmailTypeSales
	}
	return EmailTypeGeneral
}

// Second-level aggregation weights. Independent of the internal weighting
// each sub-analyzer applies to its own dimensions.
var comprehensiveWeights = struct {
	subject, opening, value, structure, cta float64
}{0.20, 0.20, 0.20, 0.15, 0.25}

const maxImprovements = 10

// AnalyzeComprehensive is entry point A: it runs every domain analyzer,
// aggregates their category scores and produces one ranked judgment. It is
// fully deterministic for a given (subject, body, recipient) triple.
func AnalyzeComprehensive(subject, body string, recipient *RecipientData) ComprehensiveAnalysis {
	emailType := DetectEmailType(subject, body)

	subj := OptimizeSubjectLine(subject)
	sales := AnalyzeSalesEmail(subject, body, recipient)
	structure := AnalyzeBodyStructure(body)
	practices := AnalyzeBestPractices(body, emailType)

	breakdown := ScoreBreakdown{
		SubjectLine:      NewCategoryScore("subject_line", subj.Score, issuesFromImprovements(subj.Improvements)),
		Opening:          renameCategory(sales.Opening, "opening"),
		ValueProposition: renameCategory(sales.ValueProp, "value_proposition"),
		Structure:        NewCategoryScore("structure", structure.OverallScore, issuesFromImprovements(structure.Improvements)),
		CallToAction:     renameCategory(sales.CTA, "call_to_action"),
	}

	overall := float64(breakdown.SubjectLine.Score)*comprehensiveWeights.subject +
		float64(breakdown.Opening.Score)*comprehensiveWeights.opening +
		float64(breakdown.ValueProposition.Score)*comprehensiveWeights.value +
		float64(breakdown.Structure.Score)*comprehensiveWeights.structure +
		float64(breakdown.CallToAction.Score)*comprehensiveWeights.cta
	overallScore := Clamp(int(overall + 0.5))

	var all []Improvement
	all = append(all, subj.Improvements...)
	all = append(all, sales.Improvements...)
	all = append(all, structure.Improvements...)
	all = append(all, practices.Improvements...)
	improvements := rankImprovements(all)

	return ComprehensiveAnalysis{
		EmailType:    emailType,
		OverallScore: overallScore,
		LetterGrade:  letterGrade(overallScore),
		Breakdown:    breakdown,
		Improvements: improvements,
		Predictions:  predictFor(overallScore),
		Tips:         tipsFor(emailType, breakdown),
	}
}

func renameCategory(c CategoryScore, name string) CategoryScore {
	c.Name = name
	return c
}

// issuesFromImprovements lifts improvement issue texts into a CategoryScore
// issues slice for analyzers that report a single composite score.
func issuesFromImprovements(imps []Improvement) []string {
	issues := make([]string, 0, len(imps))
	for _, imp := range imps {
		issues = append(issues, imp.Issue)
	}
	return issues
}

// rankImprovements drops near-duplicates (same category, same first 20
// characters of issue text), stable-sorts by priority and truncates.
func rankImprovements(all []Improvement) []Improvement {
	seen := make(map[string]bool, len(all))
	deduped := make([]Improvement, 0, len(all))
	for _, imp := range all {
		issue := strings.ToLower(imp.Issue)
		if len(issue) > 20 {
			issue = issue[:20]
		}
		key := imp.Category + "|" + issue
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, imp)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return priorityRank(deduped[i].Priority) < priorityRank(deduped[j].Priority)
	})

	if len(deduped) > maxImprovements {
		deduped = deduped[:maxImprovements]
	}
	return deduped
}

func letterGrade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 75:
		return "B"
	case score >= 60:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

// predictFor maps the overall score onto four coarse performance bands.
func predictFor(score int) Predictions {
	switch {
	case score >= 80:
		return Predictions{
			OpenRate:            "25-35%",
			ResponseRate:        "8-15%",
			SentimentLikelihood: "positive",
		}
	case score >= 60:
		return Predictions{
			OpenRate:            "18-25%",
			ResponseRate:        "4-8%",
			SentimentLikelihood: "neutral-positive",
		}
	case score >= 40:
		return Predictions{
			OpenRate:            "10-18%",
			ResponseRate:        "1-4%",
			SentimentLikelihood: "neutral",
		}
	default:
		return Predictions{
			OpenRate:            "under 10%",
			ResponseRate:        "under 1%",
			SentimentLikelihood: "negative",
		}
	}
}
