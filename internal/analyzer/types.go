// Package analyzer composes lexical signals into themed email-quality scores
// and a single comprehensive judgment with ranked improvement suggestions.
package analyzer

// RecipientData is optional read-only context from the contact system.
// Absence never errors; personalization checks simply score lower.
type RecipientData struct {
	Name               string `json:"name,omitempty"`
	Company            string `json:"company,omitempty"`
	Industry           string `json:"industry,omitempty"`
	PreviousEngagement bool   `json:"previousEngagement,omitempty"`
	Timezone           string `json:"timezone,omitempty"`
}

// Status is the qualitative band for a category score.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusNeedsWork Status = "needs_work"
	StatusPoor      Status = "poor"
)

// StatusForScore maps a 0-100 score to its band. This mapping is the single
// source of truth for every CategoryScore in the pipeline.
func StatusForScore(score int) Status {
	switch {
	case score >= 80:
		return StatusExcellent
	case score >= 60:
		return StatusGood
	case score >= 40:
		return StatusNeedsWork
	default:
		return StatusPoor
	}
}

// CategoryScore is one scored quality dimension.
type CategoryScore struct {
	Name     string   `json:"name"`
	Score    int      `json:"score"`
	MaxScore int      `json:"maxScore"`
	Status   Status   `json:"status"`
	Issues   []string `json:"issues"`
}

// NewCategoryScore builds a CategoryScore with the canonical status mapping.
func NewCategoryScore(name string, score int, issues []string) CategoryScore {
	score = Clamp(score)
	if issues == nil {
		issues = []string{}
	}
	return CategoryScore{Name: name, Score: score, MaxScore: 100, Status: StatusForScore(score), Issues: issues}
}

// Priority orders improvements; critical first.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// priorityRank gives the stable sort key for priorities.
func priorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// Improvement is one actionable suggestion emitted by an analyzer.
type Improvement struct {
	ID         string   `json:"id"`
	Category   string   `json:"category"`
	Priority   Priority `json:"priority"`
	Issue      string   `json:"issue"`
	Suggestion string   `json:"suggestion"`
	Impact     string   `json:"impact"`
	Example    string   `json:"example,omitempty"`
}

// EmailType is the detected kind of outreach email.
type EmailType string

const (
	EmailTypeSales          EmailType = "sales"
	EmailTypeFollowUp       EmailType = "follow_up"
	EmailTypeMeetingRequest EmailType = "meeting_request"
	EmailTypeGeneral        EmailType = "general"
)

// ScoreBreakdown holds the five second-level category scores.
type ScoreBreakdown struct {
	SubjectLine      CategoryScore `json:"subjectLine"`
	Opening          CategoryScore `json:"opening"`
	ValueProposition CategoryScore `json:"valueProposition"`
	Structure        CategoryScore `json:"structure"`
	CallToAction     CategoryScore `json:"callToAction"`
}

// Predictions are coarse performance bands derived from the overall score.
type Predictions struct {
	OpenRate            string `json:"openRate"`
	ResponseRate        string `json:"responseRate"`
	SentimentLikelihood string `json:"sentimentLikelihood"`
}

// Tip is a short best-practice pointer shown alongside the analysis.
type Tip struct {
	Category string      `json:"category"`
	Text     string      `json:"text"`
	Types    []EmailType `json:"emailTypes"`
}

// ComprehensiveAnalysis is the full output of entry point A.
type ComprehensiveAnalysis struct {
	EmailType    EmailType      `json:"emailType"`
	OverallScore int            `json:"overallScore"`
	LetterGrade  string         `json:"letterGrade"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	Improvements []Improvement  `json:"improvements"`
	Predictions  Predictions    `json:"predictions"`
	Tips         []Tip          `json:"tips"`
}

// Clamp bounds a score to [0,100].
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
