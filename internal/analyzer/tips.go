package analyzer

import "sort"

// allTips is the static best-practice tip catalogue. Each tip names the
// breakdown category it speaks to and the email types it applies to; an empty
// Types slice means it applies to every type.
var allTips = []Tip{
	{
		Category: "subject_line",
		Text:     "Keep subjects under 35 characters so they survive mobile truncation.",
	},
	{
		Category: "subject_line",
		Text:     "Questions and numbers in subjects consistently outperform statements.",
	},
	{
		Category: "opening",
		Text:     "Spend your first line on the recipient, not on introducing yourself.",
		Types:    []EmailType{EmailTypeSales, EmailTypeGeneral},
	},
	{
		Category: "opening",
		Text:     "Reference the previous thread in the first sentence so the reader has context instantly.",
		Types:    []EmailType{EmailTypeFollowUp},
	},
	{
		Category: "value_proposition",
		Text:     "State one concrete outcome with a number; vague benefits read as filler.",
		Types:    []EmailType{EmailTypeSales},
	},
	{
		Category: "value_proposition",
		Text:     "Add one new piece of value in every follow-up instead of just bumping the thread.",
		Types:    []EmailType{EmailTypeFollowUp},
	},
	{
		Category: "structure",
		Text:     "Three short paragraphs beat one long one: hook, value, ask.",
	},
	{
		Category: "call_to_action",
		Text:     "Ask exactly one question; a single low-friction ask is easiest to answer.",
	},
	{
		Category: "call_to_action",
		Text:     "Offer two specific time slots instead of asking when the recipient is free.",
		Types:    []EmailType{EmailTypeMeetingRequest},
	},
	{
		Category: "call_to_action",
		Text:     "Time-box the ask: fifteen minutes is easier to grant than \"a call\".",
		Types:    []EmailType{EmailTypeSales, EmailTypeMeetingRequest},
	},
}

// tipsFor filters the catalogue to the email type, then re-ranks tips so the
// ones targeting weaker categories come first.
func tipsFor(emailType EmailType, b ScoreBreakdown) []Tip {
	statusByCategory := map[string]Status{
		"subject_line":      b.SubjectLine.Status,
		"opening":           b.Opening.Status,
		"value_proposition": b.ValueProposition.Status,
		"structure":         b.Structure.Status,
		"call_to_action":    b.CallToAction.Status,
	}

	var tips []Tip
	for _, t := range allTips {
		if len(t.Types) == 0 {
			tips = append(tips, t)
			continue
		}
		for _, et := range t.Types {
			if et == emailType {
				tips = append(tips, t)
				break
			}
		}
	}

	sort.SliceStable(tips, func(i, j int) bool {
		return tipNeed(statusByCategory[tips[i].Category]) > tipNeed(statusByCategory[tips[j].Category])
	})
	return tips
}

// tipNeed orders statuses by how much the category needs attention.
func tipNeed(s Status) int {
	switch s {
	case StatusPoor:
		return 3
	case StatusNeedsWork:
		return 2
	case StatusGood:
		return 1
	default:
		return 0
	}
}
