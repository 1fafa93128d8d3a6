package optimizer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ignite/outreach-engine/internal/analyzer"
	"github.com/ignite/outreach-engine/internal/lexical"
)

// Synthetic originals mark suggestions about missing elements. The preview
// builder never substitutes them.
const (
	markerEmpty     = "(empty)"
	markerNoCTA     = "(no call to action)"
	markerNoTime    = "(no specific time)"
	markerNoGreet   = "(no personal greeting)"
	markerShortBody = "(no detail)"
)

var oneWordGreetings = []string{"hi,", "hello,", "hey,", "hi", "hello", "hey"}

// ruleBasedSuggestions derives suggestions from the draft alone, with no
// model call. They originate locally, so they skip content validation.
func ruleBasedSuggestions(subject, body string, recipient *analyzer.RecipientData) []SafeSuggestion {
	var out []SafeSuggestion

	if strings.TrimSpace(subject) == "" {
		out = append(out, SafeSuggestion{
			ID:        uuid.NewString(),
			Element:   ElementSubject,
			Original:  markerEmpty,
			Suggested: "Quick question",
			Reason:    "The draft has no subject line",
			Impact:    "Subjectless emails are heavily filtered and rarely opened",
			IsValid:   true,
		})
	}

	bodyWords := len(lexical.Tokenize(body))
	if bodyWords > 0 && bodyWords < 10 {
		out = append(out, SafeSuggestion{
			ID:        uuid.NewString(),
			Element:   ElementBody,
			Original:  markerShortBody,
			Suggested: "Add one or two sentences on why you are writing and what you are asking for",
			Reason:    "The body is under ten words",
			Impact:    "Very short emails give the reader nothing to respond to",
			IsValid:   true,
		})
	}

	if greeting := genericGreetingLine(body); greeting != "" {
		s := SafeSuggestion{
			ID:      uuid.NewString(),
			Element: ElementGreeting,
			Reason:  "The greeting is generic",
			Impact:  "A named greeting signals the email was written for one person",
			IsValid: true,
		}
		if recipient != nil && recipient.Name != "" {
			s.Original = greeting
			s.Suggested = "Hi " + recipient.Name + ","
		} else {
			s.Original = markerNoGreet
			s.Suggested = "Open with the recipient's name"
		}
		out = append(out, s)
	}

	if !lexical.AnalyzeCTA(body).HasCTA {
		out = append(out, SafeSuggestion{
			ID:        uuid.NewString(),
			Element:   ElementCTA,
			Original:  markerNoCTA,
			Suggested: "Would you be open to a quick 15 minute call this week?",
			Reason:    "The draft never asks the reader to do anything",
			Impact:    "A single concrete ask is the strongest reply driver",
			IsValid:   true,
		})
	}

	if hasVagueMeetingAsk(body) {
		out = append(out, SafeSuggestion{
			ID:        uuid.NewString(),
			Element:   ElementCTA,
			Original:  markerNoTime,
			Suggested: "Would Tuesday or Thursday afternoon work for a quick 15 minute call?",
			Reason:    "The meeting ask names no day, time or duration",
			Impact:    "Specific options are far easier to say yes to than \"sometime\"",
			IsValid:   true,
		})
	}

	return out
}

// genericGreetingLine returns the first line when it is a bare one-word
// greeting, optionally with a trailing comma.
func genericGreetingLine(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, g := range oneWordGreetings {
			if lower == g {
				return line
			}
		}
		return ""
	}
	return ""
}

var meetingWords = []string{"meet", "call", "chat", "connect", "sync"}

// hasVagueMeetingAsk reports meeting language with no number anywhere in the
// body (no day count, duration, date or time).
func hasVagueMeetingAsk(body string) bool {
	lower := strings.ToLower(body)
	mentionsMeeting := false
	for _, w := range meetingWords {
		if strings.Contains(lower, w) {
			mentionsMeeting = true
			break
		}
	}
	if !mentionsMeeting {
		return false
	}
	return !strings.ContainsAny(body, "0123456789")
}
