// Package optimizer produces guarded rewrite suggestions for a draft email.
// Rule-based suggestions are always generated; model-generated ones are
// admitted only after passing the content validator, so nothing fabricated
// ever reaches the caller.
package optimizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ignite/outreach-engine/internal/analyzer"
	"github.com/ignite/outreach-engine/internal/config"
	"github.com/ignite/outreach-engine/internal/lexical"
	"github.com/ignite/outreach-engine/internal/pkg/logger"
	"github.com/ignite/outreach-engine/internal/tokens"
	"github.com/ignite/outreach-engine/internal/validate"
)

// Element identifies which part of the email a suggestion targets.
type Element string

const (
	ElementSubject  Element = "subject"
	ElementOpening  Element = "opening"
	ElementGreeting Element = "greeting"
	ElementBody     Element = "body"
	ElementClosing  Element = "closing"
	ElementCTA      Element = "cta"
)

// SafeSuggestion is one vetted rewrite suggestion.
type SafeSuggestion struct {
	ID                string  `json:"id"`
	Element           Element `json:"element"`
	Original          string  `json:"original"`
	Suggested         string  `json:"suggested"`
	Reason            string  `json:"reason"`
	Impact            string  `json:"impact"`
	IsValid           bool    `json:"isValid"`
	ValidationWarning string  `json:"validationWarning,omitempty"`
}

// OriginalEmail echoes the input draft back in the result.
type OriginalEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Preview is the draft with all applicable suggestions substituted in.
type Preview struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SafeOptimizationResult is the full output of entry point B. MergedPreview
// is present when the draft carries merge tokens and recipient data can fill
// them.
type SafeOptimizationResult struct {
	OriginalEmail OriginalEmail                  `json:"originalEmail"`
	Analysis      analyzer.ComprehensiveAnalysis `json:"analysis"`
	Suggestions   []SafeSuggestion               `json:"suggestions"`
	Warnings      []string                       `json:"warnings"`
	Preview       *Preview                       `json:"previewWithSuggestions,omitempty"`
	MergedPreview *Preview                       `json:"mergedPreview,omitempty"`
}

const (
	minWordsForModel = 5

	warnTooShort    = "email body too short for AI optimization"
	warnUnavailable = "AI optimization unavailable - showing rule-based suggestions only"
)

// Optimizer orchestrates analysis, rule-based suggestions and the guarded
// model call. A nil model is valid and means rule-based-only operation.
type Optimizer struct {
	cfg   *config.Config
	model ModelInvoker
}

// New builds an Optimizer. model may be nil when Bedrock is disabled.
func New(cfg *config.Config, model ModelInvoker) *Optimizer {
	return &Optimizer{cfg: cfg, model: model}
}

// SafeOptimize is entry point B. It never returns an error: every failure
// mode downstream of analysis degrades into warnings on a usable result.
func (o *Optimizer) SafeOptimize(ctx context.Context, subject, body string, recipient *analyzer.RecipientData) SafeOptimizationResult {
	res := SafeOptimizationResult{
		OriginalEmail: OriginalEmail{Subject: subject, Body: body},
		Suggestions:   []SafeSuggestion{},
		Warnings:      []string{},
	}

	// Analysis always runs first and is never blocked by anything downstream.
	res.Analysis = analyzer.AnalyzeComprehensive(subject, body, recipient)

	suggestions := ruleBasedSuggestions(subject, body, recipient)

	wordCount := len(lexical.Tokenize(body))
	switch {
	case wordCount < minWordsForModel:
		res.Warnings = append(res.Warnings, warnTooShort)
	case o.model == nil:
		res.Warnings = append(res.Warnings, warnUnavailable)
	default:
		aiSuggestions, warnings := o.requestModelSuggestions(ctx, subject, body, recipient)
		suggestions = append(suggestions, aiSuggestions...)
		res.Warnings = append(res.Warnings, warnings...)
	}

	res.Suggestions = dedupeSuggestions(suggestions)

	if preview := buildPreview(subject, body, res.Suggestions); preview != nil {
		res.Preview = preview
	}
	res.MergedPreview = buildMergedPreview(subject, body, recipient)

	logger.Info("optimization completed",
		"email_type", string(res.Analysis.EmailType),
		"overall_score", res.Analysis.OverallScore,
		"suggestions", len(res.Suggestions),
		"warnings", len(res.Warnings))

	return res
}

// modelSuggestion is the JSON shape requested from the model.
type modelSuggestion struct {
	Element   string `json:"element"`
	Original  string `json:"original"`
	Suggested string `json:"suggested"`
	Reason    string `json:"reason"`
}

type modelPayload struct {
	Suggestions  []modelSuggestion `json:"suggestions"`
	EmailQuality string            `json:"emailQuality"`
}

// requestModelSuggestions performs the single bounded model call and
// validates everything that comes back. Failures degrade to warnings.
func (o *Optimizer) requestModelSuggestions(ctx context.Context, subject, body string, recipient *analyzer.RecipientData) ([]SafeSuggestion, []string) {
	callCtx, cancel := context.WithTimeout(ctx, o.cfg.Bedrock.Timeout())
	defer cancel()

	raw, err := o.model.Invoke(callCtx, systemContract, buildUserPrompt(subject, body, recipient))
	if err != nil {
		logger.Warn("model call failed", "error", err.Error())
		return nil, []string{warnUnavailable}
	}

	payload, ok := extractPayload(raw)
	if !ok {
		// Unparseable output means no AI suggestions, not an error.
		logger.Warn("model response had no parseable JSON object", "response_len", len(raw))
		return nil, nil
	}

	maxAI := o.cfg.Engine.MaxAISuggestions
	if len(payload.Suggestions) > maxAI {
		payload.Suggestions = payload.Suggestions[:maxAI]
	}

	fullOriginal := subject + "\n" + body
	var out []SafeSuggestion
	var warnings []string
	for _, ms := range payload.Suggestions {
		verdict := validate.Suggestion(ms.Original, ms.Suggested, fullOriginal)
		if !verdict.IsValid {
			warnings = append(warnings, fmt.Sprintf("suggestion for %s rejected: %s", ms.Element, verdict.RejectedReason))
			// Rejected suggestions stay in the result, flagged invalid, so the
			// caller can see what was filtered. They never reach a preview.
			out = append(out, SafeSuggestion{
				ID:                uuid.NewString(),
				Element:           Element(ms.Element),
				Original:          ms.Original,
				Suggested:         ms.Suggested,
				Reason:            ms.Reason,
				Impact:            "Rejected: would add content not present in the original draft",
				IsValid:           false,
				ValidationWarning: verdict.RejectedReason,
			})
			continue
		}
		s := SafeSuggestion{
			ID:        uuid.NewString(),
			Element:   Element(ms.Element),
			Original:  ms.Original,
			Suggested: ms.Suggested,
			Reason:    ms.Reason,
			Impact:    "Suggested by the writing model and verified against the original draft",
			IsValid:   true,
		}
		if len(verdict.Warnings) > 0 {
			s.ValidationWarning = strings.Join(verdict.Warnings, "; ")
		}
		out = append(out, s)
	}

	return out, warnings
}

// systemContract forbids the model from inventing content. Every response is
// still validated; the contract just raises the acceptance rate.
const systemContract = `You improve outreach email drafts. Hard rules:
- Never add information, names, companies, claims, numbers, or topics that are not present in the original email.
- Never invent personalization such as "I noticed...", "Congratulations on...", or "I've been following...".
- Only rephrase, tighten, or restructure what is already there.
Respond with a single JSON object: {"suggestions": [{"element": "subject|opening|greeting|body|closing|cta", "original": "<verbatim text from the draft>", "suggested": "<replacement>", "reason": "<one sentence>"}], "emailQuality": "<one sentence assessment>"} with at most 5 suggestions. No text outside the JSON object.`

func buildUserPrompt(subject, body string, recipient *analyzer.RecipientData) string {
	var b strings.Builder
	b.WriteString("Subject: ")
	b.WriteString(subject)
	b.WriteString("\n\nBody:\n")
	b.WriteString(body)
	if recipient != nil {
		if recipient.Name != "" {
			b.WriteString("\n\nRecipient name: ")
			b.WriteString(recipient.Name)
		}
		if recipient.Company != "" {
			b.WriteString("\nRecipient company: ")
			b.WriteString(recipient.Company)
		}
	}
	return b.String()
}

// extractPayload finds the first top-level JSON object in free text and
// unmarshals it. Models wrap JSON in prose often enough that this is the
// robust path.
func extractPayload(raw string) (modelPayload, bool) {
	var payload modelPayload

	start := strings.Index(raw, "{")
	if start < 0 {
		return payload, false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				if err := json.Unmarshal([]byte(raw[start:i+1]), &payload); err != nil {
					return payload, false
				}
				return payload, true
			}
		}
	}
	return payload, false
}

// dedupeSuggestions drops later suggestions that target the same element and
// original text as an earlier one. Rule-based entries come first, so they win.
// Valid entries are placed before rejected ones and always take the key, so a
// rejection never shadows a usable rewrite.
func dedupeSuggestions(all []SafeSuggestion) []SafeSuggestion {
	seen := make(map[string]bool, len(all))
	out := make([]SafeSuggestion, 0, len(all))
	for _, s := range all {
		if !s.IsValid {
			continue
		}
		key := string(s.Element) + "|" + strings.ToLower(s.Original)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	for _, s := range all {
		if s.IsValid {
			continue
		}
		key := string(s.Element) + "|" + strings.ToLower(s.Original)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// buildMergedPreview renders merge tokens with recipient data, when both are
// present. Render errors just suppress the preview.
func buildMergedPreview(subject, body string, recipient *analyzer.RecipientData) *Preview {
	if recipient == nil {
		return nil
	}
	if len(tokens.Detect(subject)) == 0 && len(tokens.Detect(body)) == 0 {
		return nil
	}

	mergedSubject, err := tokens.RenderPreview(subject, recipient)
	if err != nil {
		return nil
	}
	mergedBody, err := tokens.RenderPreview(body, recipient)
	if err != nil {
		return nil
	}
	return &Preview{Subject: mergedSubject, Body: mergedBody}
}

// buildPreview substitutes each applicable valid suggestion into the draft.
// Invalid suggestions and synthetic markers like "(empty)" and "(no call to
// action)" are skipped. Returns nil when nothing applied.
func buildPreview(subject, body string, suggestions []SafeSuggestion) *Preview {
	newSubject, newBody := subject, body
	applied := false

	for _, s := range suggestions {
		if !s.IsValid || strings.HasPrefix(s.Original, "(") {
			continue
		}
		if s.Element == ElementSubject {
			newSubject = s.Suggested
			applied = true
			continue
		}
		if strings.Contains(newBody, s.Original) {
			newBody = strings.Replace(newBody, s.Original, s.Suggested, 1)
			applied = true
		}
	}

	if !applied {
		return nil
	}
	return &Preview{Subject: newSubject, Body: newBody}
}
