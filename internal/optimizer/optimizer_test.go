package optimizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/outreach-engine/internal/analyzer"
	"github.com/ignite/outreach-engine/internal/config"
)

type stubModel struct {
	response string
	err      error
	calls    int
}

func (s *stubModel) Invoke(ctx context.Context, system, user string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Bedrock.TimeoutSeconds = 1
	cfg.Engine.MaxAISuggestions = 5
	return cfg
}

func TestSafeOptimizeRejectsFabricatedSuggestions(t *testing.T) {
	model := &stubModel{response: `{
		"suggestions": [
			{"element": "opening", "original": "hello how are you", "suggested": "I noticed your impressive growth at Acme Corp", "reason": "stronger opener"},
			{"element": "body", "original": "let's meet Tuesday", "suggested": "Congratulations on the funding! Let's meet Tuesday", "reason": "adds warmth"},
			{"element": "opening", "original": "hello how are you", "suggested": "I've been following your work and would love to chat", "reason": "personal touch"}
		],
		"emailQuality": "weak"
	}`}

	res := New(testConfig(), model).SafeOptimize(context.Background(), "Meeting", "hello how are you let's meet Tuesday", nil)

	require.Equal(t, 1, model.calls)
	forbidden := []string{"noticed your", "congratulations", "impressive", "I recently came across", "I've been following"}
	invalid := 0
	for _, s := range res.Suggestions {
		if !s.IsValid {
			invalid++
			assert.NotEmpty(t, s.ValidationWarning, "rejected suggestion must carry its rejection reason")
			continue
		}
		for _, phrase := range forbidden {
			assert.NotContains(t, strings.ToLower(s.Suggested), strings.ToLower(phrase),
				"fabricated phrase leaked through validation: %q", s.Suggested)
		}
	}
	// Two of the three fabricating suggestions share element and original text,
	// so the retained invalid entries collapse to two.
	assert.Equal(t, 2, invalid, "rejected suggestions stay in the result, flagged invalid")

	assert.Nil(t, res.Preview, "invalid suggestions must never produce a preview")

	rejections := 0
	for _, w := range res.Warnings {
		if strings.Contains(w, "rejected") {
			rejections++
		}
	}
	assert.Equal(t, 3, rejections, "each fabricated suggestion should surface a rejection warning")
}

func TestSafeOptimizeShortBodySkipsModel(t *testing.T) {
	model := &stubModel{response: `{"suggestions": [], "emailQuality": "n/a"}`}

	res := New(testConfig(), model).SafeOptimize(context.Background(), "Hi", "too short here", nil)

	assert.Zero(t, model.calls, "model must not be called for a body under 5 words")
	assert.Contains(t, res.Warnings, warnTooShort)
}

func TestSafeOptimizeModelFailureDegradesGracefully(t *testing.T) {
	model := &stubModel{err: errors.New("connection reset")}

	res := New(testConfig(), model).SafeOptimize(context.Background(), "", "this body is missing quite a lot of things honestly", nil)

	assert.Contains(t, res.Warnings, warnUnavailable)
	// Rule-based output survives: the empty subject suggestion at minimum.
	found := false
	for _, s := range res.Suggestions {
		if s.Element == ElementSubject && s.Original == markerEmpty {
			found = true
		}
	}
	assert.True(t, found, "rule-based suggestions must survive a model failure")
	assert.NotZero(t, res.Analysis.OverallScore+len(res.Analysis.Improvements), "analysis must still be present")
}

func TestSafeOptimizeNilModel(t *testing.T) {
	res := New(testConfig(), nil).SafeOptimize(context.Background(), "Quick question", "would your team be open to a short call about onboarding", nil)

	assert.Contains(t, res.Warnings, warnUnavailable)
	assert.NotNil(t, res.Suggestions)
}

func TestSafeOptimizeAcceptsValidatedSuggestionAndBuildsPreview(t *testing.T) {
	model := &stubModel{response: `Here is my analysis:
{"suggestions": [{"element": "opening", "original": "hello how are you", "suggested": "Hello, quick question for you", "reason": "tighter opener"}], "emailQuality": "fair"}
Hope that helps!`}

	res := New(testConfig(), model).SafeOptimize(context.Background(), "Meeting", "hello how are you let's meet Tuesday", nil)

	var accepted *SafeSuggestion
	for i := range res.Suggestions {
		if res.Suggestions[i].Element == ElementOpening {
			accepted = &res.Suggestions[i]
		}
	}
	require.NotNil(t, accepted, "validated suggestion should be kept")
	assert.True(t, accepted.IsValid)
	assert.NotEmpty(t, accepted.ID)

	require.NotNil(t, res.Preview)
	assert.Equal(t, "Meeting", res.Preview.Subject)
	assert.Equal(t, "Hello, quick question for you let's meet Tuesday", res.Preview.Body)
}

func TestSafeOptimizeSubjectSuggestionReplacesWholeSubject(t *testing.T) {
	model := &stubModel{response: `{"suggestions": [{"element": "subject", "original": "Meeting", "suggested": "Meeting on Tuesday?", "reason": "adds the specific day"}], "emailQuality": "fair"}`}

	res := New(testConfig(), model).SafeOptimize(context.Background(), "Meeting", "hello how are you let's meet Tuesday", nil)

	require.NotNil(t, res.Preview)
	assert.Equal(t, "Meeting on Tuesday?", res.Preview.Subject)
}

func TestSafeOptimizeDedupesByElementAndOriginal(t *testing.T) {
	model := &stubModel{response: `{"suggestions": [
		{"element": "opening", "original": "hello how are you", "suggested": "Hello there, quick question", "reason": "a"},
		{"element": "opening", "original": "HELLO HOW ARE YOU", "suggested": "Hello, a question for you", "reason": "b"}
	], "emailQuality": "fair"}`}

	res := New(testConfig(), model).SafeOptimize(context.Background(), "Meeting", "hello how are you let's meet Tuesday", nil)

	count := 0
	for _, s := range res.Suggestions {
		if s.Element == ElementOpening {
			count++
		}
	}
	assert.Equal(t, 1, count, "same element and case-folded original must collapse to one suggestion")
}

func TestSafeOptimizeCapsAISuggestions(t *testing.T) {
	cfg := testConfig()
	cfg.Engine.MaxAISuggestions = 2
	model := &stubModel{response: `{"suggestions": [
		{"element": "opening", "original": "hello how are you", "suggested": "Hello, quick question", "reason": "a"},
		{"element": "body", "original": "let's meet Tuesday", "suggested": "Could we meet Tuesday?", "reason": "b"},
		{"element": "cta", "original": "let's meet", "suggested": "Open to meeting Tuesday?", "reason": "c"}
	], "emailQuality": "fair"}`}

	res := New(cfg, model).SafeOptimize(context.Background(), "Meeting", "hello how are you let's meet Tuesday", nil)

	aiCount := 0
	for _, s := range res.Suggestions {
		if s.Impact == "Suggested by the writing model and verified against the original draft" {
			aiCount++
		}
	}
	assert.LessOrEqual(t, aiCount, 2)
}

func TestSafeOptimizeMergedPreview(t *testing.T) {
	recipient := &analyzer.RecipientData{Name: "Jordan", Company: "Acme"}

	res := New(testConfig(), nil).SafeOptimize(context.Background(), "Question for {{first_name}}", "Hi {{first_name}}, is [COMPANY] still hiring for the platform team?", recipient)

	require.NotNil(t, res.MergedPreview)
	assert.Equal(t, "Question for Jordan", res.MergedPreview.Subject)
	assert.Equal(t, "Hi Jordan, is Acme still hiring for the platform team?", res.MergedPreview.Body)

	plain := New(testConfig(), nil).SafeOptimize(context.Background(), "Question", "No tokens in this draft at all, just asking about the platform team.", recipient)
	assert.Nil(t, plain.MergedPreview)
}

func TestExtractPayload(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"bare object", `{"suggestions": [], "emailQuality": "good"}`, true},
		{"wrapped in prose", "Sure!\n{\"suggestions\": [], \"emailQuality\": \"ok\"}\nDone.", true},
		{"braces inside strings", `{"suggestions": [{"element": "body", "original": "{{name}}", "suggested": "Jordan", "reason": "merge"}], "emailQuality": "ok"}`, true},
		{"no json", "I cannot help with that.", false},
		{"unbalanced", `{"suggestions": [`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := extractPayload(tt.raw)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestRuleBasedSuggestions(t *testing.T) {
	t.Run("vague meeting ask", func(t *testing.T) {
		out := ruleBasedSuggestions("Catch up", "Hi,\n\nWe should find time to meet sometime soon and talk things over in detail please.", nil)
		found := false
		for _, s := range out {
			if s.Original == markerNoTime {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("greeting uses recipient name", func(t *testing.T) {
		out := ruleBasedSuggestions("Subject here", "Hi,\n\nJust checking whether the report from 2024 went out.", &analyzer.RecipientData{Name: "Jordan"})
		var greeting *SafeSuggestion
		for i := range out {
			if out[i].Element == ElementGreeting {
				greeting = &out[i]
			}
		}
		require.NotNil(t, greeting)
		assert.Equal(t, "Hi,", greeting.Original)
		assert.Equal(t, "Hi Jordan,", greeting.Suggested)
	})

	t.Run("clean draft yields nothing", func(t *testing.T) {
		body := "Hi Jordan,\n\nNoticed the launch went live on May 2. Congrats. Would a 15 minute call Thursday at 10am work to compare notes on rollout, onboarding, and what broke along the way?\n\nBest,\nSam"
		out := ruleBasedSuggestions("Quick question about rollout", body, nil)
		assert.Empty(t, out)
	})
}
