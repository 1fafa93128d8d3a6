package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEntities(t *testing.T) {
	entities := ExtractEntities(`Acme Corp grew 30% last quarter, said "the best tool we tried" about it. $1,200 saved.`)

	assert.True(t, entities["acme corp"])
	assert.True(t, entities["30%"])
	assert.True(t, entities["the best tool we tried"])
	assert.True(t, entities["$1,200"])
	// Single capitalized words are not entities.
	assert.False(t, entities["acme"])
}

func TestSuggestionAcceptsRewriteOfExistingContent(t *testing.T) {
	full := "Subject: Quick question\n\nHi, we helped Acme Corp cut costs 30%. Interested in a chat?"
	v := Suggestion("we helped Acme Corp cut costs 30%", "We helped Acme Corp cut costs 30%. Worth a quick chat Thursday?", full)

	assert.True(t, v.IsValid)
	assert.Empty(t, v.RejectedReason)
}

func TestSuggestionRejectsNewEntities(t *testing.T) {
	full := "hello how are you let's meet Tuesday"
	v := Suggestion("hello how are you", "Hi Jordan Smith, Globex Industries grew 400% last year", full)

	require.False(t, v.IsValid)
	assert.Contains(t, v.RejectedReason, "not in the original email")
	assert.Contains(t, v.RejectedReason, "jordan smith")
	assert.Contains(t, v.RejectedReason, "globex industries")
}

func TestSuggestionRejectsFabricatedPersonalization(t *testing.T) {
	full := "Subject: Meeting\n\nhello how are you let's meet Tuesday"
	cases := []string{
		"I noticed your team has been growing",
		"Congratulations on the new role",
		"I've been following your work for a while",
		"I recently came across your profile",
	}
	for _, suggested := range cases {
		v := Suggestion("hello how are you", suggested, full)
		require.False(t, v.IsValid, "should reject: %q", suggested)
		assert.Contains(t, v.RejectedReason, "fabricated personalization")
	}
}

func TestSuggestionAllowsFabricationPhrasePresentInOriginal(t *testing.T) {
	full := "I noticed your pricing page changed last week. Worth discussing?"
	v := Suggestion("I noticed your pricing page changed", "I noticed your pricing page changed. Open to a quick call?", full)

	assert.True(t, v.IsValid)
}

func TestSuggestionAllowsGenericImprovementWords(t *testing.T) {
	full := "hello how are you let's meet"
	v := Suggestion("let's meet", "Would you be available for a quick 15 minute call Tuesday?", full)

	assert.True(t, v.IsValid, "rejected: %s", v.RejectedReason)
}

func TestSuggestionLengthExplosionWarnsButPasses(t *testing.T) {
	full := "short ask here about the call"
	v := Suggestion("ask", strings.Repeat("a quick call ", 5), full)

	assert.True(t, v.IsValid)
	require.Len(t, v.Warnings, 1)
	assert.Contains(t, v.Warnings[0], "3x")
}
