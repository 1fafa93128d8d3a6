package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTone(t *testing.T) {
	pos := AnalyzeTone("Thank you, this is great and I really appreciate it.")
	assert.Equal(t, "positive", pos.Sentiment)

	neg := AnalyzeTone("Unfortunately there is a problem and I am disappointed.")
	assert.Equal(t, "negative", neg.Sentiment)

	neutral := AnalyzeTone("The meeting is on the calendar.")
	assert.Equal(t, "neutral", neutral.Sentiment)

	urgent := AnalyzeTone("This is urgent, reply today, the deadline expires now.")
	assert.Equal(t, "high", urgent.Urgency)

	calm := AnalyzeTone("Whenever suits you is fine.")
	assert.Equal(t, "low", calm.Urgency)

	formal := AnalyzeTone("Dear Dr. Smith, I am writing to request a meeting. Regards.")
	assert.Equal(t, "formal", formal.Formality)
}

func TestAnalyzeReadability(t *testing.T) {
	simple := AnalyzeReadability("I like your work. It is good. Can we talk?")
	assert.Greater(t, simple.Score, 70.0)
	assert.LessOrEqual(t, simple.Score, 100.0)

	complexText := AnalyzeReadability("Notwithstanding organizational considerations, interdepartmental communication methodologies necessitate comprehensive reevaluation procedures.")
	assert.Less(t, complexText.Score, 30.0)
	assert.GreaterOrEqual(t, complexText.Score, 0.0)

	empty := AnalyzeReadability("")
	assert.Equal(t, 0, empty.WordCount)
	assert.GreaterOrEqual(t, empty.Score, 0.0)
}

func TestCountSyllables(t *testing.T) {
	tests := map[string]int{
		"cat":      1,
		"hello":    2,
		"readable": 3,
		"a":        1,
		"the":      1,
	}
	for word, want := range tests {
		assert.Equal(t, want, countSyllables(word), "word %q", word)
	}
}

func TestAnalyzeCTA(t *testing.T) {
	strong := AnalyzeCTA("Are you available for 15 minutes this week?")
	assert.True(t, strong.HasCTA)
	assert.Equal(t, CTAStrong, strong.Strength)
	assert.Greater(t, strong.ClarityScore, 50)
	assert.LessOrEqual(t, strong.ClarityScore, 100)

	weak := AnalyzeCTA("Let me know your thoughts whenever you have time.")
	assert.True(t, weak.HasCTA)
	assert.Equal(t, CTAWeak, weak.Strength)

	none := AnalyzeCTA("We shipped the new release yesterday.")
	assert.False(t, none.HasCTA)
}

func TestClassifyIntent(t *testing.T) {
	fu := ClassifyIntent("Following up on our chat", "Just circling back on my last note.")
	assert.Equal(t, IntentFollowUp, fu.Primary)
	assert.Greater(t, fu.Confidence, 0)

	meeting := ClassifyIntent("Quick call?", "Are you available to schedule a call this week? Here is my calendar.")
	assert.Equal(t, IntentMeetingRequest, meeting.Primary)

	cold := ClassifyIntent("Hello", "We build widgets for manufacturers.")
	assert.Equal(t, IntentColdOutreach, cold.Primary)
	assert.Equal(t, 0, cold.Confidence)

	breakup := ClassifyIntent("Closing the loop", "This is my last attempt to reach you, I won't reach out again.")
	assert.Equal(t, IntentBreakup, breakup.Primary)
}

func TestClassifyIntentDeterministic(t *testing.T) {
	subject, body := "Following up", "Thanks for your time. Following up to schedule a call."
	first := ClassifyIntent(subject, body)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ClassifyIntent(subject, body))
	}
}

func TestDetectThreadContext(t *testing.T) {
	reply := DetectThreadContext("Re: pricing", "Sounds good.\n\nOn Mon, Jan 2, 2026 at 9:00 AM Jane wrote:\n> original text")
	assert.True(t, reply.IsReply)

	fwd := DetectThreadContext("Fwd: proposal", "---------- Forwarded message ----------\nFrom: someone")
	assert.True(t, fwd.IsForward)

	fresh := DetectThreadContext("Hello", "Nice to meet you.")
	assert.False(t, fresh.IsReply)
	assert.Equal(t, 1, fresh.SequencePosition)

	third := DetectThreadContext("Checking in", "I've tried to reach you several times now.")
	assert.Equal(t, 3, third.SequencePosition)

	last := DetectThreadContext("Closing the loop", "This is my last attempt.")
	assert.Equal(t, 4, last.SequencePosition)
}

func TestDetectTemplateArtifacts(t *testing.T) {
	res := DetectTemplateArtifacts("Hi {{first_name}}, greetings from [COMPANY] and %TEAM%.")
	assert.True(t, res.HasTokens)
	assert.Len(t, res.UnmergedTokens, 3)

	generic := DetectTemplateArtifacts("Dear valued customer, we have an offer.")
	assert.True(t, generic.GenericSalutation)

	clean := DetectTemplateArtifacts("Hi Maria, congrats on the launch.")
	assert.False(t, clean.HasTokens)
	assert.False(t, clean.GenericSalutation)
}

func TestDetectLanguage(t *testing.T) {
	en := DetectLanguage("Thanks for the note, this is exactly what we are looking for and you have been helpful.")
	assert.True(t, en.IsEnglish)
	assert.Equal(t, "english", en.Language)

	es := DetectLanguage("Gracias por su mensaje, esto es exactamente lo que buscamos para usted y sus colegas, pero no podemos confirmar una fecha todavía.")
	assert.False(t, es.IsEnglish)

	short := DetectLanguage("ok")
	assert.True(t, short.IsEnglish)
}

func TestAnalyzeLinks(t *testing.T) {
	res := AnalyzeLinks("See https://example.com/page and http://bit.ly/x and http://192.168.1.1/login.")
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 2, res.SuspiciousCount)

	none := AnalyzeLinks("No links here.")
	assert.Equal(t, 0, none.Count)
}

func TestAnalyzeMessageStructure(t *testing.T) {
	body := "Hi Maria,\n\nI saw your talk last week and wanted to reach out.\n\nWould a quick call work?\n\nBest regards,\nSam Jones\nsam@acme.example\n(555) 123-4567\nhttps://acme.example"
	res := AnalyzeMessageStructure(body)

	assert.True(t, res.Greeting.Present)
	assert.Equal(t, "casual", res.Greeting.Type)
	assert.True(t, res.Signature.Present)
	assert.True(t, res.Signature.HasEmail)
	assert.True(t, res.Signature.HasPhone)
	assert.True(t, res.Signature.HasURL)
	assert.Equal(t, 4, res.ParagraphCount)

	bare := AnalyzeMessageStructure("quick question about pricing")
	assert.False(t, bare.Greeting.Present)
	assert.False(t, bare.Signature.Present)
}

func TestCheckCompliance(t *testing.T) {
	clean := CheckCompliance("Our newsletter", "News content.\n\nUnsubscribe anytime.\n123 Main Street, Springfield")
	assert.True(t, clean.HasUnsubscribe)
	assert.True(t, clean.HasPostalAddress)
	assert.Empty(t, clean.Issues)

	missing := CheckCompliance("Offer", "Buy our product.")
	assert.False(t, missing.HasUnsubscribe)
	assert.Len(t, missing.Issues, 2)

	misleading := CheckCompliance("Re: your account", "First time writing to you about our product. Unsubscribe here. 1 Oak Ave.")
	var types []string
	for _, i := range misleading.Issues {
		types = append(types, i.Type)
	}
	assert.Contains(t, types, "misleading")
}
