package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/outreach-engine/internal/analyzer"
)

func TestDetect(t *testing.T) {
	text := "Hi {{first_name}}, I saw [COMPANY] is hiring. %FIRST_NAME% again. {{first_name}} twice."
	toks := Detect(text)

	require.Len(t, toks, 3)
	assert.Equal(t, Token{Raw: "{{first_name}}", Name: "first_name", Style: "liquid"}, toks[0])
	assert.Equal(t, Token{Raw: "[COMPANY]", Name: "COMPANY", Style: "bracket"}, toks[1])
	assert.Equal(t, Token{Raw: "%FIRST_NAME%", Name: "FIRST_NAME", Style: "percent"}, toks[2])
}

func TestDetectNone(t *testing.T) {
	assert.Empty(t, Detect("No tokens here, just a normal [ok] sentence with 100% effort."))
}

func TestRenderPreview(t *testing.T) {
	recipient := &analyzer.RecipientData{Name: "Jordan", Company: "Acme"}
	out, err := RenderPreview("Hi {{first_name}}, is [COMPANY] still hiring?", recipient)

	require.NoError(t, err)
	assert.Equal(t, "Hi Jordan, is Acme still hiring?", out)
}

func TestRenderPreviewUnboundTokenStaysPut(t *testing.T) {
	recipient := &analyzer.RecipientData{Name: "Jordan"}
	out, err := RenderPreview("Hi {{first_name}} of {{company}}", recipient)

	require.NoError(t, err)
	assert.Equal(t, "Hi Jordan of {{company}}", out)
}

func TestRenderPreviewNilRecipient(t *testing.T) {
	out, err := RenderPreview("Hi {{first_name}}", nil)

	require.NoError(t, err)
	assert.Equal(t, "Hi {{first_name}}", out)
}
