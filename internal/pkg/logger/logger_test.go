package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, fn func()) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })

	fn()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogKeepsStructuralKeysIntact(t *testing.T) {
	entry := capture(t, func() {
		Info("analyze request served", "email_type", "follow_up", "overall_score", 82)
	})

	assert.Equal(t, "follow_up", entry["email_type"], "enum keys must not be mistaken for addresses")
	assert.Equal(t, "82", entry["overall_score"])
}

func TestLogRedactsRecipientEmailKeys(t *testing.T) {
	entry := capture(t, func() {
		Info("history recorded", "recipient_email", "jordan@example.com", "recipient", "sam@example.com")
	})

	assert.Equal(t, "jo***@example.com", entry["recipient_email"])
	assert.Equal(t, "sa***@example.com", entry["recipient"])
}

func TestLogRedactsEmbeddedAddresses(t *testing.T) {
	entry := capture(t, func() {
		Warn("bounce", "detail", "delivery to jordan@example.com failed")
	})

	assert.Equal(t, "delivery to jo***@example.com failed", entry["detail"])
}

func TestLogNeverEmitsDraftContent(t *testing.T) {
	entry := capture(t, func() {
		Info("analyze", "subject", "Quick question", "body", "hello there")
	})

	assert.NotContains(t, entry, "subject")
	assert.NotContains(t, entry, "body")
	assert.Equal(t, float64(len("Quick question")), entry["subject_len"])
	assert.Equal(t, float64(len("hello there")), entry["body_len"])
}

func TestRedactEmail(t *testing.T) {
	assert.Equal(t, "jo***@example.com", RedactEmail("john.doe@example.com"))
	assert.Equal(t, "***@example.com", RedactEmail("jd@example.com"))
	assert.Equal(t, "***@***", RedactEmail("not-an-address"))
}
