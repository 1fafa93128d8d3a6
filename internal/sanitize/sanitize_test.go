package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"spaces only", "   "},
		{"newlines only", "\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Content(tt.input)
			assert.False(t, res.IsValid)
			assert.NotEmpty(t, res.Errors)
		})
	}
}

func TestContentDecodesEntities(t *testing.T) {
	res := Content("Tom &amp; Jerry &lt;3 &quot;quoted&quot; it&#39;s&nbsp;here")
	assert.True(t, res.IsValid)
	assert.Equal(t, `Tom & Jerry <3 "quoted" it's here`, res.Sanitized)
	assert.Empty(t, res.Warnings)
}

func TestContentStripsDangerousMarkup(t *testing.T) {
	res := Content(`Hello <script>alert(1)</script> click <a href="javascript:void(0)" onclick="x()">here</a>`)
	assert.True(t, res.IsValid)
	assert.NotContains(t, res.Sanitized, "<script")
	assert.NotContains(t, strings.ToLower(res.Sanitized), "javascript:")
	assert.NotContains(t, strings.ToLower(res.Sanitized), "onclick=")
	assert.NotEmpty(t, res.Warnings)
}

func TestContentCollapsesWhitespace(t *testing.T) {
	res := Content("Hi    there\t\tfriend\n\n\n\n\nBye")
	assert.True(t, res.IsValid)
	assert.Equal(t, "Hi there friend\n\nBye", res.Sanitized)
}

func TestContentExcessiveWhitespaceWarning(t *testing.T) {
	input := "Hi" + strings.Repeat(" ", 200) + "there"
	res := Content(input)
	assert.True(t, res.IsValid)
	assert.Contains(t, res.Warnings, "excessive whitespace removed")
}

func TestContentTruncation(t *testing.T) {
	res := ContentWithLimit(strings.Repeat("a", 100), 50)
	assert.True(t, res.IsValid)
	assert.Len(t, res.Sanitized, 50)
	assert.Contains(t, res.Warnings, "content truncated to maximum length")
}

func TestContentIdempotent(t *testing.T) {
	inputs := []string{
		"Hello world",
		"Tom &amp; Jerry &amp;amp; friends",
		"Hi    there\n\n\n\nBye",
		`<script>alert(1)</script> legit text`,
		"  padded  \n\n\n  content  ",
		"ALL CAPS!!! $$$ " + strings.Repeat("x ", 500),
	}

	for _, in := range inputs {
		first := Content(in)
		if !first.IsValid {
			continue
		}
		second := Content(first.Sanitized)
		assert.True(t, second.IsValid)
		assert.Equal(t, first.Sanitized, second.Sanitized, "input %q", in)
		assert.Empty(t, second.Warnings, "re-sanitizing should be warning-free for %q", in)
	}
}
