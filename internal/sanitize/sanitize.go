// Package sanitize normalizes raw draft text before any analyzer runs.
// Sanitization is idempotent: feeding sanitized output back in yields the
// same content with no new warnings.
package sanitize

import (
	"regexp"
	"strings"
)

// DefaultMaxLength is the truncation cap applied when no override is given.
const DefaultMaxLength = 50000

// Result is the outcome of sanitizing one field (subject or body).
type Result struct {
	IsValid   bool     `json:"isValid"`
	Sanitized string   `json:"sanitizedContent"`
	Warnings  []string `json:"warnings"`
	Errors    []string `json:"errors"`
}

// entityPairs is the fixed set of HTML entities the sanitizer decodes.
// &amp; is decoded first so nested encodings resolve in one logical pass.
var entityPairs = []struct{ from, to string }{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&nbsp;", " "},
}

// dangerousPatterns is the denylist of markup stripped from drafts. Each hit
// records a warning; this is hygiene for downstream display, not a security
// boundary.
var dangerousPatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`), "script tag"},
	{regexp.MustCompile(`(?is)<script\b[^>]*/?>`), "script tag"},
	{regexp.MustCompile(`(?is)<iframe\b[^>]*>.*?</iframe>`), "iframe tag"},
	{regexp.MustCompile(`(?is)<iframe\b[^>]*/?>`), "iframe tag"},
	{regexp.MustCompile(`(?i)javascript\s*:`), "javascript: URI"},
	{regexp.MustCompile(`(?i)\son\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`), "inline event handler"},
}

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	blankLines   = regexp.MustCompile(`\n[ \t]*\n([ \t]*\n)+`)
	crlf         = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Content sanitizes raw text with the default length cap.
func Content(raw string) Result {
	return ContentWithLimit(raw, DefaultMaxLength)
}

// ContentWithLimit sanitizes raw text, truncating at maxLen characters.
func ContentWithLimit(raw string, maxLen int) Result {
	res := Result{Warnings: []string{}, Errors: []string{}}

	if strings.TrimSpace(raw) == "" {
		res.Errors = append(res.Errors, "content is empty")
		return res
	}

	content := crlf.Replace(raw)

	if maxLen > 0 && len(content) > maxLen {
		content = content[:maxLen]
		res.Warnings = append(res.Warnings, "content truncated to maximum length")
	}

	content = decodeEntities(content)

	for _, p := range dangerousPatterns {
		if p.re.MatchString(content) {
			content = p.re.ReplaceAllString(content, " ")
			res.Warnings = append(res.Warnings, "removed "+p.label)
		}
	}

	before := len(content)
	content = horizontalWS.ReplaceAllString(content, " ")
	content = blankLines.ReplaceAllString(content, "\n\n")
	content = strings.TrimSpace(content)
	if before > 0 && len(content) < before/2 {
		res.Warnings = append(res.Warnings, "excessive whitespace removed")
	}

	res.IsValid = true
	res.Sanitized = content
	return res
}

// decodeEntities resolves the fixed entity set to a fixpoint so that
// sanitizing already-sanitized content never produces further changes.
func decodeEntities(s string) string {
	for i := 0; i < 10; i++ {
		out := s
		for _, p := range entityPairs {
			out = strings.ReplaceAll(out, p.from, p.to)
		}
		if out == s {
			return out
		}
		s = out
	}
	return s
}
