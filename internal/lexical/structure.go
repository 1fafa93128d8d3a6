package lexical

import (
	"regexp"
	"strings"
)

// GreetingInfo describes the opening salutation of a message.
type GreetingInfo struct {
	Present bool   `json:"present"`
	Type    string `json:"type"` // professional | casual | none
	Text    string `json:"text,omitempty"`
}

// SignatureInfo describes the sign-off block and the contact elements in it.
type SignatureInfo struct {
	Present   bool `json:"present"`
	HasPhone  bool `json:"hasPhone"`
	HasEmail  bool `json:"hasEmail"`
	HasURL    bool `json:"hasUrl"`
	HasSocial bool `json:"hasSocial"`
}

// MessageStructure is the greeting/signature/paragraph breakdown of a body.
type MessageStructure struct {
	Greeting        GreetingInfo  `json:"greeting"`
	Signature       SignatureInfo `json:"signature"`
	ParagraphCount  int           `json:"paragraphCount"`
	LinkCount       int           `json:"linkCount"`
	SuspiciousLinks []string      `json:"suspiciousLinks"`
}

var (
	phonePattern      = regexp.MustCompile(`(\+?\d{1,2}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	socialPattern     = regexp.MustCompile(`(?i)(linkedin\.com|twitter\.com|x\.com/|github\.com)`)
	emailInSigPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
)

// AnalyzeMessageStructure inspects the first lines for a greeting, the last
// five lines for a signature, and counts paragraphs and links.
func AnalyzeMessageStructure(body string) MessageStructure {
	res := MessageStructure{SuspiciousLinks: []string{}}

	lines := nonEmptyLines(body)
	res.Greeting = detectGreeting(lines)
	res.Signature = detectSignature(lines)

	for _, p := range strings.Split(body, "\n\n") {
		if strings.TrimSpace(p) != "" {
			res.ParagraphCount++
		}
	}

	links := AnalyzeLinks(body)
	res.LinkCount = links.Count
	res.SuspiciousLinks = links.SuspiciousURLs

	return res
}

// detectGreeting checks the first one or two lines against the greeting
// word lists.
func detectGreeting(lines []string) GreetingInfo {
	limit := 2
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		line := strings.ToLower(strings.TrimSpace(lines[i]))
		for _, g := range professionalGreetings {
			if strings.HasPrefix(line, g) {
				return GreetingInfo{Present: true, Type: "professional", Text: strings.TrimSpace(lines[i])}
			}
		}
		for _, g := range casualGreetings {
			if strings.HasPrefix(line, g) {
				return GreetingInfo{Present: true, Type: "casual", Text: strings.TrimSpace(lines[i])}
			}
		}
	}
	return GreetingInfo{Type: "none"}
}

// detectSignature scans the last five non-empty lines for a closing phrase
// and contact elements.
func detectSignature(lines []string) SignatureInfo {
	sig := SignatureInfo{}
	start := len(lines) - 5
	if start < 0 {
		start = 0
	}
	tail := strings.Join(lines[start:], "\n")
	lowerTail := strings.ToLower(tail)

	for _, c := range closingPhrases {
		for _, line := range lines[start:] {
			l := strings.ToLower(strings.TrimSpace(line))
			if l == c || strings.HasPrefix(l, c+",") || strings.HasPrefix(l, c+" ") && len(l) < len(c)+25 {
				sig.Present = true
			}
		}
	}

	if sig.Present {
		sig.HasPhone = phonePattern.MatchString(tail)
		sig.HasEmail = emailInSigPattern.MatchString(tail)
		sig.HasURL = strings.Contains(lowerTail, "http://") || strings.Contains(lowerTail, "https://") || strings.Contains(lowerTail, "www.")
		sig.HasSocial = socialPattern.MatchString(tail)
	}

	return sig
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
