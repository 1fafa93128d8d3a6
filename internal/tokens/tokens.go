// Package tokens detects unmerged merge tokens in draft text and renders a
// merged preview from recipient data using liquid templating.
package tokens

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/osteele/liquid"

	"github.com/ignite/outreach-engine/internal/analyzer"
)

// Token is one unmerged merge token found in a draft.
type Token struct {
	Raw   string `json:"raw"`
	Name  string `json:"name"`
	Style string `json:"style"`
}

var tokenStyles = []struct {
	style   string
	pattern *regexp.Regexp
}{
	{"liquid", regexp.MustCompile(`\{\{\s*([^}]+?)\s*\}\}`)},
	{"bracket", regexp.MustCompile(`\[([A-Z_]{2,})\]`)},
	{"percent", regexp.MustCompile(`%([A-Z_]{2,})%`)},
}

// Detect returns every distinct merge token in text.
func Detect(text string) []Token {
	var found []Token
	seen := map[string]bool{}
	for _, s := range tokenStyles {
		for _, m := range s.pattern.FindAllStringSubmatch(text, -1) {
			if seen[m[0]] {
				continue
			}
			seen[m[0]] = true
			found = append(found, Token{Raw: m[0], Name: strings.TrimSpace(m[1]), Style: s.style})
		}
	}
	return found
}

var engine = liquid.NewEngine()

var identName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// tokenAliases maps merge-token names seen in the wild onto the recipient
// fields they should render from.
var tokenAliases = map[string]string{
	"first_name": "name", "firstname": "name", "name": "name",
	"full_name": "name", "contact_name": "name",
	"company": "company", "company_name": "company", "account": "company",
	"industry": "industry",
}

// RenderPreview substitutes recipient data into a tokenized draft. Bracket
// and percent tokens are normalized to liquid form first, then the text
// renders through the liquid engine. Tokens with no matching recipient field
// stay in the output verbatim so callers can still flag them as unmerged.
func RenderPreview(text string, recipient *analyzer.RecipientData) (string, error) {
	fields := map[string]string{}
	if recipient != nil {
		if recipient.Name != "" {
			fields["name"] = recipient.Name
		}
		if recipient.Company != "" {
			fields["company"] = recipient.Company
		}
		if recipient.Industry != "" {
			fields["industry"] = recipient.Industry
		}
	}

	normalized := text
	bindings := map[string]interface{}{}
	for _, tok := range Detect(text) {
		field, aliased := tokenAliases[strings.ToLower(tok.Name)]
		value, bound := "", false
		if aliased {
			value, bound = fields[field]
		}

		switch {
		case tok.Style != "liquid" && bound:
			normalized = strings.ReplaceAll(normalized, tok.Raw, "{{ "+field+" }}")
			bindings[field] = value
		case tok.Style == "liquid" && bound:
			bindings[tok.Name] = value
		case tok.Style == "liquid" && identName.MatchString(tok.Name):
			// Unbound liquid token: render it back as itself.
			bindings[tok.Name] = tok.Raw
		}
	}

	if len(bindings) == 0 {
		return text, nil
	}

	out, err := engine.ParseAndRenderString(normalized, bindings)
	if err != nil {
		return text, fmt.Errorf("rendering merge preview: %w", err)
	}
	return out, nil
}
