package lexical

import (
	"regexp"
	"strings"
)

// TemplateResult flags unmerged merge-tokens and generic template greetings.
type TemplateResult struct {
	UnmergedTokens    []string `json:"unmergedTokens"`
	HasTokens         bool     `json:"hasTokens"`
	GenericSalutation bool     `json:"genericSalutation"`
}

// mergeTokenPatterns match the common personalization token syntaxes:
// {{first_name}}, [FIRST_NAME], %FIRST_NAME%.
var mergeTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\{\{[^}]+\}\}`),
	regexp.MustCompile(`\[[A-Z_]{2,}\]`),
	regexp.MustCompile(`%[A-Z_]{2,}%`),
}

// DetectTemplateArtifacts finds merge tokens that survived into the draft and
// generic salutations that signal an unpersonalized template.
func DetectTemplateArtifacts(text string) TemplateResult {
	res := TemplateResult{UnmergedTokens: []string{}}

	for _, re := range mergeTokenPatterns {
		res.UnmergedTokens = append(res.UnmergedTokens, re.FindAllString(text, -1)...)
	}
	res.HasTokens = len(res.UnmergedTokens) > 0

	lower := strings.ToLower(text)
	for _, s := range genericSalutations {
		if strings.Contains(lower, s) {
			res.GenericSalutation = true
			break
		}
	}

	return res
}
