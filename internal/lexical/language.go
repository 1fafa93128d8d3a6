package lexical

import (
	"sort"

	"github.com/abadojack/whatlanggo"
)

// LanguageResult names the dominant language by stop-word voting, with
// whatlanggo as a corroborating signal.
type LanguageResult struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	IsEnglish  bool    `json:"isEnglish"`
}

// DetectLanguage votes stop-word frequency across the built-in language
// tables. The draft is only flagged non-English when the vote and the
// whatlanggo detector agree, which keeps short English drafts with a few
// loanwords from tripping the flag.
func DetectLanguage(text string) LanguageResult {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return LanguageResult{Language: "english", Confidence: 0, IsEnglish: true}
	}

	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	votes := map[string]int{}
	for lang, stops := range languageStopWords {
		for _, w := range stops {
			votes[lang] += counts[w]
		}
	}

	langs := make([]string, 0, len(votes))
	for l := range votes {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool {
		if votes[langs[i]] != votes[langs[j]] {
			return votes[langs[i]] > votes[langs[j]]
		}
		return langs[i] < langs[j]
	})

	best := langs[0]
	total := 0
	for _, v := range votes {
		total += v
	}

	res := LanguageResult{Language: best}
	if total > 0 {
		res.Confidence = float64(votes[best]) / float64(total)
	}
	if votes[best] == 0 {
		// No stop words matched at all; too short to call, assume English.
		res.Language = "english"
		res.IsEnglish = true
		return res
	}

	if best == "english" {
		res.IsEnglish = true
		return res
	}

	// Corroborate a non-English vote before flagging.
	info := whatlanggo.Detect(text)
	res.IsEnglish = info.Lang == whatlanggo.Eng
	if res.IsEnglish {
		res.Language = "english"
	}
	return res
}
