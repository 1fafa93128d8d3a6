package lexical

import (
	"regexp"
	"strings"
)

// ReadabilityResult carries Flesch-style readability metrics for a draft.
type ReadabilityResult struct {
	SentenceCount       int     `json:"sentenceCount"`
	WordCount           int     `json:"wordCount"`
	AvgWordsPerSentence float64 `json:"avgWordsPerSentence"`
	AvgSyllablesPerWord float64 `json:"avgSyllablesPerWord"`
	GradeLevel          float64 `json:"gradeLevel"`
	Score               float64 `json:"score"`      // 0..100, higher is easier
	Assessment          string  `json:"assessment"` // very_easy .. very_difficult
}

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	vowelGroup    = regexp.MustCompile(`[aeiouy]+`)
)

// AnalyzeReadability computes average sentence length, an approximate
// syllable count and the derived Flesch-Kincaid style metrics, clamped
// to [0,100].
func AnalyzeReadability(text string) ReadabilityResult {
	res := ReadabilityResult{}

	words := Tokenize(text)
	res.WordCount = len(words)
	if res.WordCount == 0 {
		res.Assessment = "very_difficult"
		return res
	}

	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			res.SentenceCount++
		}
	}
	if res.SentenceCount == 0 {
		res.SentenceCount = 1
	}

	totalSyllables := 0
	for _, w := range words {
		totalSyllables += countSyllables(w)
	}

	res.AvgWordsPerSentence = float64(res.WordCount) / float64(res.SentenceCount)
	res.AvgSyllablesPerWord = float64(totalSyllables) / float64(res.WordCount)

	res.GradeLevel = 0.39*res.AvgWordsPerSentence + 11.8*res.AvgSyllablesPerWord - 15.59
	if res.GradeLevel < 0 {
		res.GradeLevel = 0
	}

	res.Score = 206.835 - 1.015*res.AvgWordsPerSentence - 84.6*res.AvgSyllablesPerWord
	if res.Score < 0 {
		res.Score = 0
	}
	if res.Score > 100 {
		res.Score = 100
	}

	switch {
	case res.Score >= 80:
		res.Assessment = "very_easy"
	case res.Score >= 60:
		res.Assessment = "easy"
	case res.Score >= 40:
		res.Assessment = "moderate"
	case res.Score >= 20:
		res.Assessment = "difficult"
	default:
		res.Assessment = "very_difficult"
	}

	return res
}

// countSyllables approximates syllables as vowel groups, with a silent-e
// adjustment. Words of three letters or fewer count as one syllable.
func countSyllables(word string) int {
	if len(word) <= 3 {
		return 1
	}
	groups := vowelGroup.FindAllString(word, -1)
	n := len(groups)
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && n > 1 {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}
