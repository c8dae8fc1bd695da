// Package readability scores generated text with the Flesch-Kincaid
// grade level and an average sentence length, mirroring the counting
// heuristics of the textstat library the service originally relied on.
package readability

import (
	"math"
	"strings"
	"unicode"

	"github.com/dimensions-ai/brandbot-api/internal/models"
)

// Flesch-Kincaid grade coefficients.
const (
	gradeSentenceWeight = 0.39
	gradeSyllableWeight = 11.8
	gradeOffset         = 15.59
)

// Analyze computes the readability score for a piece of text. Both values
// are rounded to two decimals; empty text scores zero.
func Analyze(text string) models.ReadabilityScore {
	sentences := countSentences(text)
	words, syllables := countWordsAndSyllables(text)

	if sentences == 0 || words == 0 {
		return models.ReadabilityScore{}
	}

	wordsPerSentence := float64(words) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(words)
	grade := gradeSentenceWeight*wordsPerSentence + gradeSyllableWeight*syllablesPerWord - gradeOffset

	return models.ReadabilityScore{
		GradeLevel:     round2(grade),
		SentenceLength: round2(wordsPerSentence),
	}
}

// countSentences counts segments terminated by ., ! or ? that contain at
// least one letter or digit. Trailing text without a terminator counts as
// a sentence too.
func countSentences(text string) int {
	count := 0
	hasContent := false
	for _, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?':
			if hasContent {
				count++
				hasContent = false
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			hasContent = true
		}
	}
	if hasContent {
		count++
	}
	return count
}

// countWordsAndSyllables counts whitespace-separated tokens containing at
// least one letter or digit, summing syllables as it goes.
func countWordsAndSyllables(text string) (words, syllables int) {
	for _, token := range strings.Fields(text) {
		cleaned := strings.TrimFunc(token, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if cleaned == "" {
			continue
		}
		words++
		syllables += countSyllables(cleaned)
	}
	return words, syllables
}

// countSyllables estimates syllables as the number of vowel groups, with
// a silent-e adjustment. Every word counts as at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
