package engine

import (
	"math"
	"regexp"
	"strings"
)

var (
	trailingWSRe = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRunsRe  = regexp.MustCompile(`\n{3,}`)
	wordRe       = regexp.MustCompile(`\S+`)
)

// NormalizeText canonicalizes raw text: CRLF to LF, trailing horizontal
// whitespace stripped per line, runs of 3+ newlines collapsed to 2, leading
// and trailing whitespace trimmed. Total over any input, including "".
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = trailingWSRe.ReplaceAllString(s, "")
	s = blankRunsRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// WordCount counts whitespace-delimited tokens after normalization.
func WordCount(s string) int {
	return len(wordRe.FindAllString(NormalizeText(s), -1))
}

// ApproxTokensFromWords estimates token count from word count. This is a
// cheap words-per-token heuristic, not a real tokenizer.
func ApproxTokensFromWords(words int) int {
	n := int(math.Round(float64(words) / 0.75))
	if n < 1 {
		return 1
	}
	return n
}

// canonicalize unifies line endings and drops trailing whitespace so
// optimized prompts compare byte-identical across re-analysis.
func canonicalize(s string) string {
	return strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), " \t\n")
}
