package search

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/DanielCater/totsearch/internal/lexicon"
)

const (
	// snippetBefore and snippetAfter bound the context window around the
	// earliest query-term occurrence.
	snippetBefore = 50
	snippetAfter  = 100
	// snippetFallbackLen is used when no query term occurs in the payload.
	snippetFallbackLen = 150
)

// annotate derives the display title and snippet for one document payload.
// The title is the payload's first line. The snippet is a context window
// around the earliest occurrence of any meaningful query term, with each
// term occurrence wrapped in the marker when one is set. Without any term
// occurrence the snippet falls back to the payload's opening characters.
func annotate(payload string, baseTokens []string, marker string) (title, snippet string) {
	title = payload
	if i := strings.IndexByte(payload, '\n'); i >= 0 {
		title = payload[:i]
	}

	terms := meaningfulTerms(baseTokens)
	lower := strings.ToLower(payload)

	anchor := -1
	for _, t := range terms {
		loc := wordPattern(t).FindStringIndex(lower)
		if loc == nil {
			continue
		}
		if anchor < 0 || loc[0] < anchor {
			anchor = loc[0]
		}
	}

	if anchor < 0 {
		end := snippetFallbackLen
		if end > len(payload) {
			end = len(payload)
		}
		return title, strings.ReplaceAll(payload[:alignStart(payload, end)], "\n", " ")
	}

	start := anchor - snippetBefore
	if start < 0 {
		start = 0
	}
	end := anchor + snippetAfter
	if end > len(payload) {
		end = len(payload)
	}
	start = alignStart(payload, start)
	end = alignStart(payload, end)

	snippet = strings.ReplaceAll(payload[start:end], "\n", " ")

	if marker != "" {
		if present := termsIn(snippet, terms); len(present) > 0 {
			quoted := make([]string, len(present))
			for i, t := range present {
				quoted[i] = regexp.QuoteMeta(t)
			}
			re := regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
			snippet = re.ReplaceAllString(snippet, marker+"$1"+marker)
		}
	}

	return title, snippet
}

// meaningfulTerms keeps tokens worth anchoring and highlighting: not a
// stopword and longer than two characters.
func meaningfulTerms(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if lexicon.IsStopWord(t) || utf8.RuneCountInString(t) <= 2 {
			continue
		}
		out = append(out, t)
	}
	return out
}

// termsIn returns the terms that occur as whole words in the text,
// case-insensitively.
func termsIn(text string, terms []string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, t := range terms {
		if wordPattern(t).MatchString(lower) {
			out = append(out, t)
		}
	}
	return out
}

func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
}

// alignStart moves a byte offset left onto a rune boundary so slicing
// cannot split a multi-byte character.
func alignStart(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
