package search

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/DanielCater/totsearch/internal/lexicon"
)

// normalizeQuery canonicalizes a raw query for probing: backslash escapes
// are decoded, the text is lowercased, punctuation becomes whitespace, and
// stopwords are dropped. Returns the cleaned query and its token list.
func normalizeQuery(raw string) (string, []string) {
	decoded := strings.ToLower(decodeEscapes(raw))

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return ' '
	}, decoded)

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if lexicon.IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return strings.Join(tokens, " "), tokens
}

// decodeEscapes resolves literal backslash escapes (\n, \t, \uXXXX) that
// arrive when a query string was copy-pasted from an encoded source.
// Unknown escapes are kept verbatim.
func decodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		if s[0] != '\\' || len(s) == 1 {
			r, size := utf8.DecodeRuneInString(s)
			b.WriteRune(r)
			s = s[size:]
			continue
		}
		r, _, rest, err := strconv.UnquoteChar(s, 0)
		if err != nil {
			b.WriteByte(s[0])
			s = s[1:]
			continue
		}
		b.WriteRune(r)
		s = rest
	}
	return b.String()
}
