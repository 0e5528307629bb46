package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"appstore-finder/stoplist"
)

// KeyTokens is how many significant tokens make up a normalized name
const KeyTokens = 2

// wordPunct splits text into runs of word characters and runs of
// non-word, non-space characters.
var wordPunct = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+|[^\p{L}\p{M}\p{N}_\s]+`)

// Normalizer turns raw product names into short canonical keys
type Normalizer struct {
	stops *stoplist.Set
}

// NewNormalizer creates a normalizer that drops the given stopwords
func NewNormalizer(stops *stoplist.Set) *Normalizer {
	return &Normalizer{stops: stops}
}

// Tokenize splits a raw name into word and punctuation tokens
func Tokenize(text string) []string {
	return wordPunct.FindAllString(norm.NFC.String(text), -1)
}

// Tokens returns the significant tokens of a raw name in their original order
func (n *Normalizer) Tokens(rawName string) []string {
	var tokens []string
	for _, tok := range Tokenize(rawName) {
		tok = strings.TrimFunc(tok, isPunct)
		if tok == "" || n.stops.Contains(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Normalize joins the first two significant tokens of rawName with a space.
// A name without significant tokens normalizes to "".
func (n *Normalizer) Normalize(rawName string) string {
	tokens := n.Tokens(rawName)
	if len(tokens) > KeyTokens {
		tokens = tokens[:KeyTokens]
	}
	return strings.Join(tokens, " ")
}

// isPunct matches Unicode punctuation and the ASCII symbols ($+<=>^`|~).
// Other symbols such as ™ or © are kept as tokens.
func isPunct(r rune) bool {
	return unicode.IsPunct(r) || (r < unicode.MaxASCII && unicode.IsSymbol(r))
}
