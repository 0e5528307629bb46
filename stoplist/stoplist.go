package stoplist

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// English is the NLTK English stopword corpus. Membership is case-sensitive,
// so capitalized words in product names ("The Sims") are kept.
var English = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he",
	"him", "his", "himself", "she", "she's", "her", "hers", "herself", "it",
	"it's", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "that'll", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being", "have", "has", "had",
	"having", "do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
	"or", "because", "as", "until", "while", "of", "at", "by", "for", "with",
	"about", "against", "between", "into", "through", "during", "before",
	"after", "above", "below", "to", "from", "up", "down", "in", "out", "on",
	"off", "over", "under", "again", "further", "then", "once", "here", "there",
	"when", "where", "why", "how", "all", "any", "both", "each", "few", "more",
	"most", "other", "some", "such", "no", "nor", "not", "only", "own", "same",
	"so", "than", "too", "very", "s", "t", "can", "will", "just", "don", "don't",
	"should", "should've", "now", "d", "ll", "m", "o", "re", "ve", "y", "ain",
	"aren", "aren't", "couldn", "couldn't", "didn", "didn't", "doesn",
	"doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven", "haven't", "isn",
	"isn't", "ma", "mightn", "mightn't", "mustn", "mustn't", "needn", "needn't",
	"shan", "shan't", "shouldn", "shouldn't", "wasn", "wasn't", "weren",
	"weren't", "won", "won't", "wouldn", "wouldn't",
}

// Set is an immutable stopword set
type Set struct {
	words map[string]struct{}
}

// New builds a set from the given words
func New(words ...[]string) *Set {
	s := &Set{words: make(map[string]struct{})}
	for _, list := range words {
		for _, w := range list {
			s.words[w] = struct{}{}
		}
	}
	return s
}

// Default returns the English stopword set
func Default() *Set {
	return New(English)
}

// Contains reports whether word is a stopword
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stopwords
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Words returns all stopwords in sorted order
func (s *Set) Words() []string {
	if s == nil {
		return nil
	}
	result := make([]string, 0, len(s.words))
	for w := range s.words {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}

// File is the on-disk stopword list format
type File struct {
	Terms []string `yaml:"terms"`
}

// Load reads a YAML stopword file with a top-level "terms" list
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stoplist: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse stoplist: %w", err)
	}

	return f.Terms, nil
}
