package textnorm

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var basicStopwords = []string{
	"the", "a", "an", "is", "to", "and", "in", "on", "at", "for", "with", "about", "by", "from",
}

// English stopword corpus (NLTK english list).
var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he", "him", "his",
	"himself", "she", "she's", "her", "hers", "herself", "it", "it's", "its", "itself",
	"they", "them", "their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "that'll", "these", "those", "am", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both", "each",
	"few", "more", "most", "other", "some", "such", "no", "nor", "not", "only",
	"own", "same", "so", "than", "too", "very", "s", "t", "can", "will",
	"just", "don", "don't", "should", "should've", "now", "d", "ll", "m", "o",
	"re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't", "didn", "didn't",
	"doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't",
	"ma", "mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't", "shouldn",
	"shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
}

// BasicStopwords returns the fixed hand list used by PolicyBasic.
func BasicStopwords() []string {
	return append([]string(nil), basicStopwords...)
}

// EnglishStopwords returns the English stopword corpus used by PolicyFull.
func EnglishStopwords() []string {
	return append([]string(nil), englishStopwords...)
}

// Stoplist is the YAML form of a stopword file.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStopwords reads a YAML stopword file ("terms: [...]").
func LoadStopwords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stopwords %q: %w", path, err)
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse stopwords %q: %w", path, err)
	}

	terms := make([]string, 0, len(sl.Terms))
	for _, term := range sl.Terms {
		term = strings.TrimSpace(term)
		if term != "" {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("stopwords %q: no terms", path)
	}
	return terms, nil
}
