package textnorm

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Policy selects the stopword list and whether tokens are lemmatized.
// A table must be normalized with exactly one policy.
type Policy string

const (
	// PolicyBasic drops a small fixed stopword list.
	PolicyBasic Policy = "basic"
	// PolicyFull drops the English stopword corpus and lemmatizes.
	PolicyFull Policy = "full"
)

// ParsePolicy validates a policy name.
func ParsePolicy(raw string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(raw))); p {
	case PolicyBasic, PolicyFull:
		return p, nil
	default:
		return "", fmt.Errorf("unknown normalizer policy %q", raw)
	}
}

// Lemmatizer maps a token to its dictionary base form.
type Lemmatizer interface {
	Lemma(word string) string
}

// Normalizer is safe for concurrent use.
type Normalizer struct {
	policy     Policy
	stopwords  map[string]struct{}
	lemmatizer Lemmatizer
}

// Option customizes a Normalizer.
type Option func(*Normalizer)

// WithStopwords replaces the policy's default stopword list.
func WithStopwords(words []string) Option {
	return func(n *Normalizer) {
		n.stopwords = stopwordSet(words)
	}
}

// WithLemmatizer sets the lemmatizer used by PolicyFull.
func WithLemmatizer(l Lemmatizer) Option {
	return func(n *Normalizer) {
		n.lemmatizer = l
	}
}

// New builds a Normalizer for policy. PolicyFull loads the English lemmatizer
// unless one is supplied.
func New(policy Policy, opts ...Option) (*Normalizer, error) {
	n := &Normalizer{policy: policy}
	switch policy {
	case PolicyBasic:
		n.stopwords = stopwordSet(basicStopwords)
	case PolicyFull:
		n.stopwords = stopwordSet(englishStopwords)
	default:
		return nil, fmt.Errorf("unknown normalizer policy %q", policy)
	}

	for _, opt := range opts {
		opt(n)
	}

	if policy == PolicyFull && n.lemmatizer == nil {
		lemmatizer, err := golem.New(en.New())
		if err != nil {
			return nil, fmt.Errorf("load english lemmatizer: %w", err)
		}
		n.lemmatizer = lemmatizer
	}
	if policy == PolicyBasic {
		n.lemmatizer = nil
	}
	return n, nil
}

// Policy reports the normalization policy.
func (n *Normalizer) Policy() Policy {
	return n.policy
}

// IsStopword reports whether the lowercase token is dropped.
func (n *Normalizer) IsStopword(token string) bool {
	_, ok := n.stopwords[token]
	return ok
}

// Normalize lowercases text, strips every rune that is neither a word character
// nor whitespace, drops stopwords, lemmatizes under PolicyFull and joins the
// surviving tokens with single spaces.
func (n *Normalizer) Normalize(text string) string {
	lowered := cases.Lower(language.Und).String(text)
	stripped := strings.Map(func(r rune) rune {
		if isWordRune(r) || isSpace(r) {
			return r
		}
		return -1
	}, lowered)

	tokens := strings.FieldsFunc(stripped, isSpace)
	kept := tokens[:0]
	for _, token := range tokens {
		if n.IsStopword(token) {
			continue
		}
		if n.lemmatizer != nil {
			token = n.lemmatize(token)
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

func (n *Normalizer) lemmatize(token string) string {
	lemma := n.lemmatizer.Lemma(token)
	if lemma == "" {
		return token
	}
	return lemma
}

// isWordRune matches the Unicode word class: letters, numbers and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isSpace is unicode.IsSpace plus the information separators U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func stopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
