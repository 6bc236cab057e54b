package textnorm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapLemmatizer map[string]string

func (m mapLemmatizer) Lemma(word string) string {
	return m[word]
}

func newBasic(t *testing.T) *Normalizer {
	t.Helper()
	n, err := New(PolicyBasic)
	require.NoError(t, err)
	return n
}

func TestNormalizeBasic(t *testing.T) {
	n := newBasic(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"reference sentence", "The Quick, Fox! at Night", "quick fox night"},
		{"collapses whitespace", "  hello\t\n  world  ", "hello world"},
		{"keeps underscore and digits", "snake_case v2.0 rocks!!", "snake_case v20 rocks"},
		{"apostrophes removed before filtering", "It's the dog's bone", "its dogs bone"},
		{"only stopwords", "The and a to", ""},
		{"empty", "", ""},
		{"unicode letters kept", "Café Über naïve — résumé", "café über naïve résumé"},
		{"non latin scripts", "Привет, мир! 你好。", "привет мир 你好"},
		{"emoji stripped", "great 👍 job", "great job"},
		{"information separators split tokens", "alpha\x1cbeta\x1dgamma\x1edelta\x1fend", "alpha beta gamma delta end"},
		{"unicode spaces split tokens", "left\u00a0right\u2003side\u0085tail", "left right side tail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := newBasic(t)
	inputs := []string{
		"The Quick, Fox! at Night",
		"Did you see the GAME? It was incredible...",
		"Ünïcödé & symbols #hashtag @mention",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), in)
	}
}

func TestNormalizeDeterministicAcrossCalls(t *testing.T) {
	n := newBasic(t)
	in := "Have you heard about the new phone from Apple?"
	want := n.Normalize(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, n.Normalize(in))
	}
}

func TestNormalizeFullPolicyWithLemmatizer(t *testing.T) {
	n, err := New(PolicyFull, WithLemmatizer(mapLemmatizer{"cats": "cat", "running": "run"}))
	require.NoError(t, err)
	assert.Equal(t, PolicyFull, n.Policy())

	// "they", "were" and "the" are in the English corpus but not the basic list
	assert.Equal(t, "cat run yard", n.Normalize("They were the CATS running in yard"))
	assert.True(t, n.IsStopword("wouldn't"))
	assert.False(t, n.IsStopword("cat"))
}

func TestNormalizeFullPolicyDefaultLemmatizer(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the english lemma dictionary")
	}
	n, err := New(PolicyFull)
	require.NoError(t, err)
	assert.Equal(t, "cat", n.Normalize("the cats"))
}

func TestBasicPolicyIgnoresLemmatizer(t *testing.T) {
	n, err := New(PolicyBasic, WithLemmatizer(mapLemmatizer{"cats": "cat"}))
	require.NoError(t, err)
	assert.Equal(t, "cats", n.Normalize("the cats"))
}

func TestWithStopwordsOverridesPolicyList(t *testing.T) {
	n, err := New(PolicyBasic, WithStopwords([]string{"Fox", "night"}))
	require.NoError(t, err)
	assert.Equal(t, "the quick at", n.Normalize("The Quick, Fox! at Night"))
}

func TestNewRejectsUnknownPolicy(t *testing.T) {
	_, err := New(Policy("stemmer"))
	assert.Error(t, err)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy(" Full ")
	require.NoError(t, err)
	assert.Equal(t, PolicyFull, p)

	_, err = ParsePolicy("other")
	assert.Error(t, err)
}

func TestStopwordListsAreCopies(t *testing.T) {
	words := BasicStopwords()
	require.Len(t, words, 14)
	words[0] = "mutated"
	assert.Equal(t, "the", BasicStopwords()[0])

	english := EnglishStopwords()
	assert.Contains(t, english, "the")
	assert.Contains(t, english, "wouldn't")
	for _, w := range english {
		assert.Equal(t, strings.ToLower(w), w)
	}
}

func TestLoadStopwords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stoplist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("terms:\n  - fox\n  - ' night '\n  - ''\n"), 0o644))

	terms, err := LoadStopwords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"fox", "night"}, terms)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("terms: []\n"), 0o644))
	_, err = LoadStopwords(empty)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("terms: [unclosed\n"), 0o644))
	_, err = LoadStopwords(broken)
	assert.Error(t, err)

	_, err = LoadStopwords(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
