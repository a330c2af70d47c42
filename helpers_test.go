package seqtrie

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/require"
)

func randomQuote() string {
	quote := struct {
		Sentence string `faker:"sentence"`
	}{}

	err := faker.FakeData(&quote)
	if err != nil {
		fmt.Println(err)
		return ""
	}

	return quote.Sentence
}

// randomWords returns at least n lower case words, duplicates possible.
func randomWords(n int) []string {
	words := make([]string, 0, n)
	for len(words) < n {
		for _, w := range strings.Fields(randomQuote()) {
			w = strings.ToLower(strings.Trim(w, ".,;:!?"))
			if w != "" {
				words = append(words, w)
			}
		}
	}
	return words
}

func distinct[K comparable](keys []K) map[K]struct{} {
	res := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		res[k] = struct{}{}
	}
	return res
}

func collectKeys[K any](t *testing.T, it Iterator[K], err error) []K {
	t.Helper()
	require.NoError(t, err)
	return Collect(it)
}

func newStringSet(t *testing.T, keys ...string) *Set[string, rune] {
	t.Helper()
	s, err := NewSetFrom(Runes, keys)
	require.NoError(t, err)
	return s
}
