package kmp

import (
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) []rune {
	return []rune(s)
}

func TestSearch(t *testing.T) {
	dataSet := []struct {
		text     string
		pattern  string
		expected []int
	}{
		{"banana", "ana", []int{1, 3}},
		{"banana", "a", []int{1, 3, 5}},
		{"banana", "banana", []int{0}},
		{"banana", "bananas", nil},
		{"banana", "x", nil},
		{"aaaa", "aa", []int{0, 1, 2}},
		{"abababc", "ababc", []int{2}},
		{"aabaabaaab", "aabaaab", []int{3}},
		{"", "a", nil},
		{"abc", "", nil},
	}

	for _, d := range dataSet {
		got := slices.Collect(Search(runes(d.text), runes(d.pattern)))
		assert.Equal(t, d.expected, got, "%q in %q", d.pattern, d.text)
	}
}

func TestSearchMatchesNaive(t *testing.T) {
	texts := []string{"abracadabra", "mississippi", "aaaaaaab", "abcabcabcabd", "xyxxyxyxyyxyxyxyyxyxyxx"}
	for _, text := range texts {
		for i := 0; i < len(text); i++ {
			for j := i + 1; j <= len(text) && j-i <= 6; j++ {
				pattern := text[i:j]
				var naive []int
				for k := 0; k+len(pattern) <= len(text); k++ {
					if strings.HasPrefix(text[k:], pattern) {
						naive = append(naive, k)
					}
				}
				got := slices.Collect(Search([]byte(text), []byte(pattern)))
				require.Equal(t, naive, got, "%q in %q", pattern, text)
			}
		}
	}
}

func TestSearchStreamsText(t *testing.T) {
	text := []int{7, 1, 2, 1, 2, 1, 9}
	consumed := 0
	stream := iter.Seq[int](func(yield func(int) bool) {
		for _, v := range text {
			consumed++
			if !yield(v) {
				return
			}
		}
	})

	m := New([]int{1, 2, 1})
	for pos := range m.Search(stream) {
		assert.Equal(t, 1, pos)
		break
	}
	// the text is read exactly up to the end of the first match
	assert.Equal(t, 4, consumed)
}

func TestMatcherIsReusable(t *testing.T) {
	m := New(runes("ana"))
	assert.Equal(t, 3, m.Len())

	first := slices.Collect(m.Search(slices.Values(runes("banana"))))
	second := slices.Collect(m.Search(slices.Values(runes("ananas"))))
	assert.Equal(t, []int{1, 3}, first)
	assert.Equal(t, []int{0, 2}, second)
}

func TestMatcherFeed(t *testing.T) {
	m := New(runes("ana"))

	var got []int
	for _, r := range "banana" {
		if pos, ok := m.Feed(r); ok {
			got = append(got, pos)
		}
	}
	assert.Equal(t, []int{1, 3}, got)

	m.Reset()
	got = got[:0]
	for _, r := range "anana" {
		if pos, ok := m.Feed(r); ok {
			got = append(got, pos)
		}
	}
	assert.Equal(t, []int{0, 2}, got)

	empty := New[rune](nil)
	_, ok := empty.Feed('a')
	assert.False(t, ok)
}

func TestIndexAndContains(t *testing.T) {
	words := strings.Fields("hello to the world of worlds of jello!")

	assert.Equal(t, 2, Index(words, []string{"the", "world"}))
	assert.Equal(t, -1, Index(words, []string{"world", "the"}))
	assert.Equal(t, -1, Index(words, nil))
	assert.True(t, Contains(words, []string{"of", "jello!"}))
	assert.False(t, Contains(words, []string{"jello"}))
}

func BenchmarkSearch(b *testing.B) {
	text := []byte(strings.Repeat("ab", 1<<14) + "abc")
	pattern := []byte(strings.Repeat("ab", 64) + "c")
	m := New(pattern)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for range m.Search(slices.Values(text)) {
		}
	}
}
