package seqtrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// badIdentity claims "#" is the empty string.
type badIdentity struct {
	runeContract
}

func (badIdentity) Empty() string { return "#" }

func TestSetEqual(t *testing.T) {
	s := New()
	assert.True(t, s.Equal(s))
	assert.True(t, New().Equal(New()))
	assert.True(t, newStringSet(t, "a", "b").Equal(newStringSet(t, "a", "b", "a")))
	assert.False(t, newStringSet(t, "a", "b").Equal(newStringSet(t, "a")))
	// same keys, differently shaped insert order
	assert.True(t, newStringSet(t, "abc", "ab", "b").Equal(newStringSet(t, "b", "ab", "abc")))
}

func TestSetUnion(t *testing.T) {
	t1 := newStringSet(t, "abc", "aac", "adc", "adce")
	t2 := newStringSet(t, "dfe", "def", "dd", "x")

	u, err := t1.Union(t2)
	require.NoError(t, err)
	assert.True(t, u.Equal(newStringSet(t, "aac", "abc", "adc", "adce", "x", "def", "dd", "dfe")))

	u2, err := t2.Union(t1)
	require.NoError(t, err)
	assert.True(t, u.Equal(u2))
	assert.True(t, t1.IsSubsetOf(u))
	assert.True(t, t2.IsSubsetOf(u))
	assert.True(t, u.IsSupersetOf(t1))

	// operands are left alone
	assert.Equal(t, 4, t1.Len())
	assert.Equal(t, 4, t2.Len())
}

func TestSetIntersection(t *testing.T) {
	t1 := newStringSet(t, "abc", "aac", "adc", "adce")
	t2 := newStringSet(t, "dfe", "adc", "dd", "abc")

	i, err := t1.Intersection(t2)
	require.NoError(t, err)
	assert.True(t, i.Equal(newStringSet(t, "abc", "adc")))

	i2, err := t2.Intersection(t1)
	require.NoError(t, err)
	assert.True(t, i.Equal(i2))
	assert.True(t, i.IsSubsetOf(t1))
	assert.True(t, i.IsSubsetOf(t2))

	d, err := t1.Difference(t2)
	require.NoError(t, err)
	assert.True(t, d.Equal(newStringSet(t, "aac", "adce")))
}

func TestSetSubsetSuperset(t *testing.T) {
	assert.True(t, New().IsSubsetOf(New()))
	assert.True(t, New().IsSubsetOf(newStringSet(t, "")))
	assert.True(t, newStringSet(t, "a").IsSubsetOf(newStringSet(t, "", "a")))
	assert.False(t, newStringSet(t, "a").IsSubsetOf(New()))

	assert.True(t, New().IsSupersetOf(New()))
	assert.False(t, New().IsSupersetOf(newStringSet(t, "")))
	assert.False(t, newStringSet(t, "a").IsSupersetOf(newStringSet(t, "", "a")))
	assert.True(t, newStringSet(t, "a").IsSupersetOf(New()))
}

func TestSetAlgebraRandom(t *testing.T) {
	words := randomWords(400)
	a := newStringSet(t, words[:250]...)
	b := newStringSet(t, words[150:]...)

	u, err := a.Union(b)
	require.NoError(t, err)
	i, err := a.Intersection(b)
	require.NoError(t, err)

	assert.Equal(t, len(distinct(words)), u.Len())
	assert.True(t, i.IsSubsetOf(a))
	assert.True(t, i.IsSubsetOf(b))
	assert.True(t, a.IsSubsetOf(u))
	assert.True(t, b.IsSubsetOf(u))
	assert.True(t, i.Len() >= len(distinct(words[150:250])))

	uba, err := b.Union(a)
	require.NoError(t, err)
	iba, err := b.Intersection(a)
	require.NoError(t, err)
	assert.True(t, u.Equal(uba))
	assert.True(t, i.Equal(iba))
}

func TestSetIncompatibleIdentity(t *testing.T) {
	_, err := NewSet[string, rune](badIdentity{})
	assert.ErrorIs(t, err, ErrContractViolation)

	odd, err := NewSet[string, rune](badIdentity{}, WithContractCheck(false))
	require.NoError(t, err)
	assert.Equal(t, "#", odd.Identity())

	s := newStringSet(t, "a")
	_, err = s.Union(odd)
	assert.ErrorIs(t, err, ErrIncompatibleIdentity)
	_, err = s.Intersection(odd)
	assert.ErrorIs(t, err, ErrIncompatibleIdentity)
	_, err = odd.Difference(s)
	assert.ErrorIs(t, err, ErrIncompatibleIdentity)
}

func TestSetDerivedKeepsContractCheck(t *testing.T) {
	u, err := newStringSet(t, "a").Union(newStringSet(t, "b"))
	require.NoError(t, err)
	assert.ErrorIs(t, u.Insert("\xff"), ErrContractViolation)
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "Set[]", New().String())
	assert.Equal(t, "Set[abc]", newStringSet(t, "abc").String())

	s := newStringSet(t, "a", "b").String()
	assert.Contains(t, []string{"Set[a b]", "Set[b a]"}, s)
}

func TestNewSetFromRejectsBadKey(t *testing.T) {
	_, err := NewSetFrom(Runes, []string{"ok", "\xfe"})
	assert.ErrorIs(t, err, ErrContractViolation)

	s := New()
	err = s.Update("one", "\xfe", "two")
	assert.ErrorIs(t, err, ErrContractViolation)
	assert.True(t, s.Contains("one"))
	assert.False(t, s.Contains("two"))
}
