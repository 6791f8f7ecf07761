package fixstr

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mk(t *testing.T, s string) *Str {
	t.Helper()
	b, err := Make(32, s)
	require.NoError(t, err)
	return b
}

func TestIndex(t *testing.T) {
	s := mk(t, "abracadabra")

	assert.Equal(t, 0, s.Index("abra"))
	assert.Equal(t, 4, s.Index("cad"))
	assert.Equal(t, -1, s.Index("zebra"))
	assert.Equal(t, 0, s.Index(""))
	assert.Equal(t, -1, s.Index("abracadabraa"))

	assert.Equal(t, 7, s.LastIndex("abra"))
	assert.Equal(t, -1, s.LastIndex("cab"))
	assert.Equal(t, s.Len(), s.LastIndex(""))
}

func TestIndexByte(t *testing.T) {
	s := mk(t, "hello")
	assert.Equal(t, 2, s.IndexByte('l'))
	assert.Equal(t, 3, s.LastIndexByte('l'))
	assert.Equal(t, -1, s.IndexByte('z'))
	assert.Equal(t, -1, s.LastIndexByte('z'))
}

func TestIndexAny(t *testing.T) {
	s := mk(t, "2026-08-30")

	assert.Equal(t, 4, s.IndexAny("-/"))
	assert.Equal(t, 7, s.LastIndexAny("-/"))
	assert.Equal(t, -1, s.IndexAny("xyz"))
	assert.Equal(t, -1, s.IndexAny(""))

	assert.Equal(t, 4, s.IndexNotAny("0123456789"))
	assert.Equal(t, 9, s.LastIndexNotAny("-"))
	assert.Equal(t, -1, s.IndexNotAny("0123456789-"))
	assert.Equal(t, 0, s.IndexNotAny(""))
	assert.Equal(t, -1, mk(t, "").LastIndexNotAny(""))
}

func TestContainsPrefixSuffix(t *testing.T) {
	s := mk(t, "Hello World")

	assert.True(t, s.Contains("lo W"))
	assert.False(t, s.Contains("low"))

	assert.True(t, s.HasPrefix("Hello"))
	assert.True(t, s.HasPrefix(""))
	assert.False(t, s.HasPrefix("World"))

	assert.True(t, s.HasSuffix("World"))
	assert.True(t, s.HasSuffix(""))
	assert.False(t, s.HasSuffix("Hello"))
	assert.False(t, s.HasSuffix("Hello World!!"))
}

func TestCompare(t *testing.T) {
	a := mk(t, "apple")
	b, err := Make(6, "apply")
	require.NoError(t, err)
	prefix, err := Make(4, "app")
	require.NoError(t, err)

	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(a.Clone()))
	assert.Negative(t, prefix.Compare(a), "shorter prefix orders first")
	assert.Positive(t, a.Compare(prefix))

	assert.Zero(t, a.CompareString("apple"))
	assert.Negative(t, a.CompareString("banana"))
	assert.Positive(t, a.CompareString("app"))
}

func TestEqualAcrossCapacities(t *testing.T) {
	a, err := Make(4, "abc")
	require.NoError(t, err)
	b, err := Make(10, "abc")
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "capacity must not affect equality")
	assert.True(t, a.EqualString("abc"))
	assert.False(t, a.EqualString("abd"))
}

func TestSearchAgreesWithStrings(t *testing.T) {
	condition := func(hay, needle string) bool {
		const capacity = 20
		if len(hay) > capacity {
			hay = hay[:capacity]
		}
		s, err := Make(capacity, hay)
		if err != nil {
			return false
		}
		return s.Index(needle) == strings.Index(hay, needle) &&
			s.LastIndex(needle) == strings.LastIndex(hay, needle) &&
			s.Contains(needle) == strings.Contains(hay, needle) &&
			s.HasPrefix(needle) == strings.HasPrefix(hay, needle) &&
			s.HasSuffix(needle) == strings.HasSuffix(hay, needle) &&
			s.CompareString(needle) == strings.Compare(hay, needle)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{MaxCount: 2000}))
}
