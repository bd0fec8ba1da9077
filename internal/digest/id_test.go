package digest

import (
	"testing"

	"github.com/skyline93/deque/internal/deque"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStrings = []struct {
	s    string
	data string
}{
	{"c3ab8ff13720e8ad9047dd39466b3c8974e592c2fa383d4a3960714caef0c4f2", "foobar"},
	{"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ""},
}

func TestID(t *testing.T) {
	for _, test := range testStrings {
		id, err := ParseID(test.s)
		require.NoError(t, err)

		assert.Equal(t, test.s, id.String())
		assert.Equal(t, Hash([]byte(test.data)), id)
		assert.Equal(t, test.s[:8], id.Str())
	}

	var id ID
	assert.True(t, id.IsNull())
	assert.Equal(t, "[null]", id.Str())

	var nilID *ID
	assert.Equal(t, "[nil]", nilID.Str())
}

func TestParseIDInvalid(t *testing.T) {
	for _, s := range []string{"", "c3ab", "zzab8ff13720e8ad9047dd39466b3c8974e592c2fa383d4a3960714caef0c4f2"} {
		_, err := ParseID(s)
		assert.Error(t, err, "ParseID(%q)", s)
	}
}

func TestSumIgnoresLayout(t *testing.T) {
	a := deque.Of(1, 2, 3)

	// same elements in a bigger directory, the first one wrapped to the last block
	b := deque.New()
	for i := 0; i < deque.BlockSize+deque.BlockSize/2; i++ {
		b.PushFront(-i)
	}
	b.Clear()
	b.PushBack(2)
	b.PushFront(1)
	b.PushBack(3)

	assert.True(t, Sum(a).Equal(Sum(b)))
	assert.Equal(t, Values([]int{1, 2, 3}), Sum(a))
	assert.NotEqual(t, Values([]int{3, 2, 1}), Sum(a))
	assert.False(t, Sum(a).IsNull())
}

func TestSumEmpty(t *testing.T) {
	assert.Equal(t, Hash(nil), Sum(deque.New()))
}

func TestHasher(t *testing.T) {
	h := NewHasher()
	assert.Equal(t, Hash(nil), h.Sum())

	h.Add(1)
	h.Add(2, 3)
	assert.Equal(t, 3, h.Count())
	assert.Equal(t, Values([]int{1, 2, 3}), h.Sum())

	// Sum does not reset the hasher
	h.Add(4)
	assert.Equal(t, Values([]int{1, 2, 3, 4}), h.Sum())
}

func TestParseIDRoundTrip(t *testing.T) {
	id := Values([]int{-1, 0, 1})
	parsed, err := ParseID(id.String())
	require.NoError(t, err)
	assert.True(t, id.Equal(parsed))
	assert.Equal(t, Null, ID{})
}
