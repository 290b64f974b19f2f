package bufview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T comparable](t *testing.T, v View[T], size int) [][]T {
	t.Helper()
	seq, err := v.Chunks(size)
	require.NoError(t, err)
	var out [][]T
	for c := range seq {
		out = append(out, c.Clone())
	}
	return out
}

func TestChunks(t *testing.T) {
	v := Wrap([]byte{1, 2, 3, 4, 5, 6, 7})
	assert.Equal(t, [][]byte{{1, 2, 3}, {4, 5, 6}, {7}}, collect(t, v, 3))
}

func TestChunksExactMultipleHasNoTrailingChunk(t *testing.T) {
	v := Wrap([]byte{1, 2, 3, 4})
	assert.Equal(t, [][]byte{{1, 2}, {3, 4}}, collect(t, v, 2))
}

func TestChunksZeroLength(t *testing.T) {
	assert.Empty(t, collect(t, Empty[byte](), 3))
	assert.Empty(t, collect(t, Wrap([]byte{}), 3))
}

func TestChunksConcatenation(t *testing.T) {
	buf := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	v, err := WrapRange(buf, 2, 8)
	require.NoError(t, err)

	for size := 1; size <= 10; size++ {
		var joined []byte
		for _, c := range collect(t, v, size) {
			assert.LessOrEqual(t, len(c), size)
			assert.NotEmpty(t, c)
			joined = append(joined, c...)
		}
		assert.Equal(t, v.Clone(), joined, "size %d", size)
	}
}

func TestChunksAreViews(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	seq, err := Wrap(buf).Chunks(2)
	require.NoError(t, err)
	for c := range seq {
		c.Reverse()
	}
	assert.Equal(t, []byte{2, 1, 4, 3}, buf)
}

func TestChunksRestartAndBreak(t *testing.T) {
	seq, err := Wrap([]byte{1, 2, 3, 4, 5}).Chunks(2)
	require.NoError(t, err)

	n := 0
	for range seq {
		n++
		break
	}
	assert.Equal(t, 1, n)

	n = 0
	for range seq {
		n++
	}
	assert.Equal(t, 3, n)
}

func TestChunksInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		seq, err := Wrap([]byte{1}).Chunks(size)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Nil(t, seq)
	}
}
