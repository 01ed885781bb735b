package fastmarch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrialSet_ExtractOrder(t *testing.T) {
	ts := newTrialSet()
	ts.Insert(7, 2.5)
	ts.Insert(3, 1.0)
	ts.Insert(9, 1.0)
	ts.Insert(1, 4.0)
	require.Equal(t, 4, ts.Len())

	idx, d, ok := ts.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, 1.0, d)

	var got []int
	for !ts.Empty() {
		idx, _, ok := ts.ExtractMin()
		require.True(t, ok)
		got = append(got, idx)
	}
	// equal distances break ties on the index
	assert.Equal(t, []int{3, 9, 7, 1}, got)

	_, _, ok = ts.ExtractMin()
	assert.False(t, ok)
	_, _, ok = ts.Peek()
	assert.False(t, ok)
}

func TestTrialSet_Reprioritize(t *testing.T) {
	ts := newTrialSet()
	ts.Insert(4, 3.0)
	ts.Insert(5, 2.0)

	assert.True(t, ts.Reprioritize(4, 3.0, 1.0))
	assert.False(t, ts.Contains(4, 3.0))
	assert.True(t, ts.Contains(4, 1.0))
	assert.Equal(t, 2, ts.Len())

	// no increase, no stale key, no insert of unknown cells
	assert.False(t, ts.Reprioritize(5, 2.0, 2.5))
	assert.False(t, ts.Reprioritize(5, 9.0, 1.5))
	assert.False(t, ts.Reprioritize(6, 3.0, 0.5))
	assert.Equal(t, 2, ts.Len())
	assert.True(t, ts.Contains(5, 2.0))

	idx, d, _ := ts.ExtractMin()
	assert.Equal(t, 4, idx)
	assert.Equal(t, 1.0, d)

	ts.Clear()
	assert.True(t, ts.Empty())
}
