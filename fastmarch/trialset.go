package fastmarch

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// trialKey orders trial entries by distance, then by linear index so that
// equal distances pop in a reproducible order.
type trialKey struct {
	dist float64
	idx  int
}

func compareTrialKeys(a, b interface{}) int {
	ka := a.(trialKey)
	kb := b.(trialKey)
	switch {
	case ka.dist < kb.dist:
		return -1
	case ka.dist > kb.dist:
		return 1
	}

	return utils.IntComparator(ka.idx, kb.idx)
}

// trialSet is the frontier: an ordered set of (distance, index) pairs backed
// by a red-black tree. Because the index is part of the key, an entry can be
// found and replaced in O(log n) given the distance it was inserted with.
type trialSet struct {
	tree *redblacktree.Tree
}

func newTrialSet() *trialSet {
	return &trialSet{tree: redblacktree.NewWith(compareTrialKeys)}
}

// Insert adds (idx, dist). The caller guarantees idx has no entry yet.
func (t *trialSet) Insert(idx int, dist float64) {
	t.tree.Put(trialKey{dist: dist, idx: idx}, nil)
}

// Peek returns the smallest entry without removing it.
func (t *trialSet) Peek() (idx int, dist float64, ok bool) {
	n := t.tree.Left()
	if n == nil {
		return 0, 0, false
	}
	k := n.Key.(trialKey)

	return k.idx, k.dist, true
}

// ExtractMin removes and returns the smallest entry; ok is false when empty.
func (t *trialSet) ExtractMin() (idx int, dist float64, ok bool) {
	n := t.tree.Left()
	if n == nil {
		return 0, 0, false
	}
	k := n.Key.(trialKey)
	t.tree.Remove(k)

	return k.idx, k.dist, true
}

// Reprioritize moves idx from oldDist to newDist when newDist < oldDist.
// It reports whether an entry was moved; a missing entry is left alone so a
// cell can never be inserted twice.
func (t *trialSet) Reprioritize(idx int, oldDist, newDist float64) bool {
	if !(newDist < oldDist) {
		return false
	}
	old := trialKey{dist: oldDist, idx: idx}
	if _, found := t.tree.Get(old); !found {
		return false
	}
	t.tree.Remove(old)
	t.tree.Put(trialKey{dist: newDist, idx: idx}, nil)

	return true
}

// Contains reports whether (idx, dist) is present.
func (t *trialSet) Contains(idx int, dist float64) bool {
	_, found := t.tree.Get(trialKey{dist: dist, idx: idx})
	return found
}

func (t *trialSet) Len() int    { return t.tree.Size() }
func (t *trialSet) Empty() bool { return t.tree.Empty() }
func (t *trialSet) Clear()      { t.tree.Clear() }
