// SPDX-License-Identifier: MIT
//
// File: queue.go
// Role: the cost-ordered queue behind UCS.
// Determinism:
//   - Entries leave in (cost, insertion) order; equal costs are FIFO.

package ucs

import "github.com/tidwall/btree"

// Item is one queue entry: a node reached at an accumulated cost along Path.
type Item struct {
	Cost  int64
	Label string
	Path  []string

	seq uint64 // insertion stamp, breaks cost ties
}

// Queue is an ordered insertion queue keyed by (cost, insertion order).
//
// Push places an entry after every entry whose cost is lower or equal, and
// Pop always takes the front, so among equal costs the earliest pushed entry
// leaves first. The zero value is not usable; call NewQueue.
type Queue struct {
	tree *btree.BTreeG[Item]
	seq  uint64
}

func itemLess(a, b Item) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}

	return a.seq < b.seq
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{tree: btree.NewBTreeG[Item](itemLess)}
}

// Push inserts it behind all entries of equal or lower cost.
// Complexity: O(log n).
func (q *Queue) Push(it Item) {
	it.seq = q.seq
	q.seq++
	q.tree.Set(it)
}

// Pop removes and returns the front entry. ok is false on an empty queue.
// Complexity: O(log n).
func (q *Queue) Pop() (it Item, ok bool) {
	return q.tree.PopMin()
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	return q.tree.Len()
}

// Items returns the queued entries front first. Paths are shared with the
// queue and must not be modified.
// Complexity: O(n).
func (q *Queue) Items() []Item {
	out := make([]Item, 0, q.tree.Len())
	q.tree.Scan(func(it Item) bool {
		out = append(out, it)

		return true
	})

	return out
}
