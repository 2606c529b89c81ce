// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import "github.com/tidwall/tinyqueue"

// A DistFunc computes the priority of a rectangle in a best-first
// traversal. The item argument is nil when rect bounds a subtree, and
// points to the stored item when rect belongs to a single entry. The
// pointee must not be modified.
//
// For NearbyIterator to produce entries in non-decreasing order of
// distance, the distance of a subtree must never exceed the distance
// of any entry within it. Rect.BoxDist against a fixed target has this
// property.
type DistFunc[C Coord, P Point[C], T comparable] func(rect Rect[C, P], item *T) C

// A queued is a node waiting in the priority queue of a
// NearbyIterator.
type queued[C Coord, P Point[C], T comparable] struct {
	dist C
	node *node[C, P, T]
}

func (q *queued[C, P, T]) Less(other tinyqueue.Item) bool {
	return q.dist < other.(*queued[C, P, T]).dist
}

// NearbyIterator is a lazy best-first traversal over the entries of an
// RTree, created by RTree.Nearby. Entries are produced in
// non-decreasing order of the distance computed by its DistFunc.
//
// A NearbyIterator must not be used after the tree it came from has
// been modified.
type NearbyIterator[C Coord, P Point[C], T comparable] struct {
	queue *tinyqueue.Queue
	dist  DistFunc[C, P, T]
	cur   Entry[C, P, T]
}

// Nearby returns a NearbyIterator ordering the tree's entries by dist.
// The DistFunc is called lazily, once for each child of each branch
// the iterator expands, so abandoning the iterator early avoids
// visiting most of the tree.
//
// To find the entries nearest a target rectangle, use:
//
//	it := tree.Nearby(func(r rtree.Rect[float64, [2]float64], _ *string) float64 {
//		return r.BoxDist(target)
//	})
func (t *RTree[C, P, T]) Nearby(dist DistFunc[C, P, T]) *NearbyIterator[C, P, T] {
	q := tinyqueue.New(nil)
	if t.root != nil {
		q.Push(&queued[C, P, T]{node: t.root})
	}
	return &NearbyIterator[C, P, T]{
		queue: q,
		dist:  dist,
	}
}

// Next advances the iterator to the next nearest entry, returning
// false when there are no more entries.
func (it *NearbyIterator[C, P, T]) Next() bool {
	for it.queue.Len() > 0 {
		q := it.queue.Pop().(*queued[C, P, T])
		if q.node.leaf {
			it.cur = Entry[C, P, T]{Rect: q.node.rect, Item: q.node.item, Dist: q.dist}
			return true
		}
		nodes := q.node.children()
		for i := range nodes {
			child := &nodes[i]
			var item *T
			if child.leaf {
				item = child.value()
			}
			it.queue.Push(&queued[C, P, T]{
				dist: it.dist(child.rect, item),
				node: child,
			})
		}
	}
	it.cur = Entry[C, P, T]{}
	return false
}

// Entry returns the entry at the iterator's current position. It is
// only meaningful after a call to Next has returned true.
func (it *NearbyIterator[C, P, T]) Entry() Entry[C, P, T] {
	return it.cur
}
