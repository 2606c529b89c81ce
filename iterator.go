// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

// A frame is a pending position within the children of one branch
// during a depth-first traversal.
type frame[C Coord, P Point[C], T comparable] struct {
	nodes []node[C, P, T]
	index int
}

// A frameStack holds the traversal state of an Iterator. The top frame
// is the branch currently being visited and the frames below it are
// its ancestors.
type frameStack[C Coord, P Point[C], T comparable] []frame[C, P, T]

func (s *frameStack[C, P, T]) push(f frame[C, P, T]) {
	*s = append(*s, f)
}

func (s *frameStack[C, P, T]) pop() frame[C, P, T] {
	old := *s
	n := len(old)
	f := old[n-1]
	*s = old[0 : n-1]
	return f
}

func (s *frameStack[C, P, T]) top() *frame[C, P, T] {
	return &(*s)[len(*s)-1]
}

func newFrameStack[C Coord, P Point[C], T comparable](root *node[C, P, T], height int) frameStack[C, P, T] {
	s := make(frameStack[C, P, T], 0, height+1)
	if root != nil {
		s.push(frame[C, P, T]{nodes: root.children()})
	}
	return s
}

// Iterator is a lazy depth-first traversal over the entries of an
// RTree, created by RTree.Scan or RTree.Search. Use it like this:
//
//	it := tree.Search(rect)
//	for it.Next() {
//		e := it.Entry()
//		// ...
//	}
//
// An Iterator must not be used after the tree it came from has been
// modified.
type Iterator[C Coord, P Point[C], T comparable] struct {
	stack  frameStack[C, P, T]
	query  Rect[C, P]
	search bool
	cur    Entry[C, P, T]
}

// Scan returns an Iterator over every entry in the tree, in depth-first
// order.
func (t *RTree[C, P, T]) Scan() *Iterator[C, P, T] {
	return &Iterator[C, P, T]{
		stack: newFrameStack(t.root, t.height),
	}
}

// Iter is the same as Scan.
func (t *RTree[C, P, T]) Iter() *Iterator[C, P, T] {
	return t.Scan()
}

// Search returns an Iterator over every entry in the tree whose
// rectangle intersects rect. Subtrees whose bounds do not intersect
// rect are never visited. The order of the results is not defined.
func (t *RTree[C, P, T]) Search(rect Rect[C, P]) *Iterator[C, P, T] {
	return &Iterator[C, P, T]{
		stack:  newFrameStack(t.root, t.height),
		query:  rect,
		search: true,
	}
}

// Next advances the iterator to the next entry, returning false when
// there are no more entries.
func (it *Iterator[C, P, T]) Next() bool {
	for len(it.stack) > 0 {
		f := it.stack.top()
		if f.index == len(f.nodes) {
			it.stack.pop()
			continue
		}
		n := &f.nodes[f.index]
		f.index++
		if it.search && !n.rect.Intersects(it.query) {
			continue
		}
		if n.leaf {
			it.cur = Entry[C, P, T]{Rect: n.rect, Item: n.item}
			return true
		}
		it.stack.push(frame[C, P, T]{nodes: n.children()})
	}
	it.cur = Entry[C, P, T]{}
	return false
}

// Entry returns the entry at the iterator's current position. It is
// only meaningful after a call to Next has returned true.
func (it *Iterator[C, P, T]) Entry() Entry[C, P, T] {
	return it.cur
}
