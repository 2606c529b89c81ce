// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

// An Entry is a single item stored in an RTree together with the
// rectangle it was inserted with.
type Entry[C Coord, P Point[C], T comparable] struct {
	// Rect is the bounding rectangle the item was inserted with.
	Rect Rect[C, P]
	// Item is the stored payload.
	Item T
	// Dist is the distance computed for the entry by a NearbyIterator.
	// It is the zero value for entries produced any other way.
	Dist C
}

// RTree is a dynamic, in-memory R-Tree mapping rectangles to items.
//
// The type parameters fix the coordinate type C, the dimensionality
// via the array type P, and the item type T. The zero value is an
// empty tree ready to use.
type RTree[C Coord, P Point[C], T comparable] struct {
	root   *node[C, P, T]
	length int
	// height is the number of branch levels above the lowest. When it
	// is zero the children of the root are leaves.
	height int
}

// New returns a new, empty, RTree.
func New[C Coord, P Point[C], T comparable]() *RTree[C, P, T] {
	return &RTree[C, P, T]{}
}

// Len returns the number of items stored in the tree.
func (t *RTree[C, P, T]) Len() int {
	return t.length
}

// Height returns the number of branch levels in the tree above the
// lowest. A tree whose root directly holds its items has height zero,
// as does an empty tree.
func (t *RTree[C, P, T]) Height() int {
	return t.height
}

// Bounds returns the rectangle bounding every item in the tree. The
// second result is false if, and only if, the tree is empty.
func (t *RTree[C, P, T]) Bounds() (Rect[C, P], bool) {
	if t.root == nil {
		return Rect[C, P]{}, false
	}
	return t.root.rect, true
}

// Insert adds an item to the tree with the given bounding rectangle.
// Duplicate rectangles and duplicate items are both permitted. The
// rectangle is not validated, and the behavior of the tree is
// undefined if it has inverted bounds or NaN coordinates.
func (t *RTree[C, P, T]) Insert(rect Rect[C, P], item T) {
	if t.root == nil {
		root := newBranch[C, P, T](rect)
		t.root = &root
	}
	t.root.insert(rect, item, t.height)
	if t.root.len() == MaxItems {
		newRoot := newBranch[C, P, T](t.root.rect)
		right := t.root.split()
		newRoot.push(*t.root)
		newRoot.push(right)
		t.root = &newRoot
		t.height++
		tracer().Debugf("root split, height is now %d", t.height)
	}
	t.length++
}

// Remove removes the first item equal to item found among the entries
// whose rectangles intersect rect, searching only those subtrees which
// intersect rect. It returns the removed entry's rectangle and item,
// and true, or the zero values and false if no such entry exists, in
// which case the tree is unchanged.
func (t *RTree[C, P, T]) Remove(rect Rect[C, P], item T) (Rect[C, P], T, bool) {
	if t.root == nil {
		var zero T
		return Rect[C, P]{}, zero, false
	}
	var reinsert []Entry[C, P, T]
	removed, found, recalced := t.root.remove(rect, item, &reinsert, t.height)
	if !found {
		return removed.Rect, removed.Item, false
	}
	t.length -= len(reinsert) + 1
	if t.length == 0 {
		t.root = nil
		t.height = 0
	} else if t.height > 0 && t.root.len() == 1 {
		child := t.root.swapRemove(0)
		child.recalc()
		t.root = &child
		t.height--
		tracer().Debugf("root collapsed, height is now %d", t.height)
	} else if recalced {
		t.root.recalc()
	}
	for len(reinsert) > 0 {
		last := len(reinsert) - 1
		e := reinsert[last]
		reinsert = reinsert[:last]
		t.Insert(e.Rect, e.Item)
	}
	return removed.Rect, removed.Item, true
}

// SearchFlat appends every entry whose rectangle intersects rect to
// dst, returning the extended slice. The order of the results is not
// defined.
//
// SearchFlat gathers all results eagerly. Use Search to consume them
// incrementally instead.
func (t *RTree[C, P, T]) SearchFlat(rect Rect[C, P], dst []Entry[C, P, T]) []Entry[C, P, T] {
	if t.root == nil {
		return dst
	}
	return t.root.searchFlat(rect, dst)
}
