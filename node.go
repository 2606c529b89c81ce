// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import "sort"

const (
	// MaxItems is the number of children at which a branch node is
	// split.
	MaxItems = 64
	// MinItems is the minimum number of children held by every branch
	// node other than the root. A non-root branch which drops below
	// MinItems is flattened and its entries reinserted.
	MinItems = MaxItems * 10 / 100
)

// A node is either a leaf, holding exactly one stored item, or a
// branch, holding child nodes. Children of a branch at height zero are
// all leaves, and children of a branch at any greater height are all
// branches. The rect of a branch is the tight bounding box of its
// children.
type node[C Coord, P Point[C], T comparable] struct {
	rect  Rect[C, P]
	leaf  bool
	item  T
	nodes []node[C, P, T]
}

func newBranch[C Coord, P Point[C], T comparable](rect Rect[C, P]) node[C, P, T] {
	return node[C, P, T]{
		rect:  rect,
		nodes: make([]node[C, P, T], 0, MaxItems),
	}
}

func newLeaf[C Coord, P Point[C], T comparable](rect Rect[C, P], item T) node[C, P, T] {
	return node[C, P, T]{
		rect: rect,
		leaf: true,
		item: item,
	}
}

func (n *node[C, P, T]) children() []node[C, P, T] {
	if n.leaf {
		textPanic(errNotBranch)
	}
	return n.nodes
}

func (n *node[C, P, T]) value() *T {
	if !n.leaf {
		textPanic(errNotLeaf)
	}
	return &n.item
}

func (n *node[C, P, T]) len() int {
	return len(n.children())
}

func (n *node[C, P, T]) push(child node[C, P, T]) {
	n.nodes = append(n.children(), child)
}

// swapRemove removes and returns child i, moving the last child into
// its place.
func (n *node[C, P, T]) swapRemove(i int) node[C, P, T] {
	nodes := n.children()
	out := nodes[i]
	last := len(nodes) - 1
	nodes[i] = nodes[last]
	nodes[last] = node[C, P, T]{}
	n.nodes = nodes[:last]
	return out
}

func (n *node[C, P, T]) chooseLeastEnlargement(rect Rect[C, P]) int {
	var j int
	var jEnlargement, jArea C
	for i, child := range n.children() {
		area := child.rect.Area()
		enlargement := child.rect.UnionedArea(rect) - area
		if i == 0 || enlargement < jEnlargement || (enlargement == jEnlargement && area < jArea) {
			j, jEnlargement, jArea = i, enlargement, area
		}
	}
	return j
}

// chooseSubtree picks the child to descend into when inserting rect:
// the smallest child already containing rect if there is one, and
// otherwise the child needing the least enlargement.
func (n *node[C, P, T]) chooseSubtree(rect Rect[C, P]) int {
	var index int
	var found bool
	var minArea C
	for i, child := range n.children() {
		if !child.rect.Contains(rect) {
			continue
		}
		if area := child.rect.Area(); !found || area < minArea {
			index, found, minArea = i, true, area
		}
	}
	if !found {
		index = n.chooseLeastEnlargement(rect)
	}
	return index
}

// insert adds a new leaf for item to the subtree rooted at branch n,
// which is height levels above the leaves. Any child reaching MaxItems
// is split, so on return n may itself hold MaxItems children and the
// caller is responsible for splitting it.
func (n *node[C, P, T]) insert(rect Rect[C, P], item T, height int) {
	if height == 0 {
		n.push(newLeaf(rect, item))
	} else {
		child := &n.children()[n.chooseSubtree(rect)]
		child.insert(rect, item, height-1)
		if child.len() == MaxItems {
			n.push(child.split())
		}
	}
	if !n.rect.Contains(rect) {
		n.rect.Expand(rect)
	}
}

// recalc resets the rect of branch n to the tight bounding box of its
// children. It leaves the rect of a childless branch alone.
func (n *node[C, P, T]) recalc() {
	nodes := n.children()
	if len(nodes) == 0 {
		return
	}
	rect := nodes[0].rect
	for i := 1; i < len(nodes); i++ {
		rect.Expand(nodes[i].rect)
	}
	n.rect = rect
}

// split divides the children of branch n along the largest axis of its
// rect. Each child stays with n if it is nearer the low edge of the
// axis, or moves to the returned new sibling if it is nearer the high
// edge. Both halves are then topped up to MinItems if necessary.
func (n *node[C, P, T]) split() node[C, P, T] {
	rect := n.rect
	axis := rect.LargestAxis()
	right := newBranch[C, P, T](rect)
	left := n.children()
	for i := 0; i < len(left); {
		lo := left[i].rect.Min[axis] - rect.Min[axis]
		hi := rect.Max[axis] - left[i].rect.Max[axis]
		if lo <= hi {
			i++
			continue
		}
		right.nodes = append(right.nodes, left[i])
		last := len(left) - 1
		left[i] = left[last]
		left[last] = node[C, P, T]{}
		left = left[:last]
	}
	if len(left) < MinItems {
		sort.Stable(&axisSortable[C, P, T]{nodes: right.nodes, axis: axis, desc: true})
		for len(left) < MinItems {
			last := len(right.nodes) - 1
			left = append(left, right.nodes[last])
			right.nodes[last] = node[C, P, T]{}
			right.nodes = right.nodes[:last]
		}
	} else if len(right.nodes) < MinItems {
		sort.Stable(&axisSortable[C, P, T]{nodes: left, axis: axis, useMax: true, desc: true})
		for len(right.nodes) < MinItems {
			last := len(left) - 1
			right.nodes = append(right.nodes, left[last])
			left[last] = node[C, P, T]{}
			left = left[:last]
		}
	}
	n.nodes = left
	n.recalc()
	right.recalc()
	n.sortByAxis(0)
	right.sortByAxis(0)
	tracer().Debugf("split %d children on axis %d into %d and %d", len(left)+len(right.nodes), axis, len(left), len(right.nodes))
	return right
}

func (n *node[C, P, T]) sortByAxis(axis int) {
	sort.Stable(&axisSortable[C, P, T]{nodes: n.children(), axis: axis})
}

// flattenInto empties branch n, appending every item in its subtree to
// reinsert.
func (n *node[C, P, T]) flattenInto(reinsert []Entry[C, P, T]) []Entry[C, P, T] {
	for n.len() > 0 {
		child := n.swapRemove(n.len() - 1)
		if child.leaf {
			reinsert = append(reinsert, Entry[C, P, T]{Rect: child.rect, Item: child.item})
		} else {
			reinsert = child.flattenInto(reinsert)
		}
	}
	return reinsert
}

// remove deletes the first leaf holding item, and intersecting rect,
// found by descending only into children of branch n which intersect
// rect. Children which drop
// below MinItems as a result are removed from n and flattened into
// reinsert. The recalced result reports whether n's rect was
// recomputed, in which case the caller must recompute its own rect.
func (n *node[C, P, T]) remove(rect Rect[C, P], item T, reinsert *[]Entry[C, P, T], height int) (removed Entry[C, P, T], found, recalced bool) {
	nodes := n.children()
	if height == 0 {
		for i := range nodes {
			if *nodes[i].value() != item || !nodes[i].rect.Intersects(rect) {
				continue
			}
			out := n.swapRemove(i)
			recalced = n.rect.OnEdge(out.rect)
			if recalced {
				n.recalc()
			}
			return Entry[C, P, T]{Rect: out.rect, Item: out.item}, true, recalced
		}
		return
	}
	for i := range nodes {
		child := &nodes[i]
		if !child.rect.Intersects(rect) {
			continue
		}
		removed, found, recalced = child.remove(rect, item, reinsert, height-1)
		if !found {
			continue
		}
		if child.len() < MinItems {
			childRect := child.rect
			under := n.swapRemove(i)
			before := len(*reinsert)
			*reinsert = under.flattenInto(*reinsert)
			tracer().Debugf("flattened underflowed node holding %d items", len(*reinsert)-before)
			if !recalced {
				recalced = n.rect.OnEdge(childRect)
			}
		}
		if recalced {
			n.recalc()
		}
		return removed, true, recalced
	}
	return removed, false, false
}

func (n *node[C, P, T]) searchFlat(rect Rect[C, P], dst []Entry[C, P, T]) []Entry[C, P, T] {
	for i := range n.children() {
		child := &n.nodes[i]
		if !child.rect.Intersects(rect) {
			continue
		}
		if child.leaf {
			dst = append(dst, Entry[C, P, T]{Rect: child.rect, Item: child.item})
		} else {
			dst = child.searchFlat(rect, dst)
		}
	}
	return dst
}

// axisSortable is an implementation of sort.Interface ordering nodes
// by the low (or, if useMax is set, the high) edge of their rects on
// one axis.
type axisSortable[C Coord, P Point[C], T comparable] struct {
	nodes  []node[C, P, T]
	axis   int
	useMax bool
	desc   bool
}

func (s *axisSortable[C, P, T]) Len() int {
	return len(s.nodes)
}

func (s *axisSortable[C, P, T]) edge(i int) C {
	if s.useMax {
		return s.nodes[i].rect.Max[s.axis]
	}
	return s.nodes[i].rect.Min[s.axis]
}

func (s *axisSortable[C, P, T]) Less(i, j int) bool {
	if s.desc {
		return s.edge(j) < s.edge(i)
	}
	return s.edge(i) < s.edge(j)
}

func (s *axisSortable[C, P, T]) Swap(i, j int) {
	s.nodes[i], s.nodes[j] = s.nodes[j], s.nodes[i]
}
