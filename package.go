// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rtree provides a generic, in-memory, dynamic R-Tree spatial
// index over axis-aligned bounding rectangles of any small, fixed
// number of dimensions.
//
// Each stored entry pairs a Rect with a caller-supplied payload. The
// tree supports insertion, exact-match removal, intersection search,
// full scans and best-first (nearest neighbor) traversal. Node splits
// use a largest-axis edge-snap heuristic, and removal keeps nodes at
// or above minimum occupancy by flattening underflowed subtrees and
// reinserting their entries.
//
// An RTree is not safe for concurrent mutation, and the iterators it
// hands out are invalidated by any mutation of the tree.
package rtree
