// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Coord is the set of numeric types usable as rectangle coordinates.
// The zero value of a Coord must be its additive identity, which holds
// for every type in the set.
type Coord interface {
	constraints.Integer | constraints.Float
}

// Point is the set of fixed-length coordinate arrays usable as a
// corner of a Rect. The array length is the dimensionality of every
// Rect, and so every RTree, instantiated with the Point type.
type Point[C Coord] interface {
	~[1]C | ~[2]C | ~[3]C | ~[4]C
}

// Rect is an axis-aligned bounding rectangle. A well-formed Rect has
// Min[i] <= Max[i] on every axis i. A point is represented as a
// degenerate Rect whose Min and Max are equal.
//
// Rect is a plain value type and may be freely copied. Methods which
// do not validate their inputs have undefined results on rectangles
// with inverted bounds or NaN coordinates.
type Rect[C Coord, P Point[C]] struct {
	Min P
	Max P
}

// NewRect returns the rectangle with the given corners, or an error if
// the corners are not well-formed: if any coordinate is NaN or if Min
// exceeds Max on any axis. Inverted bounds are never swapped.
func NewRect[C Coord, P Point[C]](min, max P) (Rect[C, P], error) {
	r := Rect[C, P]{Min: min, Max: max}
	for i := 0; i < len(min); i++ {
		if min[i] != min[i] || max[i] != max[i] {
			return Rect[C, P]{}, fmtErr("NaN coordinate on axis %d", i)
		}
		if min[i] > max[i] {
			return Rect[C, P]{}, fmtErr("inverted bounds on axis %d", i)
		}
	}
	return r, nil
}

// PointRect returns the degenerate rectangle containing only p.
func PointRect[C Coord, P Point[C]](p P) Rect[C, P] {
	return Rect[C, P]{Min: p, Max: p}
}

func (r Rect[C, P]) dims() int {
	return len(r.Min)
}

// Expand grows r to the smallest rectangle containing both r and o.
func (r *Rect[C, P]) Expand(o Rect[C, P]) {
	for i := 0; i < r.dims(); i++ {
		if o.Min[i] < r.Min[i] {
			r.Min[i] = o.Min[i]
		}
		if o.Max[i] > r.Max[i] {
			r.Max[i] = o.Max[i]
		}
	}
}

// LargestAxis returns the index of the axis along which r is longest.
// Ties go to the lowest axis index.
func (r Rect[C, P]) LargestAxis() int {
	var axis int
	if r.dims() == 0 {
		return axis
	}
	size := r.Max[axis] - r.Min[axis]
	for i := 1; i < r.dims(); i++ {
		if s := r.Max[i] - r.Min[i]; s > size {
			axis, size = i, s
		}
	}
	return axis
}

// Contains reports whether o lies entirely within r.
func (r Rect[C, P]) Contains(o Rect[C, P]) bool {
	if r.dims() == 0 {
		return false
	}
	for i := 0; i < r.dims(); i++ {
		if o.Min[i] < r.Min[i] || o.Max[i] > r.Max[i] {
			return false
		}
	}
	return true
}

// Intersects reports whether r and o overlap on every axis. Rectangles
// which only touch along an edge or at a corner intersect.
func (r Rect[C, P]) Intersects(o Rect[C, P]) bool {
	if r.dims() == 0 {
		return false
	}
	for i := 0; i < r.dims(); i++ {
		if o.Min[i] > r.Max[i] || o.Max[i] < r.Min[i] {
			return false
		}
	}
	return true
}

// OnEdge reports whether o touches or crosses the boundary of r on any
// axis, that is, whether o fails to lie strictly inside r. When o is
// removed from a node bounded by r, a true result means the node's
// bounds may have to shrink.
func (r Rect[C, P]) OnEdge(o Rect[C, P]) bool {
	for i := 0; i < r.dims(); i++ {
		if !(o.Min[i] > r.Min[i]) || !(o.Max[i] < r.Max[i]) {
			return true
		}
	}
	return false
}

// Area returns the product of the extents of r along every axis.
func (r Rect[C, P]) Area() C {
	var area C
	for i := 0; i < r.dims(); i++ {
		if i == 0 {
			area = r.Max[i] - r.Min[i]
		} else {
			area *= r.Max[i] - r.Min[i]
		}
	}
	return area
}

// UnionedArea returns the area of the smallest rectangle containing
// both r and o, without modifying either.
func (r Rect[C, P]) UnionedArea(o Rect[C, P]) C {
	var area C
	for i := 0; i < r.dims(); i++ {
		side := max(r.Max[i], o.Max[i]) - min(r.Min[i], o.Min[i])
		if i == 0 {
			area = side
		} else {
			area *= side
		}
	}
	return area
}

// BoxDist returns the sum over all axes of the squared gap between r
// and o, where the gap on an axis is zero if the rectangles overlap on
// that axis. BoxDist is a lower bound on the squared Euclidean distance
// between any point in r and any point in o, which makes it suitable as
// a DistFunc for Nearby.
func (r Rect[C, P]) BoxDist(o Rect[C, P]) C {
	var dist C
	for i := 0; i < r.dims(); i++ {
		var gap C
		if r.Min[i] > o.Max[i] {
			gap = r.Min[i] - o.Max[i]
		} else if o.Min[i] > r.Max[i] {
			gap = o.Min[i] - r.Max[i]
		} else {
			continue
		}
		dist += gap * gap
	}
	return dist
}

// String returns the minimum coordinates of r followed by its maximum
// coordinates, for example "[-1,2,3,4]" for a 2D rectangle.
func (r Rect[C, P]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < r.dims(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, r.Min[i])
	}
	for i := 0; i < r.dims(); i++ {
		b.WriteByte(',')
		fmt.Fprint(&b, r.Max[i])
	}
	b.WriteByte(']')
	return b.String()
}

func min[C Coord](a, b C) C {
	if a < b {
		return a
	}
	return b
}

func max[C Coord](a, b C) C {
	if a > b {
		return a
	}
	return b
}
