// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node2 = node[float64, [2]float64, int]

func branchOf(rects ...rect2) node2 {
	n := newBranch[float64, [2]float64, int](rects[0])
	for i := range rects {
		n.insert(rects[i], i, 0)
	}
	return n
}

func items(n *node2) []int {
	var out []int
	for i := range n.nodes {
		out = append(out, *n.nodes[i].value())
	}
	sort.Ints(out)
	return out
}

func TestMinItems(t *testing.T) {
	assert.Equal(t, 64, MaxItems)
	assert.Equal(t, 6, MinItems)
}

func TestNode_chooseSubtree(t *testing.T) {
	testCases := []struct {
		name     string
		children []rect2
		rect     rect2
		expected int
	}{
		{
			name:     "OnlyContainer",
			children: []rect2{r2(0, 0, 1, 1), r2(5, 5, 10, 10)},
			rect:     p2(6, 6),
			expected: 1,
		},
		{
			name:     "SmallestContainer",
			children: []rect2{r2(0, 0, 10, 10), r2(4, 4, 6, 6), r2(3, 3, 7, 7)},
			rect:     p2(5, 5),
			expected: 1,
		},
		{
			name:     "ContainerBeatsEnlargement",
			children: []rect2{r2(5, 5, 5.5, 5.5), r2(0, 0, 100, 100)},
			rect:     p2(6, 6),
			expected: 1,
		},
		{
			name:     "FirstOfEqualContainers",
			children: []rect2{r2(0, 0, 1, 1), r2(0, 0, 2, 2), r2(0, 0, 2, 2)},
			rect:     p2(1.5, 1.5),
			expected: 1,
		},
		{
			name:     "LeastEnlargement",
			children: []rect2{r2(0, 0, 2, 2), r2(10, 0, 12, 2)},
			rect:     r2(8, 0, 9, 2),
			expected: 1,
		},
		{
			name:     "EnlargementTieSmallerArea",
			children: []rect2{r2(0, 0, 2, 1), r2(4, 0, 5, 1)},
			rect:     p2(3, 0.5),
			expected: 1,
		},
		{
			name:     "FirstOfEqualEnlargement",
			children: []rect2{r2(0, 0, 1, 1), r2(0, 0, 1, 1)},
			rect:     p2(2, 0.5),
			expected: 0,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			n := newBranch[float64, [2]float64, int](testCase.children[0])
			for i := range testCase.children {
				n.push(newBranch[float64, [2]float64, int](testCase.children[i]))
			}

			actual := n.chooseSubtree(testCase.rect)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestNode_split(t *testing.T) {
	checkHalves := func(t *testing.T, left, right *node2) {
		t.Helper()
		require.GreaterOrEqual(t, left.len(), MinItems)
		require.GreaterOrEqual(t, right.len(), MinItems)
		assert.Equal(t, MaxItems, left.len()+right.len())
		for _, n := range []*node2{left, right} {
			bounds := n.nodes[0].rect
			for i := range n.nodes {
				bounds.Expand(n.nodes[i].rect)
				if i > 0 {
					assert.LessOrEqual(t, n.nodes[i-1].rect.Min[0], n.nodes[i].rect.Min[0], "Children must be sorted on axis 0.")
				}
			}
			assert.Equal(t, bounds, n.rect)
		}
	}

	t.Run("Even", func(t *testing.T) {
		rects := make([]rect2, MaxItems)
		for i := range rects {
			rects[i] = p2(float64(i), float64(i%3))
		}
		left := branchOf(rects...)

		right := left.split()

		checkHalves(t, &left, &right)
		assert.Equal(t, r2(0, 0, 31, 2), left.rect)
		assert.Equal(t, r2(32, 0, 63, 2), right.rect)
	})

	t.Run("LargestAxis", func(t *testing.T) {
		rects := make([]rect2, MaxItems)
		for i := range rects {
			rects[i] = p2(float64(i%2), float64(i))
		}
		left := branchOf(rects...)

		right := left.split()

		checkHalves(t, &left, &right)
		assert.Equal(t, r2(0, 0, 1, 31), left.rect)
		assert.Equal(t, r2(0, 32, 1, 63), right.rect)
	})

	t.Run("RightUnderflow", func(t *testing.T) {
		rects := make([]rect2, MaxItems)
		for i := 0; i < MaxItems-1; i++ {
			rects[i] = p2(float64(i)*0.01, 0)
		}
		rects[MaxItems-1] = p2(100, 0)
		left := branchOf(rects...)

		right := left.split()

		checkHalves(t, &left, &right)
		assert.Equal(t, MinItems, right.len())
		assert.Equal(t, []int{0, 1, 2, 3, 4, MaxItems - 1}, items(&right))
	})

	t.Run("LeftUnderflow", func(t *testing.T) {
		rects := make([]rect2, MaxItems)
		rects[0] = p2(0, 0)
		for i := 1; i < MaxItems; i++ {
			rects[i] = p2(100-float64(i)*0.01, 0)
		}
		left := branchOf(rects...)

		right := left.split()

		checkHalves(t, &left, &right)
		assert.Equal(t, MinItems, left.len())
		assert.Equal(t, []int{0, 59, 60, 61, 62, 63}, items(&left))
	})

	t.Run("Identical", func(t *testing.T) {
		rects := make([]rect2, MaxItems)
		for i := range rects {
			rects[i] = p2(7, 7)
		}
		left := branchOf(rects...)

		right := left.split()

		checkHalves(t, &left, &right)
		assert.Equal(t, MaxItems-MinItems, left.len())
		assert.Equal(t, MinItems, right.len())
	})
}

func TestNode_flattenInto(t *testing.T) {
	tr := New[float64, [2]float64, int]()
	for i := 0; i < 1000; i++ {
		tr.Insert(p2(float64(i%37), float64(i%41)), i)
	}
	require.Greater(t, tr.Height(), 0)

	entries := tr.root.flattenInto(nil)

	assert.Equal(t, 0, tr.root.len())
	require.Len(t, entries, 1000)
	seen := make(map[int]bool)
	for _, e := range entries {
		assert.Equal(t, p2(float64(e.Item%37), float64(e.Item%41)), e.Rect)
		seen[e.Item] = true
	}
	assert.Len(t, seen, 1000)
}

func TestNode_Panics(t *testing.T) {
	t.Run("NotBranch", func(t *testing.T) {
		n := newLeaf(p2(0, 0), 1)

		assert.PanicsWithValue(t, "rtree: not a branch node", func() {
			_ = n.len()
		})
		assert.PanicsWithValue(t, "rtree: not a branch node", func() {
			n.insert(p2(1, 1), 2, 0)
		})
	})

	t.Run("NotLeaf", func(t *testing.T) {
		n := branchOf(p2(0, 0))

		assert.PanicsWithValue(t, "rtree: not a leaf node", func() {
			_ = n.value()
		})
	})

	t.Run("CorruptHeight", func(t *testing.T) {
		tr := New[float64, [2]float64, int]()
		tr.Insert(p2(0, 0), 0)
		tr.height = 1

		assert.PanicsWithValue(t, "rtree: not a branch node", func() {
			tr.Insert(p2(0, 0), 1)
		})
	})
}
