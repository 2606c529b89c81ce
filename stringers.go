// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import "fmt"

// String returns a summary description of the entry.
func (e Entry[C, P, T]) String() string {
	return fmt.Sprintf("Entry{%s,Item:%v,Dist:%v}", e.Rect, e.Item, e.Dist)
}

// String returns a summary description of the tree.
func (t *RTree[C, P, T]) String() string {
	bounds := "<nil>"
	if b, ok := t.Bounds(); ok {
		bounds = b.String()
	}
	return fmt.Sprintf("RTree{Bounds:%s,Len:%d,Height:%d}", bounds, t.length, t.height)
}
