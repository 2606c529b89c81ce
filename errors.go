// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import "fmt"

const packageName = "rtree: "

const (
	errNotBranch = "not a branch node"
	errNotLeaf   = "not a leaf node"
)

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func textPanic(text string) {
	panic(packageName + text)
}
