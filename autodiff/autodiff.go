// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation
// over scalar computation graphs.
//
// Operations on Value nodes record the expression graph as it is
// built; calling Backward on a result fills in the gradient of every
// node that contributed to it.
//
// Example:
//
//	a := autodiff.New(2.0)
//	b := autodiff.New(-3.0)
//	c := autodiff.New(10.0)
//	loss := a.Mul(b).Add(c)
//
//	loss.Backward()
//	fmt.Println(a.Grad()) // dloss/da = b = -3
package autodiff

import (
	"io"

	"github.com/ember-ml/ember/internal/autodiff"
)

// Value is a scalar node in the computation graph.
type Value = autodiff.Value

// Op identifies the operation that produced a Value.
type Op = autodiff.Op

// Operation constants.
const (
	OpLeaf Op = autodiff.OpLeaf
	OpAdd  Op = autodiff.OpAdd
	OpMul  Op = autodiff.OpMul
	OpPow  Op = autodiff.OpPow
	OpNeg  Op = autodiff.OpNeg
	OpReLU Op = autodiff.OpReLU
	OpExp  Op = autodiff.OpExp
	OpTanh Op = autodiff.OpTanh
)

// New creates a leaf node holding data.
//
// Example:
//
//	x := autodiff.New(3.0)
//	y := x.Mul(x) // y.Data() == 9
func New(data float64) *Value {
	return autodiff.New(data)
}

// WithLabel creates a leaf node with a debug label, used by Trace
// output.
func WithLabel(data float64, label string) *Value {
	return autodiff.WithLabel(data, label)
}

// Trace writes a human-readable dump of the graph rooted at v,
// one node per line, indented by depth.
func Trace(w io.Writer, v *Value) {
	autodiff.Trace(w, v)
}
