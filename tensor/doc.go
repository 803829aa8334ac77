// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides vectors of scalar graph nodes.
//
// # Overview
//
// A Tensor is a one-dimensional slice of autodiff nodes. Elementwise
// and reduction operations extend the computation graph node by node,
// so anything built from Tensors stays differentiable:
//   - Elementwise: Add, Mul
//   - Scalar broadcast: AddScalar, MulScalar
//   - Reductions: Dot, Sum
//   - Utilities: Data, Grads, ZeroGrad, Flatten
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/tensor"
//	)
//
//	func main() {
//	    x := tensor.FromSlice([]float64{1, 2, 3})
//	    w := tensor.FromSlice([]float64{0.5, -1, 2})
//
//	    y := w.Dot(x) // scalar node: 0.5*1 + -1*2 + 2*3
//	    y.Backward()
//
//	    fmt.Println(x.Grads()) // [0.5 -1 2]
//	}
//
// Shapes are not tracked beyond length; mismatched lengths panic, the
// same contract as indexing a slice out of range.
package tensor
