// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/ember-ml/ember/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// Tensor is a vector of scalar graph nodes.
type Tensor = tensor.Tensor

// New creates a tensor from existing nodes, keeping their identity so
// gradients flow back to the originals.
func New(values ...*autodiff.Value) Tensor {
	return tensor.New(values...)
}

// FromSlice creates a tensor of fresh leaf nodes holding data.
//
// Example:
//
//	x := tensor.FromSlice([]float64{2, 3, -1})
func FromSlice(data []float64) Tensor {
	return tensor.FromSlice(data)
}

// Flatten concatenates tensors into one, preserving node identity.
func Flatten(tensors ...Tensor) Tensor {
	return tensor.Flatten(tensors...)
}
