// Package tensor provides an ordered, fixed-length vector of scalar
// graph nodes.
//
// A Tensor adds iteration and shaping on top of the scalar node
// contracts and no new graph semantics: every operation is built from
// the node operators, so gradients flow through Tensor results exactly
// as through hand-assembled graphs.
package tensor

import (
	"fmt"

	"github.com/ember-ml/ember/internal/autodiff"
)

// Tensor is a fixed-length sequence of graph nodes. The zero value is an
// empty tensor.
type Tensor []*autodiff.Value

// New builds a tensor from existing nodes.
func New(values ...*autodiff.Value) Tensor {
	t := make(Tensor, len(values))
	copy(t, values)
	return t
}

// FromSlice builds a tensor of fresh leaf nodes, one per element.
func FromSlice(data []float64) Tensor {
	t := make(Tensor, len(data))
	for i, v := range data {
		t[i] = autodiff.New(v)
	}
	return t
}

// Data returns the forward values of all elements.
func (t Tensor) Data() []float64 {
	data := make([]float64, len(t))
	for i, v := range t {
		data[i] = v.Data()
	}
	return data
}

// Grads returns the accumulated gradients of all elements.
func (t Tensor) Grads() []float64 {
	grads := make([]float64, len(t))
	for i, v := range t {
		grads[i] = v.Grad()
	}
	return grads
}

// Add applies elementwise addition across two equal-length tensors.
// Panics on length mismatch.
func (t Tensor) Add(other Tensor) Tensor {
	checkLen("Add", t, other)
	out := make(Tensor, len(t))
	for i := range t {
		out[i] = t[i].Add(other[i])
	}
	return out
}

// Mul applies elementwise multiplication across two equal-length
// tensors. Panics on length mismatch.
func (t Tensor) Mul(other Tensor) Tensor {
	checkLen("Mul", t, other)
	out := make(Tensor, len(t))
	for i := range t {
		out[i] = t[i].Mul(other[i])
	}
	return out
}

// AddScalar adds a constant to every element. The constant becomes a
// single leaf node shared by every output, so the graph records the
// fan-out.
func (t Tensor) AddScalar(s float64) Tensor {
	c := autodiff.New(s)
	out := make(Tensor, len(t))
	for i := range t {
		out[i] = t[i].Add(c)
	}
	return out
}

// MulScalar multiplies every element by a constant, wrapped once as a
// shared leaf node.
func (t Tensor) MulScalar(s float64) Tensor {
	c := autodiff.New(s)
	out := make(Tensor, len(t))
	for i := range t {
		out[i] = t[i].Mul(c)
	}
	return out
}

// Dot folds two equal-length tensors into a single node via repeated
// Add/Mul, building the corresponding graph edges. The empty dot product
// is a zero leaf. Panics on length mismatch.
func (t Tensor) Dot(other Tensor) *autodiff.Value {
	checkLen("Dot", t, other)
	sum := autodiff.New(0)
	for i := range t {
		sum = sum.Add(t[i].Mul(other[i]))
	}
	return sum
}

// Sum folds the tensor into a single node. The empty sum is a zero leaf.
func (t Tensor) Sum() *autodiff.Value {
	sum := autodiff.New(0)
	for _, v := range t {
		sum = sum.Add(v)
	}
	return sum
}

// ZeroGrad resets the gradient of every element.
func (t Tensor) ZeroGrad() {
	for _, v := range t {
		v.ZeroGrad()
	}
}

// Flatten concatenates tensors into one, preserving order and node
// identity.
func Flatten(tensors ...Tensor) Tensor {
	total := 0
	for _, t := range tensors {
		total += len(t)
	}
	out := make(Tensor, 0, total)
	for _, t := range tensors {
		out = append(out, t...)
	}
	return out
}

func checkLen(op string, a, b Tensor) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("tensor: %s length mismatch: %d vs %d", op, len(a), len(b)))
	}
}
