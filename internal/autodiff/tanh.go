package autodiff

import "math"

// Tanh returns a new node computing tanh(v).
//
// Backward pass:
//   - d(tanh(a))/da = 1 - tanh²(a), so grad_a += outputGrad * (1 - output²)
func (v *Value) Tanh() *Value {
	out := &Value{
		data: math.Tanh(v.data),
		op:   OpTanh,
		prev: []*Value{v},
	}
	out.backward = func() {
		v.grad += out.grad * (1 - out.data*out.data)
	}
	return out
}
