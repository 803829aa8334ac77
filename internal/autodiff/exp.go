package autodiff

import "math"

// Exp returns a new node computing e^v.
//
// Backward pass:
//   - d(exp(a))/da = exp(a) = output, so grad_a += outputGrad * output
func (v *Value) Exp() *Value {
	out := &Value{
		data: math.Exp(v.data),
		op:   OpExp,
		prev: []*Value{v},
	}
	out.backward = func() {
		v.grad += out.grad * out.data
	}
	return out
}
