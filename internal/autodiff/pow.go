package autodiff

import "math"

// Pow returns a new node computing v raised to the constant exponent k.
// The exponent is a plain number, not a graph node, so no gradient flows
// to it.
//
// Backward pass:
//   - d(a^k)/da = k * a^(k-1), so grad_a += outputGrad * k * a^(k-1)
//
// When a == 0 and k < 1 the derivative diverges; the engine does not
// special-case this and propagates whatever Inf/NaN IEEE-754 produces.
func (v *Value) Pow(k float64) *Value {
	out := &Value{
		data: math.Pow(v.data, k),
		op:   OpPow,
		prev: []*Value{v},
	}
	out.backward = func() {
		v.grad += out.grad * k * math.Pow(v.data, k-1)
	}
	return out
}
