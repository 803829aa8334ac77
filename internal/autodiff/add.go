package autodiff

// Add returns a new node computing v + other.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a += outputGrad
//   - d(a+b)/db = 1, so grad_b += outputGrad
func (v *Value) Add(other *Value) *Value {
	out := &Value{
		data: v.data + other.data,
		op:   OpAdd,
		prev: []*Value{v, other},
	}
	out.backward = func() {
		v.grad += out.grad
		other.grad += out.grad
	}
	return out
}

// Sub returns a new node computing v - other, composed as v + (-other)
// rather than as its own primitive, so the derivative rule set stays
// minimal.
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}
