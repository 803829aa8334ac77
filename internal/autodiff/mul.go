package autodiff

// Mul returns a new node computing v * other.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a += outputGrad * b
//   - d(a*b)/db = a, so grad_b += outputGrad * a
//
// The rule reads operand values when it runs, so both factors must still
// hold their forward values when Backward is called.
func (v *Value) Mul(other *Value) *Value {
	out := &Value{
		data: v.data * other.data,
		op:   OpMul,
		prev: []*Value{v, other},
	}
	out.backward = func() {
		v.grad += out.grad * other.data
		other.grad += out.grad * v.data
	}
	return out
}

// Div returns a new node computing v / other, composed as v * other^-1.
// Division by zero follows IEEE-754 and yields Inf or NaN.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}
