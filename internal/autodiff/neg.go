package autodiff

// Neg returns a new node computing -v.
//
// Backward pass:
//   - d(-a)/da = -1, so grad_a += -outputGrad
func (v *Value) Neg() *Value {
	out := &Value{
		data: -v.data,
		op:   OpNeg,
		prev: []*Value{v},
	}
	out.backward = func() {
		v.grad -= out.grad
	}
	return out
}
