package autodiff

// ReLU returns a new node computing max(0, v).
//
// Backward pass:
//   - d(ReLU(a))/da = 1 if a > 0, else 0
//
// At a == 0 the derivative is taken as 0, so exactly no gradient flows
// through the kink.
func (v *Value) ReLU() *Value {
	data := v.data
	if data < 0 {
		data = 0
	}
	out := &Value{
		data: data,
		op:   OpReLU,
		prev: []*Value{v},
	}
	out.backward = func() {
		if v.data > 0 {
			v.grad += out.grad
		}
	}
	return out
}
