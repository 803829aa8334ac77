package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ember-ml/ember/internal/autodiff"
)

// TestOps_Forward tests forward values and recorded op tags.
func TestOps_Forward(t *testing.T) {
	tests := []struct {
		name  string
		build func() *autodiff.Value
		want  float64
		op    autodiff.Op
	}{
		{"add", func() *autodiff.Value { return autodiff.New(2).Add(autodiff.New(3)) }, 5, autodiff.OpAdd},
		{"mul", func() *autodiff.Value { return autodiff.New(2).Mul(autodiff.New(-3)) }, -6, autodiff.OpMul},
		{"pow", func() *autodiff.Value { return autodiff.New(3).Pow(2) }, 9, autodiff.OpPow},
		{"neg", func() *autodiff.Value { return autodiff.New(2.5).Neg() }, -2.5, autodiff.OpNeg},
		{"relu positive", func() *autodiff.Value { return autodiff.New(1.5).ReLU() }, 1.5, autodiff.OpReLU},
		{"relu negative", func() *autodiff.Value { return autodiff.New(-1.5).ReLU() }, 0, autodiff.OpReLU},
		{"relu zero", func() *autodiff.Value { return autodiff.New(0).ReLU() }, 0, autodiff.OpReLU},
		{"exp zero", func() *autodiff.Value { return autodiff.New(0).Exp() }, 1, autodiff.OpExp},
		{"tanh zero", func() *autodiff.Value { return autodiff.New(0).Tanh() }, 0, autodiff.OpTanh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.build()
			assert.Equal(t, tt.want, out.Data(), "forward value")
			assert.Equal(t, tt.op, out.Op(), "op tag")
		})
	}
}

// TestOps_OperandOrder tests that binary ops record [a, b] in call order.
func TestOps_OperandOrder(t *testing.T) {
	a := autodiff.New(1)
	b := autodiff.New(2)

	sum := a.Add(b)
	operands := sum.Operands()
	assert.Len(t, operands, 2)
	assert.Same(t, a, operands[0])
	assert.Same(t, b, operands[1])

	unary := a.Neg()
	operands = unary.Operands()
	assert.Len(t, operands, 1)
	assert.Same(t, a, operands[0])
}

// TestOps_NoSideEffects tests that applying an operator leaves the
// operands' grads untouched.
func TestOps_NoSideEffects(t *testing.T) {
	a := autodiff.New(2)
	b := autodiff.New(3)

	_ = a.Mul(b)
	_ = a.Add(b)
	_ = a.Pow(4)

	assert.Zero(t, a.Grad())
	assert.Zero(t, b.Grad())
	assert.Equal(t, 2.0, a.Data())
	assert.Equal(t, 3.0, b.Data())
}

// TestSub_Composition tests that Sub is built from Add and Neg.
func TestSub_Composition(t *testing.T) {
	a := autodiff.New(5)
	b := autodiff.New(3)
	diff := a.Sub(b)

	assert.Equal(t, 2.0, diff.Data())
	assert.Equal(t, autodiff.OpAdd, diff.Op(), "Sub is Add(a, Neg(b)), not a primitive")

	operands := diff.Operands()
	assert.Same(t, a, operands[0])
	assert.Equal(t, autodiff.OpNeg, operands[1].Op())

	diff.Backward()
	assert.Equal(t, 1.0, a.Grad())
	assert.Equal(t, -1.0, b.Grad())
}

// TestDiv_Composition tests that Div is built from Mul and Pow(-1).
func TestDiv_Composition(t *testing.T) {
	a := autodiff.New(1)
	b := autodiff.New(2)
	quot := a.Div(b)

	assert.Equal(t, 0.5, quot.Data())
	assert.Equal(t, autodiff.OpMul, quot.Op(), "Div is Mul(a, Pow(b,-1)), not a primitive")

	quot.Backward()
	// d(a/b)/da = 1/b, d(a/b)/db = -a/b².
	assert.InDelta(t, 0.5, a.Grad(), 1e-12)
	assert.InDelta(t, -0.25, b.Grad(), 1e-12)
}

// TestOps_IEEESemantics tests that degenerate inputs follow floating
// point rules instead of raising errors.
func TestOps_IEEESemantics(t *testing.T) {
	// 1/0 = +Inf.
	inf := autodiff.New(1).Div(autodiff.New(0))
	assert.True(t, math.IsInf(inf.Data(), 1), "1/0 = %v, want +Inf", inf.Data())

	// 0^-1 = +Inf; the derivative at 0 diverges too.
	pole := autodiff.New(0).Pow(-1)
	assert.True(t, math.IsInf(pole.Data(), 1))
	pole.Backward()
	assert.True(t, math.IsInf(pole.Operands()[0].Grad(), -1),
		"d(x^-1)/dx at 0 should follow IEEE-754 to -Inf, got %v", pole.Operands()[0].Grad())

	// exp of a large value overflows to +Inf.
	big := autodiff.New(1000).Exp()
	assert.True(t, math.IsInf(big.Data(), 1))

	// NaN propagates through without panicking.
	nan := autodiff.New(math.NaN()).Mul(autodiff.New(2)).Add(autodiff.New(1))
	assert.True(t, math.IsNaN(nan.Data()))
	nan.Backward()
}
