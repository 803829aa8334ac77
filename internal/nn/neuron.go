package nn

import (
	"fmt"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// Neuron is a single unit: one weight per input, a bias, and an
// activation applied to the weighted sum.
//
// Weights and bias are initialized uniformly from [-1, 1).
type Neuron struct {
	weights tensor.Tensor
	bias    *autodiff.Value
	act     Activation
}

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, act Activation) *Neuron {
	weights := make(tensor.Tensor, nin)
	for i := range weights {
		weights[i] = Uniform()
	}
	return &Neuron{
		weights: weights,
		bias:    Uniform(),
		act:     act,
	}
}

// Forward computes act(w·x + b), extending the graph through the dot
// product, the bias add, and the activation.
//
// Panics if the input length does not match the neuron's fan-in.
func (n *Neuron) Forward(x tensor.Tensor) *autodiff.Value {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("nn: Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(x)))
	}
	return n.act.apply(n.weights.Dot(x).Add(n.bias))
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// ZeroGrad resets every parameter gradient.
func (n *Neuron) ZeroGrad() {
	for _, p := range n.Parameters() {
		p.ZeroGrad()
	}
}

// Activation returns the neuron's activation.
func (n *Neuron) Activation() Activation {
	return n.act
}
