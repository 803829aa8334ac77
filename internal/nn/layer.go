package nn

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// Layer is a bank of neurons that share one input vector.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a fully connected layer mapping nin inputs to nout
// outputs, every neuron using the same activation.
func NewLayer(nin, nout int, act Activation) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, act)
	}
	return &Layer{neurons: neurons}
}

// Forward applies every neuron to x and collects the outputs.
func (l *Layer) Forward(x tensor.Tensor) tensor.Tensor {
	out := make(tensor.Tensor, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Parameters returns the parameters of all neurons, neuron by neuron.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets every parameter gradient.
func (l *Layer) ZeroGrad() {
	for _, n := range l.neurons {
		n.ZeroGrad()
	}
}
