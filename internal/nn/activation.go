package nn

import "github.com/ember-ml/ember/internal/autodiff"

// Activation selects the nonlinearity a neuron applies to its weighted
// sum.
type Activation int

// Supported activations.
const (
	ActivationNone Activation = iota
	ActivationTanh
	ActivationReLU
)

// String returns a human-readable name for the activation.
func (a Activation) String() string {
	switch a {
	case ActivationNone:
		return "none"
	case ActivationTanh:
		return "tanh"
	case ActivationReLU:
		return "relu"
	default:
		return "unknown"
	}
}

// apply extends the graph with the activation, or returns the node
// unchanged for ActivationNone.
func (a Activation) apply(v *autodiff.Value) *autodiff.Value {
	switch a {
	case ActivationTanh:
		return v.Tanh()
	case ActivationReLU:
		return v.ReLU()
	default:
		return v
	}
}
