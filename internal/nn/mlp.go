package nn

import (
	"fmt"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// MLPConfig holds configuration for a multi-layer perceptron.
type MLPConfig struct {
	// Activation applied to every layer output (default: tanh).
	Activation Activation

	// LinearOutput leaves the last layer without an activation, for
	// unbounded regression heads.
	LinearOutput bool
}

// DefaultMLPConfig returns the default configuration: tanh on every
// layer, including the output.
func DefaultMLPConfig() MLPConfig {
	return MLPConfig{Activation: ActivationTanh}
}

// MLP is a feed-forward stack of fully connected layers.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.DefaultMLPConfig())
//	out := model.Forward(tensor.FromSlice([]float64{2, 3, -1}))
type MLP struct {
	layers []*Layer
	nin    int
	outs   []int
}

// NewMLP creates an MLP with nin inputs and one layer per entry of outs,
// so outs = []int{4, 4, 1} stacks 3 layers ending in a single output.
//
// A zero-valued config gets the default activation. Panics if outs is
// empty.
func NewMLP(nin int, outs []int, config MLPConfig) *MLP {
	if len(outs) == 0 {
		panic("nn: NewMLP: outs must name at least one layer size")
	}
	if config.Activation == ActivationNone {
		config.Activation = DefaultMLPConfig().Activation
	}

	sizes := append([]int{nin}, outs...)
	layers := make([]*Layer, len(outs))
	for i := range layers {
		act := config.Activation
		if config.LinearOutput && i == len(layers)-1 {
			act = ActivationNone
		}
		layers[i] = NewLayer(sizes[i], sizes[i+1], act)
	}

	return &MLP{layers: layers, nin: nin, outs: outs}
}

// Forward feeds x through every layer in order.
//
// Panics, via the first layer's neurons, if len(x) differs from the
// configured input size.
func (m *MLP) Forward(x tensor.Tensor) tensor.Tensor {
	for _, layer := range m.layers {
		x = layer.Forward(x)
	}
	return x
}

// Parameters returns all layer parameters, first layer first.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// ZeroGrad resets every parameter gradient.
func (m *MLP) ZeroGrad() {
	for _, layer := range m.layers {
		layer.ZeroGrad()
	}
}

// NumParameters returns the total parameter count,
// (nin+1)*outs[0] + (outs[0]+1)*outs[1] + ...
func (m *MLP) NumParameters() int {
	total := 0
	prev := m.nin
	for _, out := range m.outs {
		total += (prev + 1) * out
		prev = out
	}
	return total
}

// String describes the architecture, e.g. "MLP(3 -> 4 -> 4 -> 1)".
func (m *MLP) String() string {
	s := fmt.Sprintf("MLP(%d", m.nin)
	for _, out := range m.outs {
		s += fmt.Sprintf(" -> %d", out)
	}
	return s + ")"
}
