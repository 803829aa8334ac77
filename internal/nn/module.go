// Package nn implements feed-forward neural network modules built
// entirely from scalar graph nodes.
//
// This package provides the building blocks for small fully connected
// networks:
//   - Module interface: base interface for all components
//   - Neuron: a single weighted unit with activation
//   - Layer: a bank of neurons sharing one input
//   - MLP: a stack of layers
//   - MSELoss: mean squared error over node vectors
//
// Every forward pass extends the autodiff graph, so calling Backward on
// a loss node populates gradients for all parameters returned by
// Parameters.
package nn

import "github.com/ember-ml/ember/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Forward is deliberately not part of the interface: a Neuron produces a
// single node while Layer and MLP produce vectors, so each module
// declares its own Forward with the concrete shape it returns.
type Module interface {
	// Parameters returns all trainable leaf nodes of this module,
	// including those of nested modules.
	Parameters() []*autodiff.Value

	// ZeroGrad resets the gradient of every parameter, typically
	// called between training steps.
	ZeroGrad()
}
