// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/ember-ml/ember/autodiff"
	"github.com/ember-ml/ember/internal/nn"
)

// Activation selects the nonlinearity a neuron applies to its weighted
// sum.
type Activation = nn.Activation

// Activation constants.
const (
	ActivationNone Activation = nn.ActivationNone
	ActivationTanh Activation = nn.ActivationTanh
	ActivationReLU Activation = nn.ActivationReLU
)

// Building blocks

// Neuron is a single weighted unit with an activation.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs.
//
// Example:
//
//	neuron := nn.NewNeuron(3, nn.ActivationTanh)
//	out := neuron.Forward(tensor.FromSlice([]float64{1, 2, 3}))
func NewNeuron(nin int, act Activation) *Neuron {
	return nn.NewNeuron(nin, act)
}

// Layer is a bank of neurons that share one input vector.
type Layer = nn.Layer

// NewLayer creates a fully connected layer mapping nin inputs to nout
// outputs.
func NewLayer(nin, nout int, act Activation) *Layer {
	return nn.NewLayer(nin, nout, act)
}

// MLP is a feed-forward stack of fully connected layers.
type MLP = nn.MLP

// MLPConfig holds configuration for a multi-layer perceptron.
type MLPConfig = nn.MLPConfig

// DefaultMLPConfig returns the default configuration: tanh on every
// layer.
func DefaultMLPConfig() MLPConfig {
	return nn.DefaultMLPConfig()
}

// NewMLP creates an MLP with nin inputs and one layer per entry of
// outs.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.DefaultMLPConfig())
func NewMLP(nin int, outs []int, config MLPConfig) *MLP {
	return nn.NewMLP(nin, outs, config)
}

// Loss functions

// MSELoss computes mean squared error loss.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// Initialization

// Seed reseeds weight initialization so that subsequently constructed
// modules get deterministic parameters.
func Seed(seed int64) {
	nn.Seed(seed)
}

// Uniform returns a fresh leaf parameter drawn uniformly from [-1, 1).
func Uniform() *autodiff.Value {
	return nn.Uniform()
}
