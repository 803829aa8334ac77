// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over scalar
// graph nodes.
//
// # Overview
//
// This package contains:
//   - Building blocks: Neuron, Layer, MLP
//   - Activations: tanh, ReLU, or none, chosen per neuron
//   - Loss functions: MSELoss
//   - Utilities: Module interface, Seed, Uniform
//   - Persistence: Save, Load
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/nn"
//	    "github.com/ember-ml/ember/tensor"
//	)
//
//	func main() {
//	    // Build a 3-input MLP with two hidden layers
//	    model := nn.NewMLP(3, []int{4, 4, 1}, nn.DefaultMLPConfig())
//
//	    // Forward pass
//	    out := model.Forward(tensor.FromSlice([]float64{2, 3, -1}))
//
//	    // Backward pass
//	    out[0].Backward()
//	}
//
// # Training
//
// Forward passes extend the autodiff graph, so a loss node's Backward
// fills gradients for every parameter. Pair with the optim package:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//	mse := nn.NewMSELoss()
//
//	for epoch := 0; epoch < 100; epoch++ {
//	    loss := mse.Forward(model.Forward(x), targets)
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
//
// # Persistence
//
// Save writes a model's parameters to a .ember file; Load restores
// them into a model of the same architecture:
//
//	err := nn.Save(model, "model.ember", "MLP", nil)
//	header, err := nn.Load("model.ember", model)
package nn
