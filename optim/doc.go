// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural
// networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/nn"
//	    "github.com/ember-ml/ember/optim"
//	)
//
//	func main() {
//	    model := nn.NewMLP(3, []int{4, 4, 1}, nn.DefaultMLPConfig())
//
//	    optimizer := optim.NewSGD(
//	        model.Parameters(),
//	        optim.SGDConfig{
//	            LR:       0.05,
//	            Momentum: 0.9,
//	        },
//	    )
//
//	    mse := nn.NewMSELoss()
//	    for epoch := 0; epoch < 100; epoch++ {
//	        loss := mse.Forward(model.Forward(x), targets)
//
//	        optimizer.ZeroGrad()
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// # Training Loop Pattern
//
// Gradients live in the graph nodes themselves, so the loop is always:
//
//  1. ZeroGrad clears stale gradients on the parameters.
//  2. A forward pass builds the loss node.
//  3. loss.Backward() fills p.Grad() for every parameter p.
//  4. Step reads the gradients and updates the parameter data.
//
// Skipping ZeroGrad makes gradients accumulate across passes, which
// compounds updates in ways that are almost never intended.
package optim
