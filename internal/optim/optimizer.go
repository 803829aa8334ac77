// Package optim implements optimization algorithms for training models
// built on the autodiff engine.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation
//
// Gradients live in the value nodes themselves, so Step takes no
// arguments and reads each parameter's accumulated gradient directly.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.05,
//	})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    loss := lossFn.Forward(predict(model, inputs), targets)
//
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update parameters in place from the gradients accumulated
// by the most recent backward pass.
type Optimizer interface {
	// Step applies one gradient update to all parameters.
	//
	// Gradients are read from the nodes, so Backward must have run
	// on the loss first.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called before each backward pass to prevent
	// gradient accumulation from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	//
	// Useful for monitoring and learning rate scheduling.
	GetLR() float64

	// SetLR updates the learning rate.
	//
	// Useful for learning rate scheduling during training.
	SetLR(lr float64)
}
