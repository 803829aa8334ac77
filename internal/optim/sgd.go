package optim

import (
	"fmt"

	"github.com/ember-ml/ember/internal/autodiff"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum helps accelerate descent in consistent directions and
// dampens oscillations.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    loss := trainStep(model, batch)
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
type SGD struct {
	params     []*autodiff.Value
	lr         float64
	momentum   float64
	velocities map[*autodiff.Value]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
//
// Example:
//
//	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*autodiff.Value]float64),
	}
}

// Step performs a single optimization step.
//
// Applies the gradient descent update to all parameters:
//   - Without momentum: param -= lr * grad
//   - With momentum: velocity = momentum * velocity + grad, param -= lr * velocity
func (s *SGD) Step() {
	for _, param := range s.params {
		grad := param.Grad()

		if s.momentum == 0 {
			param.AdjustData(-s.lr * grad)
			continue
		}

		velocity := s.momentum*s.velocities[param] + grad
		s.velocities[param] = velocity
		param.AdjustData(-s.lr * velocity)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the optimizer state for serialization.
//
// With momentum enabled this exports one velocity per parameter under
// "velocity.{param_index}" keys. Without momentum the map is empty.
func (s *SGD) StateDict() map[string][]float64 {
	stateDict := make(map[string][]float64)

	// Only save velocities if momentum is enabled
	if s.momentum == 0 {
		return stateDict
	}

	for i, param := range s.params {
		velocity, exists := s.velocities[param]
		if !exists {
			continue // No velocity yet (hasn't been used in training)
		}
		stateDict[fmt.Sprintf("velocity.%d", i)] = []float64{velocity}
	}

	return stateDict
}

// LoadStateDict loads optimizer state from serialization.
//
// Restores velocities for SGD with momentum. If momentum is 0, the
// provided state is ignored. Parameters with no saved velocity start
// from zero again.
func (s *SGD) LoadStateDict(stateDict map[string][]float64) error {
	// If no momentum, nothing to load
	if s.momentum == 0 {
		return nil
	}

	s.velocities = make(map[*autodiff.Value]float64)

	for i, param := range s.params {
		key := fmt.Sprintf("velocity.%d", i)
		values, exists := stateDict[key]
		if !exists {
			continue // Will be initialized on the next step
		}
		if len(values) != 1 {
			return fmt.Errorf("velocity %d: expected 1 value, got %d", i, len(values))
		}
		s.velocities[param] = values[0]
	}

	return nil
}
