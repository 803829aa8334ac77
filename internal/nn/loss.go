package nn

import (
	"fmt"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/tensor"
)

// MSELoss computes mean squared error loss.
//
// Loss = mean((predictions - targets)²)
//
// The loss is assembled from graph primitives, so calling Backward on
// the returned node propagates gradients into the predictions and from
// there into the model parameters.
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss := mse.Forward(model.Forward(x), targets)
//	loss.Backward()
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward builds the loss node for a batch of predictions.
//
// Panics if predictions and targets differ in length or are empty.
func (l *MSELoss) Forward(predictions, targets tensor.Tensor) *autodiff.Value {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("nn: MSELoss.Forward: predictions/targets length mismatch: %d vs %d",
			len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("nn: MSELoss.Forward: empty predictions")
	}

	squared := make(tensor.Tensor, len(predictions))
	for i := range predictions {
		squared[i] = predictions[i].Sub(targets[i]).Pow(2)
	}
	return squared.Sum().Mul(autodiff.New(1 / float64(len(predictions))))
}
