package nn

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ember-ml/ember/internal/serialization"
)

// OptimizerState represents an optimizer that can save and load its
// state.
//
// Checkpoints use this interface to serialize optimizer state without
// creating import cycles. Optimizers from the optim package implement
// it.
type OptimizerState interface {
	// StateDict returns the optimizer state for serialization.
	StateDict() map[string][]float64

	// LoadStateDict loads optimizer state from serialization.
	LoadStateDict(stateDict map[string][]float64) error

	// GetLR returns the current learning rate.
	GetLR() float64
}

// StateDict returns the network's parameters as named float64 vectors.
//
// Keys follow the layout "layers.<i>.neurons.<j>.weight" and
// "layers.<i>.neurons.<j>.bias". Values are copies; mutating them does
// not touch the network.
func (m *MLP) StateDict() map[string][]float64 {
	state := make(map[string][]float64)
	for i, layer := range m.layers {
		for j, neuron := range layer.neurons {
			prefix := fmt.Sprintf("layers.%d.neurons.%d.", i, j)
			state[prefix+"weight"] = neuron.weights.Data()
			state[prefix+"bias"] = []float64{neuron.bias.Data()}
		}
	}
	return state
}

// LoadStateDict restores the network's parameters from a state dict.
//
// The network must have the same architecture the state was saved
// from. Missing keys and length mismatches are errors; extra keys are
// ignored. Gradients are untouched.
func (m *MLP) LoadStateDict(state map[string][]float64) error {
	for i, layer := range m.layers {
		for j, neuron := range layer.neurons {
			prefix := fmt.Sprintf("layers.%d.neurons.%d.", i, j)

			weight, ok := state[prefix+"weight"]
			if !ok {
				return fmt.Errorf("missing param %q", prefix+"weight")
			}
			if len(weight) != len(neuron.weights) {
				return fmt.Errorf("param %q: expected %d values, got %d",
					prefix+"weight", len(neuron.weights), len(weight))
			}

			bias, ok := state[prefix+"bias"]
			if !ok {
				return fmt.Errorf("missing param %q", prefix+"bias")
			}
			if len(bias) != 1 {
				return fmt.Errorf("param %q: expected 1 value, got %d", prefix+"bias", len(bias))
			}

			for k, w := range neuron.weights {
				w.SetData(weight[k])
			}
			neuron.bias.SetData(bias[0])
		}
	}
	return nil
}

// Checkpoint is a complete training state snapshot: model parameters,
// optional optimizer state, and training progress.
//
// Example:
//
//	checkpoint := &nn.Checkpoint{
//	    Model:     model,
//	    Optimizer: optimizer,
//	    Epoch:     10,
//	    Step:      40,
//	    Loss:      0.123,
//	}
//	err := checkpoint.Save("checkpoint_epoch_10.ember")
//
// To resume training:
//
//	checkpoint, err := nn.LoadCheckpoint("checkpoint.ember", model, optimizer)
//	startEpoch := checkpoint.Epoch + 1
type Checkpoint struct {
	Model     *MLP              // the network
	Optimizer OptimizerState    // optional; nil saves model parameters only
	Epoch     int               // training epoch number
	Step      int64             // training step number
	Loss      float64           // loss value at this checkpoint
	Metadata  map[string]string // additional metadata
	CreatedAt time.Time         // when the checkpoint was created
}

// Save writes the checkpoint to a .ember file.
//
// Optimizer state, when present, is stored under an "optimizer."
// prefix next to the model parameters. Params are written in sorted
// key order so repeated saves of the same state produce the same
// payload.
func (c *Checkpoint) Save(path string) error {
	state := c.Model.StateDict()

	var lr float64
	if c.Optimizer != nil {
		for name, values := range c.Optimizer.StateDict() {
			state["optimizer."+name] = values
		}
		lr = c.Optimizer.GetLR()
	}

	names := make([]string, 0, len(state))
	for name := range state {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make([]serialization.Param, 0, len(names))
	for _, name := range names {
		params = append(params, serialization.Param{Name: name, Values: state[name]})
	}

	header := serialization.Header{
		ModelType: "MLP",
		Metadata:  c.Metadata,
		Checkpoint: &serialization.CheckpointMeta{
			Epoch:        c.Epoch,
			Step:         c.Step,
			Loss:         c.Loss,
			LearningRate: lr,
		},
	}

	writer, err := serialization.NewWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}
	if err := writer.WriteParamsWithHeader(params, header); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	return writer.Close()
}

// LoadCheckpoint restores a checkpoint from a .ember file.
//
// The model, and the optimizer when one is given, must be
// pre-constructed with the same architecture and configuration the
// checkpoint was saved from. Passing a nil optimizer skips optimizer
// state.
func LoadCheckpoint(path string, model *MLP, optimizer OptimizerState) (*Checkpoint, error) {
	reader, err := serialization.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint: %w", err)
	}
	defer func() { _ = reader.Close() }()

	header := reader.Header()
	if header.Checkpoint == nil {
		return nil, fmt.Errorf("file %s is not a checkpoint", path)
	}

	state, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read params: %w", err)
	}

	// Split model and optimizer state
	modelState := make(map[string][]float64)
	optimizerState := make(map[string][]float64)
	for name, values := range state {
		if rest, ok := strings.CutPrefix(name, "optimizer."); ok {
			optimizerState[rest] = values
		} else {
			modelState[name] = values
		}
	}

	if err := model.LoadStateDict(modelState); err != nil {
		return nil, fmt.Errorf("failed to load model state: %w", err)
	}
	if optimizer != nil {
		if err := optimizer.LoadStateDict(optimizerState); err != nil {
			return nil, fmt.Errorf("failed to load optimizer state: %w", err)
		}
	}

	return &Checkpoint{
		Model:     model,
		Optimizer: optimizer,
		Epoch:     header.Checkpoint.Epoch,
		Step:      header.Checkpoint.Step,
		Loss:      header.Checkpoint.Loss,
		Metadata:  header.Metadata,
		CreatedAt: header.CreatedAt,
	}, nil
}

// SaveCheckpoint is a convenience wrapper that builds a Checkpoint and
// saves it.
func SaveCheckpoint(path string, model *MLP, optimizer OptimizerState, epoch int) error {
	checkpoint := &Checkpoint{
		Model:     model,
		Optimizer: optimizer,
		Epoch:     epoch,
	}
	return checkpoint.Save(path)
}
