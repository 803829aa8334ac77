// Copyright 2025 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"sort"
	"strings"

	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/serialization"
)

// Module is the base interface for all neural network components.
//
// Every module can enumerate its trainable parameters and reset their
// gradients:
//
//	for _, p := range model.Parameters() {
//	    fmt.Println(p.Data(), p.Grad())
//	}
type Module = nn.Module

// Header describes a saved .ember file: format version, model type,
// parameter layout, and optional metadata.
type Header = serialization.Header

// Save writes a model's parameters to a .ember file.
//
// Parameters are written in sorted name order so repeated saves of the
// same model produce identical files.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 1}, nn.DefaultMLPConfig())
//	err := nn.Save(model, "model.ember", "MLP", nil)
func Save(model *MLP, path, modelType string, metadata map[string]string) error {
	state := model.StateDict()

	names := make([]string, 0, len(state))
	for name := range state {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make([]serialization.Param, 0, len(names))
	for _, name := range names {
		params = append(params, serialization.Param{Name: name, Values: state[name]})
	}

	writer, err := serialization.NewWriter(path)
	if err != nil {
		return err
	}
	if err := writer.WriteParams(params, modelType, metadata); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}

// Load restores parameters saved with Save into model, which must have
// the same architecture. Checkpoint files also load; their optimizer
// state is skipped.
//
// Returns the file header alongside any error.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 1}, nn.DefaultMLPConfig())
//	header, err := nn.Load("model.ember", model)
func Load(path string, model *MLP) (Header, error) {
	reader, err := serialization.Open(path)
	if err != nil {
		return Header{}, err
	}
	defer func() { _ = reader.Close() }()

	state, err := reader.ReadAll()
	if err != nil {
		return Header{}, err
	}

	modelState := make(map[string][]float64, len(state))
	for name, values := range state {
		if strings.HasPrefix(name, "optimizer.") {
			continue
		}
		modelState[name] = values
	}

	if err := model.LoadStateDict(modelState); err != nil {
		return Header{}, err
	}
	return reader.Header(), nil
}
