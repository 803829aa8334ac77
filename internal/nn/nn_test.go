package nn_test

import (
	"math"
	"testing"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/optim"
	"github.com/ember-ml/ember/internal/tensor"
)

// Compile-time checks that all building blocks satisfy Module.
var (
	_ nn.Module = (*nn.Neuron)(nil)
	_ nn.Module = (*nn.Layer)(nil)
	_ nn.Module = (*nn.MLP)(nil)
)

// Helper to check if values are approximately equal.
func floatEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// TestNeuron_Creation tests neuron construction and initialization.
func TestNeuron_Creation(t *testing.T) {
	nn.Seed(1)
	neuron := nn.NewNeuron(3, nn.ActivationTanh)

	// 3 weights + 1 bias
	params := neuron.Parameters()
	if len(params) != 4 {
		t.Errorf("Parameters() length = %d, want 4", len(params))
	}

	// All parameters drawn from [-1, 1)
	for i, p := range params {
		if p.Data() < -1 || p.Data() >= 1 {
			t.Errorf("Parameter %d = %f, want value in [-1, 1)", i, p.Data())
		}
	}

	if neuron.Activation() != nn.ActivationTanh {
		t.Errorf("Activation() = %v, want %v", neuron.Activation(), nn.ActivationTanh)
	}
}

// TestNeuron_Forward tests a linear neuron with known weights.
func TestNeuron_Forward(t *testing.T) {
	nn.Seed(2)
	neuron := nn.NewNeuron(2, nn.ActivationNone)

	// Parameters returns weights then bias
	params := neuron.Parameters()
	params[0].SetData(1.0)
	params[1].SetData(2.0)
	params[2].SetData(0.5)

	out := neuron.Forward(tensor.FromSlice([]float64{3, 4}))

	// w·x + b = 1*3 + 2*4 + 0.5 = 11.5
	if out.Data() != 11.5 {
		t.Errorf("Forward() = %f, want 11.5", out.Data())
	}
}

// TestNeuron_ForwardBackward_Tanh tests the full forward and backward
// pass of a tanh neuron with hand-picked values.
func TestNeuron_ForwardBackward_Tanh(t *testing.T) {
	nn.Seed(3)
	neuron := nn.NewNeuron(2, nn.ActivationTanh)

	params := neuron.Parameters()
	params[0].SetData(-3.0)
	params[1].SetData(1.0)
	params[2].SetData(6.881373587019543)

	x1 := autodiff.New(2.0)
	x2 := autodiff.New(0.0)
	out := neuron.Forward(tensor.Tensor{x1, x2})

	// n = 2*-3 + 0*1 + 6.8813... = 0.8813...
	// tanh(0.8813...) ≈ 0.7071
	if !floatEqual(out.Data(), 0.7071, 1e-4) {
		t.Errorf("Forward() = %f, want 0.7071", out.Data())
	}

	out.Backward()

	// dout/dn = 1 - tanh²(n) ≈ 0.5, so:
	// x1.grad = w1 * 0.5 = -1.5
	// x2.grad = w2 * 0.5 = 0.5
	// w1.grad = x1 * 0.5 = 1.0
	// w2.grad = x2 * 0.5 = 0.0
	if !floatEqual(x1.Grad(), -1.5, 1e-4) {
		t.Errorf("x1 grad = %f, want -1.5", x1.Grad())
	}
	if !floatEqual(x2.Grad(), 0.5, 1e-4) {
		t.Errorf("x2 grad = %f, want 0.5", x2.Grad())
	}
	if !floatEqual(params[0].Grad(), 1.0, 1e-4) {
		t.Errorf("w1 grad = %f, want 1.0", params[0].Grad())
	}
	if !floatEqual(params[1].Grad(), 0.0, 1e-4) {
		t.Errorf("w2 grad = %f, want 0.0", params[1].Grad())
	}
}

// TestNeuron_ReLU tests ReLU clamping through a neuron.
func TestNeuron_ReLU(t *testing.T) {
	nn.Seed(4)
	neuron := nn.NewNeuron(1, nn.ActivationReLU)

	params := neuron.Parameters()
	params[0].SetData(1.0)
	params[1].SetData(0.0)

	if out := neuron.Forward(tensor.FromSlice([]float64{-2})); out.Data() != 0 {
		t.Errorf("ReLU(-2) = %f, want 0", out.Data())
	}
	if out := neuron.Forward(tensor.FromSlice([]float64{3})); out.Data() != 3 {
		t.Errorf("ReLU(3) = %f, want 3", out.Data())
	}
}

// TestNeuron_InputMismatch tests that Forward panics on a wrong-sized
// input.
func TestNeuron_InputMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for mismatched input length, got none")
		}
	}()

	neuron := nn.NewNeuron(3, nn.ActivationTanh)
	neuron.Forward(tensor.FromSlice([]float64{1, 2}))
}

// TestLayer_Creation tests layer construction.
func TestLayer_Creation(t *testing.T) {
	nn.Seed(5)
	layer := nn.NewLayer(3, 4, nn.ActivationTanh)

	// 4 neurons with 3 weights + 1 bias each
	params := layer.Parameters()
	if len(params) != 16 {
		t.Errorf("Parameters() length = %d, want 16", len(params))
	}
}

// TestLayer_Forward tests layer output shape and tanh bounds.
func TestLayer_Forward(t *testing.T) {
	nn.Seed(6)
	layer := nn.NewLayer(2, 3, nn.ActivationTanh)

	out := layer.Forward(tensor.FromSlice([]float64{0.5, -0.5}))
	if len(out) != 3 {
		t.Fatalf("Forward() length = %d, want 3", len(out))
	}

	for i, o := range out {
		if o.Data() <= -1 || o.Data() >= 1 {
			t.Errorf("Output[%d] = %f, want value in (-1, 1)", i, o.Data())
		}
	}
}

// TestMLP_Creation tests MLP construction and parameter counting.
func TestMLP_Creation(t *testing.T) {
	nn.Seed(7)
	model := nn.NewMLP(3, []int{4, 4, 1}, nn.DefaultMLPConfig())

	// (3+1)*4 + (4+1)*4 + (4+1)*1 = 16 + 20 + 5 = 41
	if got := model.NumParameters(); got != 41 {
		t.Errorf("NumParameters() = %d, want 41", got)
	}
	if got := len(model.Parameters()); got != 41 {
		t.Errorf("Parameters() length = %d, want 41", got)
	}
	if got := model.String(); got != "MLP(3 -> 4 -> 4 -> 1)" {
		t.Errorf("String() = %q, want %q", got, "MLP(3 -> 4 -> 4 -> 1)")
	}
}

// TestMLP_Forward tests the forward pass shape and output range.
func TestMLP_Forward(t *testing.T) {
	nn.Seed(8)
	model := nn.NewMLP(3, []int{4, 4, 1}, nn.DefaultMLPConfig())

	out := model.Forward(tensor.FromSlice([]float64{2, 3, -1}))
	if len(out) != 1 {
		t.Fatalf("Forward() length = %d, want 1", len(out))
	}

	// tanh output layer keeps the value in (-1, 1)
	if out[0].Data() <= -1 || out[0].Data() >= 1 {
		t.Errorf("Output = %f, want value in (-1, 1)", out[0].Data())
	}
}

// TestMLP_LinearOutput tests that LinearOutput leaves the last layer
// unsquashed.
func TestMLP_LinearOutput(t *testing.T) {
	nn.Seed(9)
	model := nn.NewMLP(2, []int{1}, nn.MLPConfig{LinearOutput: true})

	params := model.Parameters()
	params[0].SetData(2.0)
	params[1].SetData(3.0)
	params[2].SetData(1.0)

	out := model.Forward(tensor.FromSlice([]float64{1, 1}))

	// 2*1 + 3*1 + 1 = 6, outside any activation's range
	if out[0].Data() != 6.0 {
		t.Errorf("Forward() = %f, want 6.0", out[0].Data())
	}
}

// TestMLP_DefaultActivation tests that a zero config behaves like the
// default config.
func TestMLP_DefaultActivation(t *testing.T) {
	nn.Seed(10)
	m1 := nn.NewMLP(2, []int{3, 1}, nn.MLPConfig{})
	nn.Seed(10)
	m2 := nn.NewMLP(2, []int{3, 1}, nn.DefaultMLPConfig())

	x := tensor.FromSlice([]float64{0.25, -0.75})
	got := m1.Forward(x)[0].Data()
	want := m2.Forward(x)[0].Data()
	if got != want {
		t.Errorf("Zero config forward = %f, default config forward = %f", got, want)
	}
}

// TestMLP_ZeroGrad tests that ZeroGrad clears every parameter gradient.
func TestMLP_ZeroGrad(t *testing.T) {
	nn.Seed(11)
	model := nn.NewMLP(2, []int{2, 1}, nn.DefaultMLPConfig())

	out := model.Forward(tensor.FromSlice([]float64{1, -1}))
	out[0].Backward()

	// The output neuron's bias always picks up a gradient
	nonzero := false
	for _, p := range model.Parameters() {
		if p.Grad() != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Fatal("Expected at least one nonzero gradient after Backward")
	}

	model.ZeroGrad()
	for i, p := range model.Parameters() {
		if p.Grad() != 0 {
			t.Errorf("Parameter %d grad = %f after ZeroGrad, want 0", i, p.Grad())
		}
	}
}

// TestMLP_EmptyOuts tests that NewMLP rejects an empty layer list.
func TestMLP_EmptyOuts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty outs, got none")
		}
	}()

	nn.NewMLP(3, nil, nn.DefaultMLPConfig())
}

// TestActivation_String tests activation names.
func TestActivation_String(t *testing.T) {
	tests := []struct {
		act  nn.Activation
		want string
	}{
		{nn.ActivationNone, "none"},
		{nn.ActivationTanh, "tanh"},
		{nn.ActivationReLU, "relu"},
		{nn.Activation(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.act.String(); got != tt.want {
			t.Errorf("Activation(%d).String() = %q, want %q", tt.act, got, tt.want)
		}
	}
}

// TestSeed_Reproducible tests that seeding makes initialization
// deterministic.
func TestSeed_Reproducible(t *testing.T) {
	nn.Seed(42)
	m1 := nn.NewMLP(3, []int{4, 1}, nn.DefaultMLPConfig())
	nn.Seed(42)
	m2 := nn.NewMLP(3, []int{4, 1}, nn.DefaultMLPConfig())

	p1 := m1.Parameters()
	p2 := m2.Parameters()
	if len(p1) != len(p2) {
		t.Fatalf("Parameter count mismatch: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i].Data() != p2[i].Data() {
			t.Errorf("Parameter %d = %f, want %f", i, p2[i].Data(), p1[i].Data())
		}
	}
}

// TestUniform_Range tests the initialization bounds.
func TestUniform_Range(t *testing.T) {
	nn.Seed(13)
	for i := 0; i < 1000; i++ {
		v := nn.Uniform()
		if v.Data() < -1 || v.Data() >= 1 {
			t.Fatalf("Uniform() = %f, want value in [-1, 1)", v.Data())
		}
	}
}

// TestMSELoss tests MSE loss computation and its gradient.
func TestMSELoss(t *testing.T) {
	mse := nn.NewMSELoss()

	predictions := tensor.FromSlice([]float64{1, 2, 3})
	targets := tensor.FromSlice([]float64{1, 1, 1})

	loss := mse.Forward(predictions, targets)

	// mean((1-1)² + (2-1)² + (3-1)²) = mean(0 + 1 + 4) = 5/3
	if !floatEqual(loss.Data(), 5.0/3.0, 1e-9) {
		t.Errorf("MSE loss = %f, want %f", loss.Data(), 5.0/3.0)
	}

	loss.Backward()

	// dL/dp_i = 2*(p_i - t_i)/3
	wantGrads := []float64{0, 2.0 / 3.0, 4.0 / 3.0}
	for i, want := range wantGrads {
		if !floatEqual(predictions[i].Grad(), want, 1e-9) {
			t.Errorf("Prediction %d grad = %f, want %f", i, predictions[i].Grad(), want)
		}
	}
}

// TestMSELoss_Perfect tests that matching predictions give zero loss.
func TestMSELoss_Perfect(t *testing.T) {
	mse := nn.NewMSELoss()

	predictions := tensor.FromSlice([]float64{1, -1, 0.5})
	targets := tensor.FromSlice([]float64{1, -1, 0.5})

	if loss := mse.Forward(predictions, targets); loss.Data() != 0 {
		t.Errorf("MSE loss = %f, want 0", loss.Data())
	}
}

// TestMSELoss_LengthMismatch tests that Forward panics on mismatched
// vector lengths.
func TestMSELoss_LengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for length mismatch, got none")
		}
	}()

	mse := nn.NewMSELoss()
	mse.Forward(tensor.FromSlice([]float64{1, 2}), tensor.FromSlice([]float64{1}))
}

// TestMSELoss_Empty tests that Forward panics on empty inputs.
func TestMSELoss_Empty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty predictions, got none")
		}
	}()

	mse := nn.NewMSELoss()
	mse.Forward(tensor.Tensor{}, tensor.Tensor{})
}

// BenchmarkMLP_Forward benchmarks a forward pass through a small MLP.
func BenchmarkMLP_Forward(b *testing.B) {
	nn.Seed(1)
	model := nn.NewMLP(3, []int{16, 16, 1}, nn.DefaultMLPConfig())
	x := tensor.FromSlice([]float64{0.5, -1.0, 2.0})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = model.Forward(x)
	}
}

// BenchmarkMLP_TrainStep benchmarks one forward, backward and optimizer
// step over the demo dataset.
func BenchmarkMLP_TrainStep(b *testing.B) {
	nn.Seed(1)
	model := nn.NewMLP(3, []int{4, 4, 1}, nn.DefaultMLPConfig())
	mse := nn.NewMSELoss()
	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trainEpoch(model, mse, optimizer, demoInputs, demoTargets)
	}
}
