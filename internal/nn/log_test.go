package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/backend/cpu"
	"github.com/ember-ml/ember/internal/tensor"
)

func tensorFrom64(t *testing.T, data []float64) *tensor.Tensor {
	t.Helper()
	x, err := tensor.FromSlice(data, tensor.Shape{len(data)}, tensor.CPU)
	require.NoError(t, err)
	return x
}

func tensorFrom32(t *testing.T, data []float32) *tensor.Tensor {
	t.Helper()
	x, err := tensor.FromSlice(data, tensor.Shape{len(data)}, tensor.CPU)
	require.NoError(t, err)
	return x
}

func zeros64(t *testing.T, n int) *tensor.Tensor {
	t.Helper()
	x, err := tensor.New(tensor.Shape{n}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	return x
}

// reference computes the transform for one element.
func reference(p LogParams, v float64) float64 {
	return p.BaseScale * math.Log(p.InputScale*v+p.InputShift)
}

func TestNewLog_ParamDerivation(t *testing.T) {
	backend := cpu.New()

	// Natural log: both scales stay as configured.
	layer, err := NewLog(LogConfig{Base: NaturalBase, Scale: 2, Shift: 1}, backend)
	require.NoError(t, err)
	p := layer.Params()
	assert.Equal(t, 2.0, p.InputScale)
	assert.Equal(t, 1.0, p.InputShift)
	assert.Equal(t, 1.0, p.BaseScale)
	assert.Equal(t, 2.0, p.BackwardNumScale)

	// Base 2: the change of base divides by ln(2).
	layer, err = NewLog(LogConfig{Base: 2, Scale: 3, Shift: 0}, backend)
	require.NoError(t, err)
	p = layer.Params()
	assert.InDelta(t, 1/math.Ln2, p.BaseScale, 1e-15)
	assert.InDelta(t, 3/math.Ln2, p.BackwardNumScale, 1e-15)
}

func TestNewLog_DegenerateBase(t *testing.T) {
	backend := cpu.New()

	_, err := NewLog(LogConfig{Base: 0, Scale: 1}, backend)
	assert.Error(t, err)

	_, err = NewLog(LogConfig{Base: -2, Scale: 1}, backend)
	assert.Error(t, err)

	_, err = NewLog(LogConfig{Base: 1, Scale: 1}, backend)
	assert.Error(t, err)
}

func TestLogForward_GeneralFormula(t *testing.T) {
	backend := cpu.New()

	configs := []LogConfig{
		{Base: NaturalBase, Scale: 1, Shift: 0},
		{Base: NaturalBase, Scale: 2, Shift: 1},
		{Base: 2, Scale: 1, Shift: 0},
		{Base: 10, Scale: 0.5, Shift: 3},
	}

	x := tensorFrom64(t, []float64{0.25, 1, 2, 7.5})
	for _, cfg := range configs {
		layer, err := NewLog(cfg, backend)
		require.NoError(t, err)

		y := zeros64(t, 4)
		require.NoError(t, layer.Forward(x, y))

		got := y.Value().Float64()
		for i, v := range x.Value().Float64() {
			assert.InDelta(t, reference(layer.Params(), v), got[i], 1e-12,
				"cfg %+v element %d", cfg, i)
		}
	}
}

func TestLogForward_FastPathEquivalence(t *testing.T) {
	// The identity-skipping branches are an optimization: the staged
	// general path must produce the same numbers.
	backend := cpu.New()

	fast, err := NewLog(LogConfig{Base: NaturalBase, Scale: 1, Shift: 0}, backend)
	require.NoError(t, err)

	x := tensorFrom64(t, []float64{0.5, 1, 2, 4})
	y := zeros64(t, 4)
	require.NoError(t, fast.Forward(x, y))

	got := y.Value().Float64()
	for i, v := range x.Value().Float64() {
		assert.InDelta(t, math.Log(v), got[i], 1e-12, "element %d", i)
	}
}

func TestLogForward_DoesNotMutateInput(t *testing.T) {
	backend := cpu.New()
	layer, err := NewLog(LogConfig{Base: NaturalBase, Scale: 2, Shift: 1}, backend)
	require.NoError(t, err)

	x := tensorFrom64(t, []float64{1, 2, 3})
	y := zeros64(t, 3)
	require.NoError(t, layer.Forward(x, y))

	assert.Equal(t, []float64{1, 2, 3}, x.Value().Float64())
}

func TestLogForward_NaturalScenario(t *testing.T) {
	// N=3, x = [1, e, e^2], identity parameters: y ≈ [0, 1, 2].
	backend := cpu.New()
	layer, err := NewLog(DefaultLogConfig(), backend)
	require.NoError(t, err)

	x := tensorFrom64(t, []float64{1, math.E, math.E * math.E})
	y := zeros64(t, 3)
	require.NoError(t, layer.Forward(x, y))

	got := y.Value().Float64()
	assert.InDelta(t, 0, got[0], 1e-12)
	assert.InDelta(t, 1, got[1], 1e-12)
	assert.InDelta(t, 2, got[2], 1e-12)

	// dy = 1 everywhere: dx ≈ [1, 1/e, 1/e^2].
	dy := y.Grad().Float64()
	for i := range dy {
		dy[i] = 1
	}
	require.NoError(t, layer.Backward(y, x, true))

	dx := x.Grad().Float64()
	assert.InDelta(t, 1, dx[0], 1e-12)
	assert.InDelta(t, 1/math.E, dx[1], 1e-12)
	assert.InDelta(t, 1/(math.E*math.E), dx[2], 1e-12)
}

func TestLogForward_AffineScenario(t *testing.T) {
	// N=2, x = [0, 1], scale=2, shift=1, base_scale=3:
	// y = [3*ln(1), 3*ln(3)] = [0, 3*ln(3)].
	backend := cpu.New()
	layer, err := NewLog(LogConfig{Base: math.Exp(1.0 / 3.0), Scale: 2, Shift: 1}, backend)
	require.NoError(t, err)
	require.InDelta(t, 3, layer.Params().BaseScale, 1e-12)

	x := tensorFrom64(t, []float64{0, 1})
	y := zeros64(t, 2)
	require.NoError(t, layer.Forward(x, y))

	got := y.Value().Float64()
	assert.InDelta(t, 0, got[0], 1e-12)
	assert.InDelta(t, 3*math.Log(3), got[1], 1e-12)
}

func TestLogForward_DomainPassthrough(t *testing.T) {
	// Inputs outside the log domain are not clamped or reported.
	backend := cpu.New()
	layer, err := NewLog(DefaultLogConfig(), backend)
	require.NoError(t, err)

	x := tensorFrom64(t, []float64{-1, 0})
	y := zeros64(t, 2)
	require.NoError(t, layer.Forward(x, y))

	got := y.Value().Float64()
	assert.True(t, math.IsNaN(got[0]), "log(-1) should be NaN, got %v", got[0])
	assert.True(t, math.IsInf(got[1], -1), "log(0) should be -Inf, got %v", got[1])
}

func TestLogBackward_Formula(t *testing.T) {
	backend := cpu.New()
	layer, err := NewLog(LogConfig{Base: 10, Scale: 2, Shift: 1}, backend)
	require.NoError(t, err)

	x := tensorFrom64(t, []float64{0.5, 1, 3})
	y := zeros64(t, 3)
	require.NoError(t, layer.Forward(x, y))

	dy := y.Grad().Float64()
	dy[0], dy[1], dy[2] = 1, -0.5, 2
	require.NoError(t, layer.Backward(y, x, true))

	p := layer.Params()
	dx := x.Grad().Float64()
	for i, v := range x.Value().Float64() {
		want := dy[i] * p.BackwardNumScale / (p.InputScale*v + p.InputShift)
		assert.InDelta(t, want, dx[i], 1e-12, "element %d", i)
	}
}

func TestLogBackward_FiniteDifference(t *testing.T) {
	backend := cpu.New()
	layer, err := NewLog(LogConfig{Base: 2, Scale: 1.5, Shift: 0.25}, backend)
	require.NoError(t, err)

	points := []float64{0.5, 1, 2, 5}
	x := tensorFrom64(t, points)
	y := zeros64(t, len(points))
	require.NoError(t, layer.Forward(x, y))

	dy := y.Grad().Float64()
	for i := range dy {
		dy[i] = 1
	}
	require.NoError(t, layer.Backward(y, x, true))

	// Central difference of the scalar transform at each point.
	p := layer.Params()
	epsilon := 1e-6
	dx := x.Grad().Float64()
	for i, v := range points {
		numerical := (reference(p, v+epsilon) - reference(p, v-epsilon)) / (2 * epsilon)
		assert.InDelta(t, numerical, dx[i], 1e-6, "element %d", i)
	}
}

func TestLogBackward_NoPropagateIsNoOp(t *testing.T) {
	backend := cpu.New()
	layer, err := NewLog(LogConfig{Base: NaturalBase, Scale: 2, Shift: 1}, backend)
	require.NoError(t, err)

	x := tensorFrom64(t, []float64{1, 2, 3})
	y := zeros64(t, 3)
	require.NoError(t, layer.Forward(x, y))

	// Pre-fill the grad plane with a sentinel pattern.
	const sentinel = 12345.0
	dx := x.Grad().Float64()
	for i := range dx {
		dx[i] = sentinel
	}

	require.NoError(t, layer.Backward(y, x, false))

	for i, g := range x.Grad().Float64() {
		assert.Equal(t, sentinel, g, "grad[%d] was touched", i)
	}
}

func TestLog_Purity(t *testing.T) {
	// Identical inputs produce bit-identical outputs across calls.
	backend := cpu.New()
	layer, err := NewLog(LogConfig{Base: 10, Scale: 3, Shift: 0.5}, backend)
	require.NoError(t, err)

	x := tensorFrom64(t, []float64{0.1, 1, 7, 42})
	y1 := zeros64(t, 4)
	y2 := zeros64(t, 4)
	require.NoError(t, layer.Forward(x, y1))
	require.NoError(t, layer.Forward(x, y2))

	a := y1.Value().Float64()
	b := y2.Value().Float64()
	for i := range a {
		assert.Equal(t, math.Float64bits(a[i]), math.Float64bits(b[i]),
			"forward outputs differ bitwise at %d", i)
	}

	for i := range a {
		y1.Grad().Float64()[i] = float64(i) + 1
		y2.Grad().Float64()[i] = float64(i) + 1
	}
	x2 := tensorFrom64(t, []float64{0.1, 1, 7, 42})
	require.NoError(t, layer.Backward(y1, x, true))
	require.NoError(t, layer.Backward(y2, x2, true))

	ga := x.Grad().Float64()
	gb := x2.Grad().Float64()
	for i := range ga {
		assert.Equal(t, math.Float64bits(ga[i]), math.Float64bits(gb[i]),
			"backward outputs differ bitwise at %d", i)
	}
}

func TestLog_Float32(t *testing.T) {
	backend := cpu.New()
	layer, err := NewLog(LogConfig{Base: NaturalBase, Scale: 2, Shift: 1}, backend)
	require.NoError(t, err)

	x := tensorFrom32(t, []float32{0, 1, 4})
	y, err := tensor.New(tensor.Shape{3}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)

	require.NoError(t, layer.Forward(x, y))

	got := y.Value().Float32()
	for i, v := range []float64{0, 1, 4} {
		assert.InDelta(t, math.Log(2*v+1), float64(got[i]), 1e-6, "element %d", i)
	}

	dy := y.Grad().Float32()
	for i := range dy {
		dy[i] = 1
	}
	require.NoError(t, layer.Backward(y, x, true))

	dx := x.Grad().Float32()
	for i, v := range []float64{0, 1, 4} {
		assert.InDelta(t, 2/(2*v+1), float64(dx[i]), 1e-6, "element %d", i)
	}
}

func TestLog_EmptyTensor(t *testing.T) {
	backend := cpu.New()
	layer, err := NewLog(DefaultLogConfig(), backend)
	require.NoError(t, err)

	x, err := tensor.New(tensor.Shape{0}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	y, err := tensor.New(tensor.Shape{0}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)

	require.NoError(t, layer.Forward(x, y))
	require.NoError(t, layer.Backward(y, x, true))
}

func BenchmarkLogForward(b *testing.B) {
	backend := cpu.New()
	layer, _ := NewLog(LogConfig{Base: NaturalBase, Scale: 2, Shift: 1}, backend)

	n := 1 << 20
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i%100) + 1
	}
	x, _ := tensor.FromSlice(data, tensor.Shape{n}, tensor.CPU)
	y, _ := tensor.New(tensor.Shape{n}, tensor.Float64, tensor.CPU)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = layer.Forward(x, y)
	}
}
