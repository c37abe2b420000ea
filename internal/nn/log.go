package nn

import (
	"fmt"
	"math"

	"github.com/ember-ml/ember/internal/tensor"
)

// NaturalBase selects the natural logarithm in LogConfig.Base.
const NaturalBase = -1

// LogConfig configures a Log layer.
//
// The layer computes y = log_base(scale * x + shift). Base must be
// NaturalBase (natural logarithm) or a positive value other than 1.
type LogConfig struct {
	Base  float64
	Scale float64
	Shift float64
}

// DefaultLogConfig returns the identity configuration: natural log,
// scale 1, shift 0.
func DefaultLogConfig() LogConfig {
	return LogConfig{Base: NaturalBase, Scale: 1, Shift: 0}
}

// LogParams holds the four immutable coefficients of a Log layer,
// derived once at construction and read by every Forward/Backward call.
//
// BackwardNumScale folds the constant factor of the analytic derivative,
// InputScale / ln(base), so the backward pass does one reciprocal, one
// optional scale and one multiply per element.
type LogParams struct {
	InputScale       float64
	InputShift       float64
	BaseScale        float64
	BackwardNumScale float64
}

// Log computes the element-wise logarithm of an affinely transformed input:
//
//	y = base_scale * ln(input_scale * x + input_shift)
//
// where base_scale = 1/ln(base) encodes the change of base (1 for the
// natural logarithm). The layer is stateless per call: parameters are set
// at construction and shared read-only across invocations, so a single
// layer may serve concurrent Forward/Backward calls on disjoint tensors.
//
// The layer does not validate the logarithm's domain. Inputs for which
// input_scale*x + input_shift <= 0 produce NaN or -Inf, propagated
// silently from the underlying primitive.
type Log struct {
	params  LogParams
	backend Backend
}

// NewLog creates a Log layer from cfg.
// Returns an error for a degenerate base (zero, negative other than
// NaturalBase, or 1, whose logarithm cannot normalize anything).
func NewLog(cfg LogConfig, backend Backend) (*Log, error) {
	if cfg.Base != NaturalBase && cfg.Base <= 0 {
		return nil, fmt.Errorf("log layer: base must be positive or NaturalBase (-1), got %v", cfg.Base)
	}
	if cfg.Base == 1 {
		return nil, fmt.Errorf("log layer: base 1 is degenerate (ln(1) == 0)")
	}

	lnBase := 1.0
	if cfg.Base != NaturalBase {
		lnBase = math.Log(cfg.Base)
	}

	return &Log{
		params: LogParams{
			InputScale:       cfg.Scale,
			InputShift:       cfg.Shift,
			BaseScale:        1 / lnBase,
			BackwardNumScale: cfg.Scale / lnBase,
		},
		backend: backend,
	}, nil
}

// Params returns the derived coefficients.
func (l *Log) Params() LogParams {
	return l.params
}

// Forward computes top.value[i] = base_scale * ln(scale*bottom.value[i] + shift).
//
// Affine steps that are the identity (scale 1, shift 0) are skipped to
// avoid redundant passes over the buffer; skipping never changes the
// result, only the instruction count. Only top's value plane is written;
// bottom is not mutated.
func (l *Log) Forward(bottom, top *tensor.Tensor) error {
	p := l.params

	if fused, ok := l.backend.(AffineLogBackend); ok && bottom.DType() == tensor.Float32 {
		return fused.AffineLogForward(
			top.Value().Float32(), bottom.Value().Float32(),
			float32(p.InputScale), float32(p.InputShift), float32(p.BaseScale))
	}

	x := bottom.Value()
	y := top.Value()

	if p.InputScale == 1 && p.InputShift == 0 {
		l.backend.Log(y, x)
	} else {
		l.backend.Copy(y, x)
		if p.InputScale != 1 {
			l.backend.Scale(y, p.InputScale)
		}
		if p.InputShift != 0 {
			l.backend.AddScalar(y, p.InputShift)
		}
		l.backend.Log(y, y)
	}
	if p.BaseScale != 1 {
		l.backend.Scale(y, p.BaseScale)
	}
	return nil
}

// Backward computes the chain rule through the transform:
//
//	bottom.grad[i] = top.grad[i] * backward_num_scale / (scale*bottom.value[i] + shift)
//
// The affine argument is rebuilt in bottom's grad plane, inverted with a
// power of -1, scaled by the folded derivative constant and multiplied by
// the incoming gradient. When propagate is false the call is a no-op and
// bottom's grad plane is left untouched.
func (l *Log) Backward(top, bottom *tensor.Tensor, propagate bool) error {
	if !propagate {
		return nil
	}
	p := l.params

	if fused, ok := l.backend.(AffineLogBackend); ok && bottom.DType() == tensor.Float32 {
		return fused.AffineLogBackward(
			bottom.Grad().Float32(), top.Grad().Float32(), bottom.Value().Float32(),
			float32(p.InputScale), float32(p.InputShift), float32(p.BackwardNumScale))
	}

	x := bottom.Value()
	dy := top.Grad()
	dx := bottom.Grad()

	l.backend.Copy(dx, x)
	if p.InputScale != 1 {
		l.backend.Scale(dx, p.InputScale)
	}
	if p.InputShift != 0 {
		l.backend.AddScalar(dx, p.InputShift)
	}
	l.backend.Powx(dx, dx, -1)
	if p.BackwardNumScale != 1 {
		l.backend.Scale(dx, p.BackwardNumScale)
	}
	l.backend.Mul(dx, dx, dy)
	return nil
}
