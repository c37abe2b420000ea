package nn

import (
	"github.com/ember-ml/ember/internal/tensor"
)

// Backend is the set of vector-math primitives layers are built from.
// Each primitive operates over a whole plane of N elements, in parallel,
// with no cross-index dependency. Implementations are assumed correct and
// tested on their own; layers only stage them.
type Backend interface {
	// Copy copies src into dst element by element.
	Copy(dst, src tensor.Plane)
	// Scale multiplies x by alpha in place.
	Scale(x tensor.Plane, alpha float64)
	// AddScalar adds alpha to x in place.
	AddScalar(x tensor.Plane, alpha float64)
	// Log computes dst[i] = ln(src[i]); dst may alias src.
	Log(dst, src tensor.Plane)
	// Powx computes dst[i] = src[i]^p; dst may alias src.
	Powx(dst, src tensor.Plane, p float64)
	// Mul computes dst[i] = a[i] * b[i]; dst may alias either input.
	Mul(dst, a, b tensor.Plane)
}

// AffineLogBackend is an optional interface for backends that can run the
// whole affine-log transform as one fused kernel instead of the staged
// primitive sequence. The WebGPU backend implements it; the Log layer
// dispatches through it when available (float32 only).
type AffineLogBackend interface {
	// AffineLogForward computes y[i] = baseScale * ln(scale*x[i] + shift).
	AffineLogForward(y, x []float32, scale, shift, baseScale float32) error
	// AffineLogBackward computes dx[i] = dy[i] * numScale / (scale*x[i] + shift).
	AffineLogBackward(dx, dy, x []float32, scale, shift, numScale float32) error
}
