package cpu

import (
	"fmt"
	"math"

	"github.com/ember-ml/ember/internal/parallel"
	"github.com/ember-ml/ember/internal/tensor"
)

// checkPair panics unless the two planes have matching length and dtype.
func checkPair(op string, a, b tensor.Plane) {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("%s: length mismatch: %d vs %d", op, a.Len(), b.Len()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}
}

// Copy copies src into dst element by element.
func (cpu *CPUBackend) Copy(dst, src tensor.Plane) {
	checkPair("copy", dst, src)

	switch dst.DType() {
	case tensor.Float32:
		copy(dst.Float32(), src.Float32())
	case tensor.Float64:
		copy(dst.Float64(), src.Float64())
	default:
		panic(fmt.Sprintf("copy: unsupported dtype %s", dst.DType()))
	}
}

// Scale multiplies each element of x by alpha in place: x[i] *= alpha.
func (cpu *CPUBackend) Scale(x tensor.Plane, alpha float64) {
	switch x.DType() {
	case tensor.Float32:
		data := x.Float32()
		a := float32(alpha)
		parallel.For(len(data), func(i int) { data[i] *= a }, cpu.cfg)
	case tensor.Float64:
		data := x.Float64()
		parallel.For(len(data), func(i int) { data[i] *= alpha }, cpu.cfg)
	default:
		panic(fmt.Sprintf("scale: unsupported dtype %s", x.DType()))
	}
}

// AddScalar adds alpha to each element of x in place: x[i] += alpha.
func (cpu *CPUBackend) AddScalar(x tensor.Plane, alpha float64) {
	switch x.DType() {
	case tensor.Float32:
		data := x.Float32()
		a := float32(alpha)
		parallel.For(len(data), func(i int) { data[i] += a }, cpu.cfg)
	case tensor.Float64:
		data := x.Float64()
		parallel.For(len(data), func(i int) { data[i] += alpha }, cpu.cfg)
	default:
		panic(fmt.Sprintf("addScalar: unsupported dtype %s", x.DType()))
	}
}

// Log computes the element-wise natural logarithm: dst[i] = ln(src[i]).
// dst may alias src for in-place operation. Non-positive inputs produce
// NaN or -Inf, following math.Log.
func (cpu *CPUBackend) Log(dst, src tensor.Plane) {
	checkPair("log", dst, src)

	switch dst.DType() {
	case tensor.Float32:
		in := src.Float32()
		out := dst.Float32()
		parallel.For(len(in), func(i int) {
			out[i] = float32(math.Log(float64(in[i])))
		}, cpu.cfg)
	case tensor.Float64:
		in := src.Float64()
		out := dst.Float64()
		parallel.For(len(in), func(i int) {
			out[i] = math.Log(in[i])
		}, cpu.cfg)
	default:
		panic(fmt.Sprintf("log: unsupported dtype %s", dst.DType()))
	}
}

// Powx raises each element of src to the power p: dst[i] = src[i]^p.
// dst may alias src for in-place operation.
func (cpu *CPUBackend) Powx(dst, src tensor.Plane, p float64) {
	checkPair("powx", dst, src)

	switch dst.DType() {
	case tensor.Float32:
		in := src.Float32()
		out := dst.Float32()
		parallel.For(len(in), func(i int) {
			out[i] = float32(math.Pow(float64(in[i]), p))
		}, cpu.cfg)
	case tensor.Float64:
		in := src.Float64()
		out := dst.Float64()
		parallel.For(len(in), func(i int) {
			out[i] = math.Pow(in[i], p)
		}, cpu.cfg)
	default:
		panic(fmt.Sprintf("powx: unsupported dtype %s", dst.DType()))
	}
}

// Mul computes the element-wise product: dst[i] = a[i] * b[i].
// dst may alias either input.
func (cpu *CPUBackend) Mul(dst, a, b tensor.Plane) {
	checkPair("mul", dst, a)
	checkPair("mul", a, b)

	switch dst.DType() {
	case tensor.Float32:
		x := a.Float32()
		y := b.Float32()
		out := dst.Float32()
		parallel.For(len(out), func(i int) { out[i] = x[i] * y[i] }, cpu.cfg)
	case tensor.Float64:
		x := a.Float64()
		y := b.Float64()
		out := dst.Float64()
		parallel.For(len(out), func(i int) { out[i] = x[i] * y[i] }, cpu.cfg)
	default:
		panic(fmt.Sprintf("mul: unsupported dtype %s", dst.DType()))
	}
}
