package tensor

import (
	"fmt"
	"unsafe"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// Tensor is a fixed-size buffer of floating-point elements with two
// logically independent storage planes: value (forward activations) and
// grad (backpropagated sensitivity). The grad plane is allocated lazily
// on first access; the value plane always exists.
//
// The tensor owns its storage for the lifetime of the object and never
// resizes it. Kernels receive Plane views into one of the two planes and
// read or write elements in place.
type Tensor struct {
	shape  Shape
	dtype  DataType
	device Device
	value  []byte
	grad   []byte
}

// New creates a tensor with the given shape and dtype.
// Both planes are zero-initialized; grad is allocated on first access.
func New(shape Shape, dtype DataType, device Device) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &Tensor{
		shape:  shape.Clone(),
		dtype:  dtype,
		device: device,
		value:  make([]byte, shape.NumElements()*dtype.Size()),
	}, nil
}

// FromSlice creates a tensor with the value plane initialized from data.
// The data is copied; the caller keeps ownership of the slice.
func FromSlice[T Float](data []T, shape Shape, device Device) (*Tensor, error) {
	var dummy T
	t, err := New(shape, inferDataType(dummy), device)
	if err != nil {
		return nil, err
	}
	if len(data) != t.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, t.NumElements())
	}
	copy(asSlice[T](t.value, len(data)), data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.dtype
}

// Device returns the tensor's compute device.
func (t *Tensor) Device() Device {
	return t.device
}

// NumElements returns the total number of elements per plane.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// ByteSize returns the memory size of one plane in bytes.
func (t *Tensor) ByteSize() int {
	return t.NumElements() * t.dtype.Size()
}

// HasGrad reports whether the grad plane has been allocated.
func (t *Tensor) HasGrad() bool {
	return t.grad != nil
}

// EnsureGrad allocates the grad plane if it does not exist yet.
// The plane is zero-initialized on allocation.
func (t *Tensor) EnsureGrad() {
	if t.grad == nil {
		t.grad = make([]byte, t.ByteSize())
	}
}

// Value returns a view of the value plane.
func (t *Tensor) Value() Plane {
	return Plane{dtype: t.dtype, data: t.value, n: t.NumElements()}
}

// Grad returns a view of the grad plane, allocating it if needed.
func (t *Tensor) Grad() Plane {
	t.EnsureGrad()
	return Plane{dtype: t.dtype, data: t.grad, n: t.NumElements()}
}

// Plane is a typed view over one of a tensor's two storage planes.
// Views alias the tensor's storage; writes through a view are visible to
// every other view of the same plane.
type Plane struct {
	dtype DataType
	data  []byte
	n     int
}

// DType returns the plane's element type.
func (p Plane) DType() DataType {
	return p.dtype
}

// Len returns the number of elements in the plane.
func (p Plane) Len() int {
	return p.n
}

// Float32 interprets the plane as []float32.
// Panics if the element type is not Float32.
func (p Plane) Float32() []float32 {
	if p.dtype != Float32 {
		panic(fmt.Sprintf("plane dtype is %s, not float32", p.dtype))
	}
	return asSlice[float32](p.data, p.n)
}

// Float64 interprets the plane as []float64.
// Panics if the element type is not Float64.
func (p Plane) Float64() []float64 {
	if p.dtype != Float64 {
		panic(fmt.Sprintf("plane dtype is %s, not float64", p.dtype))
	}
	return asSlice[float64](p.data, p.n)
}

// asSlice reinterprets a byte buffer as a typed slice without copying.
func asSlice[T Float](data []byte, n int) []T {
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length checked by the caller
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}
