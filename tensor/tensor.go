// Copyright 2025 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/ember-ml/ember/internal/tensor"
)

// Type aliases for public API

// Float is a constraint for tensor element types.
// Supported types: float32, float64.
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a fixed-size floating-point buffer with independent value and
// gradient planes.
type Tensor = tensor.Tensor

// Plane is a typed view over one plane of a tensor.
type Plane = tensor.Plane

// New creates a tensor with the given shape and dtype.
//
// Example:
//
//	x, err := tensor.New(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
func New(shape Shape, dtype DataType, device Device) (*Tensor, error) {
	return tensor.New(shape, dtype, device)
}

// FromSlice creates a tensor with the value plane initialized from data.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, tensor.CPU)
func FromSlice[T Float](data []T, shape Shape, device Device) (*Tensor, error) {
	return tensor.FromSlice(data, shape, device)
}
