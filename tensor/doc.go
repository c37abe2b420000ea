// Copyright 2025 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the buffer abstraction for Ember kernels.
//
// # Overview
//
// A Tensor is a fixed-length sequence of floating-point elements with two
// logically independent planes: value (forward activations) and grad
// (backpropagated sensitivity). Layers receive read and write views of
// the planes; they never allocate, free or resize the underlying storage.
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, tensor.CPU)
//	    values := x.Value().Float32()
//	    grads := x.Grad().Float32() // allocated lazily, zero-filled
//	}
//
// # Supported Data Types
//
//   - float32, float64
//
// # Device Support
//
//   - CPU: pure Go kernels with goroutine-chunked dispatch
//   - WebGPU: fused compute-shader kernels (Windows)
package tensor
