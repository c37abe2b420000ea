//go:build windows

// Copyright 2025 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated fused kernels.
//
// The backend dispatches the whole affine-log transform as a single WGSL
// compute shader per direction (forward/backward), one thread per element.
//
// Example:
//
//	import (
//	    "github.com/ember-ml/ember/backend/webgpu"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//	}
package webgpu

import (
	internalwebgpu "github.com/ember-ml/ember/internal/backend/webgpu"
	"github.com/ember-ml/ember/nn"
)

// Backend represents the WebGPU backend implementation for the fused
// affine-log kernels.
type Backend = internalwebgpu.Backend

// Compile-time checks: the backend serves both the staged primitives and
// the fused dispatch interface.
var (
	_ nn.Backend          = (*Backend)(nil)
	_ nn.AffineLogBackend = (*Backend)(nil)
)

// New creates a new WebGPU backend.
//
// This function initializes the WebGPU device and returns a backend ready
// for kernel dispatch. Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// Useful for graceful fallback to the CPU backend:
//
//	if webgpu.IsAvailable() {
//	    gpu, _ := webgpu.New()
//	    defer gpu.Release()
//	} else {
//	    backend := cpu.New()
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
