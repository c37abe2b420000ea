// Copyright 2025 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for the Ember kernels.
//
// # Overview
//
// This package implements the vector-math primitive set with:
//   - Pure Go implementation (no CGO)
//   - Float32 and Float64 support
//   - Goroutine-chunked parallel dispatch over buffer indices
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/backend/cpu"
//	    "github.com/ember-ml/ember/nn"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    layer, _ := nn.NewLog(nn.DefaultLogConfig(), backend)
//	}
//
// # Thread Safety
//
// The backend holds only read-only dispatch configuration and is safe for
// concurrent use on disjoint tensors. Concurrent kernels aliasing the
// same plane are the caller's responsibility.
//
// For GPU acceleration, see the webgpu package.
package cpu
