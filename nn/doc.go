// Copyright 2025 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides differentiable elementwise transform layers.
//
// # Overview
//
// This package contains:
//   - Log: the affine-then-logarithm transform with exact backward pass
//   - Layer interface and a name-keyed registry for graph construction
//   - Backend: the vector-math primitive set layers are staged from
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/backend/cpu"
//	    "github.com/ember-ml/ember/nn"
//	    "github.com/ember-ml/ember/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    layer, _ := nn.NewLog(nn.DefaultLogConfig(), backend)
//
//	    x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, tensor.CPU)
//	    y, _ := tensor.New(tensor.Shape{3}, tensor.Float32, tensor.CPU)
//
//	    layer.Forward(x, y)                // y.value = ln(x.value)
//	    layer.Backward(y, x, true)         // x.grad = y.grad / x.value
//	}
//
// # The transform
//
// Forward computes y = base_scale * ln(scale*x + shift) with fast paths
// that skip identity affine steps. Backward applies the chain rule,
// folding the derivative's constant factor scale/ln(base) into one
// precomputed coefficient.
//
// # Gradient propagation
//
// Backward takes a propagate flag; when false the call is a no-op and the
// input's grad plane is left untouched. This mirrors graph executors that
// skip gradient computation for frozen inputs.
package nn
