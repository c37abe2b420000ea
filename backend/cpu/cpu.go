// Copyright 2025 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/ember-ml/ember/internal/backend/cpu"
	"github.com/ember-ml/ember/internal/parallel"
	"github.com/ember-ml/ember/nn"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of the vector-math
// primitives with goroutine-chunked parallel dispatch.
type Backend = internalcpu.CPUBackend

// Config controls the parallel dispatch of CPU kernels.
type Config = parallel.Config

// Compile-time check that Backend implements nn.Backend.
var _ nn.Backend = (*Backend)(nil)

// New creates a new CPU backend with default dispatch settings.
//
// Example:
//
//	backend := cpu.New()
//	layer, err := nn.NewLog(nn.DefaultLogConfig(), backend)
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit dispatch settings.
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns the default dispatch settings based on CPU count.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}
