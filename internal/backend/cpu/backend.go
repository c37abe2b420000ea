// Package cpu implements the elementwise vector-math primitives on the host CPU.
//
// Every kernel is data-parallel: element i of the output depends only on
// element i of the inputs, so work is spread across goroutines with
// parallel.For and no synchronization. Kernels panic on dtype or length
// mismatch; those are programmer errors caught when wiring the graph, not
// runtime conditions. Domain errors (log of a non-positive value) are not
// detected: the math primitive's NaN/-Inf result passes through.
package cpu

import (
	"github.com/ember-ml/ember/internal/parallel"
)

// CPUBackend implements the vector-math primitives on the host CPU.
type CPUBackend struct {
	cfg parallel.Config
}

// New creates a CPU backend with default parallel dispatch settings.
func New() *CPUBackend {
	return &CPUBackend{cfg: parallel.DefaultConfig()}
}

// NewWithConfig creates a CPU backend with explicit dispatch settings.
// Useful for forcing sequential execution in benchmarks and tests.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{cfg: cfg}
}
