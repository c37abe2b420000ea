// Copyright 2025 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/ember-ml/ember/internal/nn"
)

// Layer is a differentiable elementwise transform with explicit
// Forward and Backward passes.
type Layer = nn.Layer

// Backend is the set of vector-math primitives layers are built from.
type Backend = nn.Backend

// AffineLogBackend is an optional backend interface for fused dispatch
// of the whole affine-log transform in one kernel.
type AffineLogBackend = nn.AffineLogBackend

// Log computes y = base_scale * ln(scale*x + shift) element by element.
type Log = nn.Log

// LogConfig configures a Log layer.
type LogConfig = nn.LogConfig

// LogParams holds the four derived coefficients of a Log layer.
type LogParams = nn.LogParams

// LayerConfig selects and configures a layer by type name.
type LayerConfig = nn.LayerConfig

// LayerBuilder constructs a layer from its configuration.
type LayerBuilder = nn.LayerBuilder

// NaturalBase selects the natural logarithm in LogConfig.Base.
const NaturalBase = nn.NaturalBase

// DefaultLogConfig returns the identity configuration: natural log,
// scale 1, shift 0.
func DefaultLogConfig() LogConfig {
	return nn.DefaultLogConfig()
}

// NewLog creates a Log layer from cfg.
//
// Example:
//
//	backend := cpu.New()
//	layer, err := nn.NewLog(nn.LogConfig{Base: 2, Scale: 1, Shift: 0}, backend)
func NewLog(cfg LogConfig, backend Backend) (*Log, error) {
	return nn.NewLog(cfg, backend)
}

// RegisterLayer registers a layer builder under a type name.
func RegisterLayer(name string, builder LayerBuilder) {
	nn.RegisterLayer(name, builder)
}

// RegisteredLayers returns the registered type names, sorted.
func RegisteredLayers() []string {
	return nn.RegisteredLayers()
}

// NewLayer instantiates a layer by its configured type name.
//
// Example:
//
//	layer, err := nn.NewLayer(nn.LayerConfig{Type: "Log", Log: nn.DefaultLogConfig()}, backend)
func NewLayer(cfg LayerConfig, backend Backend) (Layer, error) {
	return nn.NewLayer(cfg, backend)
}
