package nn

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ember-ml/ember/internal/tensor"
)

// Layer is a differentiable elementwise transform inside a computation
// graph. Forward maps bottom's value plane to top's value plane; Backward
// maps top's grad plane to bottom's grad plane via the chain rule.
// The host graph validates shape compatibility when wiring layers;
// implementations do not re-check it per call.
type Layer interface {
	Forward(bottom, top *tensor.Tensor) error
	Backward(top, bottom *tensor.Tensor, propagate bool) error
}

// LayerConfig selects and configures a layer by type name.
type LayerConfig struct {
	Type string
	Log  LogConfig
}

// LayerBuilder constructs a layer from its configuration.
type LayerBuilder func(cfg LayerConfig, backend Backend) (Layer, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]LayerBuilder{}
)

// RegisterLayer registers a layer builder under a type name.
// Registering the same name twice panics; that is a wiring bug.
func RegisterLayer(name string, builder LayerBuilder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("nn: layer type %q registered twice", name))
	}
	registry[name] = builder
}

// RegisteredLayers returns the registered type names, sorted.
func RegisteredLayers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewLayer instantiates a layer by its configured type name.
func NewLayer(cfg LayerConfig, backend Backend) (Layer, error) {
	registryMu.RLock()
	builder, ok := registry[cfg.Type]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("nn: unknown layer type %q (registered: %v)", cfg.Type, RegisteredLayers())
	}
	return builder(cfg, backend)
}

func init() {
	RegisterLayer("Log", func(cfg LayerConfig, backend Backend) (Layer, error) {
		return NewLog(cfg.Log, backend)
	})
}
