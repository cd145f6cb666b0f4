package distance

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Canonical names of the built-in metrics.
const (
	NameSumOfSquaredDifference = "sum-of-squared-difference"
	NameHistogramIntersection  = "histogram-intersection"
	NameMultiRegionHistogram   = "multi-region-histogram"
	NameTextureColor           = "texture-and-color-combined"
)

var (
	// ErrUnknownMetric is returned when a metric name is not registered.
	ErrUnknownMetric = errors.New("unknown metric")

	// ErrDuplicateMetric is returned when a name or alias is registered twice.
	ErrDuplicateMetric = errors.New("metric already registered")
)

// Registry maps metric names and aliases to metrics.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	metrics map[string]Metric
	names   []string // canonical names only
}

// NewRegistry creates a registry holding the given metrics.
// It panics if two metrics share a name.
func NewRegistry(metrics ...Metric) *Registry {
	r := &Registry{metrics: make(map[string]Metric)}
	for _, m := range metrics {
		if err := r.Register(m); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds m under its name and the given aliases.
func (r *Registry) Register(m Metric, aliases ...string) error {
	if m.IsZero() || m.Name() == "" {
		return errors.New("metric must have a name and a scoring function")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	keys := append([]string{m.Name()}, aliases...)
	for i, k := range keys {
		if k == "" {
			return fmt.Errorf("metric %q: empty alias", m.Name())
		}
		if _, ok := r.metrics[k]; ok || slices.Contains(keys[:i], k) {
			return fmt.Errorf("%w: %q", ErrDuplicateMetric, k)
		}
	}

	for _, k := range keys {
		r.metrics[k] = m
	}
	r.names = append(r.names, m.Name())
	slices.Sort(r.names)
	return nil
}

// Resolve looks up a metric by canonical name or alias.
// Names are case-sensitive. An unregistered name yields ErrUnknownMetric.
func (r *Registry) Resolve(name string) (Metric, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.metrics[name]
	if !ok {
		return Metric{}, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return m, nil
}

// Names returns the sorted canonical names of all registered metrics.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.names)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry holding the built-in metrics.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewBuiltinRegistry()
	})
	return defaultRegistry
}

// NewBuiltinRegistry creates a fresh registry holding the built-in metrics and
// their aliases from the image matcher command line.
func NewBuiltinRegistry() *Registry {
	multi, err := MultiRegionHistogram(2)
	if err != nil {
		panic(err)
	}
	textureColor, err := TextureColor(0.5)
	if err != nil {
		panic(err)
	}

	r := NewRegistry()
	for _, reg := range []struct {
		m       Metric
		aliases []string
	}{
		{SumOfSquaredDifference(), []string{"ssd"}},
		{HistogramIntersection(), []string{"rgb-hist", "intersection"}},
		{multi, []string{"multi-hist"}},
		{textureColor, []string{"texture-color", "depth"}},
	} {
		if err := r.Register(reg.m, reg.aliases...); err != nil {
			panic(err)
		}
	}
	return r
}
