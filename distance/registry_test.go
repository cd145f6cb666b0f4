package distance

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRegistry(t *testing.T) {
	r := NewBuiltinRegistry()

	assert.Equal(t, []string{
		NameHistogramIntersection,
		NameMultiRegionHistogram,
		NameSumOfSquaredDifference,
		NameTextureColor,
	}, r.Names())

	tests := []struct {
		name      string
		canonical string
		dir       Direction
	}{
		{"ssd", NameSumOfSquaredDifference, Ascending},
		{NameSumOfSquaredDifference, NameSumOfSquaredDifference, Ascending},
		{"rgb-hist", NameHistogramIntersection, Descending},
		{"intersection", NameHistogramIntersection, Descending},
		{"multi-hist", NameMultiRegionHistogram, Ascending},
		{"texture-color", NameTextureColor, Ascending},
		{"depth", NameTextureColor, Ascending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := r.Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.canonical, m.Name())
			assert.Equal(t, tt.dir, m.Direction())
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	r := NewBuiltinRegistry()

	for _, name := range []string{"cosine-unsupported", "", "SSD"} {
		m, err := r.Resolve(name)
		assert.ErrorIs(t, err, ErrUnknownMetric)
		assert.True(t, m.IsZero())
	}
}

func TestRegister(t *testing.T) {
	r := NewRegistry()

	custom := NewMetric("always-one", Ascending, func(a, b []float32) (float32, error) { return 1, nil })
	require.NoError(t, r.Register(custom, "one"))

	m, err := r.Resolve("one")
	require.NoError(t, err)
	got, err := m.Score([]float32{1}, []float32{2})
	require.NoError(t, err)
	assert.Equal(t, float32(1), got)

	assert.ErrorIs(t, r.Register(custom), ErrDuplicateMetric)
	assert.ErrorIs(t, r.Register(SumOfSquaredDifference(), "one"), ErrDuplicateMetric)
	assert.ErrorIs(t, r.Register(HistogramIntersection(), "x", "x"), ErrDuplicateMetric)
	assert.Error(t, r.Register(HistogramIntersection(), ""))
	assert.Error(t, r.Register(Metric{}))

	// Failed registrations leave no partial state behind.
	_, err = r.Resolve(NameHistogramIntersection)
	assert.ErrorIs(t, err, ErrUnknownMetric)
	assert.Equal(t, []string{"always-one"}, r.Names())
}

func TestNewRegistryPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry(SumOfSquaredDifference(), SumOfSquaredDifference())
	})
}

func TestDefaultRegistryConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := Default().Resolve("ssd")
			assert.NoError(t, err)
			assert.Equal(t, NameSumOfSquaredDifference, m.Name())
		}()
	}
	wg.Wait()
	assert.Same(t, Default(), Default())
}
