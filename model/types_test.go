package model

import (
	"errors"
	"testing"

	"github.com/hupe1980/vecrank/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetLookup(t *testing.T) {
	ds := Dataset{
		{ID: "a", Vector: []float32{0}},
		{ID: "b", Vector: []float32{1}},
		{ID: "a", Vector: []float32{2}},
	}

	pos, ok := ds.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	pos, ok = ds.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, 1, pos)

	pos, ok = ds.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, pos)

}

func TestDatasetDimension(t *testing.T) {
	assert.Equal(t, 0, Dataset(nil).Dimension())
	assert.Equal(t, 3, Dataset{{ID: "a", Vector: []float32{1, 2, 3}}}.Dimension())
}

func TestDatasetValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		ds := Dataset{
			{ID: "a", Vector: []float32{0, 0}},
			{ID: "b", Vector: []float32{1, 1}},
		}
		assert.NoError(t, ds.Validate())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.ErrorIs(t, Dataset{}.Validate(), ErrEmptyDataset)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		ds := Dataset{
			{ID: "a", Vector: []float32{0}},
			{ID: "b", Vector: []float32{1}},
			{ID: "a", Vector: []float32{2}},
		}
		err := ds.Validate()

		var dup *DuplicateIDError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "a", dup.ID)
		assert.Equal(t, 0, dup.First)
		assert.Equal(t, 2, dup.Second)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		ds := Dataset{
			{ID: "a", Vector: []float32{0, 0}},
			{ID: "b", Vector: []float32{1, 1, 1}},
		}
		err := ds.Validate()
		assert.ErrorIs(t, err, distance.ErrDimensionMismatch)

		var de *DimensionError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "b", de.ID)
		assert.Equal(t, 1, de.Position)
		assert.Equal(t, 2, de.Expected)
		assert.Equal(t, 3, de.Actual)
	})
}

func TestMatch(t *testing.T) {
	matches := []Match{{ID: "b", Score: 2}, {ID: "c", Score: 50}}
	assert.Equal(t, []string{"b", "c"}, IDs(matches))
	assert.Equal(t, "b(2)", matches[0].String())
	assert.Empty(t, IDs(nil))
}
