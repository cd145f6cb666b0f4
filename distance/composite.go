package distance

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecrank/internal/math32"
)

// Part describes one consecutive sub-range of a composite vector.
//
// A Part with Len 0 takes an equal share of the elements the fixed-size parts
// leave over.
type Part struct {
	Len    int
	Weight float32
}

// Composite returns an ascending metric scoring
//
//	Σₚ wₚ · (1 − Σᵢ∈ₚ min(aᵢ, bᵢ))
//
// over the given parts. Weights are normalized to sum to one.
func Composite(name string, parts ...Part) (Metric, error) {
	if len(parts) == 0 {
		return Metric{}, errors.New("composite metric needs at least one part")
	}

	var total float32
	for i, p := range parts {
		if p.Len < 0 {
			return Metric{}, fmt.Errorf("part %d: negative length %d", i, p.Len)
		}
		if p.Weight < 0 {
			return Metric{}, fmt.Errorf("part %d: negative weight %v", i, p.Weight)
		}
		total += p.Weight
	}
	if total == 0 {
		return Metric{}, errors.New("composite metric weights sum to zero")
	}

	layout := make([]Part, len(parts))
	for i, p := range parts {
		layout[i] = Part{Len: p.Len, Weight: p.Weight / total}
	}

	return NewMetric(name, Ascending, func(a, b []float32) (float32, error) {
		bounds, err := split(layout, len(a))
		if err != nil {
			return 0, err
		}

		var score float32
		start := 0
		for i, end := range bounds {
			score += layout[i].Weight * (1 - math32.MinSum(a[start:end], b[start:end]))
			start = end
		}
		return score, nil
	}), nil
}

// split resolves the end offset of every part for a vector of length dim.
func split(layout []Part, dim int) ([]int, error) {
	fixed, flexible := 0, 0
	for _, p := range layout {
		if p.Len == 0 {
			flexible++
		} else {
			fixed += p.Len
		}
	}

	rest := dim - fixed
	if rest < 0 || (flexible == 0 && rest != 0) || (flexible > 0 && rest%flexible != 0) {
		return nil, fmt.Errorf("%w: %d parts over %d elements", ErrIncompatibleLayout, len(layout), dim)
	}

	share := 0
	if flexible > 0 {
		share = rest / flexible
	}

	bounds := make([]int, len(layout))
	end := 0
	for i, p := range layout {
		if p.Len == 0 {
			end += share
		} else {
			end += p.Len
		}
		bounds[i] = end
	}
	return bounds, nil
}

// MultiRegionHistogram returns the composite metric over the given number of
// equally sized, equally weighted histogram regions.
func MultiRegionHistogram(regions int) (Metric, error) {
	if regions <= 0 {
		return Metric{}, fmt.Errorf("invalid region count: %d", regions)
	}
	parts := make([]Part, regions)
	for i := range parts {
		parts[i] = Part{Weight: 1}
	}
	return Composite(NameMultiRegionHistogram, parts...)
}

// TextureColor returns the composite metric over a color histogram followed
// by a texture histogram of equal length. colorWeight must be in [0, 1]; the
// texture half receives 1 - colorWeight.
func TextureColor(colorWeight float32) (Metric, error) {
	if colorWeight < 0 || colorWeight > 1 {
		return Metric{}, fmt.Errorf("invalid color weight: %v", colorWeight)
	}
	return Composite(NameTextureColor,
		Part{Weight: colorWeight},
		Part{Weight: 1 - colorWeight},
	)
}
