// Package math32 provides float32 vector kernels.
// This is an internal package - external users should use the distance package.
package math32

// SquaredL2 calculates the sum of squared differences of a and b.
// Assumes len(a) == len(b); callers validate lengths.
func SquaredL2(a, b []float32) float32 {
	var s0, s1, s2, s3 float32

	n := len(a) &^ 3
	b = b[:len(a)]

	for i := 0; i < n; i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}

	for i := n; i < len(a); i++ {
		d := a[i] - b[i]
		s0 += d * d
	}

	return s0 + s1 + s2 + s3
}

// MinSum calculates the histogram intersection of a and b: the sum of the
// element-wise minimum.
// Assumes len(a) == len(b); callers validate lengths.
func MinSum(a, b []float32) float32 {
	var s0, s1, s2, s3 float32

	n := len(a) &^ 3
	b = b[:len(a)]

	for i := 0; i < n; i += 4 {
		s0 += min(a[i], b[i])
		s1 += min(a[i+1], b[i+1])
		s2 += min(a[i+2], b[i+2])
		s3 += min(a[i+3], b[i+3])
	}

	for i := n; i < len(a); i++ {
		s0 += min(a[i], b[i])
	}

	return s0 + s1 + s2 + s3
}
