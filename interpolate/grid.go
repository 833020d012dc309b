package interpolate

import (
	"fmt"
)

// Linspace returns n uniformly spaced points from lo to hi, inclusive. The
// last point is exactly hi, so the grid can always be evaluated by a spline
// whose domain is [lo, hi].
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		panic(fmt.Sprintf("Linspace needs at least 2 points, but got %d.", n))
	}

	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*dx
	}
	xs[n-1] = hi
	return xs
}
