package interpolate

import (
	"math"
)

// Spline evaluates a set of spline coefficients using a binary search to find
// the interval containing each point. It gives exactly the same results as
// Coeffs.Eval, but lookups are O(log n), or O(1) for uniformly spaced knots.
//
// Spline holds no cache, so it is safe for concurrent use.
type Spline struct {
	c *Coeffs

	// Usually the input data is uniform. This is our estimate of the point
	// spacing.
	dx float64
}

// NewSpline creates a Spline which evaluates c.
func NewSpline(c *Coeffs) *Spline {
	lo, hi := c.Domain()
	return &Spline{c: c, dx: (hi - lo) / float64(c.Len()-1)}
}

// Coeffs returns the coefficients the Spline evaluates.
func (sp *Spline) Coeffs() *Coeffs { return sp.c }

// Eval computes the value of the spline at q.
//
// q must be within the range of x values given to Solve.
func (sp *Spline) Eval(q float64) (float64, error) {
	if err := sp.c.checkRange(0, q); err != nil {
		return 0, err
	}
	return sp.c.segment(sp.search(q), q), nil
}

// EvalAll evaluates the spline at all the given points. If an output array is
// given, the output is written to that array (the array is still returned as
// a convenience).
//
// If more than one output array is provided, only the first is used.
func (sp *Spline) EvalAll(qs []float64, out ...[]float64) ([]float64, error) {
	for i, q := range qs {
		if err := sp.c.checkRange(i, q); err != nil {
			return nil, err
		}
	}

	res := outBuffer(len(qs), out)
	for i, q := range qs {
		res[i] = sp.c.segment(sp.search(q), q)
	}
	return res, nil
}

// Diff computes the derivative of spline at the given point to the
// specified order. Orders above 3 are always zero.
func (sp *Spline) Diff(q float64, order int) (float64, error) {
	if err := sp.c.checkRange(0, q); err != nil {
		return 0, err
	}
	return sp.c.segmentDiff(sp.search(q), q, order), nil
}

// search returns the smallest j >= 1 such that q <= xs[j]. This is the same
// interval Coeffs.scan finds. q must be in range.
func (sp *Spline) search(q float64) int {
	xs := sp.c.xs
	n := len(xs)

	// Guess under the assumption of uniform spacing.
	guess := int(math.Ceil((q - xs[0]) / sp.dx))
	if guess < 1 {
		guess = 1
	}
	if guess < n && q <= xs[guess] && (guess == 1 || q > xs[guess-1]) {
		return guess
	}

	// Binary search.
	lo, hi := 1, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if q <= xs[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
