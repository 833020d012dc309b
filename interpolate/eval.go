package interpolate

import (
	"fmt"
	"math"
)

// Evaluate computes the spline described by c at every point in qs. The
// returned slice has the same length and order as qs.
//
// Every query must lie in the closed domain of c. If any does not, an
// *OutOfRangeError describing the first such query is returned along with a
// nil slice.
func Evaluate(qs []float64, c *Coeffs) ([]float64, error) {
	return c.EvalAll(qs)
}

// Eval computes the value of the spline at q.
func (c *Coeffs) Eval(q float64) (float64, error) {
	if err := c.checkRange(0, q); err != nil {
		return 0, err
	}
	return c.segment(c.scan(q), q), nil
}

// EvalAll evaluates the spline at all the given points. If an output array is
// given, the output is written to that array (the array is still returned as
// a convenience).
//
// Intervals are found with a linear scan, so each lookup is O(Len()). Use a
// Spline for large tables.
func (c *Coeffs) EvalAll(qs []float64, out ...[]float64) ([]float64, error) {
	for i, q := range qs {
		if err := c.checkRange(i, q); err != nil {
			return nil, err
		}
	}

	res := outBuffer(len(qs), out)
	for i, q := range qs {
		res[i] = c.segment(c.scan(q), q)
	}
	return res, nil
}

// scan returns the smallest j >= 1 with q <= xs[j]. q must be in range.
func (c *Coeffs) scan(q float64) int {
	for j := 1; j < len(c.xs); j++ {
		if q <= c.xs[j] {
			return j
		}
	}
	return len(c.xs) - 1
}

func (c *Coeffs) checkRange(i int, q float64) error {
	lo, hi := c.Domain()
	if math.IsNaN(q) || q < lo || q > hi {
		return &OutOfRangeError{Index: i, Value: q, Lo: lo, Hi: hi}
	}
	return nil
}

// outBuffer returns the first array in out, or a new one if out is empty.
func outBuffer(n int, out [][]float64) []float64 {
	if len(out) == 0 {
		return make([]float64, n)
	}
	if len(out[0]) != n {
		panic(fmt.Sprintf(
			"Output array has length %d, but %d points were given.",
			len(out[0]), n,
		))
	}
	return out[0]
}
