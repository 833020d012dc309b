package interpolate

import (
	"math"
)

// naturalBoundary is the value of the second derivative at both ends of a
// natural spline.
const naturalBoundary = 0.0

// Coeffs is the coefficient set of a natural cubic spline. It contains the
// sample points, the interval widths, and the second derivative of the spline
// at every knot.
//
// A Coeffs is never modified after Solve returns it, so it may be shared
// between any number of goroutines.
type Coeffs struct {
	xs, ys []float64
	// hs[i] = xs[i+1] - xs[i]
	hs []float64
	// zs[j] is the second derivative at xs[j]. zs[0] and zs[n-1] are always
	// naturalBoundary.
	zs []float64
}

// Solve computes the coefficients of the natural cubic spline which passes
// through the points (xs[i], ys[i]). xs must be strictly increasing and there
// must be at least two points.
//
// xs and ys are copied, so the caller is free to modify them afterwards.
// Invalid input results in an *InvalidInputError.
func Solve(xs, ys []float64) (*Coeffs, error) {
	if err := checkSamples(xs, ys); err != nil {
		return nil, err
	}

	n := len(xs)
	c := &Coeffs{
		xs: make([]float64, n),
		ys: make([]float64, n),
		hs: make([]float64, n-1),
		zs: make([]float64, n),
	}
	copy(c.xs, xs)
	copy(c.ys, ys)

	for i := range c.hs {
		c.hs[i] = c.xs[i+1] - c.xs[i]
	}

	c.secondDerivative()
	return c, nil
}

// secondDerivative fills in zs by solving the tridiagonal system for the
// interior knots.
func (c *Coeffs) secondDerivative() {
	xs, ys, hs := c.xs, c.ys, c.hs
	n := len(xs)

	// These arrays do not escape to the heap. Index 0 is the left boundary
	// and is never read from as.
	as := make([]float64, n-1)
	ls, mus, zTmp := make([]float64, n-1), make([]float64, n-1), make([]float64, n-1)

	for i := 1; i < n-1; i++ {
		as[i] = 3 * ((ys[i+1]-ys[i])/hs[i] - (ys[i]-ys[i-1])/hs[i-1])
	}

	// Forward sweep.
	ls[0], mus[0], zTmp[0] = 1, 0, 0
	for i := 1; i < n-1; i++ {
		ls[i] = 2*(xs[i+1]-xs[i-1]) - hs[i-1]*mus[i-1]
		mus[i] = hs[i] / ls[i]
		zTmp[i] = (as[i] - hs[i-1]*zTmp[i-1]) / ls[i]
	}

	// Back substitution. cs[i] is half the second derivative at xs[i].
	cs := make([]float64, n)
	cs[0], cs[n-1] = naturalBoundary, naturalBoundary
	for i := n - 2; i >= 1; i-- {
		cs[i] = zTmp[i] - mus[i]*cs[i+1]
	}

	for i := 1; i < n-1; i++ {
		c.zs[i] = 2 * cs[i]
	}
	c.zs[0], c.zs[n-1] = naturalBoundary, naturalBoundary
}

func checkSamples(xs, ys []float64) error {
	if len(xs) < 2 {
		return &InvalidInputError{Cond: TooFewSamples, XLen: len(xs), YLen: len(ys)}
	} else if len(xs) != len(ys) {
		return &InvalidInputError{Cond: LengthMismatch, XLen: len(xs), YLen: len(ys)}
	}

	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return &InvalidInputError{
				Cond: NonFinite, Index: i, XLen: len(xs), YLen: len(ys),
			}
		}
	}

	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return &InvalidInputError{
				Cond: NotIncreasing, Index: i, XLen: len(xs), YLen: len(ys),
			}
		}
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Len returns the number of knots in the spline.
func (c *Coeffs) Len() int { return len(c.xs) }

// Domain returns the first and last knots. Queries must lie in [lo, hi].
func (c *Coeffs) Domain() (lo, hi float64) { return c.xs[0], c.xs[len(c.xs)-1] }

// X returns a copy of the knot positions.
func (c *Coeffs) X() []float64 { return clone(c.xs) }

// Y returns a copy of the knot values.
func (c *Coeffs) Y() []float64 { return clone(c.ys) }

// H returns a copy of the interval widths. It has length Len() - 1.
func (c *Coeffs) H() []float64 { return clone(c.hs) }

// Z returns a copy of the second derivatives at each knot. The first and last
// elements are exactly zero.
func (c *Coeffs) Z() []float64 { return clone(c.zs) }

func clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}

// segment evaluates the cubic on the interval [xs[j-1], xs[j]] at q. q is not
// required to lie in that interval.
func (c *Coeffs) segment(j int, q float64) float64 {
	xl, xr := c.xs[j-1], c.xs[j]
	yl, yr := c.ys[j-1], c.ys[j]
	zl, zr := c.zs[j-1], c.zs[j]
	h := c.hs[j-1]

	dl, dr := q-xl, xr-q
	return (zr*dl*dl*dl+zl*dr*dr*dr)/(6*h) +
		(yr/h-zr*h/6)*dl +
		(yl/h-zl*h/6)*dr
}

// segmentDiff computes the derivative of the given order of the cubic on
// [xs[j-1], xs[j]] at q.
func (c *Coeffs) segmentDiff(j int, q float64, order int) float64 {
	xl, xr := c.xs[j-1], c.xs[j]
	yl, yr := c.ys[j-1], c.ys[j]
	zl, zr := c.zs[j-1], c.zs[j]
	h := c.hs[j-1]

	dl, dr := q-xl, xr-q
	switch order {
	case 0:
		return c.segment(j, q)
	case 1:
		return (zr*dl*dl-zl*dr*dr)/(2*h) + (yr-yl)/h - (zr-zl)*h/6
	case 2:
		return (zr*dl + zl*dr) / h
	case 3:
		return (zr - zl) / h
	default:
		return 0
	}
}
