/*package interpolate computes natural cubic splines through tables of
strictly increasing points and evaluates them inside the tabulated range.

Solve turns a table into a Coeffs, which can be evaluated directly with a
linear interval scan or wrapped in a Spline for binary search lookups.
*/
package interpolate

// Interpolator is a 1D interpolator.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) (float64, error)
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) ([]float64, error)
}

var (
	_ Interpolator = &Coeffs{}
	_ Interpolator = &Spline{}
)
