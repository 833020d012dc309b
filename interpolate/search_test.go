package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplineMatchesScan(t *testing.T) {
	uniform := Linspace(-3, 7, 41)
	uniformYs := make([]float64, len(uniform))
	for i, x := range uniform {
		uniformYs[i] = x * x
	}
	randXs, randYs := randomTable(21, 60)

	table := []struct {
		name   string
		xs, ys []float64
	}{
		{"uniform", uniform, uniformYs},
		{"random", randXs, randYs},
		{"two points", []float64{1, 4}, []float64{-1, 2}},
		{"clustered", []float64{0, 0.001, 0.002, 5, 10, 10.5}, []float64{0, 1, 0, 1, 0, 1}},
	}

	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			c, err := Solve(test.xs, test.ys)
			require.NoError(t, err)
			sp := NewSpline(c)
			assert.Same(t, c, sp.Coeffs())

			// Every knot must resolve to the interval ending at it.
			for j, x := range test.xs {
				want := j
				if j == 0 {
					want = 1
				}
				assert.Equal(t, want, sp.search(x), "knot %d", j)
				assert.Equal(t, want, c.scan(x), "knot %d", j)
			}

			lo, hi := c.Domain()
			qs := append(Linspace(lo, hi, 777), test.xs...)
			want, err := Evaluate(qs, c)
			require.NoError(t, err)
			got, err := sp.EvalAll(qs)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			for i, q := range qs {
				assert.Equal(t, c.scan(q), sp.search(q), "q = %g", q)
				y, err := sp.Eval(q)
				require.NoError(t, err)
				assert.Equal(t, want[i], y)
			}
		})
	}
}

func TestSplineRange(t *testing.T) {
	c, err := Solve([]float64{0, 1, 2}, []float64{0, 1, 0})
	require.NoError(t, err)
	sp := NewSpline(c)

	_, err = sp.Eval(-0.1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = sp.Eval(2.1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = sp.Diff(2.1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	res, err := sp.EvalAll([]float64{0, 2, 5})
	assert.Nil(t, res)
	var rangeErr *OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 2, rangeErr.Index)
}

func TestSplineDiff(t *testing.T) {
	xs, ys := randomTable(17, 20)
	c, err := Solve(xs, ys)
	require.NoError(t, err)
	sp := NewSpline(c)
	lo, hi := c.Domain()

	// Natural boundary.
	for _, q := range []float64{lo, hi} {
		d2, err := sp.Diff(q, 2)
		require.NoError(t, err)
		assert.InDelta(t, 0, d2, 1e-9, "q = %g", q)
	}

	d0, err := sp.Diff(xs[4], 0)
	require.NoError(t, err)
	assert.InDelta(t, ys[4], d0, 1e-9)

	// Compare against central differences away from the knots.
	eps := 1e-5
	for i := 0; i < len(xs)-1; i++ {
		q := (xs[i] + xs[i+1]) / 2
		y0, _ := sp.Eval(q - eps)
		y1, _ := sp.Eval(q + eps)
		d1, err := sp.Diff(q, 1)
		require.NoError(t, err)
		assert.InDelta(t, (y1-y0)/(2*eps), d1, 1e-5, "interval %d", i)

		g0, _ := sp.Diff(q-eps, 1)
		g1, _ := sp.Diff(q+eps, 1)
		d2, err := sp.Diff(q, 2)
		require.NoError(t, err)
		assert.InDelta(t, (g1-g0)/(2*eps), d2, 1e-4, "interval %d", i)

		d3, err := sp.Diff(q, 3)
		require.NoError(t, err)
		zs, hs := c.Z(), c.H()
		assert.InDelta(t, (zs[i+1]-zs[i])/hs[i], d3, 1e-12)

		d4, err := sp.Diff(q, 4)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d4)
	}
}
