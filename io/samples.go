package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
)

// ReadSamples reads the sample points of a spline from the given columns of a
// text table. The points are returned in file order and are not checked.
func ReadSamples(fname string, xCol, yCol int) (xs, ys []float64, err error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, nil, err
	}
	if len(cols) != 2 {
		return nil, nil, fmt.Errorf(
			"Expected 2 columns from '%s', but read %d.", fname, len(cols),
		)
	}
	return cols[0], cols[1], nil
}
