package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const (
	// LinearSearch finds intervals by scanning the knots in order.
	LinearSearch = "linear"
	// BinarySearch finds intervals by bisecting the knots.
	BinarySearch = "binary"
)

// ExampleSplineFile is a complete configuration file for the [Spline] mode.
const ExampleSplineFile = `[Spline]

# Required #

# Input is a whitespace-separated text table containing the sample points.
# The x column must be strictly increasing.
Input = path/to/samples.txt

# Optional #

# XColumn and YColumn are the zero-indexed table columns holding x and y.
XColumn = 0
YColumn = 1

# Points is the number of evenly spaced points the spline is evaluated at.
# The first and last points are the first and last x values in Input.
Points = 1000

# Search is the method used to find the interval containing each point.
# Either 'linear' or 'binary'. Both give identical output.
Search = linear`

// SplineConfig holds the parameters of a single spline evaluation run.
type SplineConfig struct {
	// Required
	Input string

	// Optional
	XColumn, YColumn int
	Points           int
	Search           string
}

// SplineWrapper is the top-level gcfg structure for [Spline] files.
type SplineWrapper struct {
	Spline SplineConfig
}

// DefaultSplineWrapper returns a wrapper with every optional value set.
func DefaultSplineWrapper() *SplineWrapper {
	return &SplineWrapper{
		Spline: SplineConfig{
			XColumn: 0,
			YColumn: 1,
			Points:  1000,
			Search:  LinearSearch,
		},
	}
}

// ReadSplineConfig reads and checks the [Spline] configuration file fname.
func ReadSplineConfig(fname string) (*SplineConfig, error) {
	wrap := DefaultSplineWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Spline.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Spline, nil
}

// ParseSplineConfig is ReadSplineConfig for a configuration held in memory.
func ParseSplineConfig(text string) (*SplineConfig, error) {
	wrap := DefaultSplineWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := wrap.Spline.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Spline, nil
}

// CheckInit returns an error describing the first invalid value in con.
func (con *SplineConfig) CheckInit() error {
	if con.Input == "" {
		return fmt.Errorf("Need to specify an 'Input' table for [Spline].")
	}

	if con.XColumn < 0 {
		return fmt.Errorf("'XColumn' must be non-negative, but is %d.", con.XColumn)
	} else if con.YColumn < 0 {
		return fmt.Errorf("'YColumn' must be non-negative, but is %d.", con.YColumn)
	} else if con.XColumn == con.YColumn {
		return fmt.Errorf(
			"'XColumn' and 'YColumn' are both set to %d.", con.XColumn,
		)
	}

	if con.Points < 2 {
		return fmt.Errorf("'Points' must be at least 2, but is %d.", con.Points)
	}

	switch con.Search {
	case LinearSearch, BinarySearch:
	default:
		return fmt.Errorf(
			"Unrecognized 'Search' value '%s'. Only '%s' and '%s' are accepted.",
			con.Search, LinearSearch, BinarySearch,
		)
	}

	return nil
}
