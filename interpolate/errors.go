package interpolate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every error Solve returns.
	ErrInvalidInput = errors.New("interpolate: invalid input")
	// ErrOutOfRange is matched by every error returned for a query outside
	// the domain of a spline.
	ErrOutOfRange = errors.New("interpolate: query out of range")
)

// Condition identifies which precondition of Solve was violated.
type Condition int

const (
	TooFewSamples Condition = iota
	LengthMismatch
	NonFinite
	NotIncreasing
)

func (cond Condition) String() string {
	switch cond {
	case TooFewSamples:
		return "TooFewSamples"
	case LengthMismatch:
		return "LengthMismatch"
	case NonFinite:
		return "NonFinite"
	case NotIncreasing:
		return "NotIncreasing"
	}
	return fmt.Sprintf("Condition(%d)", int(cond))
}

// InvalidInputError describes a sample table that cannot be splined.
type InvalidInputError struct {
	Cond Condition
	// Index is the offending sample for NonFinite and NotIncreasing.
	Index      int
	XLen, YLen int
}

func (e *InvalidInputError) Error() string {
	switch e.Cond {
	case TooFewSamples:
		return fmt.Sprintf(
			"%s: table has length %d, but at least 2 points are needed",
			ErrInvalidInput, e.XLen,
		)
	case LengthMismatch:
		return fmt.Sprintf(
			"%s: table has len(xs) = %d but len(ys) = %d",
			ErrInvalidInput, e.XLen, e.YLen,
		)
	case NonFinite:
		return fmt.Sprintf(
			"%s: point %d of table is not finite", ErrInvalidInput, e.Index,
		)
	case NotIncreasing:
		return fmt.Sprintf(
			"%s: xs not strictly increasing at index %d",
			ErrInvalidInput, e.Index,
		)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Cond)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// OutOfRangeError reports the first query which was outside [Lo, Hi].
type OutOfRangeError struct {
	// Index is the position of the query in the evaluated sequence.
	Index  int
	Value  float64
	Lo, Hi float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf(
		"%s: point %g (index %d) is outside [%g, %g]",
		ErrOutOfRange, e.Value, e.Index, e.Lo, e.Hi,
	)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }
