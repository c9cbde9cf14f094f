package smoothing

import "errors"

var (
	// ErrInvalidInput is returned at construction for an empty or non-finite
	// series, a non-positive horizon or an out-of-range parameter.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFitFailure is returned by Fit when the minimizer does not converge.
	ErrFitFailure = errors.New("fit failed")
	// ErrNotFitted is returned by Predict while a parameter is still unset.
	ErrNotFitted = errors.New("model not fitted")
)
