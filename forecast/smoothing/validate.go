package smoothing

import (
	"fmt"

	"github.com/evdnx/goses/forecast/core"
)

// validate checks the construction-time constraints of a model.
func validate(y []float64, h int, alpha, initLevel Param) error {
	if len(y) == 0 {
		return fmt.Errorf("%w: observations must not be empty", ErrInvalidInput)
	}
	if i := core.FirstNonFinite(y); i >= 0 {
		return fmt.Errorf("%w: observation %d is %v", ErrInvalidInput, i, y[i])
	}
	if h <= 0 {
		return fmt.Errorf("%w: horizon must be greater than 0, got %d", ErrInvalidInput, h)
	}
	if a, ok := alpha.Value(); ok {
		if err := validateAlpha(a); err != nil {
			return err
		}
	}
	if l, ok := initLevel.Value(); ok && !core.IsFinite(l) {
		return fmt.Errorf("%w: initial level must be finite, got %v", ErrInvalidInput, l)
	}
	return nil
}

func validateAlpha(a float64) error {
	// Written this way round so NaN fails too.
	if !(a >= 0 && a <= 1) {
		return fmt.Errorf("%w: alpha must be in [0,1], got %v", ErrInvalidInput, a)
	}
	return nil
}
