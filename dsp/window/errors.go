package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs  = errors.New("window coefficients must not be empty")
	errZeroSum      = errors.New("window coefficient sum is zero")
	errInvalidWidth = errors.New("window width must be > 0")
)

func validateWidth(width float64) error {
	if width <= 0 {
		return fmt.Errorf("%w: %f", errInvalidWidth, width)
	}
	return nil
}

func validateAlpha(alpha float64) error {
	if alpha <= 0 {
		return fmt.Errorf("kaiser-bessel alpha must be > 0: %f", alpha)
	}
	return nil
}
