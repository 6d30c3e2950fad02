package reconstruct

import (
	"fmt"

	"github.com/2lambda123/rss-ringoccs/dsp/window"
)

// WindowTypeFromCode translates the source's bit-exact window-type
// numeric code (0..9) into a window.Type, for callers that speak the
// original numeric-code convention (e.g. a file format carrying these as
// integers).
func WindowTypeFromCode(code int) (window.Type, error) {
	switch code {
	case 0:
		return window.Rect, nil
	case 1:
		return window.Coss, nil
	case 2:
		return window.KB20, nil
	case 3:
		return window.KB25, nil
	case 4:
		return window.KB35, nil
	case 5:
		return window.KBMD20, nil
	case 6:
		return window.KBMD25, nil
	case 7:
		return window.KBMD35, nil
	case 8:
		return window.KBAlpha, nil
	case 9:
		return window.KBMDAlpha, nil
	default:
		return 0, fmt.Errorf("reconstruct: unknown window type code %d", code)
	}
}

// CodeFromWindowType is the inverse of WindowTypeFromCode.
func CodeFromWindowType(t window.Type) (int, error) {
	switch t {
	case window.Rect:
		return 0, nil
	case window.Coss:
		return 1, nil
	case window.KB20:
		return 2, nil
	case window.KB25:
		return 3, nil
	case window.KB35:
		return 4, nil
	case window.KBMD20:
		return 5, nil
	case window.KBMD25:
		return 6, nil
	case window.KBMD35:
		return 7, nil
	case window.KBAlpha:
		return 8, nil
	case window.KBMDAlpha:
		return 9, nil
	default:
		return 0, fmt.Errorf("reconstruct: unknown window.Type %d", t)
	}
}

// AlgorithmFromCode derives the driver selection from the source's
// numeric convention: order (0 = Newton-family, 1 = Fresnel, >=2 =
// Legendre(order)), whether any perturb coefficient is nonzero, whether
// ecc or peri is nonzero, and whether use_fft is set — matching the
// selection table in the driver-design section of this package's
// requirements.
func AlgorithmFromCode(order int, perturb [5]float64, ecc, peri float64, useFFT bool) (alg Algorithm, legendreOrder int) {
	if useFFT {
		return AlgorithmSimpleFFT, 0
	}
	if order == 1 {
		return AlgorithmFresnel, 0
	}
	if order >= 2 {
		return AlgorithmLegendre, order
	}

	if ecc != 0 || peri != 0 {
		return AlgorithmNewtonElliptical, 0
	}
	anyPerturb := false
	for _, p := range perturb {
		if p != 0 {
			anyPerturb = true
			break
		}
	}
	if anyPerturb {
		return AlgorithmNewtonPerturbed, 0
	}
	return AlgorithmNewton, 0
}
