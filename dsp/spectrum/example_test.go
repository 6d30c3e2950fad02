package spectrum_test

import (
	"fmt"

	"github.com/2lambda123/rss-ringoccs/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleOpticalDepth() {
	power := []float64{0.25}
	bRad := []float64{0.5235987755982988} // pi/6 opening angle
	tau := spectrum.OpticalDepth(power, bRad)
	fmt.Printf("%.3f\n", tau[0])
	// Output:
	// 0.693
}
