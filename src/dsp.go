package same

/*------------------------------------------------------------------
 *
 * Purpose:	Goertzel single-bin power measurement.
 *
 * Description:	The Goertzel algorithm evaluates one DFT bin with a
 *		two-multiply recurrence, which is all the demodulator
 *		needs: mark power and space power over one bit time.
 *
 *---------------------------------------------------------------*/

import "math"

// goertzelCoeff precomputes the recurrence coefficient for a tone at
// freq Hz sampled at rate Hz.
func goertzelCoeff(freq float64, rate int) float64 {
	return 2 * math.Cos(2*math.Pi*freq/float64(rate))
}

// goertzelPower runs the recurrence over the window and returns the
// squared magnitude of the bin.  The result is not normalized; callers
// compare powers measured over equal-length windows.
func goertzelPower(window []float64, coeff float64) float64 {
	var s1, s2 float64
	for _, x := range window {
		s0 := x + coeff*s1 - s2
		s2 = s1
		s1 = s0
	}
	return s1*s1 + s2*s2 - coeff*s1*s2
}
