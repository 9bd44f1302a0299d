package same

/*------------------------------------------------------------------
 *
 * Purpose:	Sample rate negotiation and band-limited resampling.
 *
 * Description:	The demodulator wants enough samples per tone cycle
 *		for the per-bit Goertzel windows to separate mark
 *		from space.  We express that as the ratio of decode
 *		rate to the mark frequency and call it the Nyquist
 *		margin.  Negotiation walks the preferred rate list
 *		and picks the first rate whose margin is adequate.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"math"
)

// ErrRateInadequate reports that no candidate rate had a sufficient
// Nyquist margin over the mark frequency.
var ErrRateInadequate = errors.New("no candidate sample rate has adequate margin over the mark frequency")

// NyquistMargin returns the ratio of a sample rate to the mark
// frequency.  At 8000 Hz the margin is about 3.84.
func NyquistMargin(sampleRate int) float64 {
	return float64(sampleRate) / MarkFrequency
}

// NegotiateRate selects the decode rate for a buffer.  Candidates come
// from cfg.PreferredRates in order, a zero entry standing for the
// buffer's native rate.  The first candidate whose margin meets
// cfg.MinNyquistMargin is chosen.  Candidates above the native rate
// are still acceptable; upsampling adds no information but keeps the
// Goertzel window sizes workable.
func NegotiateRate(nativeRate int, cfg Config) (int, error) {
	for _, r := range cfg.PreferredRates {
		if r == 0 {
			r = nativeRate
		}
		if r <= 0 {
			continue
		}
		if NyquistMargin(r) >= cfg.MinNyquistMargin {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: native %d Hz", ErrRateInadequate, nativeRate)
}

// resampleHalfTaps is the one-sided width of the interpolation kernel.
const resampleHalfTaps = 16

// Resample converts a buffer to the target rate with windowed-sinc
// interpolation.  A buffer already at the target rate is returned
// unchanged.
func Resample(in *AudioBuffer, targetRate int) *AudioBuffer {
	if in.sampleRate == targetRate || in.Len() == 0 {
		if in.sampleRate == targetRate {
			return in
		}
		return &AudioBuffer{samples: nil, sampleRate: targetRate}
	}

	ratio := float64(targetRate) / float64(in.sampleRate)
	outLen := int(math.Floor(float64(in.Len()) * ratio))
	out := make([]float64, outLen)

	// When downsampling, the kernel cutoff must drop below the output
	// Nyquist to reject aliases.  0.45 leaves transition headroom.
	cutoff := 0.45
	if ratio < 1 {
		cutoff *= ratio
	}

	for i := range out {
		center := float64(i) / ratio
		lo := int(math.Ceil(center)) - resampleHalfTaps
		hi := int(math.Floor(center)) + resampleHalfTaps
		if lo < 0 {
			lo = 0
		}
		if hi >= in.Len() {
			hi = in.Len() - 1
		}
		var acc, norm float64
		for j := lo; j <= hi; j++ {
			x := float64(j) - center
			w := sincKernel(x, cutoff)
			acc += in.samples[j] * w
			norm += w
		}
		if norm != 0 {
			// Normalizing keeps unity DC gain even where the
			// kernel is truncated at the buffer edges.
			out[i] = acc / norm
		}
	}

	return &AudioBuffer{samples: out, sampleRate: targetRate}
}

// sincKernel is a Hamming-windowed sinc evaluated at offset x samples
// from the interpolation point.
func sincKernel(x, cutoff float64) float64 {
	if math.Abs(x) >= resampleHalfTaps {
		return 0
	}
	var s float64
	if x == 0 {
		s = 2 * cutoff
	} else {
		s = math.Sin(2*math.Pi*cutoff*x) / (math.Pi * x)
	}
	w := 0.54 + 0.46*math.Cos(math.Pi*x/resampleHalfTaps)
	return s * w
}
