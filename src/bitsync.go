package same

/*------------------------------------------------------------------
 *
 * Purpose:	Bit clock recovery and raw frame capture.
 *
 * Description:	The synchronizer walks the sample buffer at a
 *		fractional bit step near the nominal 520.83 baud.
 *		An early/late gate nudges the sampling phase toward
 *		the point of strongest mark/space separation, and a
 *		fraction of each nudge feeds back into the step so a
 *		transmitter running a few percent off baud stays
 *		tracked across long bit runs.
 *
 *		Demodulated bits shift through a 64-bit accumulator.
 *		When the accumulator matches the tail of the preamble
 *		followed by a start marker, character capture begins.
 *
 *---------------------------------------------------------------*/

import (
	"math"
	"math/bits"
)

type syncState int

const (
	stateSearching syncState = iota
	stateCapturing
)

func (s syncState) String() string {
	switch s {
	case stateSearching:
		return "SEARCHING"
	case stateCapturing:
		return "CAPTURING"
	default:
		return "UNKNOWN"
	}
}

const (
	// Gate width as a fraction of a bit, either side of the current
	// phase, at which the separation is probed.
	gateWidth = 0.125

	// Fraction of each phase correction folded into the bit step.
	freqGain = 0.2

	// A probe must beat the centered separation by this much before a
	// phase correction is applied.  Inside a run of identical bits the
	// probes measure essentially the same separation, and without the
	// margin the phase would random-walk on numeric noise.
	gateHysteresis = 0.05

	// A run of this many consecutive bits below the noise threshold
	// abandons the current capture.  The signal is gone; what was
	// collected is discarded without counting a frame error.
	lowConfidenceRunLimit = 32
)

// capturedFrame is one raw frame as recovered from the bit stream,
// before any grammar validation.
type capturedFrame struct {
	text           string      // begins "ZCZC" or "NNNN"
	samples        []BitSample // every bit consumed during capture
	meanConfidence float64
}

func (f capturedFrame) isEOM() bool { return f.text == "NNNN" }

// BitSynchronizer recovers the bit clock from a demodulated sample
// stream and captures raw frames.
type BitSynchronizer struct {
	det *ToneDetector

	nominalStep float64
	minStep     float64
	maxStep     float64

	preambleTolerance int
	noiseThreshold    float64
}

// NewBitSynchronizer builds a synchronizer for the given decode rate.
func NewBitSynchronizer(sampleRate int, cfg Config) *BitSynchronizer {
	nominal := float64(sampleRate) / BaudRate
	slack := nominal * cfg.BaudTolerancePercent / 100
	return &BitSynchronizer{
		det:               NewToneDetector(sampleRate),
		nominalStep:       nominal,
		minStep:           nominal - slack,
		maxStep:           nominal + slack,
		preambleTolerance: cfg.PreambleBitErrorTolerance,
		noiseThreshold:    cfg.NoiseThreshold,
	}
}

// Run demodulates the whole buffer and returns the raw frames found,
// in order of appearance.
func (s *BitSynchronizer) Run(samples []float64) []capturedFrame {
	var frames []capturedFrame

	state := stateSearching
	pos := 0.0
	step := s.nominalStep

	var acc uint64
	var frame []byte
	var frameBits []BitSample
	var byteAcc, bitCount int
	var dashesAfterPlus int
	var seenPlus bool
	var lowConfRun int

	reset := func() {
		state = stateSearching
		frame = nil
		frameBits = nil
		byteAcc, bitCount = 0, 0
		dashesAfterPlus, seenPlus = 0, false
		lowConfRun = 0
	}
	beginCapture := func(marker string) {
		state = stateCapturing
		frame = append(frame[:0], marker...)
		frameBits = frameBits[:0:0]
		byteAcc, bitCount = 0, 0
		dashesAfterPlus, seenPlus = 0, false
		lowConfRun = 0
	}
	emit := func() {
		frames = append(frames, capturedFrame{
			text:           string(frame),
			samples:        frameBits,
			meanConfidence: meanConfidence(frameBits),
		})
		reset()
	}

	for pos+float64(s.det.WindowLen()) <= float64(len(samples)) {
		// Early/late gate: probe the separation slightly ahead and
		// behind the current phase and lean toward the strongest.
		off := s.bestOffset(samples, pos, gateWidth*s.nominalStep)

		// The advance to the next bit is bounded to the configured
		// tolerance band around nominal.  A transmitter clock beyond
		// the band outruns the decoder no matter what the gate sees,
		// and the capture degrades into garbage instead of silently
		// mistracking.
		advance := step + off
		if advance < s.minStep {
			advance = s.minStep
		} else if advance > s.maxStep {
			advance = s.maxStep
		}
		applied := advance - step

		bit := s.det.Detect(samples, int(math.Round(pos+applied)))
		acc = acc>>1 | uint64(bit.Bit)<<63

		step += freqGain * applied
		if step < s.minStep {
			step = s.minStep
		} else if step > s.maxStep {
			step = s.maxStep
		}
		pos += advance

		// A fresh marker match always restarts capture, so a false
		// lock cannot swallow a real burst that follows it.
		if bits.OnesCount64(acc^preambleZCZC) <= s.preambleTolerance {
			beginCapture("ZCZC")
			continue
		}
		if bits.OnesCount64(acc^preambleNNNN) <= s.preambleTolerance {
			beginCapture("NNNN")
			emit()
			continue
		}

		if state != stateCapturing {
			continue
		}

		frameBits = append(frameBits, bit)
		if bit.Confidence < s.noiseThreshold {
			lowConfRun++
			if lowConfRun >= lowConfidenceRunLimit {
				reset()
				continue
			}
		} else {
			lowConfRun = 0
		}

		byteAcc |= bit.Bit << bitCount
		bitCount++
		if bitCount < 8 {
			continue
		}
		ch := byte(byteAcc)
		byteAcc, bitCount = 0, 0

		if ch < 0x20 || ch > 0x7e {
			if lowConfRun >= 8 {
				// The whole byte was noise: the carrier dropped
				// mid-frame.  Nothing worth keeping.
				reset()
				continue
			}
			// A confidently received control character means the
			// frame is corrupt.  Hand it over; the assembler will
			// count the rejection.
			emit()
			continue
		}

		frame = append(frame, ch)
		switch {
		case ch == '+':
			seenPlus = true
		case ch == '-' && seenPlus:
			dashesAfterPlus++
		}
		if (seenPlus && dashesAfterPlus == 3) || len(frame) >= MaxFrameLength {
			emit()
		}
	}

	// A capture cut off by the end of the buffer is still worth
	// handing over; long recordings can end mid-gap.
	if state == stateCapturing && len(frame) > len("ZCZC") {
		emit()
	}

	return frames
}

// bestOffset probes the tone separation at the current phase and one
// gate width either side, returning the offset with the strongest
// separation.
func (s *BitSynchronizer) bestOffset(samples []float64, pos, gate float64) float64 {
	best := 0.0
	bestSep := math.Abs(s.det.separationAt(samples, int(math.Round(pos)))) + gateHysteresis
	for _, off := range [2]float64{-gate, gate} {
		sep := math.Abs(s.det.separationAt(samples, int(math.Round(pos+off))))
		if sep > bestSep {
			bestSep = sep
			best = off
		}
	}
	return best
}

func meanConfidence(samples []BitSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, b := range samples {
		sum += b.Confidence
	}
	return sum / float64(len(samples))
}
