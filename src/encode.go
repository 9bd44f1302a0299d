package same

/*------------------------------------------------------------------
 *
 * Purpose:	AFSK burst generation.
 *
 * Description:	Tones come from a direct digital synthesizer: a 32
 *		bit phase accumulator indexing a 256 entry sine
 *		table.  Bit timing uses a fractional samples-per-bit
 *		accumulator so the long term baud rate is exact even
 *		though each bit is a whole number of samples.
 *
 *		Optional additive noise uses a fixed linear
 *		congruential generator, so a given seed always
 *		produces the same waveform.
 *
 *---------------------------------------------------------------*/

import "math"

// EncoderOptions selects the waveform parameters for EncodeAlert.
type EncoderOptions struct {
	// SampleRate of the generated PCM.
	SampleRate int

	// Amplitude is the tone peak, 0.0 .. 1.0.  Zero means 0.8.
	Amplitude float64

	// BaudOffsetPercent shifts the signalling rate away from nominal,
	// for exercising the decoder's clock tracking.
	BaudOffsetPercent float64

	// NoisePercent adds white noise at the given peak percentage of
	// full scale.
	NoisePercent float64

	// NoiseSeed selects the noise sequence.
	NoiseSeed int
}

type encoder struct {
	opt EncoderOptions

	sine [256]float64

	phase     uint32
	markStep  uint32
	spaceStep uint32

	// Fractional samples-per-bit bookkeeping.
	samplesPerBit float64
	bitFraction   float64

	noiseSeed int
	out       []int16
}

func newEncoder(opt EncoderOptions) *encoder {
	if opt.Amplitude == 0 {
		opt.Amplitude = 0.8
	}
	baud := BaudRate * (1 + opt.BaudOffsetPercent/100)
	e := &encoder{
		opt:           opt,
		markStep:      phaseStep(MarkFrequency, opt.SampleRate),
		spaceStep:     phaseStep(SpaceFrequency, opt.SampleRate),
		samplesPerBit: float64(opt.SampleRate) / baud,
		noiseSeed:     opt.NoiseSeed,
	}
	for i := range e.sine {
		e.sine[i] = math.Sin(2 * math.Pi * float64(i) / 256)
	}
	return e
}

func phaseStep(freq float64, rate int) uint32 {
	return uint32(freq / float64(rate) * (1 << 32))
}

// nextNoise steps the generator and returns a value in -1 .. +1.
func (e *encoder) nextNoise() float64 {
	e.noiseSeed = (e.noiseSeed*1103515245 + 12345) & 0x7fffffff
	return float64(e.noiseSeed)/float64(0x40000000) - 1
}

func (e *encoder) putSample(s float64) {
	if e.opt.NoisePercent > 0 {
		s += e.nextNoise() * e.opt.NoisePercent / 100
	}
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	e.out = append(e.out, int16(s*32767))
}

func (e *encoder) sendBit(bit int) {
	step := e.spaceStep
	if bit != 0 {
		step = e.markStep
	}
	n := int(e.samplesPerBit + e.bitFraction)
	e.bitFraction += e.samplesPerBit - float64(n)
	for i := 0; i < n; i++ {
		e.phase += step
		e.putSample(e.sine[e.phase>>24] * e.opt.Amplitude)
	}
}

func (e *encoder) sendByte(b byte) {
	for i := 0; i < 8; i++ {
		e.sendBit(int(b>>i) & 1)
	}
}

func (e *encoder) sendSilence(ms int) {
	n := e.opt.SampleRate * ms / 1000
	for i := 0; i < n; i++ {
		e.putSample(0)
	}
}

func (e *encoder) sendBurst(text string) {
	for i := 0; i < PreambleLength; i++ {
		e.sendByte(PreambleByte)
	}
	for i := 0; i < len(text); i++ {
		e.sendByte(text[i])
	}
}

// EncodeAlert renders a complete alert transmission: the header burst
// repeated, optionally followed by the end-of-message bursts, each
// separated by the standard gap.  A trailing gap of silence lets the
// decoder drain its last capture.
func EncodeAlert(header string, repeats int, withEOM bool, opt EncoderOptions) []int16 {
	e := newEncoder(opt)

	for i := 0; i < repeats; i++ {
		e.sendBurst(header)
		e.sendSilence(BurstGapMilliseconds)
	}
	if withEOM {
		for i := 0; i < BurstRepeats; i++ {
			e.sendBurst("NNNN")
			e.sendSilence(BurstGapMilliseconds)
		}
	}
	return e.out
}

// EncodeTone renders a steady tone, mostly useful for test fixtures.
func EncodeTone(freq float64, ms int, opt EncoderOptions) []int16 {
	e := newEncoder(opt)
	step := phaseStep(freq, opt.SampleRate)
	n := opt.SampleRate * ms / 1000
	for i := 0; i < n; i++ {
		e.phase += step
		e.putSample(e.sine[e.phase>>24] * e.opt.Amplitude)
	}
	return e.out
}
