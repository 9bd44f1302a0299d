package same

/*------------------------------------------------------------------
 *
 * Purpose:	Per-bit mark/space tone discrimination.
 *
 *---------------------------------------------------------------*/

// BitSample is one demodulated bit with its quality estimate.
type BitSample struct {
	// Bit is 1 for mark, 0 for space.
	Bit int

	// Confidence is 0.0 .. 1.0, derived from the normalized power
	// separation between the two tone bins.
	Confidence float64

	// Start and End bound the analysis window the bit was measured
	// over, as sample indices at the decode rate.
	Start, End int
}

// fullScaleSeparation is the normalized mark/space power separation
// treated as a fully confident bit.  A clean tone straddled by the
// nominal window still measures above this, so noise-free input yields
// confidence 1.0 throughout.
const fullScaleSeparation = 0.85

// ToneDetector measures mark and space power over one bit window and
// decides the bit.  It is stateless between calls.
type ToneDetector struct {
	markCoeff  float64
	spaceCoeff float64
	windowLen  int
}

// NewToneDetector builds a detector for the given decode rate.  The
// window is one nominal bit time, rounded down to whole samples.
func NewToneDetector(sampleRate int) *ToneDetector {
	return &ToneDetector{
		markCoeff:  goertzelCoeff(MarkFrequency, sampleRate),
		spaceCoeff: goertzelCoeff(SpaceFrequency, sampleRate),
		windowLen:  int(float64(sampleRate) / BaudRate),
	}
}

// WindowLen is the detector's analysis window in samples.
func (d *ToneDetector) WindowLen() int { return d.windowLen }

// Detect classifies the window starting at offset.  A short window at
// the end of the buffer is analyzed as-is.  Equal powers decide space;
// with no signal present the decoder must not fabricate marks.
func (d *ToneDetector) Detect(samples []float64, offset int) BitSample {
	if offset < 0 {
		offset = 0
	}
	end := offset + d.windowLen
	if end > len(samples) {
		end = len(samples)
	}
	if offset >= end {
		return BitSample{Bit: 0, Confidence: 0, Start: offset, End: offset}
	}
	window := samples[offset:end]

	mark := goertzelPower(window, d.markCoeff)
	space := goertzelPower(window, d.spaceCoeff)

	sep := d.separation(mark, space)
	bit := 0
	if sep > 0 {
		bit = 1
	}
	conf := sep
	if conf < 0 {
		conf = -conf
	}
	conf /= fullScaleSeparation
	if conf > 1 {
		conf = 1
	}
	return BitSample{Bit: bit, Confidence: conf, Start: offset, End: end}
}

// separation returns (mark-space)/(mark+space), or 0 when both bins
// are empty.  Positive means mark.
func (d *ToneDetector) separation(mark, space float64) float64 {
	total := mark + space
	if total <= 0 {
		return 0
	}
	return (mark - space) / total
}

// separationAt is Detect without the bit decision, used by the bit
// clock's timing gate.
func (d *ToneDetector) separationAt(samples []float64, offset int) float64 {
	if offset < 0 {
		offset = 0
	}
	end := offset + d.windowLen
	if end > len(samples) {
		end = len(samples)
	}
	if offset >= end {
		return 0
	}
	window := samples[offset:end]
	return d.separation(goertzelPower(window, d.markCoeff), goertzelPower(window, d.spaceCoeff))
}
