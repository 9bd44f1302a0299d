package same

/*------------------------------------------------------------------
 *
 * Purpose:	Frame assembly across the three-burst transmission.
 *
 * Description:	An alert is sent three times with one second gaps,
 *		then optionally terminated with three end-of-message
 *		bursts.  The assembler collapses identical repeats to
 *		one record.  Repeats that differ but still satisfy
 *		the grammar are all kept, because silently choosing
 *		between disagreeing copies would hide corruption from
 *		the caller; the disagreement is surfaced as a frame
 *		error alongside the extra record.
 *
 *---------------------------------------------------------------*/

// FrameAssembler accumulates captured frames into parsed records and
// error counts.
type FrameAssembler struct {
	noiseThreshold float64

	headers     []HeaderRecord
	frameErrors int
	eomSeen     bool

	lastRaw      string
	lastCount    int
	eomSinceLast bool

	// Capture bits from every accepted header frame, duplicates
	// included, feeding the aggregate confidence.
	acceptedBits []BitSample
}

// NewFrameAssembler builds an assembler using the config's noise
// threshold for the low-confidence frame check.
func NewFrameAssembler(cfg Config) *FrameAssembler {
	return &FrameAssembler{noiseThreshold: cfg.NoiseThreshold}
}

// Push feeds one captured frame to the assembler.
func (a *FrameAssembler) Push(f capturedFrame) {
	if f.isEOM() {
		a.eomSeen = true
		a.eomSinceLast = true
		return
	}

	// A frame assembled mostly from noise is not worth parsing.
	if len(f.samples) > 0 && f.meanConfidence < a.noiseThreshold {
		a.frameErrors++
		return
	}

	rec, err := ParseHeader(f.text)
	if err != nil {
		a.frameErrors++
		return
	}

	a.acceptedBits = append(a.acceptedBits, f.samples...)

	switch {
	case f.text == a.lastRaw && !a.eomSinceLast:
		// Repeat of the current burst.
		a.lastCount++
	case a.lastRaw != "" && !a.eomSinceLast && a.lastCount < BurstRepeats:
		// A differing header arrived before the previous one
		// finished its repeats.  Keep both and flag it.
		a.headers = append(a.headers, rec)
		a.frameErrors++
		a.lastRaw, a.lastCount = f.text, 1
	default:
		a.headers = append(a.headers, rec)
		a.lastRaw, a.lastCount = f.text, 1
		a.eomSinceLast = false
	}
}

// Headers returns the accepted records in order of first appearance.
func (a *FrameAssembler) Headers() []HeaderRecord { return a.headers }

// FrameErrors returns the count of rejected or disagreeing frames.
func (a *FrameAssembler) FrameErrors() int { return a.frameErrors }

// EOMSeen reports whether an end-of-message burst was decoded.
func (a *FrameAssembler) EOMSeen() bool { return a.eomSeen }

// AcceptedBits returns the bit samples underlying every accepted
// header frame.
func (a *FrameAssembler) AcceptedBits() []BitSample { return a.acceptedBits }
