package same

/*------------------------------------------------------------------
 *
 * Purpose:	Top level decode entry point.
 *
 * Description:	Decode ties the pipeline together: negotiate a
 *		decode rate, resample if needed, recover bits and
 *		frames, assemble records.  It is a pure function of
 *		the buffer and config; the same input always yields
 *		the same result.
 *
 *---------------------------------------------------------------*/

import "errors"

// ErrEmptyBuffer reports a decode attempt on a buffer with no samples.
var ErrEmptyBuffer = errors.New("audio buffer is empty")

// DecodeResult is everything recovered from one buffer.
type DecodeResult struct {
	// Headers holds the accepted alert headers in order of first
	// appearance, identical repeats collapsed.
	Headers []HeaderRecord

	// EOMSeen reports whether an end-of-message burst was decoded.
	EOMSeen bool

	// FrameErrors counts frames that were captured but rejected, and
	// grammar-valid repeats that disagreed with each other.
	FrameErrors int

	// BitConfidence is the mean per-bit confidence over the capture
	// bits of every accepted header frame, 0 when none were accepted.
	BitConfidence float64

	// DecodeRate is the negotiated sample rate the demodulator ran at.
	DecodeRate int
}

// Decode demodulates a buffer and returns whatever alert traffic it
// contained.  A buffer with no decodable signal yields an empty result
// and no error; only structural problems (empty input, unusable sample
// rate) produce errors.
func Decode(buf *AudioBuffer, cfg Config) (DecodeResult, error) {
	var res DecodeResult

	if buf == nil || buf.Len() == 0 {
		return res, ErrEmptyBuffer
	}

	rate, err := NegotiateRate(buf.SampleRate(), cfg)
	if err != nil {
		return res, err
	}
	res.DecodeRate = rate

	work := Resample(buf, rate)

	sync := NewBitSynchronizer(rate, cfg)
	asm := NewFrameAssembler(cfg)
	for _, f := range sync.Run(work.samples) {
		asm.Push(f)
	}

	var scorer ConfidenceScorer
	scorer.AddAll(asm.AcceptedBits())

	res.Headers = asm.Headers()
	res.EOMSeen = asm.EOMSeen()
	res.FrameErrors = asm.FrameErrors()
	res.BitConfidence = scorer.Score()
	return res, nil
}
