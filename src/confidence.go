package same

/*------------------------------------------------------------------
 *
 * Purpose:	Aggregate decode confidence.
 *
 *---------------------------------------------------------------*/

// ConfidenceScorer reduces per-bit confidences to one figure for the
// whole decode.
type ConfidenceScorer struct {
	sum   float64
	count int
}

// Add folds in one bit sample.
func (s *ConfidenceScorer) Add(b BitSample) {
	s.sum += b.Confidence
	s.count++
}

// AddAll folds in a slice of bit samples.
func (s *ConfidenceScorer) AddAll(bs []BitSample) {
	for _, b := range bs {
		s.Add(b)
	}
}

// Score is the mean confidence over everything added, or 0 when
// nothing was.
func (s *ConfidenceScorer) Score() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}
