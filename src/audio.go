package same

/*------------------------------------------------------------------
 *
 * Purpose:	Immutable view of mono PCM audio handed to the decoder.
 *
 * Description:	The capture layer owns the samples.  The decoder
 *		reads them for the duration of one Decode call and
 *		never retains a reference afterwards.
 *
 *---------------------------------------------------------------*/

import (
	"time"
)

// AudioBuffer is a mono PCM buffer with its declared native sample rate.
//
// Samples are float64 in the range -1.0 .. +1.0.  Use NewAudioBufferInt16
// for fixed-point capture sources.
type AudioBuffer struct {
	samples    []float64
	sampleRate int
}

// NewAudioBuffer wraps float PCM samples.  The buffer does not copy;
// the caller must not modify the slice while a decode is in progress.
func NewAudioBuffer(samples []float64, sampleRate int) *AudioBuffer {
	return &AudioBuffer{samples: samples, sampleRate: sampleRate}
}

// NewAudioBufferInt16 converts 16-bit signed PCM to the internal float form.
func NewAudioBufferInt16(samples []int16, sampleRate int) *AudioBuffer {
	var f = make([]float64, len(samples))
	for i, s := range samples {
		f[i] = float64(s) / 32768.0
	}
	return &AudioBuffer{samples: f, sampleRate: sampleRate}
}

func (b *AudioBuffer) SampleRate() int { return b.sampleRate }

func (b *AudioBuffer) Len() int { return len(b.samples) }

// Channels is always 1.  Stereo sources must be mixed down before
// constructing a buffer; ReadWAV does this for .wav files.
func (b *AudioBuffer) Channels() int { return 1 }

func (b *AudioBuffer) Duration() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.samples)) / float64(b.sampleRate) * float64(time.Second))
}
