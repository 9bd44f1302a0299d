package same

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNyquistMargin(t *testing.T) {
	assert.InDelta(t, 3.84, NyquistMargin(8000), 0.01)
	assert.InDelta(t, 5.29, NyquistMargin(11025), 0.01)
	assert.InDelta(t, 21.17, NyquistMargin(44100), 0.01)
}

func TestNegotiateRatePrefersNative(t *testing.T) {
	var rate, err = NegotiateRate(44100, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 44100, rate)
}

func TestNegotiateRateFallsBackFromLowNative(t *testing.T) {
	// 6000 Hz has margin 2.88, under the default floor of 3.0, so
	// negotiation should move on to the first fallback rate.
	var rate, err = NegotiateRate(6000, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 16000, rate)
}

func TestNegotiateRateInadequate(t *testing.T) {
	var cfg = DefaultConfig()
	cfg.PreferredRates = []int{0, 4000}

	var _, err = NegotiateRate(5000, cfg)
	require.ErrorIs(t, err, ErrRateInadequate)
}

func TestResampleIdentity(t *testing.T) {
	var in = NewAudioBuffer([]float64{0.1, 0.2, 0.3}, 11025)
	assert.Same(t, in, Resample(in, 11025))
}

func TestResampleEmpty(t *testing.T) {
	var out = Resample(NewAudioBuffer(nil, 44100), 11025)
	assert.Equal(t, 11025, out.SampleRate())
	assert.Equal(t, 0, out.Len())
}

func TestResampleDownPreservesTone(t *testing.T) {
	// A mark tone generated at 44100 Hz should still classify as mark
	// after downsampling to 11025 Hz.
	var tone = EncodeTone(MarkFrequency, 500, EncoderOptions{SampleRate: 44100})
	var in = NewAudioBufferInt16(tone, 44100)

	var out = Resample(in, 11025)
	assert.Equal(t, 11025, out.SampleRate())
	assert.InDelta(t, in.Len()/4, out.Len(), 2)

	var det = NewToneDetector(11025)
	var bit = det.Detect(out.samples, out.Len()/2)
	assert.Equal(t, 1, bit.Bit)
	assert.Equal(t, 1.0, bit.Confidence)
}

func TestResampleUpPreservesTone(t *testing.T) {
	var tone = EncodeTone(SpaceFrequency, 500, EncoderOptions{SampleRate: 8000})
	var in = NewAudioBufferInt16(tone, 8000)

	var out = Resample(in, 16000)
	assert.Equal(t, 16000, out.SampleRate())

	var det = NewToneDetector(16000)
	var bit = det.Detect(out.samples, out.Len()/2)
	assert.Equal(t, 0, bit.Bit)
	assert.Equal(t, 1.0, bit.Confidence)
}
