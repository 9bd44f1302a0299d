package same

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "ZCZC-EAS-RWT-012057-012081-012101-012103-012115+0030-2780415-WTSP/TV-"

func alertAudio(rate int, opt EncoderOptions) *AudioBuffer {
	opt.SampleRate = rate
	return NewAudioBufferInt16(EncodeAlert(testHeader, BurstRepeats, true, opt), rate)
}

func TestDecodeCleanAtCommonRates(t *testing.T) {
	for _, rate := range []int{8000, 11025, 16000, 22050, 44100} {
		t.Run(strconv.Itoa(rate), func(t *testing.T) {
			var buf = alertAudio(rate, EncoderOptions{})

			var res, err = Decode(buf, DefaultConfig())
			require.NoError(t, err)

			require.Len(t, res.Headers, 1, "three identical bursts should collapse to one record")
			assert.Equal(t, testHeader, res.Headers[0].Raw)
			assert.True(t, res.EOMSeen)
			assert.Equal(t, 0, res.FrameErrors)
			assert.Equal(t, 1.0, res.BitConfidence, "noise-free input should be fully confident")
			assert.Equal(t, rate, res.DecodeRate, "an adequate native rate should win negotiation")
		})
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	var buf = alertAudio(11025, EncoderOptions{NoisePercent: 5, NoiseSeed: 42})

	var first, err1 = Decode(buf, DefaultConfig())
	require.NoError(t, err1)
	var second, err2 = Decode(buf, DefaultConfig())
	require.NoError(t, err2)

	assert.Equal(t, first, second)
}

func TestDecodeTracksBaudDrift(t *testing.T) {
	for _, offset := range []float64{-4, 4} {
		var buf = alertAudio(11025, EncoderOptions{BaudOffsetPercent: offset})

		var res, err = Decode(buf, DefaultConfig())
		require.NoError(t, err)
		require.Len(t, res.Headers, 1, "offset %.0f%% is within tolerance", offset)
		assert.Equal(t, testHeader, res.Headers[0].Raw)
	}
}

func TestDecodeRejectsExcessiveBaudDrift(t *testing.T) {
	for _, offset := range []float64{-8, -6, 6, 8} {
		var buf = alertAudio(11025, EncoderOptions{BaudOffsetPercent: offset})

		var res, err = Decode(buf, DefaultConfig())
		require.NoError(t, err)
		assert.Empty(t, res.Headers, "offset %.0f%% is beyond tolerance", offset)
	}
}

func TestDecodeSurvivesModerateNoise(t *testing.T) {
	var buf = alertAudio(11025, EncoderOptions{NoisePercent: 5, NoiseSeed: 1})

	var res, err = Decode(buf, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, res.Headers, 1)
	assert.Equal(t, testHeader, res.Headers[0].Raw)
	assert.GreaterOrEqual(t, res.BitConfidence, 0.9)
}

func TestDecodeSilenceYieldsNothing(t *testing.T) {
	var buf = NewAudioBuffer(make([]float64, 3*11025), 11025)

	var res, err = Decode(buf, DefaultConfig())
	require.NoError(t, err)

	assert.Empty(t, res.Headers)
	assert.False(t, res.EOMSeen)
	assert.Equal(t, 0, res.FrameErrors)
	assert.Equal(t, 0.0, res.BitConfidence)
}

func TestDecodeNoiseOnlyYieldsNothing(t *testing.T) {
	var e = newEncoder(EncoderOptions{SampleRate: 11025, NoisePercent: 80, NoiseSeed: 7})
	e.sendSilence(3000)
	var buf = NewAudioBufferInt16(e.out, 11025)

	var res, err = Decode(buf, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, res.Headers)
}

func TestDecodeLongRecordingWithArbitraryOffset(t *testing.T) {
	// Half a minute of audio with the alert starting at an odd offset,
	// so the capture begins nowhere near a sample-aligned bit phase.
	// Rates that do not divide the baud period evenly are the ones a
	// truncating bit clock loses characters at over buffers this long.
	for _, rate := range []int{8000, 11025, 16000, 22050, 44100} {
		t.Run(strconv.Itoa(rate), func(t *testing.T) {
			var alert = EncodeAlert(testHeader, BurstRepeats, true, EncoderOptions{SampleRate: rate})

			var samples = make([]int16, 0, 32*rate)
			samples = append(samples, make([]int16, 13*rate+771)...)
			samples = append(samples, alert...)
			for len(samples) < 30*rate {
				samples = append(samples, 0)
			}

			var res, err = Decode(NewAudioBufferInt16(samples, rate), DefaultConfig())
			require.NoError(t, err)

			require.Len(t, res.Headers, 1)
			assert.Equal(t, testHeader, res.Headers[0].Raw)
			assert.True(t, res.EOMSeen)
			assert.Equal(t, 0, res.FrameErrors)
		})
	}
}

func TestDecodeSeparateAlertsAfterEOM(t *testing.T) {
	const rate = 11025
	var one = EncodeAlert(testHeader, BurstRepeats, true, EncoderOptions{SampleRate: rate})
	var both = append(append([]int16{}, one...), one...)

	var res, err = Decode(NewAudioBufferInt16(both, rate), DefaultConfig())
	require.NoError(t, err)

	require.Len(t, res.Headers, 2, "a rebroadcast after end-of-message is a new alert")
	assert.Equal(t, 0, res.FrameErrors)
	assert.True(t, res.EOMSeen)
}

func TestDecodeDisagreeingRepeats(t *testing.T) {
	const rate = 11025
	const other = "ZCZC-WXR-RMT-012057+0030-2780415-WTSP/TV-"

	var first = EncodeAlert(testHeader, 1, false, EncoderOptions{SampleRate: rate})
	var second = EncodeAlert(other, 1, false, EncoderOptions{SampleRate: rate})
	var both = append(append([]int16{}, first...), second...)

	var res, err = Decode(NewAudioBufferInt16(both, rate), DefaultConfig())
	require.NoError(t, err)

	require.Len(t, res.Headers, 2, "disagreeing copies must both be surfaced")
	assert.Equal(t, testHeader, res.Headers[0].Raw)
	assert.Equal(t, other, res.Headers[1].Raw)
	assert.Equal(t, 1, res.FrameErrors, "the disagreement itself counts as a frame error")
}

func TestDecodeEOMOnly(t *testing.T) {
	var samples = EncodeAlert(testHeader, 0, true, EncoderOptions{SampleRate: 11025})

	var res, err = Decode(NewAudioBufferInt16(samples, 11025), DefaultConfig())
	require.NoError(t, err)

	assert.Empty(t, res.Headers)
	assert.True(t, res.EOMSeen)
	assert.Equal(t, 0, res.FrameErrors)
	assert.Equal(t, 0.0, res.BitConfidence)
}

func TestDecodeEmptyBuffer(t *testing.T) {
	var _, err = Decode(NewAudioBuffer(nil, 11025), DefaultConfig())
	require.ErrorIs(t, err, ErrEmptyBuffer)

	_, err = Decode(nil, DefaultConfig())
	require.ErrorIs(t, err, ErrEmptyBuffer)
}

func TestDecodeRateInadequate(t *testing.T) {
	var cfg = DefaultConfig()
	cfg.PreferredRates = []int{6000}

	var buf = NewAudioBuffer(make([]float64, 8000), 8000)
	var _, err = Decode(buf, cfg)
	require.ErrorIs(t, err, ErrRateInadequate)
}
