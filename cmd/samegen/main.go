package main

/*------------------------------------------------------------------
 *
 * Purpose:	Generate alert audio for testing receivers.
 *
 * Description:	Renders a header burst (three repeats plus the
 *		end-of-message bursts by default) to a WAV file.
 *		Noise and baud offset options exist to stress a
 *		decoder under controlled impairments.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	same "github.com/wxtools/same/src"
)

const defaultHeader = "ZCZC-EAS-RWT-012057-012081-012101-012103-012115+0030-2780415-WTSP/TV-"

func main() {
	var header = pflag.StringP("header", "H", defaultHeader, "Header text to transmit.")
	var outputFile = pflag.StringP("output-file", "o", "alert.wav", "Send output to .wav file.")
	var sampleRate = pflag.IntP("audio-sample-rate", "r", 11025, "Audio sample rate.")
	var repeats = pflag.IntP("repeats", "n", 3, "Number of header bursts.")
	var noEOM = pflag.Bool("no-eom", false, "Skip the end-of-message bursts.")
	var amplitude = pflag.IntP("amplitude", "a", 80, "Signal amplitude in range of 0 - 100%.")
	var noise = pflag.Float64P("noise", "N", 0, "Additive noise peak as percentage of full scale.")
	var noiseSeed = pflag.Int("noise-seed", 1, "Seed for the noise generator.")
	var baudOffset = pflag.Float64P("baud-offset", "b", 0, "Baud rate offset from nominal, in percent.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: samegen [options]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if _, err := same.ParseHeader(*header); err != nil {
		log.Fatal("Refusing to transmit a malformed header", "err", err)
	}

	samples := same.EncodeAlert(*header, *repeats, !*noEOM, same.EncoderOptions{
		SampleRate:        *sampleRate,
		Amplitude:         float64(*amplitude) / 100,
		BaudOffsetPercent: *baudOffset,
		NoisePercent:      *noise,
		NoiseSeed:         *noiseSeed,
	})

	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatal("Create failed", "err", err)
	}
	defer f.Close()

	if err := same.WriteWAV(f, samples, *sampleRate); err != nil {
		log.Fatal("Write failed", "file", *outputFile, "err", err)
	}

	log.Info("Wrote alert audio",
		"file", *outputFile,
		"rate", *sampleRate,
		"samples", len(samples),
		"repeats", *repeats)
}
