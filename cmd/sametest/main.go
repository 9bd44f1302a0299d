package main

/*------------------------------------------------------------------
 *
 * Purpose:	Decode alert audio from a WAV or MP3 file.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/spf13/pflag"

	same "github.com/wxtools/same/src"
)

func main() {
	var configFile = pflag.StringP("config", "c", "", "YAML config file with decoder tuning.")
	var forceRate = pflag.IntP("decode-rate", "r", 0, "Force a specific decode sample rate.")
	var verbose = pflag.BoolP("verbose", "v", false, "Debug level logging.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sametest [options] file.wav|file.mp3\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help || pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := same.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = same.LoadConfig(*configFile)
		if err != nil {
			log.Fatal("Bad config", "err", err)
		}
	}
	if *forceRate != 0 {
		cfg.PreferredRates = []int{*forceRate}
	}

	path := pflag.Arg(0)
	buf, err := readAudio(path)
	if err != nil {
		log.Fatal("Read failed", "file", path, "err", err)
	}
	log.Debug("Loaded audio", "file", path, "rate", buf.SampleRate(), "duration", buf.Duration())

	res, err := same.Decode(buf, cfg)
	if err != nil {
		log.Fatal("Decode failed", "err", err)
	}

	for _, h := range res.Headers {
		fmt.Println(h.Raw)
		fmt.Printf("  %s: %s\n", h.Originator, describe(same.OriginatorName(h.Originator)))
		fmt.Printf("  %s: %s\n", h.EventCode, describe(same.EventName(h.EventCode)))
		fmt.Printf("  %d location(s), valid %s, station %s\n", len(h.Locations), h.Purge, h.Station)
	}

	log.Info("Decode complete",
		"rate", res.DecodeRate,
		"headers", len(res.Headers),
		"eom", res.EOMSeen,
		"frame_errors", res.FrameErrors,
		"confidence", fmt.Sprintf("%.3f", res.BitConfidence))

	if len(res.Headers) == 0 && !res.EOMSeen {
		os.Exit(1)
	}
}

func describe(name string) string {
	if name == "" {
		return "(unknown)"
	}
	return name
}

func readAudio(path string) (*same.AudioBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".mp3") {
		return readMP3(f)
	}
	return same.ReadWAV(f)
}

func readMP3(f *os.File) (*same.AudioBuffer, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}

	// go-mp3 always emits 16 bit stereo frames.
	raw := make([]byte, 0, dec.Length())
	chunk := make([]byte, 8192)
	for {
		n, err := dec.Read(chunk)
		raw = append(raw, chunk[:n]...)
		if err != nil {
			break
		}
	}

	frames := len(raw) / 4
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		l := int16(uint16(raw[i*4]) | uint16(raw[i*4+1])<<8)
		r := int16(uint16(raw[i*4+2]) | uint16(raw[i*4+3])<<8)
		samples[i] = (float64(l) + float64(r)) / 2 / 32768.0
	}
	return same.NewAudioBuffer(samples, dec.SampleRate()), nil
}
