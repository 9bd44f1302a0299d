package same

/*------------------------------------------------------------------
 *
 * Purpose:	Decoder tuning knobs, with YAML load support.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the decoder tuning parameters.  The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// PreferredRates is the ordered list of decode rates tried during
	// sample-rate negotiation.  The first entry with an adequate
	// Nyquist margin wins.  A zero entry stands for the buffer's own
	// native rate.
	PreferredRates []int `yaml:"preferred_rates"`

	// MinNyquistMargin is the minimum acceptable ratio of decode rate
	// to the mark frequency.  3.0 is the floor; values below it fail
	// validation.
	MinNyquistMargin float64 `yaml:"min_nyquist_margin"`

	// BaudTolerancePercent bounds how far the bit clock may drift from
	// the nominal 520.83 baud before synchronization is abandoned.
	BaudTolerancePercent float64 `yaml:"baud_tolerance_percent"`

	// PreambleBitErrorTolerance is the number of bit positions allowed
	// to differ when matching the preamble-plus-sync pattern in the
	// sliding accumulator.
	PreambleBitErrorTolerance int `yaml:"preamble_bit_error_tolerance"`

	// NoiseThreshold is the per-bit confidence floor.  A long run of
	// bits below it aborts the current capture; a capture whose mean
	// confidence falls below it is counted as a frame error.
	NoiseThreshold float64 `yaml:"noise_threshold"`
}

// DefaultConfig returns the tuning used by the command line tools.
func DefaultConfig() Config {
	return Config{
		PreferredRates:            []int{0, 16000, 11025, 8000, 22050, 44100},
		MinNyquistMargin:          3.0,
		BaudTolerancePercent:      5.0,
		PreambleBitErrorTolerance: 2,
		NoiseThreshold:            0.25,
	}
}

// LoadConfig reads a YAML config file, filling unset fields from
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	var c = DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) validate() error {
	// 3x over the mark frequency is a hard floor: below it the per-bit
	// windows cannot separate the tones reliably.
	if c.MinNyquistMargin < 3.0 {
		return fmt.Errorf("min_nyquist_margin %.2f below the 3.0 floor", c.MinNyquistMargin)
	}
	if c.BaudTolerancePercent <= 0 || c.BaudTolerancePercent >= 50 {
		return fmt.Errorf("baud_tolerance_percent %.2f out of range", c.BaudTolerancePercent)
	}
	if c.PreambleBitErrorTolerance < 0 || c.PreambleBitErrorTolerance > 16 {
		return fmt.Errorf("preamble_bit_error_tolerance %d out of range", c.PreambleBitErrorTolerance)
	}
	if c.NoiseThreshold < 0 || c.NoiseThreshold >= 1 {
		return fmt.Errorf("noise_threshold %.2f out of range", c.NoiseThreshold)
	}
	return nil
}
