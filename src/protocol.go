package same

/*------------------------------------------------------------------
 *
 * Purpose:	Protocol constants for Specific Area Message Encoding.
 *
 * References:	47 CFR 11.31, NWSI 10-1712.
 *
 *---------------------------------------------------------------*/

const (
	// MarkFrequency carries a 1 bit, SpaceFrequency a 0 bit.
	MarkFrequency  = 2083.3
	SpaceFrequency = 1562.5

	// BaudRate is the AFSK signalling rate.  Each bit lasts exactly
	// 1920 microseconds.
	BaudRate = 520.83

	// PreambleByte repeats sixteen times before the start marker.
	PreambleByte = 0xAB

	// PreambleLength is the number of preamble bytes per burst.
	PreambleLength = 16

	// MaxFrameLength bounds a header frame in characters, start
	// marker included.
	MaxFrameLength = 268

	// MaxLocationCodes is the largest count of PSSCCC location
	// fields a header may carry.
	MaxLocationCodes = 31

	// BurstRepeats is how many times an alert header or EOM frame
	// is transmitted.
	BurstRepeats = 3

	// BurstGapMilliseconds is the silence between repeats.
	BurstGapMilliseconds = 1000
)

// Bytes are sent least significant bit first.  With the LSB-first
// convention the 64-bit sliding accumulator sees the most recently
// received bit in its top position, so the match patterns below read
// right to left in time: four preamble bytes followed by the four
// start marker characters.
const (
	preambleZCZC uint64 = 0x435a435aabababab // "ZCZC" after 0xAB 0xAB 0xAB 0xAB
	preambleNNNN uint64 = 0x4e4e4e4eabababab // "NNNN" after 0xAB 0xAB 0xAB 0xAB
)
