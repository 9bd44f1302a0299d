package same

/*------------------------------------------------------------------
 *
 * Purpose:	Header grammar parsing.
 *
 * Description:	A header frame has the shape
 *
 *		ZCZC-ORG-EEE-PSSCCC(-PSSCCC)*+TTTT-JJJHHMM-LLLLLLLL-
 *
 *		ORG is the originator, EEE the event code, each
 *		PSSCCC a location, TTTT the purge time as hhmm,
 *		JJJHHMM the issue time as ordinal day plus UTC time,
 *		and LLLLLLLL the station identification.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var errBadHeader = errors.New("malformed header")

// HeaderRecord is one parsed alert header.
type HeaderRecord struct {
	Originator string
	EventCode  string
	Locations  []string

	// Purge is how long the alert remains valid after issue.
	Purge time.Duration

	// Issue time, UTC.  IssueDay is the ordinal day of year.
	IssueDay    int
	IssueHour   int
	IssueMinute int

	Station string

	// Raw is the frame text exactly as received, start marker and
	// trailing dash included.
	Raw string
}

// ParseHeader validates a raw frame against the header grammar.
func ParseHeader(raw string) (HeaderRecord, error) {
	rec := HeaderRecord{Raw: raw}

	if !strings.HasPrefix(raw, "ZCZC-") {
		return rec, fmt.Errorf("%w: missing start marker", errBadHeader)
	}
	if !strings.HasSuffix(raw, "-") {
		return rec, fmt.Errorf("%w: missing trailing dash", errBadHeader)
	}

	plus := strings.IndexByte(raw, '+')
	if plus < 0 {
		return rec, fmt.Errorf("%w: missing attention separator", errBadHeader)
	}

	// Everything before the '+': marker, originator, event, locations.
	head := strings.Split(raw[:plus], "-")
	if len(head) < 4 {
		return rec, fmt.Errorf("%w: truncated before attention separator", errBadHeader)
	}

	org := head[1]
	if len(org) != 3 || !isUpperAlpha(org) {
		return rec, fmt.Errorf("%w: originator %q", errBadHeader, org)
	}
	rec.Originator = org

	event := head[2]
	if len(event) != 3 || !isUpperAlpha(event) {
		return rec, fmt.Errorf("%w: event code %q", errBadHeader, event)
	}
	rec.EventCode = event

	locs := head[3:]
	if len(locs) > MaxLocationCodes {
		return rec, fmt.Errorf("%w: %d location codes", errBadHeader, len(locs))
	}
	for _, l := range locs {
		if len(l) != 6 || !isDigits(l) {
			return rec, fmt.Errorf("%w: location %q", errBadHeader, l)
		}
	}
	rec.Locations = locs

	// Everything after the '+': purge, issue time, station, and the
	// empty string following the trailing dash.
	tail := strings.Split(raw[plus+1:], "-")
	if len(tail) != 4 || tail[3] != "" {
		return rec, fmt.Errorf("%w: malformed tail", errBadHeader)
	}

	purge, err := parsePurge(tail[0])
	if err != nil {
		return rec, err
	}
	rec.Purge = purge

	if err := parseIssue(tail[1], &rec); err != nil {
		return rec, err
	}

	station := tail[2]
	if len(station) < 1 || len(station) > 8 {
		return rec, fmt.Errorf("%w: station %q", errBadHeader, station)
	}
	rec.Station = station

	return rec, nil
}

func parsePurge(s string) (time.Duration, error) {
	if len(s) != 4 || !isDigits(s) {
		return 0, fmt.Errorf("%w: purge time %q", errBadHeader, s)
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[2:])
	if m > 59 {
		return 0, fmt.Errorf("%w: purge time %q", errBadHeader, s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

func parseIssue(s string, rec *HeaderRecord) error {
	if len(s) != 7 || !isDigits(s) {
		return fmt.Errorf("%w: issue time %q", errBadHeader, s)
	}
	day, _ := strconv.Atoi(s[:3])
	hour, _ := strconv.Atoi(s[3:5])
	min, _ := strconv.Atoi(s[5:])
	if day < 1 || day > 366 || hour > 23 || min > 59 {
		return fmt.Errorf("%w: issue time %q", errBadHeader, s)
	}
	rec.IssueDay, rec.IssueHour, rec.IssueMinute = day, hour, min
	return nil
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String renders a record for log output.
func (r HeaderRecord) String() string {
	return fmt.Sprintf("%s/%s %s valid %s from %s",
		r.Originator, r.EventCode, strings.Join(r.Locations, ","), r.Purge, r.Station)
}
