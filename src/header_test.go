package same

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseHeader(t *testing.T) {
	var rec, err = ParseHeader(testHeader)
	require.NoError(t, err)

	assert.Equal(t, "EAS", rec.Originator)
	assert.Equal(t, "RWT", rec.EventCode)
	assert.Equal(t, []string{"012057", "012081", "012101", "012103", "012115"}, rec.Locations)
	assert.Equal(t, 30*time.Minute, rec.Purge)
	assert.Equal(t, 278, rec.IssueDay)
	assert.Equal(t, 4, rec.IssueHour)
	assert.Equal(t, 15, rec.IssueMinute)
	assert.Equal(t, "WTSP/TV", rec.Station)
	assert.Equal(t, testHeader, rec.Raw)
}

func TestParseHeaderRejects(t *testing.T) {
	var cases = map[string]string{
		"no start marker":      "NNNN-EAS-RWT-012057+0030-2780415-KABC    -",
		"no trailing dash":     "ZCZC-EAS-RWT-012057+0030-2780415-KABC",
		"no attention marker":  "ZCZC-EAS-RWT-012057-0030-2780415-KABC    -",
		"short originator":     "ZCZC-EA-RWT-012057+0030-2780415-KABC    -",
		"lowercase event":      "ZCZC-EAS-rwt-012057+0030-2780415-KABC    -",
		"no locations":         "ZCZC-EAS-RWT+0030-2780415-KABC    -",
		"short location":       "ZCZC-EAS-RWT-01205+0030-2780415-KABC    -",
		"alpha location":       "ZCZC-EAS-RWT-01205A+0030-2780415-KABC    -",
		"short purge":          "ZCZC-EAS-RWT-012057+030-2780415-KABC    -",
		"purge minutes":        "ZCZC-EAS-RWT-012057+0075-2780415-KABC    -",
		"issue day zero":       "ZCZC-EAS-RWT-012057+0030-0000415-KABC    -",
		"issue day overflow":   "ZCZC-EAS-RWT-012057+0030-3670415-KABC    -",
		"issue hour overflow":  "ZCZC-EAS-RWT-012057+0030-2782515-KABC    -",
		"empty station":        "ZCZC-EAS-RWT-012057+0030-2780415--",
		"oversize station":     "ZCZC-EAS-RWT-012057+0030-2780415-ABCDEFGHI-",
		"trailing extra field": "ZCZC-EAS-RWT-012057+0030-2780415-KABC-XTRA-",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var _, err = ParseHeader(raw)
			assert.Error(t, err)
		})
	}
}

func TestParseHeaderLocationLimit(t *testing.T) {
	var build = func(n int) string {
		var locs = make([]string, n)
		for i := range locs {
			locs[i] = fmt.Sprintf("%06d", i+1)
		}
		return "ZCZC-WXR-TOR-" + strings.Join(locs, "-") + "+0100-0011200-KEAX/NWS-"
	}

	var rec, err = ParseHeader(build(MaxLocationCodes))
	require.NoError(t, err)
	assert.Len(t, rec.Locations, MaxLocationCodes)

	_, err = ParseHeader(build(MaxLocationCodes + 1))
	assert.Error(t, err)
}

func TestParseHeaderRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var org = rapid.StringMatching(`[A-Z]{3}`).Draw(t, "org")
		var event = rapid.StringMatching(`[A-Z]{3}`).Draw(t, "event")
		var locs = rapid.SliceOfN(rapid.StringMatching(`[0-9]{6}`), 1, MaxLocationCodes).Draw(t, "locs")
		var purgeH = rapid.IntRange(0, 99).Draw(t, "purgeH")
		var purgeM = rapid.IntRange(0, 59).Draw(t, "purgeM")
		var day = rapid.IntRange(1, 366).Draw(t, "day")
		var hour = rapid.IntRange(0, 23).Draw(t, "hour")
		var minute = rapid.IntRange(0, 59).Draw(t, "minute")
		var station = rapid.StringMatching(`[A-Z0-9/ ]{1,8}`).Draw(t, "station")

		var raw = fmt.Sprintf("ZCZC-%s-%s-%s+%02d%02d-%03d%02d%02d-%s-",
			org, event, strings.Join(locs, "-"), purgeH, purgeM, day, hour, minute, station)

		var rec, err = ParseHeader(raw)
		require.NoError(t, err)
		assert.Equal(t, org, rec.Originator)
		assert.Equal(t, event, rec.EventCode)
		assert.Equal(t, locs, rec.Locations)
		assert.Equal(t, time.Duration(purgeH)*time.Hour+time.Duration(purgeM)*time.Minute, rec.Purge)
		assert.Equal(t, day, rec.IssueDay)
		assert.Equal(t, station, rec.Station)
	})
}

func TestOriginatorAndEventNames(t *testing.T) {
	assert.Equal(t, "National Weather Service", OriginatorName("WXR"))
	assert.Equal(t, "Tornado Warning", EventName("TOR"))
	assert.Empty(t, OriginatorName("XXX"))
	assert.Empty(t, EventName("XXX"))
}
