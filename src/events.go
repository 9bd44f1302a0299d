package same

/*------------------------------------------------------------------
 *
 * Purpose:	Originator and event code tables.
 *
 *---------------------------------------------------------------*/

var originatorNames = map[string]string{
	"PEP": "Primary Entry Point System",
	"CIV": "Civil Authorities",
	"WXR": "National Weather Service",
	"EAS": "Broadcast Station or Cable System",
	"EAN": "Emergency Action Notification Network",
}

var eventNames = map[string]string{
	"EAN": "Emergency Action Notification",
	"NIC": "National Information Center",
	"NPT": "National Periodic Test",
	"RMT": "Required Monthly Test",
	"RWT": "Required Weekly Test",
	"ADR": "Administrative Message",
	"AVA": "Avalanche Watch",
	"AVW": "Avalanche Warning",
	"BZW": "Blizzard Warning",
	"CAE": "Child Abduction Emergency",
	"CDW": "Civil Danger Warning",
	"CEM": "Civil Emergency Message",
	"CFA": "Coastal Flood Watch",
	"CFW": "Coastal Flood Warning",
	"DMO": "Practice/Demo Warning",
	"DSW": "Dust Storm Warning",
	"EQW": "Earthquake Warning",
	"EVI": "Evacuation Immediate",
	"EWW": "Extreme Wind Warning",
	"FFA": "Flash Flood Watch",
	"FFS": "Flash Flood Statement",
	"FFW": "Flash Flood Warning",
	"FLA": "Flood Watch",
	"FLS": "Flood Statement",
	"FLW": "Flood Warning",
	"FRW": "Fire Warning",
	"FSW": "Flash Freeze Warning",
	"FZW": "Freeze Warning",
	"HLS": "Hurricane Local Statement",
	"HMW": "Hazardous Materials Warning",
	"HUA": "Hurricane Watch",
	"HUW": "Hurricane Warning",
	"HWA": "High Wind Watch",
	"HWW": "High Wind Warning",
	"LAE": "Local Area Emergency",
	"LEW": "Law Enforcement Warning",
	"NMN": "Network Message Notification",
	"NUW": "Nuclear Power Plant Warning",
	"RHW": "Radiological Hazard Warning",
	"SMW": "Special Marine Warning",
	"SPS": "Special Weather Statement",
	"SPW": "Shelter in Place Warning",
	"SQW": "Snow Squall Warning",
	"SSA": "Storm Surge Watch",
	"SSW": "Storm Surge Warning",
	"SVA": "Severe Thunderstorm Watch",
	"SVR": "Severe Thunderstorm Warning",
	"SVS": "Severe Weather Statement",
	"TOA": "Tornado Watch",
	"TOE": "911 Telephone Outage Emergency",
	"TOR": "Tornado Warning",
	"TRA": "Tropical Storm Watch",
	"TRW": "Tropical Storm Warning",
	"TSA": "Tsunami Watch",
	"TSW": "Tsunami Warning",
	"VOW": "Volcano Warning",
	"WSA": "Winter Storm Watch",
	"WSW": "Winter Storm Warning",
}

// OriginatorName returns the descriptive name for an originator code,
// or the empty string for an unknown code.
func OriginatorName(code string) string { return originatorNames[code] }

// EventName returns the descriptive name for an event code, or the
// empty string for an unknown code.
func EventName(code string) string { return eventNames[code] }
