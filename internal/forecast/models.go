package forecast

import (
	"strings"
	"time"
)

// Defaults shown on the card when a field could not be extracted from the
// forecast text. Matching the NWS wording keeps degraded cards honest:
// readers are pointed at the source instead of shown a guess.
const (
	DefaultWind = "Check NWS"
	DefaultSeas = "Check NWS"

	// DefaultSynopsis is rendered when the combined product could not be
	// fetched or carries no recognizable synopsis block.
	DefaultSynopsis = "Synopsis unavailable - visit weather.gov/sju for current marine forecast."
)

// ZoneForecast is the parsed view of a single zone's forecast text for one
// run. It is built once per zone per run and consumed only by the renderer
// and the latest-report API.
type ZoneForecast struct {
	Zone Zone `json:"zone"`

	Wind       string `json:"wind"`
	Gusts      string `json:"gusts,omitempty"`
	Seas       string `json:"seas"`
	WaveDetail string `json:"waveDetail,omitempty"`
	Precip     string `json:"precip,omitempty"`

	// Advisory is the normalized headline ("Small Craft Advisory", ...);
	// empty when none is in effect. AdvisoryActive is the boolean flag the
	// card marks per zone.
	Advisory       string `json:"advisory,omitempty"`
	AdvisoryActive bool   `json:"advisoryActive"`

	// Fetched is false when the zone's product could not be retrieved this
	// run. The renderer degrades such zones to an unavailable placeholder.
	Fetched bool `json:"fetched"`
}

// Report is the complete input to one card render: one entry per zone in
// card order, the run-level synopsis and advisory list, and the timestamps
// stamped onto the card.
type Report struct {
	// GeneratedAt is the run time in AST (fixed UTC-4, no DST).
	GeneratedAt time.Time `json:"generatedAt"`

	// DateLabel ("FEB 27") and TimeLabel ("6:30 AM") are the header strings
	// derived from GeneratedAt.
	DateLabel string `json:"dateLabel"`
	TimeLabel string `json:"timeLabel"`

	Synopsis string `json:"synopsis"`

	// Advisories is the deduplicated, sorted run-level advisory list. It is
	// never empty: with nothing in effect it holds the single entry
	// "No Active Advisories".
	Advisories []string `json:"advisories"`

	Zones [4]ZoneForecast `json:"zones"`
}

// HasActiveAdvisory reports whether any zone has an advisory in effect.
// It drives the banner color on the card.
func (r Report) HasActiveAdvisory() bool {
	for _, z := range r.Zones {
		if z.AdvisoryActive {
			return true
		}
	}
	return false
}

// FailedZones returns the codes of zones whose fetch failed this run.
func (r Report) FailedZones() []string {
	var failed []string
	for _, z := range r.Zones {
		if !z.Fetched {
			failed = append(failed, z.Zone.Code)
		}
	}
	return failed
}

// AST is the fixed Atlantic Standard Time zone (UTC-4). Puerto Rico does
// not observe daylight saving.
var AST = time.FixedZone("AST", -4*60*60)

// DateLabelFor and TimeLabelFor format a run timestamp the way the card
// header expects, e.g. "FEB 27" and "6:30 AM".
func DateLabelFor(t time.Time) string {
	return strings.ToUpper(t.In(AST).Format("Jan 02"))
}

func TimeLabelFor(t time.Time) string {
	return t.In(AST).Format("3:04 PM")
}
