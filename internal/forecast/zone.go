package forecast

// Zone identifies one of the fixed NWS San Juan coastal marine zones the
// card covers. The set is static and known at build time.
type Zone struct {
	// Code is the canonical NWS marine zone code, e.g. "AMZ711".
	Code string `json:"code"`

	// Name holds the two display lines used on the card.
	Name [2]string `json:"name"`

	// Product is the file name of the zone's coastal waters forecast
	// product under the NWS text-product tree.
	Product string `json:"product"`
}

// Key returns the canonical string key for indexing this zone.
func (z Zone) Key() string {
	return z.Code
}

// Zones lists the four covered zones in card order: Atlantic offshore,
// northern PR coast, eastern PR waters, Caribbean waters.
var Zones = [4]Zone{
	{Code: "AMZ711", Name: [2]string{"Atlantic Offshore", "(10NM - 19.5N)"}, Product: "amz711.txt"},
	{Code: "AMZ712", Name: [2]string{"Northern PR Coast", "(out 10 NM)"}, Product: "amz712.txt"},
	{Code: "AMZ726", Name: [2]string{"East PR / Vieques", "Culebra & St. John"}, Product: "amz726.txt"},
	{Code: "AMZ733", Name: [2]string{"Caribbean Waters", "PR + St. Croix"}, Product: "amz733.txt"},
}

// DefaultBaseURL is the root of the NWS coastal marine text-product tree.
// Zone products resolve as <base>/<product>.
const DefaultBaseURL = "https://tgftp.nws.noaa.gov/data/forecasts/marine/coastal/am"

// DefaultCombinedURL is the full FZCA52 coastal waters forecast for PR and
// the USVI. It carries the SYNOPSIS block near the top, before the per-zone
// sections begin.
const DefaultCombinedURL = "https://tgftp.nws.noaa.gov/data/raw/fz/fzca52.tjsj.cwf.sju.txt"
