package forecast

import (
	"sort"
	"strings"
)

// NoActiveAdvisories is the banner text when no zone carries an advisory.
const NoActiveAdvisories = "No Active Advisories"

// AggregateAdvisories normalizes the per-zone advisory headlines into the
// deduplicated, sorted run-level list shown on the banner and in the
// synopsis tags. Headlines that match a known NWS marine hazard collapse to
// its canonical name; anything unrecognized passes through as-is.
func AggregateAdvisories(zones []ZoneForecast) []string {
	found := make(map[string]struct{})

	for _, z := range zones {
		adv := strings.TrimSpace(z.Advisory)
		if adv == "" {
			continue
		}
		lower := strings.ToLower(adv)
		switch {
		case strings.Contains(lower, "small craft"):
			found["Small Craft Advisory"] = struct{}{}
		case strings.Contains(lower, "gale"):
			found["Gale Warning"] = struct{}{}
		case strings.Contains(lower, "hurricane"):
			found["Hurricane Force Wind Warning"] = struct{}{}
		case strings.Contains(lower, "storm"):
			found["Storm Warning"] = struct{}{}
		default:
			found[adv] = struct{}{}
		}
	}

	if len(found) == 0 {
		return []string{NoActiveAdvisories}
	}

	out := make([]string, 0, len(found))
	for adv := range found {
		out = append(out, adv)
	}
	sort.Strings(out)
	return out
}
