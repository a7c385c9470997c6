package forecast

import (
	"regexp"
	"strings"

	"github.com/rabirubia/marine-card/internal/common"
)

// Parser extracts the card fields from a raw NWS coastal waters product.
// NWS products are semi-structured natural language; every extraction is a
// tolerant keyword match, and a field that cannot be located falls back to
// its documented default instead of failing the zone.
type Parser struct{}

// NewParser returns a Parser. It is stateless and safe for concurrent use.
func NewParser() *Parser {
	return &Parser{}
}

var (
	reAdvisory = regexp.MustCompile(`(?i)(SMALL CRAFT ADVISORY[^\n]*|GALE WARNING[^\n]*|STORM WARNING[^\n]*|HURRICANE FORCE[^\n]*)`)

	// The .TODAY... section carries the conditions the card reports.
	// Products occasionally use a bare "TODAY" heading instead.
	reTodayDotted = regexp.MustCompile(`(?is)\.TODAY\.\.\.(.*?)(?:\n\.[A-Z]|\$\$|\z)`)
	reTodayPlain  = regexp.MustCompile(`(?is)TODAY\s*\n(.*?)(?:TONIGHT|\z)`)

	reWind = regexp.MustCompile(`(?i)((?:North|South|East|West|NE|NW|SE|SW|[NSEW]+)` +
		`(?:\s+to\s+(?:North|South|East|West|NE|NW|SE|SW|[NSEW]+))?` +
		`\s+winds?\s+\d+(?:\s+to\s+\d+)?\s+knots?)`)
	reWindWord = regexp.MustCompile(`(?i)\s*winds?\s*`)
	reKnots    = regexp.MustCompile(`(?i)\s+knots?`)

	reGusts = regexp.MustCompile(`(?i)gusts?\s+(?:up\s+to\s+)?(\d+)\s+knots?`)
	reSeas  = regexp.MustCompile(`(?i)seas?\s+(\d+\s+to\s+\d+|\d+)\s+feet?`)

	reWaveDetail = regexp.MustCompile(`(?i)wave\s+detail:?\s*([^.;\n]+)`)
	reWaveSplit  = regexp.MustCompile(`(?i)\s+and\s+`)
	reWaveComp   = regexp.MustCompile(`(?i)^(\w+)\s+(\d+)\s+feet?\s+at\s+(\d+)\s+seconds?$`)

	// Synopsis block of the combined product: ends at the next dotted
	// section header or the $$ product terminator.
	reSynopsisDotted = regexp.MustCompile(`(?is)\.SYNOPSIS\.\.\.(.+?)(?:\n\.[A-Z]|\$\$|\z)`)
	reSynopsisLine   = regexp.MustCompile(`(?is)SYNOPSIS[^\n]*\n(.+?)(?:\n[A-Z]{3}[0-9]|\$\$|\nAMZ|\z)`)
)

var waveDirections = map[string]string{
	"north": "N", "south": "S", "east": "E", "west": "W",
	"northeast": "NE", "northwest": "NW", "southeast": "SE", "southwest": "SW",
}

var precipKeywords = []string{"thunderstorm", "showers", "rain", "sunny", "partly cloudy", "cloudy", "clear"}

// ParseZone extracts a ZoneForecast from raw product text. It never returns
// an error: missing fields take their defaults, and empty input yields the
// fully defaulted forecast with Fetched left false for the caller to set.
func (p *Parser) ParseZone(zone Zone, text string) ZoneForecast {
	zf := ZoneForecast{
		Zone: zone,
		Wind: DefaultWind,
		Seas: DefaultSeas,
	}
	if strings.TrimSpace(text) == "" {
		return zf
	}
	zf.Fetched = true

	if m := reAdvisory.FindString(text); m != "" {
		zf.Advisory = titleCase(strings.TrimSpace(m))
		zf.AdvisoryActive = true
	}

	block := todayBlock(text)

	if m := reWind.FindStringSubmatch(block); m != nil {
		w := strings.TrimSpace(m[1])
		w = strings.TrimSpace(reWindWord.ReplaceAllString(w, " "))
		w = reKnots.ReplaceAllString(w, " kt")
		zf.Wind = w
	}

	if m := reGusts.FindStringSubmatch(block); m != nil {
		zf.Gusts = "Gusts to " + m[1] + " kt"
	}

	if m := reSeas.FindStringSubmatch(block); m != nil {
		zf.Seas = m[1] + " ft"
	}

	if m := reWaveDetail.FindStringSubmatch(block); m != nil {
		zf.WaveDetail = waveDetail(m[1])
	}

	zf.Precip = precipSentence(block)

	return zf
}

// ParseSynopsis extracts the synopsis block from the combined product,
// collapsed to a single line and capped at 420 characters. Empty input or
// an unrecognizable product yields "".
func (p *Parser) ParseSynopsis(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if m := reSynopsisDotted.FindStringSubmatch(text); m != nil {
		return common.Truncate(common.CollapseSpaces(m[1]), 420)
	}
	if m := reSynopsisLine.FindStringSubmatch(text); m != nil {
		return common.Truncate(common.CollapseSpaces(m[1]), 420)
	}
	return ""
}

// todayBlock narrows the text to the .TODAY... section when present. With
// no recognizable section heading the leading kilobyte is scanned instead,
// which covers products whose field ordering has drifted.
func todayBlock(text string) string {
	if m := reTodayDotted.FindStringSubmatch(text); m != nil {
		return common.CollapseSpaces(m[1])
	}
	if m := reTodayPlain.FindStringSubmatch(text); m != nil {
		return common.CollapseSpaces(m[1])
	}
	if len(text) > 1000 {
		text = text[:1000]
	}
	return common.CollapseSpaces(text)
}

// waveDetail compacts "northeast 4 feet at 9 seconds and east 2 feet at 7
// seconds" into "NE 4ft@9s + E 2ft@7s". Components that do not match the
// expected shape pass through untouched.
func waveDetail(raw string) string {
	parts := reWaveSplit.Split(strings.TrimSpace(raw), -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if m := reWaveComp.FindStringSubmatch(part); m != nil {
			dir, ok := waveDirections[strings.ToLower(m[1])]
			if !ok {
				dir = strings.ToUpper(m[1])
				if len(dir) > 2 {
					dir = dir[:2]
				}
			}
			out = append(out, dir+" "+m[2]+"ft@"+m[3]+"s")
			continue
		}
		out = append(out, part)
	}
	return strings.Join(out, " + ")
}

// precipSentence picks the first sentence mentioning a sky/precipitation
// keyword, capped for the conditions block on the card.
func precipSentence(block string) string {
	lower := strings.ToLower(block)
	for _, kw := range precipKeywords {
		idx := strings.Index(lower, kw)
		if idx < 0 {
			continue
		}
		start := strings.LastIndex(lower[:idx], ". ")
		if start < 0 {
			start = 0
		} else {
			start += 2
		}
		end := strings.Index(lower[idx:], ".")
		if end < 0 {
			end = len(block)
		} else {
			end += idx + 1
		}
		sentence := strings.TrimSpace(block[start:end])
		if len(sentence) > 90 {
			sentence = sentence[:90]
		}
		return sentence
	}
	return ""
}

// titleCase normalizes an all-caps NWS headline ("SMALL CRAFT ADVISORY IN
// EFFECT") to title case for display.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
