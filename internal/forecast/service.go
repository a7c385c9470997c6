package forecast

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"
)

// ZoneFetcher retrieves raw product text. Narrow on purpose: the service
// and its tests care only about text-in, not transport.
type ZoneFetcher interface {
	FetchZone(ctx context.Context, zone Zone) (string, error)
	FetchCombined(ctx context.Context) (string, error)
}

// ZoneParser turns raw product text into card fields. Isolating the pattern
// matching behind this interface lets the strategy be swapped or tested
// independently of fetch and render.
type ZoneParser interface {
	ParseZone(zone Zone, text string) ZoneForecast
	ParseSynopsis(text string) string
}

// Service builds one Report per run: fetch and parse every zone plus the
// synopsis, tolerating any number of per-zone failures.
type Service struct {
	fetcher ZoneFetcher
	parser  ZoneParser
	clock   clockwork.Clock
	logger  *slog.Logger
}

// NewService creates a Service. The clock is injected so tests can freeze
// the timestamps stamped onto the card.
func NewService(fetcher ZoneFetcher, parser ZoneParser, clock clockwork.Clock, logger *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		parser:  parser,
		clock:   clock,
		logger:  logger,
	}
}

// BuildReport fetches all zone products and the combined product in
// parallel and assembles the run's Report. It always returns a complete
// report with one entry per zone in card order; zones whose fetch failed
// carry defaulted fields with Fetched=false. BuildReport itself never
// fails: a card is produced every run regardless of how many fetches broke.
func (s *Service) BuildReport(ctx context.Context) Report {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		zones    [4]ZoneForecast
		synopsis string
	)

	for i, zone := range Zones {
		i, zone := i, zone
		wg.Add(1)
		go func() {
			defer wg.Done()

			text, err := s.fetcher.FetchZone(ctx, zone)
			if err != nil {
				// Degrade this zone only; the run continues.
				s.logger.Warn("zone fetch failed", "zone", zone.Code, "error", err)
				mu.Lock()
				zones[i] = s.parser.ParseZone(zone, "")
				mu.Unlock()
				return
			}

			zf := s.parser.ParseZone(zone, text)
			mu.Lock()
			zones[i] = zf
			mu.Unlock()
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		text, err := s.fetcher.FetchCombined(ctx)
		if err != nil {
			s.logger.Warn("synopsis fetch failed", "error", err)
			return
		}
		syn := s.parser.ParseSynopsis(text)
		mu.Lock()
		synopsis = syn
		mu.Unlock()
	}()

	wg.Wait()

	if synopsis == "" {
		synopsis = DefaultSynopsis
	}

	now := s.clock.Now()
	report := Report{
		GeneratedAt: now.In(AST),
		DateLabel:   DateLabelFor(now),
		TimeLabel:   TimeLabelFor(now),
		Synopsis:    synopsis,
		Advisories:  AggregateAdvisories(zones[:]),
		Zones:       zones,
	}

	for _, z := range report.Zones {
		s.logger.Info("zone parsed",
			"zone", z.Zone.Code,
			"fetched", z.Fetched,
			"wind", z.Wind,
			"seas", z.Seas,
			"advisory", z.AdvisoryActive)
	}

	return report
}
