package forecast

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

const userAgent = "RabirubiaWeather/1.0 (github.com/rabirubia/marine-card)"

var (
	errEmptyBody  = errors.New("empty product body")
	errUnexpected = errors.New("unexpected status code")

	// ErrCircuitOpen is returned without touching the network when a zone's
	// endpoint has been failing and its breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// Fetcher retrieves raw forecast product text from the NWS text tree. One
// attempt per product per run: the system runs on a daily schedule, so the
// next run is the retry. A circuit breaker per product protects serve mode
// from hammering an endpoint that is down.
type Fetcher struct {
	client      *http.Client
	baseURL     string
	combinedURL string
	logger      *slog.Logger

	breakers map[string]*gobreaker.CircuitBreaker
}

// NewFetcher creates a Fetcher using the shared HTTP client. The client's
// timeout bounds each product fetch.
func NewFetcher(client *http.Client, baseURL, combinedURL string, logger *slog.Logger) *Fetcher {
	f := &Fetcher{
		client:      client,
		baseURL:     strings.TrimRight(baseURL, "/"),
		combinedURL: combinedURL,
		logger:      logger,
		breakers:    make(map[string]*gobreaker.CircuitBreaker, len(Zones)+1),
	}

	for _, z := range Zones {
		f.breakers[z.Code] = newBreaker(z.Code)
	}
	f.breakers["combined"] = newBreaker("combined")

	return f
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    10 * time.Minute,
		Timeout:     30 * time.Minute,
	})
}

// FetchZone retrieves the raw product text for one zone. A failure is
// returned to the caller and degrades that zone only.
func (f *Fetcher) FetchZone(ctx context.Context, zone Zone) (string, error) {
	url := f.baseURL + "/" + zone.Product
	return f.fetch(ctx, f.breakers[zone.Code], url)
}

// FetchCombined retrieves the combined FZCA52 product used for the
// synopsis, falling back to the Atlantic zone product when it fails.
func (f *Fetcher) FetchCombined(ctx context.Context) (string, error) {
	text, err := f.fetch(ctx, f.breakers["combined"], f.combinedURL)
	if err == nil {
		return text, nil
	}
	f.logger.Warn("combined product fetch failed, falling back to atlantic zone",
		"error", err)
	return f.FetchZone(ctx, Zones[0])
}

func (f *Fetcher) fetch(ctx context.Context, cb *gobreaker.CircuitBreaker, url string) (string, error) {
	result, err := cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if len(strings.TrimSpace(string(body))) == 0 {
			return nil, errEmptyBody
		}
		return string(body), nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		return "", err
	}

	text, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("unexpected result type from circuit breaker")
	}
	return text, nil
}
