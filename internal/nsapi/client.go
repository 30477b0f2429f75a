// Package nsapi implements the client for the NS reisinformatie trips
// endpoint: HTTP fetching with a dedicated client, response parsing, and
// per-request memoization.
package nsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stationator.nl/internal/logging"
	"stationator.nl/internal/metrics"
)

// DefaultBaseURL is the production NS trips endpoint.
const DefaultBaseURL = "https://gateway.apiportal.ns.nl/reisinformatie-api/api/v3"

// DefaultTimeout bounds a single trips request end to end.
const DefaultTimeout = 15 * time.Second

// dateTimeFormat is the minute-granularity timestamp format the trips
// endpoint accepts in its dateTime query parameter.
const dateTimeFormat = "2006-01-02T15:04"

// ErrMissingAPIKey is returned when a fetch is attempted without a
// subscription key. The request is never sent unauthenticated.
var ErrMissingAPIKey = errors.New("nsapi: NS_API_KEY is not set")

// FetchError describes a failed trips fetch: a non-2xx response (carrying
// the status and error body), or a network/parse failure (carrying the
// cause). Partial data is never returned alongside a FetchError.
type FetchError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nsapi: fetch %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("nsapi: fetch %s returned HTTP %d: %s", e.URL, e.StatusCode, e.Body)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Config holds the client settings. APIKey comes from the NS_API_KEY
// environment variable; its absence is a configuration error surfaced at
// the first fetch attempt.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client fetches trips from the NS API and memoizes successful responses.
type Client struct {
	config     Config
	httpClient *http.Client
	cache      *Cache
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewClient creates a trips client. The cache is owned by the caller so
// that the prewarm job can clear it and tests can reset it; logger and
// metrics may be nil.
func NewClient(config Config, cache *Cache, logger *slog.Logger, m *metrics.Metrics) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if cache == nil {
		cache = NewCache()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		config:     config,
		httpClient: newTripsHTTPClient(config.Timeout),
		cache:      cache,
		logger:     logger.With(slog.String("component", "nsapi_client")),
		metrics:    m,
	}
}

// newTripsHTTPClient builds a dedicated HTTP client with explicit timeouts
// and transport limits to avoid the pitfalls of http.DefaultClient (no
// timeout, shared global state). The transport is cloned from
// http.DefaultTransport to preserve important defaults
// (ProxyFromEnvironment, DialContext, HTTP/2, keepalives).
func newTripsHTTPClient(timeout time.Duration) *http.Client {
	var transport *http.Transport
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		transport = t.Clone()
	} else {
		transport = &http.Transport{}
	}
	transport.MaxIdleConns = 50
	transport.MaxIdleConnsPerHost = 10
	transport.IdleConnTimeout = 90 * time.Second
	transport.TLSHandshakeTimeout = 10 * time.Second
	transport.ExpectContinueTimeout = 1 * time.Second

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// Cache exposes the memo cache, primarily for the prewarm job's atomic
// clear and for test resets.
func (c *Client) Cache() *Cache {
	return c.cache
}

// Fetch retrieves the raw trip records for one station pair at the given
// time. Identical calls (same pair, same minute) are served from the cache
// without a network round-trip until the cache is cleared.
func (c *Client) Fetch(ctx context.Context, origin, destination string, at time.Time) ([]RawTrip, error) {
	origin = strings.ToLower(origin)
	destination = strings.ToLower(destination)
	key := newCacheKey(origin, destination, at)

	if trips, ok := c.cache.get(key); ok {
		if c.metrics != nil {
			c.metrics.TripCacheHitsTotal.Inc()
		}
		c.logger.Debug("trip fetch served from cache",
			slog.String("origin", origin),
			slog.String("destination", destination),
			slog.String("dateTime", at.Format(dateTimeFormat)))
		return trips, nil
	}

	if c.config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	trips, err := c.fetchRemote(ctx, origin, destination, at)
	if err != nil {
		c.countFetch(origin, destination, "error")
		logging.LogError(c.logger, "trip fetch failed", err,
			slog.String("origin", origin),
			slog.String("destination", destination),
			slog.String("dateTime", at.Format(dateTimeFormat)))
		return nil, err
	}

	c.cache.put(key, trips)
	c.countFetch(origin, destination, "success")
	c.logger.Info("fetched trips",
		slog.String("origin", origin),
		slog.String("destination", destination),
		slog.String("dateTime", at.Format(dateTimeFormat)),
		slog.Int("trips", len(trips)))
	return trips, nil
}

func (c *Client) fetchRemote(ctx context.Context, origin, destination string, at time.Time) ([]RawTrip, error) {
	query := url.Values{}
	query.Set("fromStation", origin)
	query.Set("toStation", destination)
	query.Set("dateTime", at.Format(dateTimeFormat))
	requestURL := c.config.BaseURL + "/trips?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &FetchError{URL: requestURL, Err: err}
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.config.APIKey)
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: requestURL, Err: err}
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger, "http_response_body")

	const maxBodySize = 4 * 1024 * 1024
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &FetchError{URL: requestURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			URL:        requestURL,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var parsed TripsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &FetchError{URL: requestURL, Err: fmt.Errorf("decoding trips response: %w", err)}
	}

	return parsed.Trips, nil
}

func (c *Client) countFetch(origin, destination, outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.TripFetchesTotal.WithLabelValues(origin, destination, outcome).Inc()
}
