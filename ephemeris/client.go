package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/dispositor/zodiac"
)

// DefaultBaseURL is the public ephemeris service.
const DefaultBaseURL = "https://api.freeastrologyapi.com"

// maxBody bounds how much of a response is read.
const maxBody = 1 << 20

// Client queries an HTTP ephemeris service and falls back to another Source
// when the service cannot answer.
type Client struct {
	baseURL  string
	http     *http.Client
	fallback Source
	logger   *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request. It applies to a copy of the current HTTP
// client, so an injected client keeps its transport.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

// WithFallback replaces the Fallback source.
func WithFallback(s Source) ClientOption {
	return func(c *Client) {
		if s != nil {
			c.fallback = s
		}
	}
}

// WithLogger sets the logger used to report fallbacks.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient returns a Client for the service at baseURL; an empty baseURL
// selects DefaultBaseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 10 * time.Second},
		fallback: Fallback{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// PlanetSigns asks the service for m and answers from the fallback source
// when the service fails. Only a done ctx is reported as an error.
func (c *Client) PlanetSigns(ctx context.Context, m Moment) (zodiac.PlanetSigns, error) {
	signs, err := c.fetch(ctx, m)
	if err == nil {
		return signs, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	c.logger.Warn("ephemeris service unavailable, using fallback",
		zap.String("date", m.Date()),
		zap.String("time", m.Clock()),
		zap.Error(err))

	return c.fallback.PlanetSigns(ctx, m)
}

// fetch performs one request and decodes a complete chart.
func (c *Client) fetch(ctx context.Context, m Moment) (zodiac.PlanetSigns, error) {
	q := url.Values{}
	q.Set("date", m.Date())
	q.Set("time", m.Clock())
	q.Set("lat", strconv.FormatFloat(m.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(m.Lon, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/planets?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var raw map[string]string
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	signs, err := zodiac.Resolve(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if missing := signs.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %v", ErrIncomplete, missing)
	}

	c.logger.Debug("ephemeris resolved", zap.String("date", m.Date()), zap.Int("planets", len(signs)))

	return signs, nil
}
