package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Sentinel errors for geocoding.
var (
	ErrEmptyPlace    = errors.New("geocode: place name is empty")
	ErrPlaceNotFound = errors.New("geocode: place not found")
	ErrStatus        = errors.New("geocode: unexpected status")
	ErrDecode        = errors.New("geocode: malformed response")
)

const (
	// DefaultBaseURL is the public OpenStreetMap Nominatim service.
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// DefaultUserAgent identifies the client, as Nominatim's usage policy requires.
	DefaultUserAgent = "SoulFormula/1.0"

	// minSuggestRunes is the shortest query Suggest forwards.
	minSuggestRunes = 2

	// defaultTimeout bounds one request, including a shared Lookup.
	defaultTimeout = 10 * time.Second

	maxBody = 1 << 20
)

// Coordinates is a point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Suggestion is one settlement offered for a partial query.
type Suggestion struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Coordinates
}

// place is one element of a search response. Nominatim sends coordinates
// as strings.
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
}

func (p place) coordinates() (Coordinates, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: lat %q", ErrDecode, p.Lat)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: lon %q", ErrDecode, p.Lon)
	}

	return Coordinates{Lat: lat, Lon: lon}, nil
}

// Client talks to a Nominatim-compatible service.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	timeout   time.Duration
	logger    *zap.Logger
	group     singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request. It applies to a copy of the current HTTP
// client, so an injected client keeps its transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
			c.timeout = d
		}
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a Client for baseURL; an empty baseURL selects DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: DefaultUserAgent,
		http:      &http.Client{Timeout: defaultTimeout},
		timeout:   defaultTimeout,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Lookup returns the coordinates of the best match for name. Concurrent
// lookups of the same place share one request, which runs detached from any
// single caller's cancellation; each caller stops waiting when its own ctx
// is done.
func (c *Client) Lookup(ctx context.Context, name string) (Coordinates, error) {
	key := strings.TrimSpace(name)
	if key == "" {
		return Coordinates{}, ErrEmptyPlace
	}

	ch := c.group.DoChan(strings.ToLower(key), func() (any, error) {
		reqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		places, err := c.search(reqCtx, key, 1, false)
		if err != nil {
			return nil, err
		}
		if len(places) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrPlaceNotFound, key)
		}

		return places[0].coordinates()
	})

	select {
	case <-ctx.Done():
		return Coordinates{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Coordinates{}, res.Err
		}
		c.logger.Debug("geocoded", zap.String("place", key), zap.Bool("shared", res.Shared))

		return res.Val.(Coordinates), nil
	}
}

// Suggest lists up to limit settlements matching query. Queries shorter
// than two characters return nil without contacting the service.
func (c *Client) Suggest(ctx context.Context, query string, limit int) ([]Suggestion, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < minSuggestRunes {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}

	places, err := c.search(ctx, q, limit, true)
	if err != nil {
		return nil, err
	}

	var out []Suggestion
	for _, p := range places {
		switch p.Type {
		case "city", "town", "village":
		default:
			continue
		}
		coords, err := p.coordinates()
		if err != nil {
			c.logger.Debug("skipping suggestion", zap.String("place", p.DisplayName), zap.Error(err))
			continue
		}
		name, _, _ := strings.Cut(p.DisplayName, ",")
		out = append(out, Suggestion{Name: strings.TrimSpace(name), FullName: p.DisplayName, Coordinates: coords})
	}

	return out, nil
}

// search runs one /search request.
func (c *Client) search(ctx context.Context, q string, limit int, details bool) ([]place, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", q)
	params.Set("limit", strconv.Itoa(limit))
	if details {
		params.Set("addressdetails", "1")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	var places []place
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&places); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return places, nil
}
