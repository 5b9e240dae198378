package geocode_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispositor/geocode"
)

const moscow = `[{"lat":"55.7504461","lon":"37.6174943","display_name":"Moscow, Central Federal District, Russia","type":"city"}]`

// newServer serves body for every /search request and counts requests.
func newServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, &hits
}

func client(srv *httptest.Server) *geocode.Client {
	return geocode.New(srv.URL, geocode.WithHTTPClient(srv.Client()), geocode.WithUserAgent("test-agent"))
}

// TestLookup_Found parses the string coordinates of the first match.
func TestLookup_Found(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, moscow)
	got, err := client(srv).Lookup(context.Background(), "  Moscow ")
	require.NoError(t, err)
	assert.InDelta(t, 55.7504461, got.Lat, 1e-9)
	assert.InDelta(t, 37.6174943, got.Lon, 1e-9)
}

// TestLookup_Errors maps each failure to its sentinel.
func TestLookup_Errors(t *testing.T) {
	_, err := geocode.New("").Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, geocode.ErrEmptyPlace)

	srv, _ := newServer(t, http.StatusOK, `[]`)
	_, err = client(srv).Lookup(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, geocode.ErrPlaceNotFound)

	srv, _ = newServer(t, http.StatusTooManyRequests, ``)
	_, err = client(srv).Lookup(context.Background(), "Moscow")
	assert.ErrorIs(t, err, geocode.ErrStatus)
	assert.Contains(t, err.Error(), "429")

	srv, _ = newServer(t, http.StatusOK, `{"not":"a list"}`)
	_, err = client(srv).Lookup(context.Background(), "Moscow")
	assert.ErrorIs(t, err, geocode.ErrDecode)

	srv, _ = newServer(t, http.StatusOK, `[{"lat":"north","lon":"1"}]`)
	_, err = client(srv).Lookup(context.Background(), "Moscow")
	assert.ErrorIs(t, err, geocode.ErrDecode)
}

// blockingServer answers every /search with moscow once release is closed.
// started receives one value per request as it arrives.
func blockingServer(t *testing.T) (srv *httptest.Server, hits *atomic.Int32, started chan struct{}, release chan struct{}) {
	t.Helper()
	hits = new(atomic.Int32)
	started = make(chan struct{}, 16)
	release = make(chan struct{})
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		started <- struct{}{}
		<-release
		_, _ = w.Write([]byte(moscow))
	}))
	t.Cleanup(srv.Close)

	return srv, hits, started, release
}

// TestLookup_Concurrent collapses concurrent identical lookups into one
// request.
func TestLookup_Concurrent(t *testing.T) {
	srv, hits, started, release := blockingServer(t)
	c := client(srv)

	const n = 8
	var ready, done sync.WaitGroup
	ready.Add(n)
	done.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer done.Done()
			ready.Done()
			got, err := c.Lookup(context.Background(), "Moscow")
			assert.NoError(t, err)
			assert.InDelta(t, 55.7504461, got.Lat, 1e-9)
		}()
	}

	ready.Wait()
	<-started
	// the request is held open, so every caller joins the one in flight
	time.Sleep(50 * time.Millisecond)
	close(release)
	done.Wait()

	assert.Equal(t, int32(1), hits.Load())
}

// TestLookup_WaiterCancelDoesNotAbortShared lets one caller give up while
// the others still receive the shared answer.
func TestLookup_WaiterCancelDoesNotAbortShared(t *testing.T) {
	srv, hits, started, release := blockingServer(t)
	c := client(srv)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := c.Lookup(ctxA, "Moscow")
		errA <- err
	}()
	<-started

	type outcome struct {
		coords geocode.Coordinates
		err    error
	}
	resB := make(chan outcome, 1)
	go func() {
		got, err := c.Lookup(context.Background(), "moscow")
		resB <- outcome{got, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled)

	close(release)
	b := <-resB
	require.NoError(t, b.err)
	assert.InDelta(t, 37.6174943, b.coords.Lon, 1e-9)
	assert.Equal(t, int32(1), hits.Load())
}

// TestLookup_TimeoutKeepsInjectedClient applies WithTimeout on top of an
// injected client without replacing its transport.
func TestLookup_TimeoutKeepsInjectedClient(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, moscow)
	var calls atomic.Int32
	base := srv.Client().Transport
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return base.RoundTrip(r)
	})}

	c := geocode.New(srv.URL,
		geocode.WithHTTPClient(hc),
		geocode.WithTimeout(time.Second),
		geocode.WithUserAgent("test-agent"))
	_, err := c.Lookup(context.Background(), "Moscow")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Zero(t, hc.Timeout)
}

// roundTripFunc adapts a function to http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// TestSuggest filters to settlements and trims names.
func TestSuggest(t *testing.T) {
	body := `[
		{"lat":"55.75","lon":"37.61","display_name":"Moscow, Russia","type":"city"},
		{"lat":"46.73","lon":"-117.00","display_name":"Moscow, Latah County, Idaho","type":"town"},
		{"lat":"55.70","lon":"37.50","display_name":"Moscow River, Russia","type":"river"},
		{"lat":"x","lon":"1","display_name":"Broken, Nowhere","type":"village"}
	]`
	srv, hits := newServer(t, http.StatusOK, body)
	c := client(srv)

	got, err := c.Suggest(context.Background(), "Mosc", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Moscow", got[0].Name)
	assert.Equal(t, "Moscow, Latah County, Idaho", got[1].FullName)
	assert.InDelta(t, -117.0, got[1].Lon, 1e-9)

	got, err = c.Suggest(context.Background(), "M", 5)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, int32(1), hits.Load(), "short queries never reach the service")
}
