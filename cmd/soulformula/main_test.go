package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// writeConfig stores a YAML config in a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "soulformula.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

var fullChartArgs = []string{
	"--sign", "Sun=Leo", "--sign", "Moon=Cancer", "--sign", "Mercury=Leo",
	"--sign", "Venus=Virgo", "--sign", "Mars=Gemini", "--sign", "Jupiter=Aries",
	"--sign", "Saturn=Pisces", "--sign", "Uranus=Scorpio", "--sign", "Neptune=Sagittarius",
	"--sign", "Pluto=Libra",
}

func TestChart_JSON(t *testing.T) {
	out, err := run(t, append([]string{"chart", "--json"}, fullChartArgs...)...)
	require.NoError(t, err)

	var got struct {
		Centers struct {
			All []string `json:"all"`
		} `json:"centers"`
		Orbits      map[string]*int `json:"orbits"`
		TotalPoints int             `json:"total_points"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, []string{"Sun", "Moon"}, got.Centers.All)
	require.NotNil(t, got.Orbits["Saturn"])
	assert.Equal(t, 5, *got.Orbits["Saturn"])
	assert.Equal(t, 6, got.TotalPoints)
}

func TestChart_Text(t *testing.T) {
	out, err := run(t, append([]string{"chart", "--lang", "ru"}, fullChartArgs...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "Обители")
	assert.Contains(t, out, "Солнце — Лев (баллы: 5)")
	assert.Contains(t, out, "Планета")
}

func TestChart_Incomplete(t *testing.T) {
	_, err := run(t, "chart", "--sign", "Sun=Leo")
	require.ErrorIs(t, err, errIncomplete)

	out, err := run(t, "chart", "--sign", "Sun=Leo", "--allow-partial", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Moon": null`)
}

func TestChart_UnknownNames(t *testing.T) {
	_, err := run(t, "chart", "--sign", "Vulcan=Leo", "--allow-partial")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Vulcan")
}

func TestRoot_MissingConfigFile(t *testing.T) {
	_, err := run(t, "chart", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "--allow-partial")
	require.Error(t, err)
}

func TestCalc_UsesServicesFromConfig(t *testing.T) {
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Moscow", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[{"lat":"55.75","lon":"37.61","display_name":"Moscow, Russia","type":"city"}]`))
	}))
	defer geo.Close()

	eph := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "55.75", r.URL.Query().Get("lat"))
		_, _ = w.Write([]byte(`{"Sun":"Leo","Moon":"Cancer","Mercury":"Leo","Venus":"Virgo","Mars":"Gemini",
			"Jupiter":"Aries","Saturn":"Pisces","Uranus":"Scorpio","Neptune":"Sagittarius","Pluto":"Libra"}`))
	}))
	defer eph.Close()

	cfg := writeConfig(t, fmt.Sprintf("geocode_url: %s\nephemeris_url: %s\nhttp_timeout: 2s\n", geo.URL, eph.URL))
	out, err := run(t, "calc", "--config", cfg, "--json",
		"--date", "1990-08-01", "--time", "14:30", "--place", "Moscow")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_points": 6`)
}

func TestCalc_FallsBackWhenEphemerisFails(t *testing.T) {
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"lat":"1","lon":"2","display_name":"Somewhere","type":"town"}]`))
	}))
	defer geo.Close()
	eph := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer eph.Close()

	cfg := writeConfig(t, fmt.Sprintf("geocode_url: %s\nephemeris_url: %s\n", geo.URL, eph.URL))
	out, err := run(t, "calc", "--config", cfg, "--json",
		"--date", "2000-01-01", "--time", "00:00", "--place", "Somewhere")
	require.NoError(t, err)
	assert.Contains(t, out, `"planet_signs"`)
}

func TestCalc_BadDate(t *testing.T) {
	_, err := run(t, "calc", "--date", "01.01.2000", "--time", "00:00", "--place", "X")
	require.Error(t, err)
}

func TestPlaces(t *testing.T) {
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"lat":"55.75","lon":"37.61","display_name":"Moscow, Russia","type":"city"},
			{"lat":"1","lon":"1","display_name":"Moscow Street","type":"road"}]`))
	}))
	defer geo.Close()

	cfg := writeConfig(t, fmt.Sprintf("geocode_url: %s\n", geo.URL))
	out, err := run(t, "places", "--config", cfg, "Mos")
	require.NoError(t, err)
	assert.Contains(t, out, "Moscow\t55.7500, 37.6100\tMoscow, Russia")
	assert.NotContains(t, out, "Street")
}
