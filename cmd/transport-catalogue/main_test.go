package main

import (
	"archive/zip"
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
)

const baseDocument = `{
  "base_requests": [
    {"type": "Stop", "name": "Alpha", "latitude": 55.60, "longitude": 37.20, "road_distances": {"Beta": 1200}},
    {"type": "Stop", "name": "Beta", "latitude": 55.61, "longitude": 37.21},
    {"type": "Bus", "name": "14", "stops": ["Alpha", "Beta"], "is_roundtrip": false}
  ]
}`

func gtfsZip(t *testing.T) []byte {
	t.Helper()
	files := map[string]string{
		"stops.txt":      "stop_id,stop_name,stop_lat,stop_lon\nA,Alpha,55.60,37.20\nB,Beta,55.61,37.21\nC,Gamma,55.62,37.22\n",
		"routes.txt":     "route_id,route_short_name\nR1,1\n",
		"trips.txt":      "route_id,trip_id,direction_id\nR1,T1,0\n",
		"stop_times.txt": "trip_id,stop_id,stop_sequence\nT1,A,1\nT1,B,2\nT1,C,3\n",
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFetchLocalAndRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/base.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(baseDocument))
	}))
	defer srv.Close()

	f := newFetcher()

	data, err := f.fetch(srv.URL + "/base.json")
	require.NoError(t, err)
	assert.Equal(t, baseDocument, string(data))

	_, err = f.fetch(srv.URL + "/missing")
	assert.ErrorContains(t, err, "HTTP 404")

	path := filepath.Join(t.TempDir(), "base.json")
	require.NoError(t, os.WriteFile(path, []byte(baseDocument), 0o600))
	data, err = f.fetch(path)
	require.NoError(t, err)
	assert.Equal(t, baseDocument, string(data))

	_, err = f.fetch("")
	assert.ErrorIs(t, err, errNoSource)
}

func TestLoadEngineFromBaseDocument(t *testing.T) {
	config.Config = config.Default()
	path := filepath.Join(t.TempDir(), "base.json")
	require.NoError(t, os.WriteFile(path, []byte(baseDocument), 0o600))

	engine, err := loadEngine(newFetcher(), "", "", path)
	require.NoError(t, err)
	assert.Equal(t, 2, engine.Cat.Stops().Len())
	_, ok := engine.Cat.BusByName("14")
	assert.True(t, ok)
}

func TestLoadEngineFromGTFS(t *testing.T) {
	config.Config = config.Default()
	zipData := gtfsZip(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(zipData)
	}))
	defer srv.Close()

	engine, err := loadEngine(newFetcher(), "", srv.URL+"/feed.zip", "")
	require.NoError(t, err)
	assert.Equal(t, 3, engine.Cat.Stops().Len())
	_, ok := engine.Cat.BusByName("1")
	assert.True(t, ok)
}

func TestLoadEngineFromConfiguredFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.zip")
	require.NoError(t, os.WriteFile(path, gtfsZip(t), 0o600))

	config.Config = config.Default()
	config.Config.Feeds = []config.Feed{
		{Name: "other", GTFS: config.GTFSConfig{Path: filepath.Join(t.TempDir(), "absent.zip")}},
		{Name: "city", GTFS: config.GTFSConfig{Path: path}},
	}

	engine, err := loadEngine(newFetcher(), "city", "", "")
	require.NoError(t, err)
	assert.Equal(t, 3, engine.Cat.Stops().Len())

	_, err = loadEngine(newFetcher(), "other", "", "")
	assert.Error(t, err)
}

func TestLoadEngineWithoutSource(t *testing.T) {
	config.Config = config.Default()
	_, err := loadEngine(newFetcher(), "", "", "")
	assert.ErrorIs(t, err, errNoSource)
}
