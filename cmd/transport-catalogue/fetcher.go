package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// fetcher reads GTFS zips and request documents from URLs or local files
type fetcher struct {
	httpClient *http.Client
}

func newFetcher() *fetcher {
	return &fetcher{httpClient: &http.Client{Timeout: 60 * time.Second}}
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// fetch returns the bytes behind source, downloading it when it is a URL
func (f *fetcher) fetch(source string) ([]byte, error) {
	if source == "" {
		return nil, errNoSource
	}
	if !isRemote(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", source, err)
		}
		return data, nil
	}
	resp, err := f.httpClient.Get(source)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", source, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, source)
	}
	return io.ReadAll(resp.Body)
}

var errNoSource = errors.New("no data source: pass -base, -gtfs or configure gtfs.path")
