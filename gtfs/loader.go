package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ErrMissingTable is returned when a required GTFS file is absent
var ErrMissingTable = errors.New("gtfs: missing table")

var requiredTables = []string{"stops.txt", "routes.txt", "trips.txt", "stop_times.txt"}

// NewFeedFromBytes parses a GTFS zip held in memory
func NewFeedFromBytes(data []byte) (*Feed, error) {
	return NewFeedFromReader(bytes.NewReader(data), int64(len(data)))
}

// NewFeedFromReader parses a GTFS zip from any random-access source
func NewFeedFromReader(r io.ReaderAt, size int64) (*Feed, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("gtfs: open zip: %w", err)
	}
	return newFeedFromZip(zr)
}

// NewFeedFromLocalZip parses a GTFS zip file on disk
func NewFeedFromLocalZip(path string) (*Feed, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("gtfs: open %s: %w", path, err)
	}
	defer zr.Close()
	return newFeedFromZip(&zr.Reader)
}

func newFeedFromZip(zr *zip.Reader) (*Feed, error) {
	files := map[string]*zip.File{}
	for _, f := range zr.File {
		// feeds are sometimes zipped with a top-level folder
		name := strings.ToLower(f.Name[strings.LastIndex(f.Name, "/")+1:])
		files[name] = f
	}
	feed := NewFeed()
	// stop_times last so trips are known
	for _, name := range requiredTables {
		f, ok := files[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingTable, name)
		}
		if err := feed.consumeCSV(name, f); err != nil {
			return nil, fmt.Errorf("gtfs: %s: %w", name, err)
		}
	}
	return feed, nil
}

func (g *Feed) consumeCSV(name string, f *zip.File) error {
	r, err := f.Open()
	if err != nil {
		return err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}
	head := rec[0]
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	switch name {
	case "stops.txt":
		sID := idx("stop_id")
		sN := idx("stop_name")
		sLat := idx("stop_lat")
		sLon := idx("stop_lon")
		locType := idx("location_type")
		if sID < 0 || sN < 0 || sLat < 0 || sLon < 0 {
			return errors.New("stop_id, stop_name, stop_lat and stop_lon are required")
		}
		for _, row := range rec[1:] {
			if lt := cell(row, locType); lt != "" && lt != "0" {
				continue
			}
			lat, err := strconv.ParseFloat(cell(row, sLat), 64)
			if err != nil {
				return fmt.Errorf("stop %s: stop_lat: %w", cell(row, sID), err)
			}
			lon, err := strconv.ParseFloat(cell(row, sLon), 64)
			if err != nil {
				return fmt.Errorf("stop %s: stop_lon: %w", cell(row, sID), err)
			}
			id := cell(row, sID)
			g.stopOrder = append(g.stopOrder, id)
			g.stopNames[id] = cell(row, sN)
			g.stopCoord[id] = [2]float64{lat, lon}
		}
	case "routes.txt":
		rID := idx("route_id")
		rSN := idx("route_short_name")
		if rID < 0 {
			return errors.New("route_id is required")
		}
		for _, row := range rec[1:] {
			id := cell(row, rID)
			g.routeOrder = append(g.routeOrder, id)
			g.routeShortNames[id] = cell(row, rSN)
		}
	case "trips.txt":
		rID := idx("route_id")
		tID := idx("trip_id")
		dir := idx("direction_id")
		if rID < 0 || tID < 0 {
			return errors.New("route_id and trip_id are required")
		}
		for _, row := range rec[1:] {
			g.tripToRoute[cell(row, tID)] = cell(row, rID)
			g.tripDirection[cell(row, tID)] = cell(row, dir)
		}
	case "stop_times.txt":
		tID := idx("trip_id")
		sID := idx("stop_id")
		sq := idx("stop_sequence")
		distIdx := idx("shape_dist_traveled")
		if tID < 0 || sID < 0 || sq < 0 {
			return errors.New("trip_id, stop_id and stop_sequence are required")
		}
		for _, row := range rec[1:] {
			trip := cell(row, tID)
			stop := cell(row, sID)
			if _, ok := g.tripToRoute[trip]; !ok {
				continue
			}
			if _, ok := g.stopNames[stop]; !ok {
				return fmt.Errorf("trip %s: unknown stop %s", trip, stop)
			}
			seq, err := strconv.Atoi(cell(row, sq))
			if err != nil {
				return fmt.Errorf("trip %s: stop_sequence: %w", trip, err)
			}
			st := stopTime{stop: stop, seq: seq}
			if d := cell(row, distIdx); d != "" {
				if st.dist, err = strconv.ParseFloat(d, 64); err == nil {
					st.hasDist = true
				}
			}
			g.tripStopTimes[trip] = append(g.tripStopTimes[trip], st)
		}
		for _, arr := range g.tripStopTimes {
			sort.SliceStable(arr, func(i, j int) bool { return arr[i].seq < arr[j].seq })
		}
	}
	return nil
}
