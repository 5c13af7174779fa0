// Package textio reads and writes the line-oriented text format.
//
// Input is a count followed by that many definition lines, then a count
// followed by that many queries:
//
//	2
//	Stop Tolstopaltsevo: 55.611087, 37.20829, 3900m to Marushkino
//	Bus 750: Tolstopaltsevo - Marushkino
//	1
//	Bus 750
//
// "A - B - C" is a there-and-back route and "A > B > A" a loop.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/request"
)

// Input is a parsed text document
type Input struct {
	Base  []request.BaseRecord
	Stats []request.StatRecord
}

// Read parses a whole text document
func Read(r io.Reader) (*Input, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lines := &lineReader{sc: sc}

	in := &Input{}
	n, err := lines.count()
	if err != nil {
		return nil, err
	}
	for range n {
		line, err := lines.next()
		if err != nil {
			return nil, err
		}
		rec, err := parseBase(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lines.no, err)
		}
		in.Base = append(in.Base, rec)
	}

	q, err := lines.count()
	if err != nil {
		return nil, err
	}
	for i := range q {
		line, err := lines.next()
		if err != nil {
			return nil, err
		}
		rec, err := parseStat(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lines.no, err)
		}
		rec.ID = int64(i)
		in.Stats = append(in.Stats, rec)
	}
	return in, nil
}

type lineReader struct {
	sc *bufio.Scanner
	no int
}

func (l *lineReader) next() (string, error) {
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of input after line %d", request.ErrMalformed, l.no)
	}
	l.no++
	return strings.TrimRight(l.sc.Text(), "\r"), nil
}

func (l *lineReader) count() (int, error) {
	line, err := l.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: line %d: bad count %q", request.ErrMalformed, l.no, line)
	}
	return n, nil
}

func parseBase(line string) (request.BaseRecord, error) {
	if rest, ok := strings.CutPrefix(line, "Bus "); ok {
		return parseBus(rest)
	}
	if rest, ok := strings.CutPrefix(line, "Stop "); ok {
		return parseStop(rest)
	}
	return nil, fmt.Errorf("%w: line must start with Bus or Stop", request.ErrMalformed)
}

func parseBus(line string) (*request.BusRecord, error) {
	name, route, ok := strings.Cut(line, ":")
	if !ok {
		return nil, fmt.Errorf("%w: missing ':' after bus name", request.ErrMalformed)
	}
	there := strings.Contains(route, "-")
	loop := strings.Contains(route, ">")
	if there == loop {
		return nil, fmt.Errorf("%w: bus %q must use exactly one of '-' or '>'", request.ErrMalformed, name)
	}
	sep := ">"
	if there {
		sep = "-"
	}
	rec := &request.BusRecord{Name: strings.TrimSpace(name), Roundtrip: loop}
	for _, stop := range strings.Split(route, sep) {
		rec.Stops = append(rec.Stops, strings.TrimSpace(stop))
	}
	return rec, nil
}

func parseStop(line string) (*request.StopRecord, error) {
	name, rest, ok := strings.Cut(line, ":")
	if !ok {
		return nil, fmt.Errorf("%w: missing ':' after stop name", request.ErrMalformed)
	}
	parts := strings.Split(rest, ",")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: stop %q needs latitude and longitude", request.ErrMalformed, name)
	}
	lat, err := parseFloat(parts[0])
	if err != nil {
		return nil, err
	}
	if lat < 0 || lat > 90 {
		return nil, fmt.Errorf("%w: latitude %g out of range", request.ErrMalformed, lat)
	}
	lng, err := parseFloat(parts[1])
	if err != nil {
		return nil, err
	}
	rec := &request.StopRecord{
		Name:          strings.TrimSpace(name),
		Coordinates:   geo.Coordinates{Lat: lat, Lng: lng},
		RoadDistances: map[string]float64{},
	}
	for _, part := range parts[2:] {
		meters, target, ok := strings.Cut(part, "m to ")
		if !ok {
			return nil, fmt.Errorf("%w: bad distance %q", request.ErrMalformed, part)
		}
		d, err := parseFloat(meters)
		if err != nil {
			return nil, err
		}
		rec.RoadDistances[strings.TrimSpace(target)] = d
	}
	return rec, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", request.ErrMalformed, s)
	}
	return v, nil
}

func parseStat(line string) (request.StatRecord, error) {
	if name, ok := strings.CutPrefix(line, "Bus "); ok {
		return request.StatRecord{Type: request.StatBus, Name: strings.TrimSpace(name)}, nil
	}
	if name, ok := strings.CutPrefix(line, "Stop "); ok {
		return request.StatRecord{Type: request.StatStop, Name: strings.TrimSpace(name)}, nil
	}
	return request.StatRecord{}, fmt.Errorf("%w: query must start with Bus or Stop", request.ErrMalformed)
}
