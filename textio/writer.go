package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/request"
)

// Write answers Bus and Stop queries, one line each
func Write(w io.Writer, cat *catalogue.TransportCatalogue, stats []request.StatRecord) error {
	bw := bufio.NewWriter(w)
	for _, rec := range stats {
		var (
			line string
			err  error
		)
		switch rec.Type {
		case request.StatBus:
			line, err = busLine(cat, rec.Name)
		case request.StatStop:
			line = stopLine(cat, rec.Name)
		default:
			err = fmt.Errorf("%w: text output has no %q queries", request.ErrMalformed, rec.Type)
		}
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func busLine(cat *catalogue.TransportCatalogue, name string) (string, error) {
	stats, err := cat.BusStats(name)
	if errors.Is(err, catalogue.ErrNotFound) {
		return fmt.Sprintf("Bus %s: not found", name), nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Bus %s: %d stops on route, %d unique stops, %s route length, %s curvature",
		name, stats.StopCount, stats.UniqueStopCount, formatNumber(stats.RouteLength), formatNumber(stats.Curvature)), nil
}

func stopLine(cat *catalogue.TransportCatalogue, name string) string {
	id, ok := cat.StopByName(name)
	if !ok {
		return fmt.Sprintf("Stop %s: not found", name)
	}
	buses := cat.BusesForStop(id)
	if len(buses) == 0 {
		return fmt.Sprintf("Stop %s: no buses", name)
	}
	return fmt.Sprintf("Stop %s: buses %s", name, strings.Join(buses, " "))
}

// formatNumber prints six significant digits
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
