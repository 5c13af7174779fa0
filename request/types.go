package request

import (
	"errors"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// ErrMalformed is returned for documents that do not follow the request format
var ErrMalformed = errors.New("malformed request")

// BaseRecord defines an entity. It is either a *StopRecord or a *BusRecord.
type BaseRecord interface {
	baseRecord()
}

// StopRecord defines a stop and the road distances from it
type StopRecord struct {
	Name          string
	Coordinates   geo.Coordinates
	RoadDistances map[string]float64 // target stop name -> meters
}

// BusRecord defines a bus over stop names
type BusRecord struct {
	Name      string
	Stops     []string
	Roundtrip bool // loop when true, there-and-back otherwise
}

func (*StopRecord) baseRecord() {}
func (*BusRecord) baseRecord()  {}

// StatType is the kind of a stat query
type StatType string

const (
	StatBus   StatType = "Bus"
	StatStop  StatType = "Stop"
	StatMap   StatType = "Map"
	StatRoute StatType = "Route"
)

// StatRecord is one query. Name is set for Bus and Stop, From/To for Route.
type StatRecord struct {
	ID   int64
	Type StatType
	Name string
	From string
	To   string
}
