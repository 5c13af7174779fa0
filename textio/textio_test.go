package textio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/loader"
	"github.com/theoremus-urban-solutions/transport-catalogue/request"
)

const sampleInput = `13
Stop Tolstopaltsevo: 55.611087, 37.20829, 3900m to Marushkino
Stop Marushkino: 55.595884, 37.209755, 9900m to Rasskazovka, 100m to Marushkino
Bus 256: Biryulyovo Zapadnoye > Biryusinka > Universam > Biryulyovo Tovarnaya > Biryulyovo Passazhirskaya > Biryulyovo Zapadnoye
Bus 750: Tolstopaltsevo - Marushkino - Marushkino - Rasskazovka
Stop Rasskazovka: 55.632761, 37.333324, 9500m to Marushkino
Stop Biryulyovo Zapadnoye: 55.574371, 37.6517, 7500m to Rossoshanskaya ulitsa, 1800m to Biryusinka, 2400m to Universam
Stop Biryusinka: 55.581065, 37.64839, 750m to Universam
Stop Universam: 55.587655, 37.645687, 5600m to Rossoshanskaya ulitsa, 900m to Biryulyovo Tovarnaya
Stop Biryulyovo Tovarnaya: 55.592028, 37.653656, 1300m to Biryulyovo Passazhirskaya
Stop Biryulyovo Passazhirskaya: 55.580999, 37.659164, 1200m to Biryulyovo Zapadnoye
Bus 828: Biryulyovo Zapadnoye > Universam > Rossoshanskaya ulitsa > Biryulyovo Zapadnoye
Stop Rossoshanskaya ulitsa: 55.595579, 37.605757
Stop Prazhskaya: 55.611678, 37.603831
6
Bus 256
Bus 750
Bus 751
Stop Samara
Stop Prazhskaya
Stop Biryulyovo Zapadnoye
`

const sampleOutput = `Bus 256: 6 stops on route, 5 unique stops, 5950 route length, 1.36124 curvature
Bus 750: 7 stops on route, 3 unique stops, 27400 route length, 1.30853 curvature
Bus 751: not found
Stop Samara: not found
Stop Prazhskaya: no buses
Stop Biryulyovo Zapadnoye: buses 256 828
`

func TestReadWrite_Sample(t *testing.T) {
	in, err := Read(strings.NewReader(sampleInput))
	require.NoError(t, err)
	require.Len(t, in.Base, 13)
	require.Len(t, in.Stats, 6)

	cat := catalogue.New()
	require.NoError(t, loader.Load(cat, in.Base))

	var out bytes.Buffer
	require.NoError(t, Write(&out, cat, in.Stats))
	assert.Equal(t, sampleOutput, out.String())
}

func TestParseBase(t *testing.T) {
	tests := []struct {
		name string
		line string
		want request.BaseRecord
	}{
		{
			name: "stop without distances",
			line: "Stop Prazhskaya: 55.611678, 37.603831",
			want: &request.StopRecord{
				Name:          "Prazhskaya",
				Coordinates:   geo.Coordinates{Lat: 55.611678, Lng: 37.603831},
				RoadDistances: map[string]float64{},
			},
		},
		{
			name: "stop with distances",
			line: "Stop A: 1, -1, 10m to B, 20.5m to C D",
			want: &request.StopRecord{
				Name:          "A",
				Coordinates:   geo.Coordinates{Lat: 1, Lng: -1},
				RoadDistances: map[string]float64{"B": 10, "C D": 20.5},
			},
		},
		{
			name: "there and back",
			line: "Bus 750: A - B - C",
			want: &request.BusRecord{Name: "750", Stops: []string{"A", "B", "C"}},
		},
		{
			name: "loop",
			line: "Bus 256 express: A > B > A",
			want: &request.BusRecord{Name: "256 express", Stops: []string{"A", "B", "A"}, Roundtrip: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBase(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "bad count", input: "x\n"},
		{name: "truncated", input: "2\nStop A: 1, 1\n"},
		{name: "unknown line", input: "1\nTram 1: A - B\n0\n"},
		{name: "latitude out of range", input: "1\nStop A: 91, 1\n0\n"},
		{name: "negative latitude", input: "1\nStop A: -1, 1\n0\n"},
		{name: "missing longitude", input: "1\nStop A: 1\n0\n"},
		{name: "bad distance", input: "1\nStop A: 1, 1, 10 to B\n0\n"},
		{name: "mixed separators", input: "1\nBus 1: A - B > C\n0\n"},
		{name: "no separator", input: "1\nBus 1: A\n0\n"},
		{name: "missing colon", input: "1\nBus 1 A - B\n0\n"},
		{name: "bad query", input: "0\n1\nRoute A B\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, request.ErrMalformed)
		})
	}
}

func TestWrite_RejectsOtherQueries(t *testing.T) {
	err := Write(&bytes.Buffer{}, catalogue.New(), []request.StatRecord{{Type: request.StatMap}})
	assert.ErrorIs(t, err, request.ErrMalformed)
}
