package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

func coords(lat, lng float64) *geo.Coordinates {
	return &geo.Coordinates{Lat: lat, Lng: lng}
}

func TestAddStop(t *testing.T) {
	t.Run("new stop with coordinates", func(t *testing.T) {
		c := New()
		id, err := c.AddStop("A", coords(1, 2))
		require.NoError(t, err)
		assert.Equal(t, geo.Coordinates{Lat: 1, Lng: 2}, c.Stop(id).Coordinates)
		assert.Empty(t, c.BusesForStop(id))
	})

	t.Run("stub is filled in once", func(t *testing.T) {
		c := New()
		stub, err := c.AddStop("A", nil)
		require.NoError(t, err)
		assert.True(t, c.Stop(stub).Stub())

		id, err := c.AddStop("A", coords(1, 2))
		require.NoError(t, err)
		assert.Equal(t, stub, id)
		assert.False(t, c.Stop(id).Stub())
		assert.Equal(t, 1, c.Stops().Len())
	})

	t.Run("redefinition is a conflict even with identical coordinates", func(t *testing.T) {
		c := New()
		_, err := c.AddStop("A", coords(1, 2))
		require.NoError(t, err)

		_, err = c.AddStop("A", coords(1, 2))
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("reference without coordinates returns existing stop", func(t *testing.T) {
		c := New()
		id, err := c.AddStop("A", coords(1, 2))
		require.NoError(t, err)

		again, err := c.AddStop("A", nil)
		require.NoError(t, err)
		assert.Equal(t, id, again)
		assert.Equal(t, geo.Coordinates{Lat: 1, Lng: 2}, c.Stop(id).Coordinates)
	})
}

func TestAddBus(t *testing.T) {
	c := New()
	a, _ := c.AddStop("A", coords(0, 0))
	b, _ := c.AddStop("B", coords(0, 1))
	lonely, _ := c.AddStop("Lonely", coords(5, 5))

	_, err := c.AddBus("2", Loop, []StopID{a, b, a})
	require.NoError(t, err)
	_, err = c.AddBus("10", ThereAndBack, []StopID{b, a})
	require.NoError(t, err)

	_, err = c.AddBus("2", Loop, []StopID{a})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = c.AddBus("ghost", Loop, []StopID{a, 42})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{"10", "2"}, c.BusesForStop(a))
	assert.Equal(t, []string{"10", "2"}, c.BusesForStop(b))
	assert.Empty(t, c.BusesForStop(lonely))

	id, ok := c.BusByName("2")
	require.True(t, ok)
	assert.Equal(t, []StopID{a, b, a}, c.Bus(id).Route)
	assert.Equal(t, Loop, c.Bus(id).Type)
}

func TestDistance(t *testing.T) {
	c := New()
	a, _ := c.AddStop("A", coords(0, 0))
	b, _ := c.AddStop("B", coords(0, 1))
	cc, _ := c.AddStop("C", coords(0, 2))

	c.AddDistance(a, b, 1500)
	c.AddDistance(b, cc, 700)
	c.AddDistance(cc, b, 900)

	tests := []struct {
		name     string
		from, to StopID
		want     float64
	}{
		{name: "directed entry", from: a, to: b, want: 1500},
		{name: "reverse entry", from: b, to: a, want: 1500},
		{name: "own direction wins over reverse", from: cc, to: b, want: 900},
		{name: "geography when both are absent", from: a, to: cc, want: 2 * geo.EarthRadius * 3.141592653589793 / 180},
		{name: "same stop without entry", from: a, to: a, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Distance(tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}

	_, ok := c.RoadDistance(b, a)
	assert.False(t, ok, "RoadDistance must not fall back to the reverse entry")
}

func TestDistance_Overwrite(t *testing.T) {
	c := New()
	a, _ := c.AddStop("A", coords(0, 0))
	b, _ := c.AddStop("B", coords(0, 1))

	c.AddDistance(a, b, 10)
	c.AddDistance(a, b, 20)

	d, ok := c.RoadDistance(a, b)
	require.True(t, ok)
	assert.Equal(t, 20.0, d)
	_, ok = c.RoadDistance(b, a)
	assert.False(t, ok)
}

func TestDistance_StubFailsFast(t *testing.T) {
	c := New()
	a, _ := c.AddStop("A", coords(0, 0))
	stub, _ := c.AddStop("Stub", nil)

	_, err := c.Distance(a, stub)
	require.ErrorIs(t, err, ErrMissingCoordinates)
	assert.Contains(t, err.Error(), "Stub")

	c.AddDistance(stub, a, 300)
	d, err := c.Distance(a, stub)
	require.NoError(t, err)
	assert.Equal(t, 300.0, d)
}

func TestValidate(t *testing.T) {
	c := New()
	a, _ := c.AddStop("A", coords(0, 0))
	b, _ := c.AddStop("B", nil)
	_, _ = c.AddStop("Unused", nil)

	require.NoError(t, c.Validate(), "stubs off any route are harmless")

	_, err := c.AddBus("1", Loop, []StopID{a, b})
	require.NoError(t, err)
	assert.ErrorIs(t, c.Validate(), ErrMissingCoordinates)

	_, err = c.AddStop("B", coords(0, 1))
	require.NoError(t, err)
	assert.NoError(t, c.Validate())
}
