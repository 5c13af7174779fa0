package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_InsertLookup(t *testing.T) {
	s := NewStore[Stop, StopID]()

	a := s.Insert(Stop{Name: "A"})
	b := s.Insert(Stop{Name: "B"})

	assert.Equal(t, StopID(0), a)
	assert.Equal(t, StopID(1), b)
	assert.Equal(t, 2, s.Len())

	id, ok := s.Lookup("B")
	require.True(t, ok)
	assert.Equal(t, b, id)
	assert.Equal(t, "B", s.At(id).Name)

	_, ok = s.Lookup("C")
	assert.False(t, ok)
	assert.Nil(t, s.At(5))
	assert.Nil(t, s.At(-1))
}

func TestStore_PointersStayValid(t *testing.T) {
	s := NewStore[Stop, StopID]()
	first := s.At(s.Insert(Stop{Name: "first"}))

	for i := 0; i < 1000; i++ {
		s.Insert(Stop{Name: string(rune('a' + i%26))})
	}

	assert.Same(t, first, s.At(0))
	first.Name = "renamed"
	assert.Equal(t, "renamed", s.At(0).Name)
}

func TestStore_AllInInsertionOrder(t *testing.T) {
	s := NewStore[Bus, BusID]()
	for _, name := range []string{"z", "a", "m"} {
		s.Insert(Bus{Name: name})
	}

	var names []string
	var ids []BusID
	for id, bus := range s.All() {
		ids = append(ids, id)
		names = append(names, bus.Name)
	}
	assert.Equal(t, []string{"z", "a", "m"}, names)
	assert.Equal(t, []BusID{0, 1, 2}, ids)
}

func TestStore_AllStopsEarly(t *testing.T) {
	s := NewStore[Bus, BusID]()
	s.Insert(Bus{Name: "1"})
	s.Insert(Bus{Name: "2"})

	count := 0
	for range s.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
