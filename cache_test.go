package transportcatalogue

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseCache_GetOrBuild(t *testing.T) {
	rc := NewResponseCache()
	calls := 0
	build := func() ([]byte, error) {
		calls++
		return []byte("body"), nil
	}

	for range 3 {
		buf, err := rc.GetOrBuild(build, "Route", "A", "B")
		require.NoError(t, err)
		assert.Equal(t, []byte("body"), buf)
	}
	assert.Equal(t, 1, calls)
	hits, misses := rc.Stats()
	assert.Equal(t, 2, hits)
	assert.Equal(t, 1, misses)
}

func TestResponseCache_ErrorsNotCached(t *testing.T) {
	rc := NewResponseCache()
	boom := errors.New("boom")
	_, err := rc.GetOrBuild(func() ([]byte, error) { return nil, boom }, "k")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, rc.Len())
}

func TestResponseCache_MemoKey(t *testing.T) {
	rc := NewResponseCache()
	assert.Equal(t, `"Bus"|"1"|"750"`, rc.memoKey("Bus", "1", "750"))
	assert.NotEqual(t, rc.memoKey("Route", "A|B", "C"), rc.memoKey("Route", "A", "B|C"))
	assert.NotEqual(t, rc.memoKey("Route", `A"|"B`, "C"), rc.memoKey("Route", "A", `B"|"C`))
}

func TestResponseCache_Concurrent(t *testing.T) {
	rc := NewResponseCache()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := []string{"Stop", string(rune('a' + i%5))}
			_, err := rc.GetOrBuild(func() ([]byte, error) { return []byte(key[1]), nil }, key...)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 5, rc.Len())
}
