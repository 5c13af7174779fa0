package transportcatalogue

import (
	"bytes"
	"strconv"
	"sync"
)

// ResponseCache memoises serialized responses. The engine is immutable
// once loaded, so entries never go stale.
type ResponseCache struct {
	mu            sync.Mutex
	responseCache map[string][]byte
	hits, misses  int
}

func NewResponseCache() *ResponseCache {
	return &ResponseCache{responseCache: map[string][]byte{}}
}

func (rc *ResponseCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.Quote(a))
	}
	return b.String()
}

// GetOrBuild returns the cached body for key or builds and stores it.
// Failed builds are not cached. build runs outside the lock, so two
// concurrent misses may both build; the first stored body wins.
func (rc *ResponseCache) GetOrBuild(build func() ([]byte, error), key ...string) ([]byte, error) {
	k := rc.memoKey(key...)
	rc.mu.Lock()
	if buf, ok := rc.responseCache[k]; ok {
		rc.hits++
		rc.mu.Unlock()
		return buf, nil
	}
	rc.misses++
	rc.mu.Unlock()

	buf, err := build()
	if err != nil {
		return nil, err
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if prev, ok := rc.responseCache[k]; ok {
		return prev, nil
	}
	rc.responseCache[k] = buf
	return buf, nil
}

// Stats returns hit and miss counters
func (rc *ResponseCache) Stats() (hits, misses int) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.hits, rc.misses
}

// Len returns the number of cached entries
func (rc *ResponseCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.responseCache)
}
