package spotify

import "sync"

// keepAlive holds strong references to searches whose completion callback
// has not fired yet. The token doubles as the native userdata, so the
// callback can find its SearchResult even after the caller dropped it.
type keepAlive struct {
	mu      sync.Mutex
	next    uintptr
	pending map[uintptr]*SearchResult
}

var pendingSearches = &keepAlive{pending: make(map[uintptr]*SearchResult)}

func (k *keepAlive) hold(r *SearchResult) uintptr {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.next++
	k.pending[k.next] = r
	return k.next
}

// take removes and returns the search registered under token.
func (k *keepAlive) take(token uintptr) (*SearchResult, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	r, ok := k.pending[token]
	delete(k.pending, token)
	return r, ok
}

func (k *keepAlive) len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.pending)
}

// drain removes and returns every search issued on s.
func (k *keepAlive) drain(s *Session) []*SearchResult {
	k.mu.Lock()
	defer k.mu.Unlock()
	var out []*SearchResult
	for token, r := range k.pending {
		if r.session == s {
			out = append(out, r)
			delete(k.pending, token)
		}
	}
	return out
}

func (k *keepAlive) holds(token uintptr) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.pending[token]
	return ok
}
