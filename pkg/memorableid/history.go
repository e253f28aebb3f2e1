package memorableid

import "sync"

// history remembers every identifier handed out by one generator. It is never
// pruned. A disabled history accepts everything and stores nothing.
type history struct {
	enabled bool
	mu      sync.Mutex
	seen    map[string]struct{}
}

func newHistory(enabled bool) *history {
	h := &history{enabled: enabled}
	if enabled {
		h.seen = make(map[string]struct{})
	}
	return h
}

// checkAndRecord reports whether candidate was seen before and records it if
// not. The lookup and the insert happen under one lock, so two callers racing
// on the same candidate cannot both be told it is new. Comparison is exact and
// case-sensitive.
func (h *history) checkAndRecord(candidate string) bool {
	if !h.enabled {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.seen[candidate]; ok {
		return true
	}
	h.seen[candidate] = struct{}{}
	return false
}

func (h *history) len() int {
	if !h.enabled {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.seen)
}

func (h *history) reset() {
	if !h.enabled {
		return
	}
	h.mu.Lock()
	h.seen = make(map[string]struct{})
	h.mu.Unlock()
}
