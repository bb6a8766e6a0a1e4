package eventbridge

import "sync"

const defaultDedupeWindow = 256

// recentIDs remembers the last N event ids so client retries are applied once.
type recentIDs struct {
	mu     sync.Mutex
	ids    map[string]struct{}
	order  []string
	window int
}

func newRecentIDs(window int) *recentIDs {
	if window <= 0 {
		window = defaultDedupeWindow
	}
	return &recentIDs{
		ids:    make(map[string]struct{}, window),
		order:  make([]string, 0, window),
		window: window,
	}
}

// seen records id and reports whether it had already been recorded.
func (r *recentIDs) seen(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ids[id]; ok {
		return true
	}
	r.ids[id] = struct{}{}
	r.order = append(r.order, id)
	if len(r.order) > r.window {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.ids, oldest)
	}
	return false
}
