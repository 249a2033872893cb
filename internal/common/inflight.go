package common

import "sync"

// InFlight tracks campaigns with a lifecycle write already on the wire, keyed
// per campaign so unrelated campaigns stay actionable while one is busy.
type InFlight struct {
	m map[int64]struct{}
	l sync.Mutex
}

func NewInFlight() *InFlight {
	return &InFlight{m: make(map[int64]struct{})}
}

// Start marks the id busy and reports whether it was free.
func (f *InFlight) Start(id int64) bool {
	f.l.Lock()
	defer f.l.Unlock()
	if _, busy := f.m[id]; busy {
		return false
	}
	f.m[id] = struct{}{}
	return true
}

func (f *InFlight) Done(id int64) {
	f.l.Lock()
	delete(f.m, id)
	f.l.Unlock()
}
