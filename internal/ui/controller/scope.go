package controller

import "sync"

// listenerScope releases a listener registration exactly once.
type listenerScope struct {
	once    sync.Once
	release func()
}

func newListenerScope(release func()) *listenerScope {
	return &listenerScope{release: release}
}

// Release is safe on a nil scope and safe to call repeatedly.
func (s *listenerScope) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
}
