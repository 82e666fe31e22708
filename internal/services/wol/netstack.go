package wol

import (
	"sync"

	"github.com/ohsungsik/Wake-On-Lan/internal/outcome"
)

// NetworkStack reference-counts initialization of the host networking
// subsystem. Some platforms require an explicit init call before the
// first socket operation and a matching teardown after the last one;
// the Go runtime performs both on the platforms we build for, so the
// default hooks are no-ops, but the lifecycle is kept so the send path
// is the same everywhere and so tests can observe the transitions.
//
// The counter is mutex-guarded: concurrent acquires from multiple
// goroutines must not race the 0->1 and 1->0 transitions.
type NetworkStack struct {
	mu   sync.Mutex
	refs uint64

	// initialize runs on the 0->1 transition, teardown on 1->0.
	// Either may be nil.
	initialize func() error
	teardown   func()
}

// defaultNetworkStack is the process-wide instance used by the sender.
var defaultNetworkStack = &NetworkStack{}

// Acquire increments the reference count, running the platform init hook
// when the count rises from zero. On init failure the count is left
// unchanged and a NetworkStackInitFailed error is returned. The returned
// release function must be called exactly once; it decrements the count
// and runs the teardown hook when the count drops back to zero.
func (s *NetworkStack) Acquire() (release func(), err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refs == 0 && s.initialize != nil {
		if err := s.initialize(); err != nil {
			return nil, outcome.Wrap(outcome.NetworkStackInitFailed, err)
		}
	}
	s.refs++

	var once sync.Once
	return func() {
		once.Do(s.release)
	}, nil
}

func (s *NetworkStack) release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refs == 0 {
		panic("wol: network stack released more times than acquired")
	}
	s.refs--
	if s.refs == 0 && s.teardown != nil {
		s.teardown()
	}
}
