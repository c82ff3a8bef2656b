package app

import "sync"

// SenderLimiter serializes commands arriving from the same phone number, so
// a double-tapped send cannot interleave two ledger operations.
type SenderLimiter struct {
	mu   sync.Mutex
	byID map[string]*sync.Mutex
}

func NewSenderLimiter() *SenderLimiter {
	return &SenderLimiter{byID: make(map[string]*sync.Mutex)}
}

func (l *SenderLimiter) Lock(sender string) func() {
	l.mu.Lock()
	m, ok := l.byID[sender]
	if !ok {
		m = &sync.Mutex{}
		l.byID[sender] = m
	}
	l.mu.Unlock()

	m.Lock()
	return func() { m.Unlock() }
}
