package identity

import "time"

func (p *PinVerifier) SetClock(now func() time.Time) {
	p.now = now
}

func (p *PinVerifier) TrackedUsers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.limiters)
}
