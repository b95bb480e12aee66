package wpstatic

import (
	"sync"
	"time"
)

// Pacer enforces a minimum interval between successive operations. The
// fetch path shares one Pacer across page and image requests so the remote
// host never sees back-to-back calls.
type Pacer struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// NewPacer creates a Pacer with the given minimum interval. A zero or
// negative interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Wait blocks until at least the configured interval has passed since the
// previous Wait returned. The first call never blocks.
func (p *Pacer) Wait() {
	if p == nil || p.interval <= 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		if d := p.interval - time.Since(p.last); d > 0 {
			time.Sleep(d)
		}
	}
	p.last = time.Now()
}
