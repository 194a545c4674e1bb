package bulk

import (
	"sync"
	"time"
)

// percentMultiplier is used to convert a ratio to percentage (0-100).
const percentMultiplier = 100

// Progress tracks how far a sequential run has got.
// It is safe to read from another goroutine while the run records outcomes.
type Progress struct {
	total     int
	processed int
	failed    int
	startTime time.Time
	lastAt    time.Time

	mu sync.RWMutex
}

// NewProgress creates a progress tracker for total items.
func NewProgress(total int) *Progress {
	now := time.Now()
	return &Progress{
		total:     total,
		startTime: now,
		lastAt:    now,
	}
}

// AddProcessed records one finished item.
func (p *Progress) AddProcessed(ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.processed++
	if !ok {
		p.failed++
	}
	p.lastAt = time.Now()
}

// PercentComplete returns the completion percentage (0-100).
func (p *Progress) PercentComplete() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.percentCompleteLocked()
}

// IsComplete returns true if all items have been processed.
func (p *Progress) IsComplete() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.processed >= p.total
}

// Snapshot returns an immutable copy of the current progress.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return ProgressSnapshot{
		Total:           p.total,
		Processed:       p.processed,
		Failed:          p.failed,
		PercentComplete: p.percentCompleteLocked(),
		Elapsed:         p.lastAt.Sub(p.startTime),
	}
}

func (p *Progress) percentCompleteLocked() float64 {
	if p.total == 0 {
		return 0
	}
	return (float64(p.processed) / float64(p.total)) * percentMultiplier
}

// ProgressSnapshot is an immutable view of a Progress.
type ProgressSnapshot struct {
	Total           int
	Processed       int
	Failed          int
	PercentComplete float64
	Elapsed         time.Duration
}
