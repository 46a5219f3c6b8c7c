// Package worker runs background housekeeping on a fixed set of goroutines.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is a unit of work. ctx is cancelled when the pool stops.
type Task func(ctx context.Context)

// Pool executes submitted tasks on n goroutines.
type Pool interface {
	// Submit queues t and reports whether it was accepted.
	Submit(t Task) bool
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int, logger *slog.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &pool{jobs: make(chan Task), ctx: ctx, cancel: cancel, logger: logger}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

type pool struct {
	jobs   chan Task
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger

	mu      sync.RWMutex
	stopped bool
}

func (p *pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.run(job)
	}
}

func (p *pool) run(t Task) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker task panicked", "panic", r)
		}
	}()
	t(p.ctx)
}

func (p *pool) Submit(t Task) bool {
	if t == nil {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Stop cancels running tasks, waits for them and rejects later submissions.
func (p *pool) Stop() {
	p.cancel()
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

// Every submits t to p at each interval until ctx is done.
func Every(ctx context.Context, p Pool, interval time.Duration, t Task) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.Submit(t) {
				return
			}
		}
	}
}
