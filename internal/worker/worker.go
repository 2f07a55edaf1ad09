package worker

import (
	"errors"
	"sync"
)

// ErrStopped is returned when submitting to a stopped pool.
var ErrStopped = errors.New("worker: pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	// Submit blocks until a worker or the queue accepts t.
	Submit(Task) error
	// TrySubmit enqueues t without blocking and reports whether it was accepted.
	TrySubmit(Task) bool
	// Stop drains the queue and waits for running tasks.
	Stop()
}

// NewPool creates a pool with n workers and a queue of size queue.
// n<=0 defaults to 1; queue<0 is treated as 0 (unbuffered).
func NewPool(n, queue int) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &pool{jobs: make(chan Task, queue)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs    chan Task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
}

func (p *pool) Submit(t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}
	p.jobs <- t
	return nil
}

func (p *pool) TrySubmit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

func (p *pool) Stop() {
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
