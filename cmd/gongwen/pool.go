package main

import (
	"runtime"
	"sync"

	gongwen "github.com/hanchen-dev/go-gongwen"
)

// maxPoolSize caps the worker pool; DOCX assembly is CPU-bound and
// gains little beyond this.
const maxPoolSize = 8

// ServicePool manages a pool of gongwen.Service instances for parallel
// processing. Services are created lazily on first acquire.
type ServicePool struct {
	size    int
	opts    []gongwen.Option
	sem     chan Converter
	mu      sync.Mutex
	created int
}

// NewServicePool creates a pool with capacity for n Service instances,
// each configured with the given options.
func NewServicePool(n int, opts ...gongwen.Option) *ServicePool {
	if n < 1 {
		n = 1
	}

	return &ServicePool{
		size: n,
		opts: opts,
		sem:  make(chan Converter, n),
	}
}

// Compile-time check that ServicePool implements Pool.
var _ Pool = (*ServicePool)(nil)

// Acquire gets a service from the pool, creating one if needed.
// Blocks if all services are in use.
func (p *ServicePool) Acquire() Converter {
	// Try to get an existing service (non-blocking)
	select {
	case svc := <-p.sem:
		return svc
	default:
	}

	// Check if we can create a new service
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return gongwen.New(p.opts...)
	}
	p.mu.Unlock()

	// All services created, wait for one to be released
	return <-p.sem
}

// Release returns a service to the pool.
func (p *ServicePool) Release(svc Converter) {
	p.sem <- svc
}

// Size returns the pool capacity.
func (p *ServicePool) Size() int {
	return p.size
}

// resolvePoolSize determines the optimal pool size.
// Priority: explicit flag or env value > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / 2

	if n < 1 {
		return 1
	}
	if n > maxPoolSize {
		return maxPoolSize
	}
	return n
}
