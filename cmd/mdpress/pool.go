package main

import (
	"context"
	"runtime"
	"sync"

	mdpress "github.com/mdpress/mdpress"
)

// converter is the interface the batch loop needs from the service.
type converter interface {
	Convert(ctx context.Context, input mdpress.Input) error
}

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() converter
	Release(converter)
	Size() int
}

// ServicePool manages mdpress.Service instances for parallel processing.
// Each service owns its renderer backend, so workers share no state.
// Services are created lazily on first acquire to avoid startup delay.
type ServicePool struct {
	size     int
	factory  func() (*mdpress.Service, error)
	services []*mdpress.Service
	sem      chan converter
	mu       sync.Mutex
	created  int
	closed   bool
}

// Compile-time checks.
var (
	_ Pool      = (*ServicePool)(nil)
	_ converter = (*mdpress.Service)(nil)
)

// NewServicePool creates a pool with capacity for n services built by
// factory. Services are created lazily when acquired.
func NewServicePool(n int, factory func() (*mdpress.Service, error)) *ServicePool {
	if n < 1 {
		n = 1
	}

	return &ServicePool{
		size:     n,
		factory:  factory,
		services: make([]*mdpress.Service, 0, n),
		sem:      make(chan converter, n),
	}
}

// Acquire gets a service from the pool, creating one if capacity allows.
// Blocks if all services are in use. Returns nil if creation fails.
func (p *ServicePool) Acquire() converter {
	// Try an existing idle service first (non-blocking).
	select {
	case svc := <-p.sem:
		return svc
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create the service outside the lock: backends can be slow to start.
		svc, err := p.factory()
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil
		}

		p.mu.Lock()
		p.services = append(p.services, svc)
		p.mu.Unlock()
		return svc
	}
	p.mu.Unlock()

	// At capacity: wait for a release.
	return <-p.sem
}

// Release returns a service to the pool.
func (p *ServicePool) Release(svc converter) {
	if svc == nil {
		return
	}

	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return
	}

	p.sem <- svc
}

// Size returns the pool capacity.
func (p *ServicePool) Size() int {
	return p.size
}

// Close releases all created services and their renderer resources.
func (p *ServicePool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	for _, svc := range p.services {
		_ = svc.Close()
	}
	p.services = nil
}

// resolvePoolSize maps the --workers flag to a pool size: 0 means one per
// CPU, and the pool never exceeds the file count.
func resolvePoolSize(workers, fileCount int) int {
	size := workers
	if size == 0 {
		size = runtime.GOMAXPROCS(0)
	}
	if size > fileCount {
		size = fileCount
	}
	if size < 1 {
		size = 1
	}
	return size
}
