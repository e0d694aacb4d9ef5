// Package health reports process-level liveness. The probe is independent of
// the order store: it answers whether the process finished wiring its
// dependencies, never whether any particular request would succeed.
package health

import (
	"errors"
	"sync/atomic"
)

// ErrNotReady is returned by Check until the process finished startup.
var ErrNotReady = errors.New("service is not ready to serve requests")

// Probe is a process liveness flag. It starts unhealthy and is flipped to
// healthy exactly once, after the composition root wired all dependencies.
type Probe struct {
	ready atomic.Bool
}

// NewProbe creates a probe in the not-ready state.
func NewProbe() *Probe {
	return &Probe{}
}

// Ready marks the process as able to serve requests.
func (p *Probe) Ready() {
	p.ready.Store(true)
}

// Check returns nil when the process is healthy and ErrNotReady otherwise.
func (p *Probe) Check() error {
	if !p.ready.Load() {
		return ErrNotReady
	}
	return nil
}
