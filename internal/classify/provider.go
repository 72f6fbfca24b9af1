package classify

import (
	"sync/atomic"

	"hardware-advisor/internal/shared/metrics"
)

// Provider hands out the active model artifact and supports lock-free hot
// swap when retraining publishes a new version. Readers on the request path
// never block behind a swap.
type Provider struct {
	active atomic.Pointer[Artifact]
}

// NewProvider returns a provider seeded with an artifact, which may be nil
// when no model has been trained yet.
func NewProvider(a *Artifact) *Provider {
	p := &Provider{}
	if a != nil {
		p.active.Store(a)
	}
	return p
}

// Active returns the current artifact, or nil when none is loaded.
func (p *Provider) Active() *Artifact {
	return p.active.Load()
}

// Swap installs a new artifact. In-flight requests keep the artifact they
// already loaded; later requests see the new one.
func (p *Provider) Swap(a *Artifact) {
	p.active.Store(a)
	metrics.IncModelSwap()
}
