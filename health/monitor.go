package health

import (
	"context"
	"log"
	"sync"
	"time"

	"payment-router/model"
)

// Lease is the shared leadership record. Only the holder probes.
type Lease interface {
	TryAcquire(ctx context.Context) (bool, error)
	Renew(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
	InstanceID() string
}

// Store receives probe results.
type Store interface {
	SetHealth(ctx context.Context, name model.ProcessorName, health model.ProcessorHealth) error
}

// Prober calls a processor's health endpoint.
type Prober interface {
	CheckHealth(ctx context.Context, name model.ProcessorName) (model.ProcessorHealth, error)
}

// Monitor runs leader election and, while leader, probes each processor
// on its own interval, writing results to the shared store.
type Monitor struct {
	lease            Lease
	store            Store
	prober           Prober
	acquireInterval  time.Duration
	renewInterval    time.Duration
	defaultInterval  time.Duration
	fallbackInterval time.Duration
}

func NewMonitor(lease Lease, store Store, prober Prober, acquireInterval, renewInterval, defaultInterval, fallbackInterval time.Duration) *Monitor {
	return &Monitor{
		lease:            lease,
		store:            store,
		prober:           prober,
		acquireInterval:  acquireInterval,
		renewInterval:    renewInterval,
		defaultInterval:  defaultInterval,
		fallbackInterval: fallbackInterval,
	}
}

// Run loops until ctx is cancelled: followers retry acquisition on a
// fixed interval, the leader probes until a renewal fails or shutdown.
func (m *Monitor) Run(ctx context.Context) {
	for {
		acquired, err := m.lease.TryAcquire(ctx)
		if err != nil && ctx.Err() == nil {
			log.Printf("error acquiring health lease: %v", err)
		}
		if acquired {
			log.Printf("instance %s is now the health leader", m.lease.InstanceID())
			m.lead(ctx)
			log.Printf("instance %s is no longer the health leader", m.lease.InstanceID())
		}
		select {
		case <-time.After(m.acquireInterval):
		case <-ctx.Done():
			return
		}
	}
}

// lead probes both processors while leadership holds. A failed or lost
// renewal cancels the probe loops immediately.
func (m *Monitor) lead(ctx context.Context) {
	leadCtx, demote := context.WithCancel(ctx)
	defer demote()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		m.probeLoop(leadCtx, model.ProcessorDefault, m.defaultInterval)
	}()
	go func() {
		defer wg.Done()
		m.probeLoop(leadCtx, model.ProcessorFallback, m.fallbackInterval)
	}()

	ticker := time.NewTicker(m.renewInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			renewed, err := m.lease.Renew(ctx)
			if err != nil {
				log.Printf("error renewing health lease: %v", err)
			}
			if err != nil || !renewed {
				demote()
				wg.Wait()
				return
			}
		case <-ctx.Done():
			demote()
			wg.Wait()
			releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := m.lease.Release(releaseCtx); err != nil {
				log.Printf("error releasing health lease: %v", err)
			}
			return
		}
	}
}

func (m *Monitor) probeLoop(ctx context.Context, name model.ProcessorName, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		m.probe(ctx, name)
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

// probe adopts a 200 response body verbatim; any other status, transport
// failure or decode error reads as failing. The result is written
// unconditionally; last write wins.
func (m *Monitor) probe(ctx context.Context, name model.ProcessorName) {
	health, err := m.prober.CheckHealth(ctx, name)
	if err != nil {
		health = model.Unhealthy
	}
	if ctx.Err() != nil {
		return
	}
	if err := m.store.SetHealth(ctx, name, health); err != nil {
		log.Printf("error storing %s health: %v", name, err)
	}
}
