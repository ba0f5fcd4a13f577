package worker

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"payment-router/model"
	"payment-router/router"
)

// Dispatcher routes a single request to a processor.
type Dispatcher interface {
	Dispatch(ctx context.Context, req model.RoutableRequest) (model.Payment, error)
}

// Source is the durable queue the pool drains.
type Source interface {
	ReliableDequeue(ctx context.Context, timeout time.Duration) (model.RoutableRequest, string, bool, error)
	Ack(ctx context.Context, raw string) error
	Requeue(ctx context.Context, raw string, next model.RoutableRequest) error
	Bury(ctx context.Context, raw string) error
}

// Pool drains the durable queue with a fixed number of workers. A
// semaphore sized independently of the worker count bounds concurrently
// in-flight remote calls; it is the system's only backpressure.
type Pool struct {
	queue          Source
	dispatcher     Dispatcher
	sem            *semaphore.Weighted
	numWorkers     int
	dequeueTimeout time.Duration
	retryIncrement time.Duration
	maxRetries     int
	wg             sync.WaitGroup
}

func NewPool(queue Source, dispatcher Dispatcher, numWorkers int, maxInflight int64, dequeueTimeout, retryIncrement time.Duration, maxRetries int) *Pool {
	return &Pool{
		queue:          queue,
		dispatcher:     dispatcher,
		sem:            semaphore.NewWeighted(maxInflight),
		numWorkers:     numWorkers,
		dequeueTimeout: dequeueTimeout,
		retryIncrement: retryIncrement,
		maxRetries:     maxRetries,
	}
}

// Start launches the workers. They stop admitting new work when ctx is
// cancelled; Wait blocks until all of them have returned.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.run(ctx)
		}()
	}
}

func (p *Pool) Wait() {
	p.wg.Wait()
}

func (p *Pool) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		req, raw, ok, err := p.queue.ReliableDequeue(ctx, p.dequeueTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("error dequeuing: %v", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}
		if !ok {
			continue
		}
		p.handle(ctx, req, raw)
	}
}

func (p *Pool) handle(ctx context.Context, req model.RoutableRequest, raw string) {
	// Throttle retries so a failing request cannot hot-loop through the
	// queue. Shutdown during the wait leaves the record on the
	// processing list for recovery.
	if delay := req.RetryDelay(); delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return
		}
	}

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return
	}
	payment, err := p.dispatcher.Dispatch(ctx, req)
	p.sem.Release(1)

	switch {
	case err == nil:
		if aerr := p.queue.Ack(ctx, raw); aerr != nil {
			log.Printf("error acking payment %s: %v", payment.CorrelationID, aerr)
		}
	case router.Retryable(err):
		p.retry(ctx, req, raw, err)
	default:
		var terminal *router.TerminalError
		if errors.As(err, &terminal) {
			log.Printf("dropping payment %s: %v", req.CorrelationID, err)
		} else {
			log.Printf("dropping payment %s after unexpected error: %v", req.CorrelationID, err)
		}
		if aerr := p.queue.Ack(ctx, raw); aerr != nil {
			log.Printf("error acking payment %s: %v", req.CorrelationID, aerr)
		}
	}
}

func (p *Pool) retry(ctx context.Context, req model.RoutableRequest, raw string, cause error) {
	if req.RetryCount >= p.maxRetries {
		log.Printf("burying payment %s after %d retries: %v", req.CorrelationID, req.RetryCount, cause)
		if err := p.queue.Bury(ctx, raw); err != nil {
			log.Printf("error burying payment %s: %v", req.CorrelationID, err)
		}
		return
	}
	if err := p.queue.Requeue(ctx, raw, req.Retry(p.retryIncrement)); err != nil {
		log.Printf("error requeuing payment %s: %v", req.CorrelationID, err)
	}
}
