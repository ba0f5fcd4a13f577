package router

import (
	"context"
	"log"
	"time"

	"payment-router/model"
)

// HealthState is the shared view of processor health consumed by routing
// decisions and updated on circuit-breaking failures.
type HealthState interface {
	GetHealth(ctx context.Context, name model.ProcessorName) (model.ProcessorHealth, error)
	MarkFailing(ctx context.Context, name model.ProcessorName) error
}

// Ledger records successfully processed payments idempotently.
type Ledger interface {
	Register(ctx context.Context, payment model.Payment) (model.Payment, error)
}

// Processor executes a payment against a named remote processor.
type Processor interface {
	ProcessPayment(ctx context.Context, name model.ProcessorName, req model.RoutableRequest, timeout time.Duration) (int, error)
}

// Router picks a processor from current health, executes the remote call,
// classifies the outcome and records successes. Escalation is strictly
// two-tier: default, then fallback, then give up.
type Router struct {
	health         HealthState
	ledger         Ledger
	processor      Processor
	preferFastest  bool
	defaultTimeout time.Duration
}

func NewRouter(health HealthState, ledger Ledger, processor Processor, preferFastest bool, defaultTimeout time.Duration) *Router {
	return &Router{
		health:         health,
		ledger:         ledger,
		processor:      processor,
		preferFastest:  preferFastest,
		defaultTimeout: defaultTimeout,
	}
}

func (r *Router) Dispatch(ctx context.Context, req model.RoutableRequest) (model.Payment, error) {
	defaultHealth := r.healthOf(ctx, model.ProcessorDefault)
	fallbackHealth := r.healthOf(ctx, model.ProcessorFallback)

	name, health := model.ProcessorDefault, defaultHealth
	switch {
	case defaultHealth.Failing && !fallbackHealth.Failing:
		name, health = model.ProcessorFallback, fallbackHealth
	case r.preferFastest && !defaultHealth.Failing && !fallbackHealth.Failing &&
		fallbackHealth.MinResponseTime < defaultHealth.MinResponseTime:
		name, health = model.ProcessorFallback, fallbackHealth
	}

	if health.Failing {
		return model.Payment{}, ErrAllProcessorsDown
	}

	timeout := time.Duration(health.MinResponseTime) * time.Millisecond
	if timeout <= 0 {
		timeout = r.defaultTimeout
	}

	status, err := r.processor.ProcessPayment(ctx, name, req, timeout)
	if err != nil {
		return model.Payment{}, r.failure(ctx, name, 0, err)
	}
	if status < 200 || status >= 300 {
		return model.Payment{}, r.failure(ctx, name, status, nil)
	}

	payment := model.Payment{
		CorrelationID: req.CorrelationID,
		Amount:        req.Amount,
		ProcessedBy:   name,
		CreatedAt:     req.RequestedAtTime(),
	}
	// The ledger write happens before success is reported, so an
	// acknowledged payment is always durably recorded.
	if _, err := r.ledger.Register(ctx, payment); err != nil {
		return model.Payment{}, &RetryableError{Processor: name, Err: err}
	}
	return payment, nil
}

// failure classifies a remote error. Default-processor failures trip the
// circuit ahead of the next health probe and stay retryable; fallback
// failures are terminal because no further tier exists.
func (r *Router) failure(ctx context.Context, name model.ProcessorName, status int, err error) error {
	if name == model.ProcessorDefault {
		if merr := r.health.MarkFailing(ctx, name); merr != nil {
			log.Printf("error marking %s processor failing: %v", name, merr)
		}
		return &RetryableError{Processor: name, Status: status, Err: err}
	}
	return &TerminalError{Processor: name, Status: status, Err: err}
}

func (r *Router) healthOf(ctx context.Context, name model.ProcessorName) model.ProcessorHealth {
	health, err := r.health.GetHealth(ctx, name)
	if err != nil {
		return model.Unhealthy
	}
	return health
}
