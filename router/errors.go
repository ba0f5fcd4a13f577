package router

import (
	"errors"
	"fmt"

	"payment-router/model"
)

// ErrAllProcessorsDown means both processors report failing; no outbound
// call was made. The caller requeues with backoff.
var ErrAllProcessorsDown = errors.New("all payment processors are failing")

// RetryableError means the default processor errored; the request should
// be requeued and will likely route to the fallback next time.
type RetryableError struct {
	Processor model.ProcessorName
	Status    int
	Err       error
}

func (e *RetryableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s processor: %v", e.Processor, e.Err)
	}
	return fmt.Sprintf("%s processor returned %d", e.Processor, e.Status)
}

func (e *RetryableError) Unwrap() error { return e.Err }

// TerminalError means the fallback processor errored; there is no further
// tier, the request is dropped and the payment is never recorded.
type TerminalError struct {
	Processor model.ProcessorName
	Status    int
	Err       error
}

func (e *TerminalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s processor: %v", e.Processor, e.Err)
	}
	return fmt.Sprintf("%s processor returned %d", e.Processor, e.Status)
}

func (e *TerminalError) Unwrap() error { return e.Err }

// Retryable reports whether the dispatch outcome warrants a requeue.
func Retryable(err error) bool {
	var retryable *RetryableError
	return errors.Is(err, ErrAllProcessorsDown) || errors.As(err, &retryable)
}
