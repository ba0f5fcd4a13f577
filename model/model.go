package model

import "time"

// TimestampLayout is the wire format for requestedAt: ISO-8601 UTC with
// millisecond precision, as the remote processors expect.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ProcessorName identifies one of the two remote payment processors.
type ProcessorName string

const (
	ProcessorDefault  ProcessorName = "default"
	ProcessorFallback ProcessorName = "fallback"
)

//easyjson:json
type PaymentRequest struct {
	CorrelationID string  `json:"correlationId"`
	Amount        float64 `json:"amount"`
}

// RoutableRequest is the queued form of a PaymentRequest and the body
// POSTed to the processors. It is immutable; a retry produces a new value
// via Retry.
//
//easyjson:json
type RoutableRequest struct {
	CorrelationID string  `json:"correlationId"`
	Amount        float64 `json:"amount"`
	RequestedAt   string  `json:"requestedAt"`
	RetryCount    int     `json:"retryCount"`
	RetryDelayMS  int64   `json:"retryDelay"`
}

func NewRoutableRequest(req PaymentRequest, now time.Time) RoutableRequest {
	return RoutableRequest{
		CorrelationID: req.CorrelationID,
		Amount:        req.Amount,
		RequestedAt:   now.UTC().Format(TimestampLayout),
	}
}

// Retry returns a copy with the retry count incremented and the delay
// accumulated. The delay is never reset across retries.
func (r RoutableRequest) Retry(increment time.Duration) RoutableRequest {
	next := r
	next.RetryCount++
	next.RetryDelayMS += increment.Milliseconds()
	return next
}

func (r RoutableRequest) RetryDelay() time.Duration {
	return time.Duration(r.RetryDelayMS) * time.Millisecond
}

// RequestedAtTime parses the requestedAt stamp. The zero time is returned
// for records with an unparseable stamp.
func (r RoutableRequest) RequestedAtTime() time.Time {
	t, err := time.Parse(TimestampLayout, r.RequestedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ProcessorHealth is the last-known probe result for one processor.
// Overwritten wholesale on each probe, never partially updated.
//
//easyjson:json
type ProcessorHealth struct {
	Failing         bool `json:"failing"`
	MinResponseTime int  `json:"minResponseTime"`
}

// Unhealthy is the fail-safe health used when no probe result exists.
var Unhealthy = ProcessorHealth{Failing: true, MinResponseTime: 0}

// Payment is a successfully processed payment. Identity is CorrelationID;
// at most one record per correlation id is ever stored.
//
//easyjson:json
type Payment struct {
	CorrelationID string        `json:"correlationId"`
	Amount        float64       `json:"amount"`
	ProcessedBy   ProcessorName `json:"processedBy"`
	CreatedAt     time.Time     `json:"createdAt"`
}

//easyjson:json
type Summary struct {
	TotalRequests int     `json:"totalRequests"`
	TotalAmount   float64 `json:"totalAmount"`
}

//easyjson:json
type SummaryResponse struct {
	Default  Summary `json:"default"`
	Fallback Summary `json:"fallback"`
}
