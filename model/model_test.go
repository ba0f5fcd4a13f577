package model

import (
	"testing"
	"time"

	"github.com/mailru/easyjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoutableRequest(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 30, 45, 123_456_789, time.UTC)
	req := NewRoutableRequest(PaymentRequest{CorrelationID: "c1", Amount: 19.90}, now)

	assert.Equal(t, "c1", req.CorrelationID)
	assert.Equal(t, 19.90, req.Amount)
	assert.Equal(t, "2026-08-31T12:30:45.123Z", req.RequestedAt)
	assert.Equal(t, 0, req.RetryCount)
	assert.Equal(t, time.Duration(0), req.RetryDelay())
	assert.Equal(t, now.Truncate(time.Millisecond), req.RequestedAtTime())
}

func TestRetryAccumulates(t *testing.T) {
	req := NewRoutableRequest(PaymentRequest{CorrelationID: "c1", Amount: 10}, time.Now())

	first := req.Retry(250 * time.Millisecond)
	second := first.Retry(250 * time.Millisecond)

	assert.Equal(t, 2, second.RetryCount)
	assert.Equal(t, 500*time.Millisecond, second.RetryDelay())
	// the original value is untouched
	assert.Equal(t, 0, req.RetryCount)
	assert.Equal(t, "c1", second.CorrelationID)
	assert.Equal(t, req.RequestedAt, second.RequestedAt)
}

func TestRoutableRequestWireFormat(t *testing.T) {
	req := RoutableRequest{
		CorrelationID: "c1",
		Amount:        100.5,
		RequestedAt:   "2026-08-31T12:30:45.123Z",
		RetryCount:    2,
		RetryDelayMS:  500,
	}
	data, err := easyjson.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"correlationId": "c1",
		"amount": 100.5,
		"requestedAt": "2026-08-31T12:30:45.123Z",
		"retryCount": 2,
		"retryDelay": 500
	}`, string(data))

	var decoded RoutableRequest
	require.NoError(t, easyjson.Unmarshal(data, &decoded))
	assert.Equal(t, req, decoded)
}
