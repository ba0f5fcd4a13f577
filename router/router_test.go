package router

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-router/model"
)

type fakeHealth struct {
	state  map[model.ProcessorName]model.ProcessorHealth
	marked []model.ProcessorName
}

func (f *fakeHealth) GetHealth(_ context.Context, name model.ProcessorName) (model.ProcessorHealth, error) {
	health, ok := f.state[name]
	if !ok {
		return model.Unhealthy, nil
	}
	return health, nil
}

func (f *fakeHealth) MarkFailing(_ context.Context, name model.ProcessorName) error {
	f.marked = append(f.marked, name)
	health := f.state[name]
	health.Failing = true
	f.state[name] = health
	return nil
}

type fakeLedger struct {
	registered []model.Payment
	err        error
}

func (f *fakeLedger) Register(_ context.Context, payment model.Payment) (model.Payment, error) {
	if f.err != nil {
		return model.Payment{}, f.err
	}
	f.registered = append(f.registered, payment)
	return payment, nil
}

type call struct {
	name    model.ProcessorName
	timeout time.Duration
}

type fakeProcessor struct {
	status int
	err    error
	calls  []call
}

func (f *fakeProcessor) ProcessPayment(_ context.Context, name model.ProcessorName, _ model.RoutableRequest, timeout time.Duration) (int, error) {
	f.calls = append(f.calls, call{name: name, timeout: timeout})
	if f.err != nil {
		return 0, f.err
	}
	return f.status, nil
}

func healthy(minResponseTime int) model.ProcessorHealth {
	return model.ProcessorHealth{Failing: false, MinResponseTime: minResponseTime}
}

func newTestRouter(health *fakeHealth, ledger *fakeLedger, proc *fakeProcessor, preferFastest bool) *Router {
	return NewRouter(health, ledger, proc, preferFastest, 1500*time.Millisecond)
}

func testRequest() model.RoutableRequest {
	return model.NewRoutableRequest(
		model.PaymentRequest{CorrelationID: "c1", Amount: 100.00},
		time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
	)
}

func TestDispatchPrefersDefaultWhenBothHealthy(t *testing.T) {
	health := &fakeHealth{state: map[model.ProcessorName]model.ProcessorHealth{
		model.ProcessorDefault:  healthy(100),
		model.ProcessorFallback: healthy(10),
	}}
	ledger := &fakeLedger{}
	proc := &fakeProcessor{status: 200}

	payment, err := newTestRouter(health, ledger, proc, false).Dispatch(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, proc.calls, 1)
	assert.Equal(t, model.ProcessorDefault, proc.calls[0].name)
	assert.Equal(t, 100*time.Millisecond, proc.calls[0].timeout)
	assert.Equal(t, model.ProcessorDefault, payment.ProcessedBy)
	assert.Equal(t, "c1", payment.CorrelationID)
	assert.Equal(t, time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC), payment.CreatedAt)
	require.Len(t, ledger.registered, 1)
	assert.Equal(t, payment, ledger.registered[0])
}

func TestDispatchPreferFastestTieBreak(t *testing.T) {
	health := &fakeHealth{state: map[model.ProcessorName]model.ProcessorHealth{
		model.ProcessorDefault:  healthy(100),
		model.ProcessorFallback: healthy(10),
	}}
	proc := &fakeProcessor{status: 200}

	_, err := newTestRouter(health, &fakeLedger{}, proc, true).Dispatch(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, proc.calls, 1)
	assert.Equal(t, model.ProcessorFallback, proc.calls[0].name)
}

func TestDispatchRoutesToFallbackWhenDefaultFailing(t *testing.T) {
	health := &fakeHealth{state: map[model.ProcessorName]model.ProcessorHealth{
		model.ProcessorDefault:  {Failing: true, MinResponseTime: 50},
		model.ProcessorFallback: healthy(30),
	}}
	proc := &fakeProcessor{status: 200}

	payment, err := newTestRouter(health, &fakeLedger{}, proc, false).Dispatch(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, proc.calls, 1)
	assert.Equal(t, model.ProcessorFallback, proc.calls[0].name)
	assert.Equal(t, model.ProcessorFallback, payment.ProcessedBy)
}

func TestDispatchFailsFastWhenBothFailing(t *testing.T) {
	health := &fakeHealth{state: map[model.ProcessorName]model.ProcessorHealth{
		model.ProcessorDefault:  {Failing: true},
		model.ProcessorFallback: {Failing: true},
	}}
	proc := &fakeProcessor{status: 200}

	_, err := newTestRouter(health, &fakeLedger{}, proc, false).Dispatch(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrAllProcessorsDown)
	assert.Empty(t, proc.calls, "no outbound call may be made")
	assert.True(t, Retryable(err))
}

func TestDispatchTreatsAbsentHealthAsFailing(t *testing.T) {
	health := &fakeHealth{state: map[model.ProcessorName]model.ProcessorHealth{}}
	proc := &fakeProcessor{status: 200}

	_, err := newTestRouter(health, &fakeLedger{}, proc, false).Dispatch(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrAllProcessorsDown)
	assert.Empty(t, proc.calls)
}

func TestDispatchDefaultServerErrorIsRetryableAndTripsCircuit(t *testing.T) {
	health := &fakeHealth{state: map[model.ProcessorName]model.ProcessorHealth{
		model.ProcessorDefault:  healthy(50),
		model.ProcessorFallback: healthy(50),
	}}
	proc := &fakeProcessor{status: 500}

	_, err := newTestRouter(health, &fakeLedger{}, proc, false).Dispatch(context.Background(), testRequest())

	var retryable *RetryableError
	require.ErrorAs(t, err, &retryable)
	assert.Equal(t, model.ProcessorDefault, retryable.Processor)
	assert.Equal(t, 500, retryable.Status)
	assert.Equal(t, []model.ProcessorName{model.ProcessorDefault}, health.marked)

	// the next dispatch sees the tripped circuit and routes to fallback
	proc.status = 200
	payment, err := newTestRouter(health, &fakeLedger{}, proc, false).Dispatch(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, model.ProcessorFallback, payment.ProcessedBy)
}

func TestDispatchFallbackErrorIsTerminal(t *testing.T) {
	health := &fakeHealth{state: map[model.ProcessorName]model.ProcessorHealth{
		model.ProcessorDefault:  {Failing: true},
		model.ProcessorFallback: healthy(50),
	}}
	ledger := &fakeLedger{}
	proc := &fakeProcessor{status: 502}

	_, err := newTestRouter(health, ledger, proc, false).Dispatch(context.Background(), testRequest())

	var terminal *TerminalError
	require.ErrorAs(t, err, &terminal)
	assert.Equal(t, model.ProcessorFallback, terminal.Processor)
	assert.False(t, Retryable(err))
	assert.Empty(t, ledger.registered, "failed payments are never recorded")
}

func TestDispatchTransportErrorClassification(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("from_default", func(t *testing.T) {
		health := &fakeHealth{state: map[model.ProcessorName]model.ProcessorHealth{
			model.ProcessorDefault:  healthy(50),
			model.ProcessorFallback: healthy(50),
		}}
		_, err := newTestRouter(health, &fakeLedger{}, &fakeProcessor{err: boom}, false).Dispatch(context.Background(), testRequest())
		var retryable *RetryableError
		require.ErrorAs(t, err, &retryable)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []model.ProcessorName{model.ProcessorDefault}, health.marked)
	})

	t.Run("from_fallback", func(t *testing.T) {
		health := &fakeHealth{state: map[model.ProcessorName]model.ProcessorHealth{
			model.ProcessorDefault:  {Failing: true},
			model.ProcessorFallback: healthy(50),
		}}
		_, err := newTestRouter(health, &fakeLedger{}, &fakeProcessor{err: boom}, false).Dispatch(context.Background(), testRequest())
		var terminal *TerminalError
		require.ErrorAs(t, err, &terminal)
		assert.Empty(t, health.marked)
	})
}

func TestDispatchUsesDefaultTimeoutWhenHealthHasNone(t *testing.T) {
	health := &fakeHealth{state: map[model.ProcessorName]model.ProcessorHealth{
		model.ProcessorDefault:  healthy(0),
		model.ProcessorFallback: healthy(0),
	}}
	proc := &fakeProcessor{status: 200}

	_, err := newTestRouter(health, &fakeLedger{}, proc, false).Dispatch(context.Background(), testRequest())
	require.NoError(t, err)
	require.Len(t, proc.calls, 1)
	assert.Equal(t, 1500*time.Millisecond, proc.calls[0].timeout)
}

func TestDispatchLedgerFailureIsRetryable(t *testing.T) {
	health := &fakeHealth{state: map[model.ProcessorName]model.ProcessorHealth{
		model.ProcessorDefault:  healthy(50),
		model.ProcessorFallback: healthy(50),
	}}
	ledger := &fakeLedger{err: errors.New("store unavailable")}

	_, err := newTestRouter(health, ledger, &fakeProcessor{status: 200}, false).Dispatch(context.Background(), testRequest())
	assert.True(t, Retryable(err), "an unrecorded success must be retried, idempotence absorbs the duplicate")
}
