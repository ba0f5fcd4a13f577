package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-router/model"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	mr := miniredis.RunT(t)
	repo, err := NewRepository(mr.Addr())
	require.NoError(t, err)
	return repo
}

func TestRegisterIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	createdAt := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	first := model.Payment{CorrelationID: "c1", Amount: 100, ProcessedBy: model.ProcessorDefault, CreatedAt: createdAt}
	stored, err := repo.Register(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, first, stored)

	// a racing second writer loses; the stored record stays authoritative
	racer := model.Payment{CorrelationID: "c1", Amount: 999, ProcessedBy: model.ProcessorFallback, CreatedAt: createdAt}
	stored, err = repo.Register(ctx, racer)
	require.NoError(t, err)
	assert.Equal(t, first.Amount, stored.Amount)
	assert.Equal(t, model.ProcessorDefault, stored.ProcessedBy)

	summary, err := repo.GetSummary(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Default.TotalRequests)
	assert.Equal(t, 0, summary.Fallback.TotalRequests)
}

func TestGetSummaryAggregates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	for _, p := range []model.Payment{
		{CorrelationID: "c1", Amount: 10.50, ProcessedBy: model.ProcessorDefault, CreatedAt: at},
		{CorrelationID: "c2", Amount: 4.75, ProcessedBy: model.ProcessorDefault, CreatedAt: at.Add(time.Minute)},
	} {
		_, err := repo.Register(ctx, p)
		require.NoError(t, err)
	}

	summary, err := repo.GetSummary(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, model.Summary{TotalRequests: 2, TotalAmount: 15.25}, summary.Default)
	assert.Equal(t, model.Summary{TotalRequests: 0, TotalAmount: 0}, summary.Fallback)
}

func TestGetSummaryBoundsAreInclusive(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	for _, p := range []model.Payment{
		{CorrelationID: "before", Amount: 1, ProcessedBy: model.ProcessorDefault, CreatedAt: at.Add(-time.Hour)},
		{CorrelationID: "lower", Amount: 2, ProcessedBy: model.ProcessorDefault, CreatedAt: at},
		{CorrelationID: "upper", Amount: 3, ProcessedBy: model.ProcessorFallback, CreatedAt: at.Add(time.Hour)},
		{CorrelationID: "after", Amount: 4, ProcessedBy: model.ProcessorFallback, CreatedAt: at.Add(2 * time.Hour)},
	} {
		_, err := repo.Register(ctx, p)
		require.NoError(t, err)
	}

	summary, err := repo.GetSummary(ctx, at, at.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, model.Summary{TotalRequests: 1, TotalAmount: 2}, summary.Default)
	assert.Equal(t, model.Summary{TotalRequests: 1, TotalAmount: 3}, summary.Fallback)

	// only the lower bound set
	summary, err = repo.GetSummary(ctx, at, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Default.TotalRequests)
	assert.Equal(t, 2, summary.Fallback.TotalRequests)
}

func TestGetSummarySkipsUndecodableRecords(t *testing.T) {
	mr := miniredis.RunT(t)
	repo, err := NewRepository(mr.Addr())
	require.NoError(t, err)
	ctx := context.Background()

	mr.HSet(paymentsKey, "bad", "not json")
	_, err = repo.Register(ctx, model.Payment{CorrelationID: "c1", Amount: 5, ProcessedBy: model.ProcessorDefault, CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	summary, err := repo.GetSummary(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Default.TotalRequests)
}

func TestPurge(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Register(ctx, model.Payment{CorrelationID: "c1", Amount: 5, ProcessedBy: model.ProcessorDefault, CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	require.NoError(t, repo.Purge(ctx))

	summary, err := repo.GetSummary(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Default.TotalRequests)
}

func TestGetHealthDefaultsToUnhealthy(t *testing.T) {
	repo := newTestRepository(t)

	health, err := repo.GetHealth(context.Background(), model.ProcessorDefault)
	require.NoError(t, err)
	assert.Equal(t, model.Unhealthy, health)
}

func TestSetAndGetHealth(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	want := model.ProcessorHealth{Failing: false, MinResponseTime: 120}
	require.NoError(t, repo.SetHealth(ctx, model.ProcessorFallback, want))

	got, err := repo.GetHealth(ctx, model.ProcessorFallback)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMarkFailingKeepsMinResponseTime(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetHealth(ctx, model.ProcessorDefault, model.ProcessorHealth{Failing: false, MinResponseTime: 80}))
	require.NoError(t, repo.MarkFailing(ctx, model.ProcessorDefault))

	got, err := repo.GetHealth(ctx, model.ProcessorDefault)
	require.NoError(t, err)
	assert.True(t, got.Failing)
	assert.Equal(t, 80, got.MinResponseTime)
}
