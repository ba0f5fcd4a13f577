package repository

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/mailru/easyjson"
	"github.com/redis/go-redis/v9"

	"payment-router/model"
)

const (
	paymentsKey  = "payments"
	healthKeyFmt = "healthcheck:%s"
)

// Repository is the shared durable store: the payment ledger and the
// processor health state, both visible to every instance.
type Repository struct {
	rdb *redis.Client
}

func NewRepository(addr string) (*Repository, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &Repository{rdb: rdb}, nil
}

func (r *Repository) Client() *redis.Client {
	return r.rdb
}

// Register stores the payment if no payment with the same correlation id
// exists. When a record is already present the stored one is authoritative
// and is returned instead of the argument.
func (r *Repository) Register(ctx context.Context, payment model.Payment) (model.Payment, error) {
	data, err := easyjson.Marshal(payment)
	if err != nil {
		return model.Payment{}, fmt.Errorf("encoding payment %s: %w", payment.CorrelationID, err)
	}
	created, err := r.rdb.HSetNX(ctx, paymentsKey, payment.CorrelationID, data).Result()
	if err != nil {
		return model.Payment{}, fmt.Errorf("registering payment %s: %w", payment.CorrelationID, err)
	}
	if created {
		return payment, nil
	}
	stored, err := r.rdb.HGet(ctx, paymentsKey, payment.CorrelationID).Result()
	if err != nil {
		return model.Payment{}, fmt.Errorf("reading payment %s: %w", payment.CorrelationID, err)
	}
	var existing model.Payment
	if err := easyjson.Unmarshal([]byte(stored), &existing); err != nil {
		return model.Payment{}, fmt.Errorf("decoding payment %s: %w", payment.CorrelationID, err)
	}
	return existing, nil
}

// GetSummary scans all stored payments and aggregates those whose
// createdAt falls within [from, to] inclusive. A zero bound leaves that
// side unfiltered. Amounts are rounded once per aggregate.
func (r *Repository) GetSummary(ctx context.Context, from, to time.Time) (model.SummaryResponse, error) {
	values, err := r.rdb.HVals(ctx, paymentsKey).Result()
	if err != nil {
		return model.SummaryResponse{}, fmt.Errorf("scanning payments: %w", err)
	}
	var summary model.SummaryResponse
	for _, raw := range values {
		var payment model.Payment
		if err := easyjson.Unmarshal([]byte(raw), &payment); err != nil {
			log.Printf("skipping undecodable payment record: %v", err)
			continue
		}
		if !from.IsZero() && payment.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && payment.CreatedAt.After(to) {
			continue
		}
		switch payment.ProcessedBy {
		case model.ProcessorDefault:
			summary.Default.TotalRequests++
			summary.Default.TotalAmount += payment.Amount
		case model.ProcessorFallback:
			summary.Fallback.TotalRequests++
			summary.Fallback.TotalAmount += payment.Amount
		}
	}
	summary.Default.TotalAmount = round2(summary.Default.TotalAmount)
	summary.Fallback.TotalAmount = round2(summary.Fallback.TotalAmount)
	return summary, nil
}

// Purge deletes every stored payment record.
func (r *Repository) Purge(ctx context.Context) error {
	return r.rdb.Del(ctx, paymentsKey).Err()
}

// SetHealth overwrites the stored health for the processor. Last write
// wins; there is no smoothing across probes.
func (r *Repository) SetHealth(ctx context.Context, name model.ProcessorName, health model.ProcessorHealth) error {
	data, err := easyjson.Marshal(health)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, fmt.Sprintf(healthKeyFmt, name), data, 0).Err()
}

// GetHealth returns the last-known health for the processor. An absent or
// unreadable entry reads as failing.
func (r *Repository) GetHealth(ctx context.Context, name model.ProcessorName) (model.ProcessorHealth, error) {
	raw, err := r.rdb.Get(ctx, fmt.Sprintf(healthKeyFmt, name)).Result()
	if err == redis.Nil {
		return model.Unhealthy, nil
	}
	if err != nil {
		return model.Unhealthy, err
	}
	var health model.ProcessorHealth
	if err := easyjson.Unmarshal([]byte(raw), &health); err != nil {
		return model.Unhealthy, err
	}
	return health, nil
}

// MarkFailing flips the processor to failing while keeping its last
// observed minResponseTime, so the routing timeout hint survives until
// the next probe.
func (r *Repository) MarkFailing(ctx context.Context, name model.ProcessorName) error {
	health, _ := r.GetHealth(ctx, name)
	health.Failing = true
	return r.SetHealth(ctx, name, health)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
