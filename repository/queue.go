package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mailru/easyjson"
	"github.com/redis/go-redis/v9"

	"payment-router/model"
)

const (
	pendingKey       = "payments:pending"
	processingKeyFmt = "payments:processing:%s"
	deadKey          = "payments:dead"
)

// Queue is the crash-tolerant pending-work list shared by all instances.
// A dequeue atomically moves the record to this instance's processing
// list, so a crash mid-flight leaves the record inspectable instead of
// lost.
type Queue struct {
	rdb        *redis.Client
	processing string
}

func NewQueue(rdb *redis.Client, instanceID string) *Queue {
	return &Queue{
		rdb:        rdb,
		processing: fmt.Sprintf(processingKeyFmt, instanceID),
	}
}

func (q *Queue) Enqueue(ctx context.Context, req model.RoutableRequest) error {
	data, err := easyjson.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding request %s: %w", req.CorrelationID, err)
	}
	return q.rdb.LPush(ctx, pendingKey, data).Err()
}

// ReliableDequeue blocks up to timeout for a pending record and moves it
// atomically onto the processing list. It returns ok=false when the wait
// times out. The raw payload is returned alongside the decoded request;
// Ack, Requeue and Bury use it to drop the processing entry. A record
// that fails to decode is quarantined onto the dead list and reported as
// not found.
func (q *Queue) ReliableDequeue(ctx context.Context, timeout time.Duration) (model.RoutableRequest, string, bool, error) {
	raw, err := q.rdb.BLMove(ctx, pendingKey, q.processing, "RIGHT", "LEFT", timeout).Result()
	if err == redis.Nil {
		return model.RoutableRequest{}, "", false, nil
	}
	if err != nil {
		return model.RoutableRequest{}, "", false, err
	}
	var req model.RoutableRequest
	if err := easyjson.Unmarshal([]byte(raw), &req); err != nil {
		log.Printf("quarantining undecodable queue record: %v", err)
		if qerr := q.quarantine(ctx, raw); qerr != nil {
			log.Printf("error quarantining record: %v", qerr)
		}
		return model.RoutableRequest{}, "", false, nil
	}
	return req, raw, true, nil
}

// Ack removes a completed record from the processing list.
func (q *Queue) Ack(ctx context.Context, raw string) error {
	return q.rdb.LRem(ctx, q.processing, 1, raw).Err()
}

// Requeue atomically replaces the in-flight record with its retry
// successor on the pending list.
func (q *Queue) Requeue(ctx context.Context, raw string, next model.RoutableRequest) error {
	data, err := easyjson.Marshal(next)
	if err != nil {
		return fmt.Errorf("encoding request %s: %w", next.CorrelationID, err)
	}
	pipe := q.rdb.TxPipeline()
	pipe.LRem(ctx, q.processing, 1, raw)
	pipe.LPush(ctx, pendingKey, data)
	_, err = pipe.Exec(ctx)
	return err
}

// Bury moves a retry-exhausted record from the processing list to the
// dead list for manual inspection.
func (q *Queue) Bury(ctx context.Context, raw string) error {
	return q.quarantine(ctx, raw)
}

func (q *Queue) quarantine(ctx context.Context, raw string) error {
	pipe := q.rdb.TxPipeline()
	pipe.LRem(ctx, q.processing, 1, raw)
	pipe.LPush(ctx, deadKey, raw)
	_, err := pipe.Exec(ctx)
	return err
}

// Purge clears the pending, processing and dead lists.
func (q *Queue) Purge(ctx context.Context) error {
	return q.rdb.Del(ctx, pendingKey, q.processing, deadKey).Err()
}
