package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaseKey = "payments:health-leader"

var renewScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Lease is the time-bounded ownership record behind leader election.
// Exactly one instance holds it at a time; the holder runs the health
// prober.
type Lease struct {
	rdb        *redis.Client
	instanceID string
	ttl        time.Duration
}

func NewLease(rdb *redis.Client, instanceID string, ttl time.Duration) *Lease {
	return &Lease{rdb: rdb, instanceID: instanceID, ttl: ttl}
}

func (l *Lease) InstanceID() string {
	return l.instanceID
}

// TryAcquire attempts an atomic set-if-absent of the lease key. Among
// concurrent callers exactly one succeeds.
func (l *Lease) TryAcquire(ctx context.Context) (bool, error) {
	return l.rdb.SetNX(ctx, leaseKey, l.instanceID, l.ttl).Result()
}

// Renew extends the lease TTL only while this instance still owns it.
// A false return means ownership was lost and the caller must demote
// itself.
func (l *Lease) Renew(ctx context.Context) (bool, error) {
	res, err := renewScript.Run(ctx, l.rdb, []string{leaseKey}, l.instanceID, l.ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// Release deletes the lease if this instance still owns it.
func (l *Lease) Release(ctx context.Context) error {
	return releaseScript.Run(ctx, l.rdb, []string{leaseKey}, l.instanceID).Err()
}
