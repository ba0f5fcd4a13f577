package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port      string
	RedisAddr string

	DefaultProcessorURL  string
	FallbackProcessorURL string

	DefaultHealthInterval  time.Duration
	FallbackHealthInterval time.Duration

	LeaseTTL        time.Duration
	RenewInterval   time.Duration
	AcquireInterval time.Duration

	WorkerCount    int
	MaxInflight    int64
	DequeueTimeout time.Duration
	RetryIncrement time.Duration
	MaxRetries     int
	RemoteTimeout  time.Duration
	PreferFastest  bool
}

func Load() *Config {
	return &Config{
		Port:                   getEnv("SERVER_PORT", "9999"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		DefaultProcessorURL:    getEnv("DEFAULT_PROCESSOR_URL", "http://payment-processor-default:8080"),
		FallbackProcessorURL:   getEnv("FALLBACK_PROCESSOR_URL", "http://payment-processor-fallback:8080"),
		DefaultHealthInterval:  getDurationEnv("DEFAULT_HEALTH_INTERVAL", 5*time.Second),
		FallbackHealthInterval: getDurationEnv("FALLBACK_HEALTH_INTERVAL", 5*time.Second),
		LeaseTTL:               getDurationEnv("LEASE_TTL", 10*time.Second),
		RenewInterval:          getDurationEnv("LEASE_RENEW_INTERVAL", 5*time.Second),
		AcquireInterval:        getDurationEnv("LEASE_ACQUIRE_INTERVAL", 3*time.Second),
		WorkerCount:            getIntEnv("WORKER_COUNT", 20),
		MaxInflight:            int64(getIntEnv("MAX_INFLIGHT", 10)),
		DequeueTimeout:         getDurationEnv("DEQUEUE_TIMEOUT", 5*time.Second),
		RetryIncrement:         getDurationEnv("RETRY_INCREMENT", 250*time.Millisecond),
		MaxRetries:             getIntEnv("MAX_RETRIES", 50),
		RemoteTimeout:          getDurationEnv("REMOTE_TIMEOUT", 1500*time.Millisecond),
		PreferFastest:          getBoolEnv("PREFER_FASTEST", false),
	}
}

// Validate reports missing or malformed endpoint configuration. Fatal at
// startup: a processor without a usable URL can never be dispatched to.
func (c *Config) Validate() error {
	if c.RedisAddr == "" {
		return fmt.Errorf("redis address is required")
	}
	for name, raw := range map[string]string{
		"default":  c.DefaultProcessorURL,
		"fallback": c.FallbackProcessorURL,
	} {
		if raw == "" {
			return fmt.Errorf("%s processor URL is required", name)
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s processor URL %q is not a valid URL", name, raw)
		}
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("worker count must be positive")
	}
	if c.MaxInflight <= 0 {
		return fmt.Errorf("max inflight must be positive")
	}
	if c.RenewInterval >= c.LeaseTTL {
		return fmt.Errorf("lease renew interval must be shorter than the lease TTL")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
