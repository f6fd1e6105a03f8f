package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient connects the task cache's Redis backend. Caching is
// optional, so this is only called when REDIS_ENABLED is set; a bad
// address is then a fatal misconfiguration, not a degraded mode.
func NewRedisClient(addr string) rueidis.Client {
	if addr == "" {
		log.Fatal("redis address must not be empty when caching is enabled")
	}

	client, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
			ClientName:  "taskhive-cache",
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client for %s: %v", addr, err)
	}

	return client
}
