package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// New - connects to Redis at addr and checks the connection with a ping.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
