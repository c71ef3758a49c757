package infra

import (
	"context"
	"fmt"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the configured Redis instance. When no URL is
// given it boots an embedded miniredis so the whole simulation stays inside a
// single process; the returned cleanup stops the embedded server.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, func(), error) {
	if url == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return nil, nil, fmt.Errorf("start embedded redis: %w", err)
		}
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		cleanup := func() {
			client.Close()
			mr.Close()
		}
		return client, cleanup, nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	cleanup := func() { client.Close() }
	return client, cleanup, nil
}
