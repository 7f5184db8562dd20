// Package redis wraps go-redis behind a small Client interface so stores can
// be exercised against miniredis in tests.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options tunes the underlying connection pool.
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a client for a single Redis instance.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, errors.New("redis: endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}
	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(redisOpts), nil
}

// NewClusterClient creates a client for a Redis cluster.
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("redis: at least one endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	clusterOpts := &redis.ClusterOptions{
		Addrs:        endpoints,
		MinIdleConns: opts.MinIdleConns,
		PoolSize:     opts.PoolSize,
		MaxRetries:   opts.MaxRetries,
	}
	if opts.UseTLS {
		clusterOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClusterClient(clusterOpts), nil
}

// Connect picks a single-node or cluster client from a comma separated
// address list and verifies it answers PING before returning.
func Connect(ctx context.Context, addrs string, opts *Options) (Client, error) {
	var endpoints []string
	for _, addr := range strings.Split(addrs, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			endpoints = append(endpoints, addr)
		}
	}

	var (
		client Client
		err    error
	)
	switch len(endpoints) {
	case 0:
		return nil, errors.New("redis: endpoint is required")
	case 1:
		client, err = NewClient(endpoints[0], opts)
	default:
		client, err = NewClusterClient(endpoints, opts)
	}
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
