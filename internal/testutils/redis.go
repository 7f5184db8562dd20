// Package testutils holds shared fixtures and an in-memory Redis for tests.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/Saichiiro/astoria-sub001/internal/redis"
)

// CreateTestRedisClient starts a miniredis instance and returns a client for
// it together with the server, so tests can inspect raw keys or inject data.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
