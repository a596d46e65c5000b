package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitServiceFixedWindow(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestRedis(t)
	svc := NewRateLimitService(cache, 3)

	for i := 0; i < 3; i++ {
		allowed, info, err := svc.IsAllowed(ctx, "10.0.0.1", EndpointTypeWrite)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 3, info.Limit)
		assert.Equal(t, 2-i, info.Remaining)
	}

	allowed, info, err := svc.IsAllowed(ctx, "10.0.0.1", EndpointTypeWrite)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Zero(t, info.Remaining)
	require.NotNil(t, info.ResetTime)

	allowed, _, err = svc.IsAllowed(ctx, "10.0.0.2", EndpointTypeWrite)
	require.NoError(t, err)
	assert.True(t, allowed)

	mr.FastForward(time.Minute + time.Second)

	allowed, _, err = svc.IsAllowed(ctx, "10.0.0.1", EndpointTypeWrite)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimitServiceUnknownEndpointType(t *testing.T) {
	cache, _ := newTestRedis(t)
	svc := NewRateLimitService(cache, 1)

	for i := 0; i < 5; i++ {
		allowed, _, err := svc.IsAllowed(context.Background(), "ip", "uploads")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRateLimitServiceReportsRedisErrors(t *testing.T) {
	cache, mr := newTestRedis(t)
	svc := NewRateLimitService(cache, 1)
	mr.Close()

	_, _, err := svc.IsAllowed(context.Background(), "ip", EndpointTypeWrite)
	assert.Error(t, err)
}
