package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-space/serenity_api/dto"
)

type countingLimiter struct {
	max   int
	calls map[string]int
	err   error
}

func (l *countingLimiter) IsAllowed(_ context.Context, identifier, _ string) (bool, *dto.RateLimitInfo, error) {
	if l.err != nil {
		return false, nil, l.err
	}
	l.calls[identifier]++
	reset := time.Now().Add(30 * time.Second)
	remaining := l.max - l.calls[identifier]
	if remaining < 0 {
		remaining = 0
	}
	allowed := l.calls[identifier] <= l.max
	return allowed, &dto.RateLimitInfo{Allowed: allowed, Limit: l.max, Remaining: remaining, ResetTime: &reset}, nil
}

func newLimitedApp(limiter RateLimiter) *fiber.App {
	app := fiber.New()
	app.Use(WriteRateLimit(limiter, "api_write"))
	app.Get("/items", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Post("/items", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestWriteRateLimitBlocksAfterLimit(t *testing.T) {
	limiter := &countingLimiter{max: 2, calls: map[string]int{}}
	app := newLimitedApp(limiter)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/items", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "2", resp.Header.Get("X-RateLimit-Limit"))
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/items", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))
	assert.Equal(t, 3, limiter.calls["0.0.0.0"])
}

func TestWriteRateLimitIgnoresSpoofedForwardingHeaders(t *testing.T) {
	limiter := &countingLimiter{max: 1, calls: map[string]int{}}
	app := newLimitedApp(limiter)

	req := httptest.NewRequest(fiber.MethodPost, "/items", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.7")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodPost, "/items", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, "198.51.100.9")
	req.Header.Set("X-Real-IP", "198.51.100.10")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	assert.Equal(t, map[string]int{"0.0.0.0": 2}, limiter.calls)
}

func TestWriteRateLimitHonorsTrustedProxyHeader(t *testing.T) {
	limiter := &countingLimiter{max: 1, calls: map[string]int{}}
	app := fiber.New(fiber.Config{
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0"},
		EnableIPValidation:      true,
	})
	app.Use(WriteRateLimit(limiter, "api_write"))
	app.Post("/items", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for _, client := range []string{"203.0.113.7, 10.0.0.1", "198.51.100.9"} {
		req := httptest.NewRequest(fiber.MethodPost, "/items", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, client)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, map[string]int{"203.0.113.7": 1, "198.51.100.9": 1}, limiter.calls)
}

func TestWriteRateLimitIgnoresReads(t *testing.T) {
	limiter := &countingLimiter{max: 0, calls: map[string]int{}}
	app := newLimitedApp(limiter)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/items", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, limiter.calls)
}

func TestWriteRateLimitFailsOpen(t *testing.T) {
	app := newLimitedApp(&countingLimiter{err: errors.New("redis down")})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/items", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCORSAnyOrigin(t *testing.T) {
	app := fiber.New()
	app.Use(CORS([]string{"*"}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://app.example")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))
}

func TestCORSExplicitOrigins(t *testing.T) {
	app := fiber.New()
	app.Use(CORS([]string{"https://app.example"}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://app.example")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "https://app.example", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", resp.Header.Get(fiber.HeaderAccessControlAllowCredentials))

	req = httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderOrigin, "https://evil.example")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
