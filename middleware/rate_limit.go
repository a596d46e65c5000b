package middleware

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/shared"
)

type RateLimiter interface {
	IsAllowed(ctx context.Context, identifier, endpointType string) (bool, *dto.RateLimitInfo, error)
}

// WriteRateLimit throttles non-GET requests per client IP. Read requests and
// preflights pass through untouched. Limiter errors let the request through.
// The client IP comes from c.IP(), so forwarding headers only count when
// the app trusts the connecting proxy.
func WriteRateLimit(limiter RateLimiter, endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		ip := c.IP()

		allowed, info, err := limiter.IsAllowed(c.UserContext(), ip, endpointType)
		if err != nil {
			log.WithFields(log.Fields{"ip": ip, "error": err.Error()}).Warn("Rate limit check error")
			return c.Next()
		}

		if info.Limit > 0 {
			c.Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
			c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		}
		if info.ResetTime != nil {
			c.Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
		}

		if !allowed {
			retryAfter := 1
			if info.ResetTime != nil {
				if secs := int(math.Ceil(time.Until(*info.ResetTime).Seconds())); secs > 0 {
					retryAfter = secs
				}
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))

			log.WithFields(log.Fields{"ip": ip, "path": c.Path()}).Warn("Rate limit exceeded")
			return shared.ResponseJSON(c, fiber.StatusTooManyRequests, "Too many requests from this IP address", nil)
		}

		return c.Next()
	}
}
