package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimit(t *testing.T) {
	t.Run("bypassed in test env", func(t *testing.T) {
		t.Setenv("APP_ENV", "test")

		allowed, err := CheckRateLimit(t.Context(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("counts against the limit", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer rdb.Close()

		for i := 0; i < 3; i++ {
			allowed, err := CheckRateLimit(t.Context(), rdb, "login", "ip:1.2.3.4", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, allowed)
		}

		allowed, err := CheckRateLimit(t.Context(), rdb, "login", "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, allowed)

		// A different caller has its own counter.
		allowed, err = CheckRateLimit(t.Context(), rdb, "login", "ip:5.6.7.8", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer rdb.Close()

		for i := 0; i < 2; i++ {
			_, err := CheckRateLimit(t.Context(), rdb, "feed", "user:9", 2, time.Second)
			require.NoError(t, err)
		}
		allowed, err := CheckRateLimit(t.Context(), rdb, "feed", "user:9", 2, time.Second)
		require.NoError(t, err)
		require.False(t, allowed)

		mr.FastForward(2 * time.Second)

		allowed, err = CheckRateLimit(t.Context(), rdb, "feed", "user:9", 2, time.Second)
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("nil client errors outside dev", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		_, err := CheckRateLimit(t.Context(), nil, "login", "ip:1.2.3.4", 1, time.Minute)
		assert.Error(t, err)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("returns 429 past the limit", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer rdb.Close()

		app := fiber.New()
		app.Get("/ping", RateLimit(rdb, 2, time.Minute, "ping"), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		for i := 0; i < 2; i++ {
			resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), -1)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		}

		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	})

	t.Run("fail open lets requests through on store errors", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		app := fiber.New()
		app.Get("/ping", RateLimit(nil, 1, time.Minute), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("fail closed returns 503 on store errors", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		app := fiber.New()
		app.Get("/ping", RateLimitWithPolicy(nil, 1, time.Minute, FailClosed), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}
