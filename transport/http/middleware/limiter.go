package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	loginPath         = "/v1/auth/login"
)

// bucket is a fixed counting window. Login attempts get their own, smaller bucket keyed by
// address only, so rotating the user agent does not buy more password guesses.
type bucket struct {
	name   string
	key    string
	max    int
	window int
}

func (a *appMiddleware) bucketFor(r *http.Request) bucket {
	limits := a.config.App.RateLimiter
	ip := a.getClientIP(r)

	if r.Method == http.MethodPost && strings.TrimSuffix(r.URL.Path, "/") == loginPath {
		return bucket{
			name:   "login",
			key:    shared.BuildCacheKey(cacheKeyRateLimit, "login", ip),
			max:    limits.LoginMaxAttempts,
			window: limits.LoginWindowSeconds,
		}
	}

	return bucket{
		name:   "api",
		key:    shared.BuildCacheKey(cacheKeyRateLimit, ip, a.getUA(r)),
		max:    limits.MaxRequests,
		window: limits.WindowSeconds,
	}
}

// take counts one request against b and returns how many are left in the current window.
func (a *appMiddleware) take(ctx context.Context, b bucket) (int, error) {
	count, err := a.cache.Increment(ctx, b.key, b.window)
	if err != nil {
		return 0, fmt.Errorf("failed to count request: %w", err)
	}

	return b.max - int(count), nil
}

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			b := a.bucketFor(r)
			if b.max <= 0 {
				next.ServeHTTP(w, r)

				return
			}

			remaining, err := a.take(r.Context(), b)
			if err != nil {
				// the limiter fails open
				log.Warn().Err(err).Str("bucket", b.name).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(b.max))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, remaining)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(b.window))

			if remaining < 0 {
				log.Warn().Str("bucket", b.name).Str("ip", a.getClientIP(r)).Msg("rate limit exceeded")

				w.Header().Set(constant.RequestHeaderRetryAfter, strconv.Itoa(b.window))
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return "unknown"
}

// getClientIP reads the address left by chi's RealIP, which has already resolved
// X-Forwarded-For and X-Real-IP.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
