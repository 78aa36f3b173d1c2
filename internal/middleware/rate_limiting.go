package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateKeyFunc extracts the identity a request is limited by.
type RateKeyFunc func(r *http.Request) string

// KeyByIP limits per client address.
func KeyByIP(r *http.Request) string {
	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		return "unknown-ip"
	}
	return ip
}

// KeyByUser limits per authenticated user, falling back to the client address.
func KeyByUser(r *http.Request) string {
	if u, ok := users.FromContext(r.Context()); ok {
		return "user:" + u.ID
	}
	return KeyByIP(r)
}

func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	allowedPerMin int,
	keyFunc RateKeyFunc,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			key := fmt.Sprintf("%s:%s", routerName, keyFunc(r))
			res, err := rateLimiter.Allow(r.Context(), key, redis_rate.PerMinute(allowedPerMin))
			if err != nil {
				log.Errorf("rate limiter [%s]: %s", routerName, err)
				pkg.WriteError(w, http.StatusInternalServerError, pkg.MsgInternal)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			log.Debugf("rate limited [%s], retry after %s", key, res.RetryAfter)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			pkg.WriteError(w, http.StatusTooManyRequests, pkg.MsgTooManyRequests)
		})
	}
}
