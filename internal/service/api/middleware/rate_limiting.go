package middleware

import (
	"fmt"
	"sync"

	"github.com/akashkickdrum/version-service/internal/service/api/constants"
	applog "github.com/akashkickdrum/version-service/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxIPRateLimiters 메모리에 유지하는 고유 IP(Limiter)의 최대 개수
	maxIPRateLimiters = 10000

	retryAfterSeconds = "1"
)

// ipRateLimiter 클라이언트 IP별 Token Bucket을 관리합니다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newIPRateLimiter(requestsPerSecond, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// getLimiter IP의 Limiter를 반환하며 없으면 생성합니다.
// 최대 개수에 도달하면 임의의 항목 하나를 제거합니다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, ok := i.limiters[ip]
	i.mu.RUnlock()
	if ok {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if limiter, ok = i.limiters[ip]; ok {
		return limiter
	}

	if len(i.limiters) >= maxIPRateLimiters {
		for evicted := range i.limiters {
			delete(i.limiters, evicted)
			break
		}
	}

	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter
	return limiter
}

func (i *ipRateLimiter) size() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.limiters)
}

// RateLimit 클라이언트 IP별 요청 속도 제한 미들웨어를 반환합니다.
//
// 초당 requestsPerSecond개의 토큰이 채워지고 최대 burst개까지 쌓이는 Token Bucket을 사용합니다.
// 제한을 초과하면 429와 함께 Retry-After: 1 헤더를 응답합니다.
// requestsPerSecond 또는 burst가 0 이하이면 패닉이 발생합니다.
func RateLimit(requestsPerSecond, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiters := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiters.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn(constants.LogMsgRateLimitExceeded)

				c.Response().Header().Set(echo.HeaderRetryAfter, retryAfterSeconds)
				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
