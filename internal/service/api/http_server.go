package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/akashkickdrum/version-service/internal/pkg/version"
	"github.com/akashkickdrum/version-service/internal/service/api/constants"
	"github.com/akashkickdrum/version-service/internal/service/api/httputil"
	appmiddleware "github.com/akashkickdrum/version-service/internal/service/api/middleware"
	applog "github.com/akashkickdrum/version-service/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS Strict-Transport-Security 헤더 전송 여부 (TLS 사용 시에만 활성화)
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 60초)
	RequestTimeout time.Duration

	// RateLimitPerSecond, RateLimitBurst 클라이언트 IP별 Token Bucket 설정 (0이면 20, 40)
	RateLimitPerSecond int
	RateLimitBurst     int

	// Registry 요청 메트릭을 등록할 Registry (nil이면 새로 생성하며 /metrics에서는 조회할 수 없음)
	Registry *prometheus.Registry

	// BuildInfo build_info 메트릭의 레이블 값
	BuildInfo version.Info
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 다른 미들웨어에서 발생한 panic까지 복구하도록 가장 먼저 적용
//  2. RequestID - 이후 로그에 request_id가 포함되도록 로깅보다 먼저 적용
//  3. ServerHeader - Server 헤더를 비워 서버 스택 정보를 노출하지 않음
//  4. HTTPLogger - 429/503 응답도 기록되도록 RateLimit/Timeout 이전에 적용
//  5. Metrics - 라우트 템플릿 기준 요청 수와 처리 시간 수집
//  6. RateLimit - IP별 요청 제한 (초과 시 429)
//  7. BodyLimit - 요청 본문 크기 제한 (초과 시 413)
//  8. ContextTimeout - 요청 컨텍스트에 처리 시간 제한 설정 (초과로 중단된 요청은 503)
//  9. CORS - 허용된 Origin의 GET/HEAD/OPTIONS 요청 처리
//  10. Secure - 보안 헤더 추가 (TLS 사용 시 HSTS 포함)
//
// 라우트는 포함되지 않으며 RegisterRoutes로 별도 등록합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	// StartTLS는 e.TLSServer를 사용하므로 두 서버 모두 설정합니다.
	for _, srv := range []*http.Server{e.Server, e.TLSServer} {
		srv.ReadTimeout = constants.DefaultReadTimeout
		srv.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
		srv.WriteTimeout = constants.DefaultWriteTimeout
		srv.IdleTimeout = constants.DefaultIdleTimeout
	}

	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	rps, burst := cfg.RateLimitPerSecond, cfg.RateLimitBurst
	if rps <= 0 {
		rps = constants.DefaultRateLimitPerSecond
	}
	if burst <= 0 {
		burst = constants.DefaultRateLimitBurst
	}

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = constants.DefaultHSTSMaxAge
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.ServerHeader(""))
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.NewMetrics(registry, cfg.BuildInfo).Middleware())
	e.Use(appmiddleware.RateLimit(rps, burst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout:      timeout,
		ErrorHandler: timeoutErrorHandler,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}

// timeoutErrorHandler 요청 컨텍스트의 기한 초과로 실패한 요청을 503 에러로 바꿔 전역 에러 핸들러가 JSON으로 응답하도록 합니다.
func timeoutErrorHandler(err error, _ echo.Context) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return httputil.NewServiceUnavailableError(constants.ErrMsgServiceUnavailable)
	}
	return err
}
