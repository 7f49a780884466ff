package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/akashkickdrum/version-service/internal/pkg/version"
	"github.com/akashkickdrum/version-service/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "version_service"

	// unmatchedRoute 등록된 라우트와 일치하지 않는(404) 요청의 route 레이블 값
	unmatchedRoute = "unmatched"
)

// Metrics HTTP 요청 메트릭을 수집합니다.
//
// route 레이블에는 요청 경로가 아닌 Echo 라우트 템플릿(c.Path())을 사용하여 레이블 카디널리티를 제한합니다.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics 요청 메트릭과 빌드 정보 메트릭을 생성하여 reg에 등록합니다.
// 같은 Registerer에 두 번 등록하면 패닉이 발생합니다.
func NewMetrics(reg prometheus.Registerer, bi version.Info) *Metrics {
	if reg == nil {
		panic(constants.PanicMsgRegistryRequired)
	}

	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	buildInfo := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "build_info",
		Help:      "Build metadata of the running binary. Always 1.",
	}, []string{"version", "commit", "go_version"})
	buildInfo.WithLabelValues(bi.Version, bi.Commit, bi.GoVersion).Set(1)

	reg.MustRegister(m.requests, m.duration, buildInfo)

	return m
}

// Middleware 요청 수와 처리 시간을 기록하는 미들웨어를 반환합니다.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			route := c.Path()
			if route == "" || status == http.StatusNotFound {
				route = unmatchedRoute
			}
			method := c.Request().Method

			m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}
