package api

import (
	"github.com/akashkickdrum/version-service/internal/service/api/constants"
	"github.com/akashkickdrum/version-service/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes 서비스의 모든 라우트를 등록합니다.
//
//   - 시스템 엔드포인트: /version, /version/build, /health
//   - 메트릭: /metrics (reg에 등록된 수집기를 Prometheus 텍스트 형식으로 노출)
//   - API 문서: /swagger/*
func RegisterRoutes(e *echo.Echo, h *system.Handler, reg *prometheus.Registry) {
	registerSystemRoutes(e, h)
	registerMetricsRoutes(e, reg)
	registerSwaggerRoutes(e)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET(constants.PathVersion, h.VersionHandler)
	e.GET(constants.PathVersionBuild, h.BuildInfoHandler)
	e.GET(constants.PathHealth, h.HealthCheckHandler)
}

func registerMetricsRoutes(e *echo.Echo, reg *prometheus.Registry) {
	if reg == nil {
		panic(constants.PanicMsgRegistryRequired)
	}

	e.GET(constants.PathMetrics, echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{
		Registry: reg,
	})))
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET(constants.PathSwagger, echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
