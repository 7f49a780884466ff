// Package system 버전, 빌드 정보, 헬스체크 등 시스템 엔드포인트 핸들러를 제공합니다.
package system

import (
	"net/http"
	"time"

	"github.com/akashkickdrum/version-service/internal/pkg/version"
	"github.com/akashkickdrum/version-service/internal/service/api/constants"
	"github.com/akashkickdrum/version-service/internal/service/api/model/system"
	applog "github.com/akashkickdrum/version-service/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	buildInfo version.Info

	serverStartTime time.Time
	now             func() time.Time
}

// New Handler 인스턴스를 생성합니다.
func New(buildInfo version.Info) *Handler {
	return &Handler{
		buildInfo: buildInfo,

		serverStartTime: time.Now(),
		now:             time.Now,
	}
}

// VersionHandler godoc
// @Summary 애플리케이션 버전
// @Description 고정된 애플리케이션 버전 문자열을 평문으로 반환합니다.
// @Description 요청 파라미터, 헤더, 본문을 사용하지 않으며 항상 같은 응답을 반환합니다.
// @Tags System
// @Produce plain
// @Success 200 {string} string "Hey there!! This is Akash"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	return c.String(http.StatusOK, version.AppVersion)
}

// BuildInfoHandler godoc
// @Summary 빌드 정보
// @Description 실행 중인 바이너리의 버전, 커밋 해시, 빌드 날짜, Go 버전 등을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.BuildInfoResponse "빌드 정보"
// @Router /version/build [get]
func (h *Handler) BuildInfoHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  constants.PathVersionBuild,
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgBuildInfo)

	return c.JSON(http.StatusOK, system.BuildInfoResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
		OS:          h.buildInfo.OS,
		Arch:        h.buildInfo.Arch,
		DirtyBuild:  h.buildInfo.DirtyBuild,
	})
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버 상태와 가동 시간(초)을 반환합니다. 모니터링 시스템에서 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  constants.PathHealth,
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status: constants.HealthStatusHealthy,
		Uptime: int64(h.now().Sub(h.serverStartTime).Seconds()),
	})
}
