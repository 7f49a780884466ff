package api

import (
	"bytes"
	"os"
	"testing"

	"github.com/akashkickdrum/version-service/internal/pkg/version"
	"github.com/akashkickdrum/version-service/internal/service/api/handler/system"
	applog "github.com/akashkickdrum/version-service/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var testBuildInfo = version.Info{
	Version:     "v1.0.0",
	Commit:      "abc1234def5678",
	BuildDate:   "2026-01-01T00:00:00Z",
	BuildNumber: "7",
	GoVersion:   "go1.24.0",
	OS:          "linux",
	Arch:        "amd64",
}

// setupTestLogger 전역 로거 출력을 JSON 형식의 버퍼로 돌리고 테스트 종료 시 복원합니다.
func setupTestLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	prevLevel := applog.GetLevel()

	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(os.Stderr)
		applog.SetFormatter(&applog.TextFormatter{})
		applog.SetLevel(prevLevel)
	})

	return buf
}

// newTestServer 미들웨어 체인과 모든 라우트가 등록된 Echo 인스턴스를 생성합니다.
func newTestServer(t *testing.T, cfg HTTPServerConfig) *echo.Echo {
	t.Helper()

	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	if cfg.BuildInfo == (version.Info{}) {
		cfg.BuildInfo = testBuildInfo
	}
	if cfg.AllowOrigins == nil {
		cfg.AllowOrigins = []string{"*"}
	}

	e := NewHTTPServer(cfg)
	RegisterRoutes(e, system.New(cfg.BuildInfo), cfg.Registry)

	return e
}
