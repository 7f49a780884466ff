package system

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/akashkickdrum/version-service/internal/pkg/version"
	"github.com/akashkickdrum/version-service/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// =============================================================================
// Test Helpers
// =============================================================================

func newTestBuildInfo() version.Info {
	return version.Info{
		Version:     "v1.0.0",
		Commit:      "f25b8bf",
		BuildDate:   "2026-01-01T00:00:00Z",
		BuildNumber: "100",
		GoVersion:   "go1.24.0",
		OS:          "linux",
		Arch:        "amd64",
	}
}

func serve(t *testing.T, h echo.HandlerFunc, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, target, nil), rec)
	require.NoError(t, h(c))
	return rec
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNew(t *testing.T) {
	t.Parallel()

	bi := newTestBuildInfo()
	h := New(bi)

	require.NotNil(t, h)
	assert.Equal(t, bi, h.buildInfo)
	assert.WithinDuration(t, time.Now(), h.serverStartTime, time.Second)
}

// =============================================================================
// Version Tests
// =============================================================================

func TestHandler_VersionHandler(t *testing.T) {
	t.Parallel()

	h := New(newTestBuildInfo())

	t.Run("성공: 고정된 버전 문자열 반환", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, h.VersionHandler, http.MethodGet, "/version")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Hey there!! This is Akash", rec.Body.String())
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
	})

	t.Run("성공: 연속 요청 시 동일한 응답", func(t *testing.T) {
		t.Parallel()

		first := serve(t, h.VersionHandler, http.MethodGet, "/version")
		second := serve(t, h.VersionHandler, http.MethodGet, "/version")

		assert.Equal(t, first.Code, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, first.Header(), second.Header())
	})

	t.Run("성공: 쿼리 파라미터는 무시", func(t *testing.T) {
		t.Parallel()

		rec := serve(t, h.VersionHandler, http.MethodGet, "/version?format=json&verbose=1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, version.AppVersion, rec.Body.String())
	})

	t.Run("성공: 동시 요청", func(t *testing.T) {
		t.Parallel()

		var wg sync.WaitGroup
		bodies := make([]string, 20)
		for i := range bodies {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				rec := httptest.NewRecorder()
				c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/version", nil), rec)
				if err := h.VersionHandler(c); err == nil {
					bodies[i] = rec.Body.String()
				}
			}(i)
		}
		wg.Wait()

		for _, body := range bodies {
			assert.Equal(t, version.AppVersion, body)
		}
	})
}

// =============================================================================
// Build Info Tests
// =============================================================================

func TestHandler_BuildInfoHandler(t *testing.T) {
	t.Parallel()

	bi := newTestBuildInfo()
	bi.DirtyBuild = true
	h := New(bi)

	rec := serve(t, h.BuildInfoHandler, http.MethodGet, "/version/build")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	body := rec.Body.String()
	assert.Equal(t, "v1.0.0", gjson.Get(body, "version").String())
	assert.Equal(t, "f25b8bf", gjson.Get(body, "commit").String())
	assert.Equal(t, "2026-01-01T00:00:00Z", gjson.Get(body, "build_date").String())
	assert.Equal(t, "100", gjson.Get(body, "build_number").String())
	assert.Equal(t, "go1.24.0", gjson.Get(body, "go_version").String())
	assert.Equal(t, "linux", gjson.Get(body, "os").String())
	assert.Equal(t, "amd64", gjson.Get(body, "arch").String())
	assert.True(t, gjson.Get(body, "dirty_build").Bool())
}

// =============================================================================
// Health Check Tests
// =============================================================================

func TestHandler_HealthCheckHandler(t *testing.T) {
	t.Parallel()

	h := New(newTestBuildInfo())
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h.serverStartTime = start
	h.now = func() time.Time { return start.Add(90*time.Minute + 500*time.Millisecond) }

	rec := serve(t, h.HealthCheckHandler, http.MethodGet, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constants.HealthStatusHealthy, gjson.Get(rec.Body.String(), "status").String())
	assert.Equal(t, int64(5400), gjson.Get(rec.Body.String(), "uptime").Int())
}
