package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/akashkickdrum/version-service/internal/pkg/version"
	"github.com/akashkickdrum/version-service/internal/service/api/constants"
	appmiddleware "github.com/akashkickdrum/version-service/internal/service/api/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// =============================================================================
// Configuration Tests
// =============================================================================

func TestNewHTTPServer_Configuration(t *testing.T) {
	tests := []struct {
		name        string
		config      HTTPServerConfig
		expectDebug bool
	}{
		{
			name:        "Debug 모드 활성화",
			config:      HTTPServerConfig{Debug: true, AllowOrigins: []string{"*"}},
			expectDebug: true,
		},
		{
			name:        "Debug 모드 비활성화",
			config:      HTTPServerConfig{Debug: false, AllowOrigins: []string{"https://example.com"}},
			expectDebug: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHTTPServer(tt.config)

			require.NotNil(t, e)
			assert.Equal(t, tt.expectDebug, e.Debug)
			assert.True(t, e.HideBanner)
			assert.True(t, e.HidePort)
			assert.IsType(t, appmiddleware.Logger{}, e.Logger, "Echo 로그는 애플리케이션 로거로 전달되어야 합니다")
			assert.NotNil(t, e.HTTPErrorHandler)

			for _, srv := range []*http.Server{e.Server, e.TLSServer} {
				assert.Equal(t, constants.DefaultReadTimeout, srv.ReadTimeout)
				assert.Equal(t, constants.DefaultReadHeaderTimeout, srv.ReadHeaderTimeout)
				assert.Equal(t, constants.DefaultWriteTimeout, srv.WriteTimeout)
				assert.Equal(t, constants.DefaultIdleTimeout, srv.IdleTimeout)
			}
		})
	}
}

func TestNewHTTPServer_ZeroValueConfig(t *testing.T) {
	assert.NotPanics(t, func() {
		e := NewHTTPServer(HTTPServerConfig{})
		e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}, "RateLimit, RequestTimeout, Registry가 비어 있으면 기본값이 적용되어야 합니다")
}

// =============================================================================
// Version Endpoint (End-to-End through middleware chain)
// =============================================================================

func TestNewHTTPServer_Version(t *testing.T) {
	setupTestLogger(t)
	e := newTestServer(t, HTTPServerConfig{})

	t.Run("성공: 헤더와 본문 없이 요청", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, constants.PathVersion, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Hey there!! This is Akash", rec.Body.String())
		assert.Equal(t, version.AppVersion, rec.Body.String())
		assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain))
	})

	t.Run("성공: 연속 두 번 요청 시 동일한 응답", func(t *testing.T) {
		first := httptest.NewRecorder()
		e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, constants.PathVersion, nil))
		second := httptest.NewRecorder()
		e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, constants.PathVersion, nil))

		assert.Equal(t, first.Code, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, first.Header().Get(echo.HeaderContentType), second.Header().Get(echo.HeaderContentType))
	})

	t.Run("성공: 요청 헤더와 쿼리는 응답에 영향 없음", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, constants.PathVersion+"?format=json&token=secret", nil)
		req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, version.AppVersion, rec.Body.String())
	})

	t.Run("실패: 허용되지 않은 메서드", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, constants.PathVersion, nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, int64(http.StatusMethodNotAllowed), gjson.Get(rec.Body.String(), "result_code").Int())
		assert.Equal(t, constants.ErrMsgMethodNotAllowed, gjson.Get(rec.Body.String(), "message").String())
	})

	t.Run("실패: HEAD 요청은 본문 없이 405", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, constants.PathVersion, nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

// =============================================================================
// Middleware Chain Tests
// =============================================================================

func TestNewHTTPServer_CORS(t *testing.T) {
	setupTestLogger(t)

	tests := []struct {
		name              string
		allowOrigins      []string
		requestOrigin     string
		requestMethod     string
		expectStatus      int
		expectAllowOrigin string
	}{
		{
			name:              "성공: Wildcard Origin Preflight 요청",
			allowOrigins:      []string{"*"},
			requestOrigin:     "http://example.com",
			requestMethod:     http.MethodOptions,
			expectStatus:      http.StatusNoContent,
			expectAllowOrigin: "*",
		},
		{
			name:              "성공: 허용된 Origin GET 요청",
			allowOrigins:      []string{"https://example.com"},
			requestOrigin:     "https://example.com",
			requestMethod:     http.MethodGet,
			expectStatus:      http.StatusOK,
			expectAllowOrigin: "https://example.com",
		},
		{
			name:              "실패: 허용되지 않은 Origin은 CORS 헤더 없음",
			allowOrigins:      []string{"https://trusted.com"},
			requestOrigin:     "https://evil.com",
			requestMethod:     http.MethodGet,
			expectStatus:      http.StatusOK,
			expectAllowOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(t, HTTPServerConfig{AllowOrigins: tt.allowOrigins})

			req := httptest.NewRequest(tt.requestMethod, constants.PathVersion, nil)
			req.Header.Set(echo.HeaderOrigin, tt.requestOrigin)
			if tt.requestMethod == http.MethodOptions {
				req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectAllowOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			if tt.requestMethod == http.MethodOptions {
				allowMethods := rec.Header().Get(echo.HeaderAccessControlAllowMethods)
				assert.Contains(t, allowMethods, http.MethodGet)
				assert.NotContains(t, allowMethods, http.MethodPost)
			}
		})
	}
}

func TestNewHTTPServer_SecurityHeaders(t *testing.T) {
	setupTestLogger(t)

	t.Run("성공: 기본 보안 헤더와 요청 ID", func(t *testing.T) {
		e := newTestServer(t, HTTPServerConfig{})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, constants.PathVersion, nil))

		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
		assert.Equal(t, "SAMEORIGIN", rec.Header().Get(echo.HeaderXFrameOptions))
		assert.Equal(t, "1; mode=block", rec.Header().Get(echo.HeaderXXSSProtection))
		assert.Empty(t, rec.Header().Get(echo.HeaderServer), "Server 헤더는 비어 있어야 합니다")
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		assert.Empty(t, rec.Header().Get(echo.HeaderStrictTransportSecurity))
	})

	t.Run("성공: HSTS 활성화 시 HTTPS 요청에 Strict-Transport-Security 추가", func(t *testing.T) {
		e := newTestServer(t, HTTPServerConfig{EnableHSTS: true})

		req := httptest.NewRequest(http.MethodGet, constants.PathVersion, nil)
		req.Header.Set(echo.HeaderXForwardedProto, "https")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Contains(t, rec.Header().Get(echo.HeaderStrictTransportSecurity), "max-age=31536000")
	})
}

func TestNewHTTPServer_BodyLimit(t *testing.T) {
	setupTestLogger(t)
	e := newTestServer(t, HTTPServerConfig{})
	e.POST("/upload", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	t.Run("성공: 제한 이하 본문", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("small")))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("실패: 128K 초과 본문은 413", func(t *testing.T) {
		body := strings.Repeat("a", 129*1024)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(body)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, constants.ErrMsgRequestEntityTooLarge, gjson.Get(rec.Body.String(), "message").String())
	})
}

func TestNewHTTPServer_RateLimit(t *testing.T) {
	setupTestLogger(t)
	e := newTestServer(t, HTTPServerConfig{RateLimitPerSecond: 1, RateLimitBurst: 1})

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, constants.PathVersion, nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, constants.PathVersion, nil))

	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get(echo.HeaderRetryAfter))
	assert.Equal(t, constants.ErrMsgTooManyRequests, gjson.Get(second.Body.String(), "message").String())
}

func TestNewHTTPServer_Timeout(t *testing.T) {
	buf := setupTestLogger(t)
	e := newTestServer(t, HTTPServerConfig{RequestTimeout: 50 * time.Millisecond})
	e.GET("/slow", func(c echo.Context) error {
		select {
		case <-time.After(300 * time.Millisecond):
			return c.String(http.StatusOK, "done")
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		}
	})
	e.GET("/fail", func(c echo.Context) error { return echo.NewHTTPError(http.StatusConflict, "충돌") })

	t.Run("실패: 처리 시간 초과는 JSON 503", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
		assert.Equal(t, int64(http.StatusServiceUnavailable), gjson.Get(rec.Body.String(), "result_code").Int())
		assert.Equal(t, constants.ErrMsgServiceUnavailable, gjson.Get(rec.Body.String(), "message").String())
		assert.NotContains(t, rec.Body.String(), "done")
		assert.Contains(t, buf.String(), constants.LogMsgHTTPServerError)
	})

	t.Run("성공: 기한 내 에러는 그대로 전달", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "충돌", gjson.Get(rec.Body.String(), "message").String())
	})

	t.Run("성공: 기한 내 응답", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, constants.PathVersion, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, version.AppVersion, rec.Body.String())
	})
}

func TestTimeoutErrorHandler(t *testing.T) {
	t.Parallel()

	err := timeoutErrorHandler(fmt.Errorf("handler: %w", context.DeadlineExceeded), nil)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, he.Code)

	other := errors.New("boom")
	assert.Same(t, other, timeoutErrorHandler(other, nil), "기한 초과가 아닌 에러는 그대로 반환해야 합니다")
}

func TestNewHTTPServer_PanicRecovery(t *testing.T) {
	buf := setupTestLogger(t)
	e := newTestServer(t, HTTPServerConfig{})
	e.GET("/panic", func(c echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, constants.ErrMsgInternalServer, gjson.Get(rec.Body.String(), "message").String())
	assert.NotContains(t, rec.Body.String(), "boom", "패닉 값은 클라이언트에 노출되지 않아야 합니다")
	assert.Contains(t, buf.String(), constants.LogMsgPanicRecovered)
}

func TestNewHTTPServer_NotFound(t *testing.T) {
	buf := setupTestLogger(t)
	e := newTestServer(t, HTTPServerConfig{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int64(http.StatusNotFound), gjson.Get(rec.Body.String(), "result_code").Int())
	assert.Equal(t, constants.ErrMsgNotFound, gjson.Get(rec.Body.String(), "message").String())
	assert.Contains(t, buf.String(), constants.LogMsgHTTPClientError)
	assert.Contains(t, buf.String(), constants.LogMsgHTTPRequest, "404 요청도 접근 로그에 기록되어야 합니다")
}
