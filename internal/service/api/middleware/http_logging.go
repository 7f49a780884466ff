package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/akashkickdrum/version-service/internal/service/api/constants"
	applog "github.com/akashkickdrum/version-service/pkg/log"
	"github.com/akashkickdrum/version-service/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 없을 때 bytes_in 필드에 기록되는 값
const defaultBytesIn = "0"

// HTTPLogger 요청과 응답을 구조화된 접근 로그로 기록하는 미들웨어를 반환합니다.
//
// 핸들러가 반환한 에러는 이 미들웨어에서 c.Error로 응답에 반영되므로, 기록되는 status는 실제 응답 코드입니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			defer func() {
				logRequest(c, time.Since(start))
			}()

			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		}
	}
}

func logRequest(c echo.Context, latency time.Duration) {
	req := c.Request()
	res := c.Response()

	path := req.URL.Path
	if path == "" {
		path = "/"
	}

	bytesIn := req.Header.Get(echo.HeaderContentLength)
	if bytesIn == "" {
		bytesIn = defaultBytesIn
	}

	applog.WithComponentAndFields(constants.ComponentMiddlewareHTTPLogger, applog.Fields{
		"method":   req.Method,
		"path":     path,
		"uri":      maskSensitiveQueryParams(req.RequestURI),
		"host":     req.Host,
		"protocol": req.Proto,

		"remote_ip":  c.RealIP(),
		"user_agent": req.UserAgent(),
		"referer":    req.Referer(),

		"status":    res.Status,
		"bytes_in":  bytesIn,
		"bytes_out": strconv.FormatInt(res.Size, 10),

		"latency":       strconv.FormatInt(latency.Microseconds(), 10),
		"latency_human": latency.String(),

		"request_id": res.Header().Get(echo.HeaderXRequestID),
	}).Info(constants.LogMsgHTTPRequest)
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 가립니다. 파싱에 실패하면 원본을 반환합니다.
//
//	"/version?token=secret123&id=100" -> "/version?id=100&token=secr%2A%2A%2A"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false
	for _, param := range constants.SensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.Mask(q.Get(param)))
			masked = true
		}
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
